package terrain

// BuildMesh converts a heightfield into triangle-strip vertex data. Each of
// the size-1 strips interleaves row z and row z+1, two vertices per column,
// giving (size-1) * size * 2 vertices total. Texture coordinates span
// [0, uvScale] across the field so the surface texture tiles.
//
// Positions are centered on the world origin with the z axis flipped; the
// Sampler applies the matching inverse mapping.
func BuildMesh(field *Heightfield, uvScale float32) *Mesh {
	size := field.Size()
	offset := float32(size) / 2.0

	bounds := Bounds{
		Min: [3]float32{1e10, 1e10, 1e10},
		Max: [3]float32{-1e10, -1e10, -1e10},
	}

	vertices := make([]Vertex, 0, (size-1)*size*2)

	for z := 0; z < size-1; z++ {
		v1 := float32(z) / float32(size-1) * uvScale
		v2 := float32(z+1) / float32(size-1) * uvScale

		for x := 0; x < size; x++ {
			u := float32(x) / float32(size-1) * uvScale

			a := Vertex{
				Position: [3]float32{float32(x) - offset, field.At(z, x), -(float32(z) - offset)},
				TexCoord: [2]float32{u, v1},
			}
			b := Vertex{
				Position: [3]float32{float32(x) - offset, field.At(z+1, x), -(float32(z+1) - offset)},
				TexCoord: [2]float32{u, v2},
			}
			updateBounds(&bounds, a.Position)
			updateBounds(&bounds, b.Position)
			vertices = append(vertices, a, b)
		}
	}

	return &Mesh{
		Vertices:         vertices,
		StripCount:       size - 1,
		VerticesPerStrip: size * 2,
		Bounds:           bounds,
	}
}

func updateBounds(b *Bounds, p [3]float32) {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}
