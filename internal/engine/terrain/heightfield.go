package terrain

// Heightfield is a dense square grid of interpolated dune heights, stored as
// a contiguous row-major buffer. It is derived once from a control grid and
// read-only afterwards, so it is safe to share between the mesh builder and
// the height sampler without synchronization.
type Heightfield struct {
	values []float32
	size   int
}

// Synthesize upsamples a control grid into a dense outSize x outSize
// heightfield using separable bicubic Catmull-Rom interpolation. Each output
// cell maps to continuous coarse coordinates, and the surrounding 4x4
// neighborhood of control points is interpolated column-first then row-wise.
//
// The coarse scale factor (grid.Size()-3) keeps the 4x4 neighborhood inside
// the control grid for every output cell; grid.Size() must be at least 4.
func Synthesize(grid *Grid, outSize int) *Heightfield {
	f := &Heightfield{
		values: make([]float32, outSize*outSize),
		size:   outSize,
	}

	scale := float32(grid.Size() - 3)

	// The final output cell lands exactly on the scale boundary; clamping the
	// base index there (t becomes 1.0) keeps the 4x4 window inside the grid.
	maxBase := grid.Size() - 4

	for z := 0; z < outSize; z++ {
		zRatio := float32(z) / float32(outSize-1) * scale
		zIndex := int(zRatio)
		if zIndex > maxBase {
			zIndex = maxBase
		}
		tz := zRatio - float32(zIndex)

		for x := 0; x < outSize; x++ {
			xRatio := float32(x) / float32(outSize-1) * scale
			xIndex := int(xRatio)
			if xIndex > maxBase {
				xIndex = maxBase
			}
			tx := xRatio - float32(xIndex)

			var col [4]float32
			for i := 0; i < 4; i++ {
				col[i] = CatmullRom(
					grid.At(zIndex+i, xIndex),
					grid.At(zIndex+i, xIndex+1),
					grid.At(zIndex+i, xIndex+2),
					grid.At(zIndex+i, xIndex+3),
					tx,
				)
			}

			f.values[z*outSize+x] = CatmullRom(col[0], col[1], col[2], col[3], tz)
		}
	}

	return f
}

// Size returns the heightfield side length.
func (f *Heightfield) Size() int {
	return f.size
}

// At returns the height at cell (z, x). Indices must be in bounds.
func (f *Heightfield) At(z, x int) float32 {
	return f.values[z*f.size+x]
}
