package terrain

import (
	"math"
	"testing"
)

// testField builds a heightfield directly from row-major values.
func testField(size int, values []float32) *Heightfield {
	return &Heightfield{values: values, size: size}
}

func TestSamplerCornersExact(t *testing.T) {
	f := testField(3, []float32{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})
	s := NewSampler(f)

	// World coordinates of cell (iz,ix) under the centered, z-flipped
	// convention: x = ix - size/2, z = -(iz - size/2).
	offset := float32(3) / 2.0
	for iz := 0; iz <= 1; iz++ {
		for ix := 0; ix <= 1; ix++ {
			worldX := float32(ix) - offset
			worldZ := -(float32(iz) - offset)
			got := s.HeightAt(worldX, worldZ)
			want := f.At(iz, ix)
			if got != want {
				t.Errorf("HeightAt(%v,%v) = %v, want field[%d][%d] = %v", worldX, worldZ, got, iz, ix, want)
			}
		}
	}
}

func TestSamplerBilinear(t *testing.T) {
	f := testField(3, []float32{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})
	s := NewSampler(f)

	// Grid point (x=0.25, z=0.5):
	//   hx0 = 1 + 0.25*(2-1) = 1.25
	//   hx1 = 4 + 0.25*(5-4) = 4.25
	//   h   = 1.25 + 0.5*(4.25-1.25) = 2.75
	got := s.HeightAt(0.25-1.5, 1.5-0.5)
	if math.Abs(float64(got)-2.75) > 1e-5 {
		t.Errorf("HeightAt = %v, want 2.75", got)
	}
}

func TestSamplerOutOfBounds(t *testing.T) {
	f := testField(3, []float32{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})
	s := NewSampler(f)

	cases := []struct {
		name           string
		worldX, worldZ float32
	}{
		{"x negative", -2.0, 0},
		{"x past last cell", 0.5, 0},
		{"z negative", -1.0, 3.0},
		{"z past last cell", -1.0, -2.0},
		{"both out", 50, 50},
	}
	for _, c := range cases {
		if got := s.HeightAt(c.worldX, c.worldZ); got != 0 {
			t.Errorf("%s: HeightAt(%v,%v) = %v, want sentinel 0", c.name, c.worldX, c.worldZ, got)
		}
	}
}

func TestSamplerMatchesMeshVertices(t *testing.T) {
	// The sampler must invert the mesh builder's centering exactly: sampling
	// at a vertex's world x/z returns that vertex's height.
	f := Synthesize(GenerateGrid(8, 21), 40)
	s := NewSampler(f)
	m := BuildMesh(f, 10)

	for _, iz := range []int{0, 7, 19, 38} {
		for _, ix := range []int{0, 3, 20, 38} {
			v := m.Vertices[iz*m.VerticesPerStrip+ix*2]
			got := s.HeightAt(v.Position[0], v.Position[2])
			if math.Abs(float64(got-v.Position[1])) > 1e-5 {
				t.Errorf("vertex (%d,%d): HeightAt = %v, want %v", iz, ix, got, v.Position[1])
			}
		}
	}
}
