package terrain

import "testing"

func TestGenerateGridRange(t *testing.T) {
	g := GenerateGrid(20, 42)

	if g.Size() != 20 {
		t.Fatalf("Size() = %d, want 20", g.Size())
	}
	for z := 0; z < g.Size(); z++ {
		for x := 0; x < g.Size(); x++ {
			v := g.At(z, x)
			if v < HeightMin || v >= HeightMin+HeightRange {
				t.Errorf("At(%d,%d) = %v, want in [%d,%d)", z, x, v, HeightMin, HeightMin+HeightRange)
			}
			if v != float32(int(v)) {
				t.Errorf("At(%d,%d) = %v, want an integer value", z, x, v)
			}
		}
	}
}

func TestGenerateGridDeterministic(t *testing.T) {
	a := GenerateGrid(20, 1234)
	b := GenerateGrid(20, 1234)

	for z := 0; z < 20; z++ {
		for x := 0; x < 20; x++ {
			if a.At(z, x) != b.At(z, x) {
				t.Fatalf("same seed diverged at (%d,%d): %v != %v", z, x, a.At(z, x), b.At(z, x))
			}
		}
	}
}

func TestGenerateGridSeedsDiffer(t *testing.T) {
	a := GenerateGrid(20, 1)
	b := GenerateGrid(20, 2)

	same := true
	for z := 0; z < 20 && same; z++ {
		for x := 0; x < 20; x++ {
			if a.At(z, x) != b.At(z, x) {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("different seeds produced identical grids")
	}
}
