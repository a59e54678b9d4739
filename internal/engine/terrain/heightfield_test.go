package terrain

import (
	"math"
	"testing"
)

func TestSynthesizeSize(t *testing.T) {
	g := GenerateGrid(20, 7)
	f := Synthesize(g, 200)
	if f.Size() != 200 {
		t.Fatalf("Size() = %d, want 200", f.Size())
	}
}

func TestSynthesizePassThrough(t *testing.T) {
	// With controlSize=7 and outSize=9 every second output cell lands on an
	// integer coarse coordinate, where the spline must reproduce the source
	// control value (offset by one: the curve passes through p1 at t=0).
	g := GenerateGrid(7, 99)
	f := Synthesize(g, 9)

	for z := 0; z <= 8; z += 2 {
		for x := 0; x <= 8; x += 2 {
			want := g.At(z/2+1, x/2+1)
			got := f.At(z, x)
			if math.Abs(float64(got-want)) > 1e-4 {
				t.Errorf("field[%d][%d] = %v, want control value %v", z, x, got, want)
			}
		}
	}
}

func TestSynthesizeDeterministic(t *testing.T) {
	const seed = 31337
	a := Synthesize(GenerateGrid(20, seed), 200)
	b := Synthesize(GenerateGrid(20, seed), 200)

	for z := 0; z < 200; z++ {
		for x := 0; x < 200; x++ {
			if a.At(z, x) != b.At(z, x) {
				t.Fatalf("fixed seed diverged at (%d,%d): %v != %v", z, x, a.At(z, x), b.At(z, x))
			}
		}
	}
}

func TestSynthesizeBoundedByControlRange(t *testing.T) {
	// Catmull-Rom can overshoot its controls, but only mildly; a field far
	// outside the control range would mean broken neighborhood indexing.
	g := GenerateGrid(20, 5)
	f := Synthesize(g, 200)

	lo := float32(HeightMin - HeightRange)
	hi := float32(HeightMin + 2*HeightRange)
	for z := 0; z < f.Size(); z++ {
		for x := 0; x < f.Size(); x++ {
			v := f.At(z, x)
			if v < lo || v > hi {
				t.Fatalf("field[%d][%d] = %v, outside plausible range [%v,%v]", z, x, v, lo, hi)
			}
		}
	}
}
