package terrain

import (
	"math/rand/v2"
	"time"
)

// Dune heights are random integers in [HeightMin, HeightMin+HeightRange).
const (
	HeightMin   = 3
	HeightRange = 10
)

// Grid is a square control grid of coarse dune heights, stored as a
// contiguous row-major buffer. It is immutable after generation.
type Grid struct {
	values []float32
	size   int
}

// GenerateGrid fills a size x size control grid with random integer heights.
// A zero seed derives one from the wall clock so repeated runs differ; any
// other seed produces a deterministic grid.
func GenerateGrid(size int, seed uint64) *Grid {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed))

	g := &Grid{
		values: make([]float32, size*size),
		size:   size,
	}
	for z := 0; z < size; z++ {
		for x := 0; x < size; x++ {
			g.values[z*size+x] = float32(rng.IntN(HeightRange) + HeightMin)
		}
	}
	return g
}

// Size returns the grid side length.
func (g *Grid) Size() int {
	return g.size
}

// At returns the control height at (z, x). Indices must be in bounds.
func (g *Grid) At(z, x int) float32 {
	return g.values[z*g.size+x]
}
