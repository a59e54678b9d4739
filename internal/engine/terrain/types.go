// Package terrain generates dune heightfields from coarse control grids and
// turns them into renderable meshes and continuous height lookups.
package terrain

// Vertex represents a terrain mesh vertex.
type Vertex struct {
	Position [3]float32
	TexCoord [2]float32
}

// Mesh holds the complete terrain mesh data ready for GPU upload.
// Vertices are laid out as StripCount consecutive triangle strips of
// VerticesPerStrip vertices each.
type Mesh struct {
	Vertices         []Vertex
	StripCount       int
	VerticesPerStrip int
	Bounds           Bounds
}

// Bounds holds the axis-aligned bounding box of the terrain.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}
