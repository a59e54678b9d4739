// Package scene provides the 3D scene rendering for the dune field.
package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/sandsea/internal/engine/shader"
	"github.com/Faultbox/sandsea/internal/engine/terrain"
	"github.com/Faultbox/sandsea/pkg/math"
)

// vertexStride is sizeof(terrain.Vertex): vec3 position + vec2 texcoord.
const vertexStride = 5 * 4

// TerrainRenderer draws a terrain mesh as textured triangle strips.
type TerrainRenderer struct {
	program *shader.Program

	// Uniform locations
	locWorld      int32
	locView       int32
	locProjection int32
	locSampler    int32

	// Terrain mesh
	vao              uint32
	vbo              uint32
	stripCount       int32
	verticesPerStrip int32

	texture uint32
}

// NewTerrainRenderer compiles the terrain shader program. Shader failure is
// fatal to the caller; a zero program would render garbage silently.
func NewTerrainRenderer(vertexSrc, fragmentSrc string) (*TerrainRenderer, error) {
	program, err := shader.Compile(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("terrain shader: %w", err)
	}

	tr := &TerrainRenderer{
		program:       program,
		locWorld:      program.Uniform("worldMatrix"),
		locView:       program.Uniform("viewMatrix"),
		locProjection: program.Uniform("projectionMatrix"),
		locSampler:    program.Uniform("textureSampler"),
	}
	return tr, nil
}

// Upload sends a terrain mesh to the GPU, replacing any previous one.
func (tr *TerrainRenderer) Upload(mesh *terrain.Mesh) {
	tr.deleteMesh()

	tr.stripCount = int32(mesh.StripCount)
	tr.verticesPerStrip = int32(mesh.VerticesPerStrip)

	gl.GenVertexArrays(1, &tr.vao)
	gl.BindVertexArray(tr.vao)

	gl.GenBuffers(1, &tr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, tr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER,
		len(mesh.Vertices)*vertexStride,
		unsafe.Pointer(&mesh.Vertices[0]),
		gl.STATIC_DRAW)

	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, vertexStride, 0)
	gl.EnableVertexAttribArray(0)

	// Texture coordinate
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, vertexStride, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
}

// SetTexture sets the terrain surface texture.
func (tr *TerrainRenderer) SetTexture(texture uint32) {
	tr.texture = texture
}

// SetMatrices updates the world, view and projection uniforms.
func (tr *TerrainRenderer) SetMatrices(world, view, projection *math.Mat4) {
	tr.program.Use()
	tr.program.SetMat4(tr.locWorld, world)
	tr.program.SetMat4(tr.locView, view)
	tr.program.SetMat4(tr.locProjection, projection)
}

// Draw renders the terrain, one draw call per triangle strip.
func (tr *TerrainRenderer) Draw() {
	if tr.vao == 0 {
		return
	}

	tr.program.Use()
	tr.program.SetInt(tr.locSampler, 0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tr.texture)

	gl.BindVertexArray(tr.vao)
	for s := int32(0); s < tr.stripCount; s++ {
		gl.DrawArrays(gl.TRIANGLE_STRIP, s*tr.verticesPerStrip, tr.verticesPerStrip)
	}
	gl.BindVertexArray(0)
}

// Close releases GPU resources.
func (tr *TerrainRenderer) Close() {
	tr.deleteMesh()
	if tr.program != nil {
		tr.program.Delete()
	}
}

func (tr *TerrainRenderer) deleteMesh() {
	if tr.vao != 0 {
		gl.DeleteVertexArrays(1, &tr.vao)
		tr.vao = 0
	}
	if tr.vbo != 0 {
		gl.DeleteBuffers(1, &tr.vbo)
		tr.vbo = 0
	}
}
