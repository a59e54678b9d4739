package terrain

// Sampler answers continuous height queries against a heightfield in world
// space. It applies the inverse of the mesh builder's centering convention
// (terrain centered at the origin, world z flipped), so a sampler and a mesh
// built from the same heightfield always agree.
type Sampler struct {
	field *Heightfield
}

// NewSampler creates a sampler over the given heightfield.
func NewSampler(field *Heightfield) *Sampler {
	return &Sampler{field: field}
}

// HeightAt returns the bilinearly interpolated terrain height at a world
// position. Queries that fall outside the heightfield return 0; the camera
// routinely probes past the edges during movement, so this is not an error.
func (s *Sampler) HeightAt(worldX, worldZ float32) float32 {
	offset := float32(s.field.size) / 2.0

	// Invert the mesh centering and z-flip back into grid coordinates.
	x := worldX + offset
	z := -worldZ + offset

	if x < 0 || z < 0 {
		return 0
	}

	ix := int(x)
	iz := int(z)

	// Bilinear lookup needs one cell beyond the base index.
	if ix > s.field.size-2 || iz > s.field.size-2 {
		return 0
	}

	fx := x - float32(ix)
	fz := z - float32(iz)

	h00 := s.field.At(iz, ix)
	h10 := s.field.At(iz, ix+1)
	h01 := s.field.At(iz+1, ix)
	h11 := s.field.At(iz+1, ix+1)

	hx0 := h00 + fx*(h10-h00)
	hx1 := h01 + fx*(h11-h01)

	return hx0 + fz*(hx1-hx0)
}
