package terrain

import "testing"

func TestBuildMeshVertexCount(t *testing.T) {
	f := Synthesize(GenerateGrid(20, 3), 200)
	m := BuildMesh(f, 10)

	if got, want := len(m.Vertices), 199*200*2; got != want {
		t.Errorf("vertex count = %d, want %d", got, want)
	}
	if m.StripCount != 199 {
		t.Errorf("StripCount = %d, want 199", m.StripCount)
	}
	if m.VerticesPerStrip != 400 {
		t.Errorf("VerticesPerStrip = %d, want 400", m.VerticesPerStrip)
	}
}

func TestBuildMeshCentering(t *testing.T) {
	f := Synthesize(GenerateGrid(20, 3), 200)
	m := BuildMesh(f, 10)

	// First vertex: cell (0,0) centered and z-flipped.
	first := m.Vertices[0]
	if first.Position[0] != -100 || first.Position[2] != 100 {
		t.Errorf("first vertex at (%v,%v), want (-100,100)", first.Position[0], first.Position[2])
	}
	if first.Position[1] != f.At(0, 0) {
		t.Errorf("first vertex height = %v, want %v", first.Position[1], f.At(0, 0))
	}

	// Second vertex of the pair comes from row z+1.
	second := m.Vertices[1]
	if second.Position[2] != 99 {
		t.Errorf("second vertex z = %v, want 99", second.Position[2])
	}
	if second.Position[1] != f.At(1, 0) {
		t.Errorf("second vertex height = %v, want %v", second.Position[1], f.At(1, 0))
	}

	// X spans [-100, 99] across a 200-cell row.
	if m.Bounds.Min[0] != -100 || m.Bounds.Max[0] != 99 {
		t.Errorf("x bounds = [%v,%v], want [-100,99]", m.Bounds.Min[0], m.Bounds.Max[0])
	}
	if m.Bounds.Min[2] != -99 || m.Bounds.Max[2] != 100 {
		t.Errorf("z bounds = [%v,%v], want [-99,100]", m.Bounds.Min[2], m.Bounds.Max[2])
	}
}

func TestBuildMeshTexCoords(t *testing.T) {
	f := Synthesize(GenerateGrid(20, 3), 200)
	m := BuildMesh(f, 10)

	// UVs scale by uvScale/(size-1) per axis.
	last := m.Vertices[len(m.Vertices)-1]
	if last.TexCoord[0] != 10 || last.TexCoord[1] != 10 {
		t.Errorf("last vertex uv = %v, want (10,10)", last.TexCoord)
	}

	// Vertex pair at strip z=0, column x=20: u identical, v from rows 0 and 1.
	a := m.Vertices[40]
	b := m.Vertices[41]
	if a.TexCoord[0] != b.TexCoord[0] {
		t.Errorf("paired vertices disagree on u: %v vs %v", a.TexCoord[0], b.TexCoord[0])
	}
	if a.TexCoord[1] != 0 {
		t.Errorf("row-0 v = %v, want 0", a.TexCoord[1])
	}
	if want := float32(1) / float32(199) * 10; b.TexCoord[1] != want {
		t.Errorf("row-1 v = %v, want %v", b.TexCoord[1], want)
	}
}
