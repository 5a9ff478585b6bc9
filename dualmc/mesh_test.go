package dualmc

import "testing"

func TestChecksumSensitivity(t *testing.T) {
	m := &Mesh{
		Vertices: []Vertex{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
		Quads:    []Quad{{0, 1, 2, 3}},
	}
	base := m.Checksum()
	if base != m.Checksum() {
		t.Fatal("checksum not stable")
	}

	m.Vertices[2].Z = 0.25
	moved := m.Checksum()
	if moved == base {
		t.Fatal("vertex change not reflected in checksum")
	}
	m.Vertices[2].Z = 0

	m.Quads[0] = Quad{0, 3, 2, 1}
	if m.Checksum() == base {
		t.Fatal("winding change not reflected in checksum")
	}
}

func TestTriangleIndices(t *testing.T) {
	m := &Mesh{
		Vertices: make([]Vertex, 8),
		Quads:    []Quad{{0, 1, 2, 3}, {4, 5, 6, 7}},
	}
	got := m.TriangleIndices()
	want := []uint32{0, 1, 2, 0, 2, 3, 4, 5, 6, 4, 6, 7}
	if len(got) != len(want) {
		t.Fatalf("got %d indices, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %d, want %d", i, got[i], want[i])
		}
	}
}
