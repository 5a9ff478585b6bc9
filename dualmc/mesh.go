package dualmc

import (
	"encoding/binary"
	"math"

	xxhash "github.com/cespare/xxhash/v2"
)

// Vertex is a dual point position in grid-index units: corner (0,0,0) of
// the volume is the origin and the sample spacing is 1 per axis.
type Vertex struct {
	X, Y, Z float32
}

// Quad references four vertices. The winding is counter-clockwise when
// viewed from outside the iso-surface, outside being the low-value side.
type Quad struct {
	I0, I1, I2, I3 int32
}

// Mesh couples the two output buffers of a Build call.
type Mesh struct {
	Vertices []Vertex
	Quads    []Quad
}

// Checksum returns an xxhash64 fingerprint of the mesh contents. Builds
// from identical inputs produce identical checksums.
func (m *Mesh) Checksum() uint64 {
	d := xxhash.New()
	var b [16]byte
	for _, v := range m.Vertices {
		binary.LittleEndian.PutUint32(b[0:], math.Float32bits(v.X))
		binary.LittleEndian.PutUint32(b[4:], math.Float32bits(v.Y))
		binary.LittleEndian.PutUint32(b[8:], math.Float32bits(v.Z))
		_, _ = d.Write(b[:12])
	}
	for _, q := range m.Quads {
		binary.LittleEndian.PutUint32(b[0:], uint32(q.I0))
		binary.LittleEndian.PutUint32(b[4:], uint32(q.I1))
		binary.LittleEndian.PutUint32(b[8:], uint32(q.I2))
		binary.LittleEndian.PutUint32(b[12:], uint32(q.I3))
		_, _ = d.Write(b[:16])
	}
	return d.Sum64()
}

// TriangleIndices expands the quad list into a triangle index list for
// exporters that cannot carry quads. Each quad splits along its first
// diagonal; winding is preserved.
func (m *Mesh) TriangleIndices() []uint32 {
	out := make([]uint32, 0, len(m.Quads)*6)
	for _, q := range m.Quads {
		out = append(out,
			uint32(q.I0), uint32(q.I1), uint32(q.I2),
			uint32(q.I0), uint32(q.I2), uint32(q.I3))
	}
	return out
}
