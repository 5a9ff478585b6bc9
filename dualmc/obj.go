package dualmc

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// WriteOBJ writes the mesh as Wavefront OBJ with quad faces, using
// 1-based vertex indices.
func (m *Mesh) WriteOBJ(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, v := range m.Vertices {
		if _, err := fmt.Fprintf(bw, "v %g %g %g\n", v.X, v.Y, v.Z); err != nil {
			return err
		}
	}
	for _, q := range m.Quads {
		if _, err := fmt.Fprintf(bw, "f %d %d %d %d\n", q.I0+1, q.I1+1, q.I2+1, q.I3+1); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SaveOBJ writes the mesh to an .obj file.
func (m *Mesh) SaveOBJ(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := m.WriteOBJ(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
