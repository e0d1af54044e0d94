// Package formats reads and writes polygon mesh interchange formats.
// Binary STL encoder.
package formats

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/Faultbox/gearforge/pkg/mesh"
)

const stlHeaderSize = 80

// stlTri is the 50-byte on-disk triangle record.
type stlTri struct {
	N, V1, V2, V3 [3]float32
	_             uint16 // attribute byte count, always zero
}

// EncodeSTL writes m as little-endian binary STL. Faces with more than
// three vertices are fan-split; facet normals are computed from the
// triangle winding.
func EncodeSTL(w io.Writer, m *mesh.Mesh, name string) error {
	if err := m.Validate(); err != nil {
		return err
	}

	var header [stlHeaderSize]byte
	copy(header[:], name)
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("writing STL header: %w", err)
	}

	tris := m.Triangles()
	if err := binary.Write(w, binary.LittleEndian, uint32(len(tris))); err != nil {
		return fmt.Errorf("writing STL triangle count: %w", err)
	}

	for _, t := range tris {
		a := m.Vertices[t[0]]
		b := m.Vertices[t[1]]
		c := m.Vertices[t[2]]
		n := b.Sub(a).Cross(c.Sub(a)).Normalize()
		rec := stlTri{
			N:  [3]float32{float32(n.X), float32(n.Y), float32(n.Z)},
			V1: [3]float32{float32(a.X), float32(a.Y), float32(a.Z)},
			V2: [3]float32{float32(b.X), float32(b.Y), float32(b.Z)},
			V3: [3]float32{float32(c.X), float32(c.Y), float32(c.Z)},
		}
		if err := binary.Write(w, binary.LittleEndian, &rec); err != nil {
			return fmt.Errorf("writing STL triangle: %w", err)
		}
	}
	return nil
}
