// Package formats reads and writes polygon mesh interchange formats.
// Wavefront OBJ encoder and a minimal parser for inspection tooling.
package formats

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Faultbox/gearforge/pkg/geom"
	"github.com/Faultbox/gearforge/pkg/mesh"
)

// OBJ format errors.
var (
	ErrOBJVertexFormat = errors.New("invalid OBJ vertex line")
	ErrOBJFaceFormat   = errors.New("invalid OBJ face line")
	ErrOBJFaceIndex    = errors.New("OBJ face index out of range")
)

// EncodeOBJ writes m as a Wavefront OBJ object named name.
//
// The emission order is deterministic: the whole vertex block first, in
// vertex index order (so a vertex's 1-based line position equals its mesh
// index plus one), then every face in mesh order. Coordinates are written
// in plain decimal, never scientific notation.
func EncodeOBJ(w io.Writer, m *mesh.Mesh, name string) error {
	if err := m.Validate(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "o %s\n", name)
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "v %s %s %s\n", formatCoord(v.X), formatCoord(v.Y), formatCoord(v.Z))
	}
	fmt.Fprintln(bw, "s off")
	for _, f := range m.Faces {
		bw.WriteByte('f')
		for _, idx := range f {
			bw.WriteByte(' ')
			bw.WriteString(strconv.Itoa(idx + 1))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// ParseOBJ reads the vertex and face directives of a Wavefront OBJ file.
// Normals, texture coordinates, groups and materials are skipped; face
// index triplets like "1/2/3" keep only the vertex index. Negative
// (relative) indices are resolved against the vertices seen so far.
func ParseOBJ(data []byte) (*mesh.Mesh, error) {
	m := &mesh.Mesh{}

	sc := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("%w: line %d: %q", ErrOBJVertexFormat, lineNo, line)
			}
			var v geom.Vec3
			var err error
			if v.X, err = strconv.ParseFloat(fields[1], 64); err == nil {
				if v.Y, err = strconv.ParseFloat(fields[2], 64); err == nil {
					v.Z, err = strconv.ParseFloat(fields[3], 64)
				}
			}
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrOBJVertexFormat, lineNo, err)
			}
			m.AddVertex(v)
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("%w: line %d: %q", ErrOBJFaceFormat, lineNo, line)
			}
			face := make([]int, 0, len(fields)-1)
			for _, ref := range fields[1:] {
				// "i", "i/t", "i/t/n" and "i//n" all start with the
				// vertex index.
				if slash := strings.IndexByte(ref, '/'); slash >= 0 {
					ref = ref[:slash]
				}
				idx, err := strconv.Atoi(ref)
				if err != nil {
					return nil, fmt.Errorf("%w: line %d: %v", ErrOBJFaceFormat, lineNo, err)
				}
				if idx < 0 {
					idx = len(m.Vertices) + idx + 1
				}
				if idx < 1 || idx > len(m.Vertices) {
					return nil, fmt.Errorf("%w: line %d: index %s of %d vertices", ErrOBJFaceIndex, lineNo, ref, len(m.Vertices))
				}
				face = append(face, idx-1)
			}
			m.Faces = append(m.Faces, face)
		default:
			// o, s, g, vn, vt, usemtl, mtllib: not needed for geometry.
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return m, nil
}
