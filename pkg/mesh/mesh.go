// Package mesh provides an indexed polygon mesh container.
package mesh

import (
	"errors"
	"fmt"

	"github.com/Faultbox/gearforge/pkg/geom"
)

// Mesh errors.
var (
	ErrFaceTooSmall = errors.New("mesh: face has fewer than 3 vertices")
	ErrFaceIndex    = errors.New("mesh: face index out of range")
	ErrEmptyMesh    = errors.New("mesh: no vertices")
)

// Mesh is an indexed polygon mesh. Faces reference the vertex slice by
// 0-based index and may mix triangles and quads.
type Mesh struct {
	Vertices []geom.Vec3
	Faces    [][]int
}

// New returns an empty mesh with capacity hints applied.
func New(vertexHint, faceHint int) *Mesh {
	return &Mesh{
		Vertices: make([]geom.Vec3, 0, vertexHint),
		Faces:    make([][]int, 0, faceHint),
	}
}

// AddVertex appends a vertex and returns its index.
func (m *Mesh) AddVertex(v geom.Vec3) int {
	m.Vertices = append(m.Vertices, v)
	return len(m.Vertices) - 1
}

// AddTriangle appends a triangular face.
func (m *Mesh) AddTriangle(a, b, c int) {
	m.Faces = append(m.Faces, []int{a, b, c})
}

// AddQuad appends a quadrilateral face.
func (m *Mesh) AddQuad(a, b, c, d int) {
	m.Faces = append(m.Faces, []int{a, b, c, d})
}

// TriangleCount returns the number of triangles after fan-splitting
// every face (a quad counts as two).
func (m *Mesh) TriangleCount() int {
	n := 0
	for _, f := range m.Faces {
		if len(f) >= 3 {
			n += len(f) - 2
		}
	}
	return n
}

// Triangles returns the mesh faces fan-split into triangle index triplets.
func (m *Mesh) Triangles() [][3]int {
	tris := make([][3]int, 0, m.TriangleCount())
	for _, f := range m.Faces {
		for i := 1; i+1 < len(f); i++ {
			tris = append(tris, [3]int{f[0], f[i], f[i+1]})
		}
	}
	return tris
}

// FaceNormal returns the unit normal of a face, computed from its first
// three vertices with counterclockwise winding.
func (m *Mesh) FaceNormal(face []int) geom.Vec3 {
	a := m.Vertices[face[0]]
	b := m.Vertices[face[1]]
	c := m.Vertices[face[2]]
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}

// Bounds returns the axis-aligned bounding box of the mesh.
func (m *Mesh) Bounds() (min, max geom.Vec3) {
	if len(m.Vertices) == 0 {
		return geom.Vec3{}, geom.Vec3{}
	}
	min = m.Vertices[0]
	max = m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		min = min.Min(v)
		max = max.Max(v)
	}
	return min, max
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() geom.Vec3 {
	min, max := m.Bounds()
	return min.Add(max).Scale(0.5)
}

// Validate checks structural integrity: at least one vertex, every face
// with 3 or more indices, and every index inside the vertex slice.
func (m *Mesh) Validate() error {
	if len(m.Vertices) == 0 {
		return ErrEmptyMesh
	}
	for fi, f := range m.Faces {
		if len(f) < 3 {
			return fmt.Errorf("%w: face %d has %d", ErrFaceTooSmall, fi, len(f))
		}
		for _, idx := range f {
			if idx < 0 || idx >= len(m.Vertices) {
				return fmt.Errorf("%w: face %d references vertex %d of %d", ErrFaceIndex, fi, idx, len(m.Vertices))
			}
		}
	}
	return nil
}
