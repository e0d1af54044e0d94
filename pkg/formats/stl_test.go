package formats

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/Faultbox/gearforge/pkg/geom"
	"github.com/Faultbox/gearforge/pkg/mesh"
)

func TestEncodeSTL(t *testing.T) {
	m := wedgeMesh()
	m.AddQuad(0, 1, 2, 3) // splits into two triangles

	var buf bytes.Buffer
	if err := EncodeSTL(&buf, m, "wedge"); err != nil {
		t.Fatalf("EncodeSTL() error: %v", err)
	}

	wantTris := 4
	if got := buf.Len(); got != 84+50*wantTris {
		t.Fatalf("STL size = %d, want %d", got, 84+50*wantTris)
	}
	if string(buf.Bytes()[:5]) != "wedge" {
		t.Errorf("header does not carry the model name")
	}
	if count := binary.LittleEndian.Uint32(buf.Bytes()[80:84]); count != uint32(wantTris) {
		t.Errorf("triangle count = %d, want %d", count, wantTris)
	}
}

func TestEncodeSTLNormal(t *testing.T) {
	m := &mesh.Mesh{}
	m.AddVertex(geom.Vec3{X: 0, Y: 0, Z: 0})
	m.AddVertex(geom.Vec3{X: 1, Y: 0, Z: 0})
	m.AddVertex(geom.Vec3{X: 0, Y: 1, Z: 0})
	m.AddTriangle(0, 1, 2)

	var buf bytes.Buffer
	if err := EncodeSTL(&buf, m, "tri"); err != nil {
		t.Fatalf("EncodeSTL() error: %v", err)
	}

	rec := buf.Bytes()[84:]
	nx := math.Float32frombits(binary.LittleEndian.Uint32(rec[0:]))
	ny := math.Float32frombits(binary.LittleEndian.Uint32(rec[4:]))
	nz := math.Float32frombits(binary.LittleEndian.Uint32(rec[8:]))
	if nx != 0 || ny != 0 || nz != 1 {
		t.Errorf("facet normal = (%v, %v, %v), want (0, 0, 1)", nx, ny, nz)
	}
}

func TestEncodeSTLInvalidMesh(t *testing.T) {
	m := &mesh.Mesh{}
	if err := EncodeSTL(&bytes.Buffer{}, m, "x"); err == nil {
		t.Error("expected error for empty mesh")
	}
}
