package gear

import (
	"io"

	"github.com/Faultbox/gearforge/pkg/formats"
	"github.com/Faultbox/gearforge/pkg/mesh"
)

// Generate runs the full pipeline: validate the spec, build the layer
// rings, and assemble them into a closed mesh. The result is derived
// state owned by the caller; no state is shared between calls.
func Generate(spec *Spec) (*mesh.Mesh, error) {
	rings, err := BuildRings(spec)
	if err != nil {
		return nil, err
	}
	return Assemble(rings, spec)
}

// WriteOBJ generates the gear and streams it as Wavefront OBJ. Nothing is
// written unless generation succeeds, so a failed run never leaves a
// truncated file behind.
func WriteOBJ(w io.Writer, spec *Spec) error {
	m, err := Generate(spec)
	if err != nil {
		return err
	}
	return formats.EncodeOBJ(w, m, "gear")
}

// WriteSTL generates the gear and streams it as binary STL.
func WriteSTL(w io.Writer, spec *Spec) error {
	m, err := Generate(spec)
	if err != nil {
		return err
	}
	return formats.EncodeSTL(w, m, "gear")
}
