package gear

import (
	"fmt"

	"github.com/Faultbox/gearforge/pkg/geom"
	"github.com/Faultbox/gearforge/pkg/mesh"
)

// Assemble lifts the rings into 3-D and stitches them into a closed mesh.
//
// Ring L sits at z = L * Thickness/Layers, so rings span z=0 to
// z=Thickness. Vertices are appended in (layer, point) order, giving the
// index contract global = layer*pointsPerRing + i; the two synthesized cap
// centers follow at the very end. Faces are emitted side walls first, ring
// pair by ring pair, then the bottom fan cap, then the top fan cap, all
// wound with outward-facing normals.
func Assemble(rings []Ring, spec *Spec) (*mesh.Mesh, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if len(rings) != spec.Layers+1 {
		return nil, fmt.Errorf("%w: ring count %d does not match layer count %d", ErrInvalidParameter, len(rings), spec.Layers)
	}
	points := len(rings[0])
	for layer, ring := range rings {
		if len(ring) != points {
			return nil, fmt.Errorf("%w: ring %d has %d points, ring 0 has %d", ErrInvalidParameter, layer, len(ring), points)
		}
	}
	if points < 3 {
		return nil, fmt.Errorf("%w: rings need at least 3 points, got %d", ErrInvalidParameter, points)
	}

	// A collapsed tooth shape can clamp two neighbouring samples onto the
	// same polar coordinates; that zero-length edge is reported, never
	// silently skipped.
	for layer, ring := range rings {
		for i := range ring {
			next := ring[(i+1)%points]
			if ring[i] == next {
				return nil, &DegenerateMeshError{Layer: layer, Point: i}
			}
		}
	}

	m := mesh.New(len(rings)*points+2, spec.Layers*points+2*points)

	layerStep := spec.Thickness / float64(spec.Layers)
	for layer, ring := range rings {
		z := float64(layer) * layerStep
		for _, p := range ring {
			xy := geom.FromPolar(p.Angle, p.Radius)
			m.AddVertex(geom.Vec3{X: xy.X, Y: xy.Y, Z: z})
		}
	}

	// Side walls: one quad per point per adjacent ring pair. Traversal
	// direction is the same on both rings, which keeps normals outward.
	for layer := 0; layer < spec.Layers; layer++ {
		base := layer * points
		above := base + points
		for i := 0; i < points; i++ {
			j := (i + 1) % points
			m.AddQuad(base+i, base+j, above+j, above+i)
		}
	}

	bottom := m.AddVertex(geom.Vec3{})
	top := m.AddVertex(geom.Vec3{Z: spec.Thickness})
	for i := 0; i < points; i++ {
		j := (i + 1) % points
		m.AddTriangle(j, i, bottom) // normal faces -z
	}
	topBase := spec.Layers * points
	for i := 0; i < points; i++ {
		j := (i + 1) % points
		m.AddTriangle(topBase+i, topBase+j, top) // normal faces +z
	}

	return m, nil
}
