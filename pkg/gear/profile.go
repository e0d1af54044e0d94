package gear

import "math"

// Point is one polar profile sample: the final (post-twist) angle in
// [0, 2π) and the clamped radius.
type Point struct {
	Angle  float64
	Radius float64
}

// Ring is one layer's closed circumference profile. Points are ordered by
// pre-twist angle, covering [0, 2π) exactly once with no duplicate closing
// point, so index i refers to the same circumferential position in every
// ring of a gear.
type Ring []Point

// BuildRings converts a Spec into Layers+1 rings, one per horizontal slice
// of the thickness. Every ring holds Teeth*SamplesPerTooth points; the
// layer's twist from Spec.Angle is already folded into each point's angle.
func BuildRings(spec *Spec) ([]Ring, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	samples := spec.samplesPerTooth()
	shape := spec.toothShape()
	angle := spec.angleFunc()
	points := spec.Teeth * samples

	// All teeth are identical and the silhouette does not depend on the
	// layer, so the radial profile of a single tooth is sampled once and
	// reused across teeth and layers.
	profile := make([]float64, samples)
	for i := range profile {
		u := float64(i) / float64(samples)
		off, err := evalToothShape(shape, u)
		if err != nil {
			return nil, err
		}
		r := spec.InnerRadius + off
		if r < spec.InnerRadius {
			r = spec.InnerRadius
		} else if r > spec.OuterRadius {
			r = spec.OuterRadius
		}
		profile[i] = r
	}

	step := 2 * math.Pi / float64(points)
	rings := make([]Ring, spec.Layers+1)
	for layer := 0; layer <= spec.Layers; layer++ {
		twist, err := evalAngle(angle, layer)
		if err != nil {
			return nil, err
		}
		ring := make(Ring, points)
		for i := 0; i < points; i++ {
			ring[i] = Point{
				Angle:  normalizeAngle(step*float64(i) + twist),
				Radius: profile[i%samples],
			}
		}
		rings[layer] = ring
	}
	return rings, nil
}

func evalToothShape(fn ToothShapeFunc, u float64) (v float64, err error) {
	defer func() {
		if p := recover(); p != nil {
			v, err = 0, &ShapeFuncError{Stage: "tooth shape", U: u, Panic: p}
		}
	}()
	v = fn(u)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ShapeFuncError{Stage: "tooth shape", U: u, Value: v}
	}
	return v, nil
}

func evalAngle(fn AngleFunc, layer int) (v float64, err error) {
	defer func() {
		if p := recover(); p != nil {
			v, err = 0, &ShapeFuncError{Stage: "angle", Layer: layer, Panic: p}
		}
	}()
	v = fn(layer)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ShapeFuncError{Stage: "angle", Layer: layer, Value: v}
	}
	return v, nil
}
