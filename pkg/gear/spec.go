// Package gear generates parametric 3-D gear meshes.
//
// A gear is described by a Spec: radii, tooth count, thickness, a vertical
// layer count, and two caller-supplied shaping functions. ToothShapeFunc
// maps the normalized position inside one tooth's angular slice to a radial
// offset above the inner radius, defining the tooth silhouette.
// AngleFunc maps a layer index to a twist in radians: a constant function
// yields a straight spur gear, a linear one a helical gear, and a function
// that reverses slope partway through a fishbone gear.
//
// Generation is a pure computation over the Spec. Rings and meshes are
// derived per call and never shared, so concurrent calls are safe as long
// as the supplied functions are themselves pure.
package gear

import (
	"errors"
	"fmt"
	"math"
)

// DefaultSamplesPerTooth is the angular resolution used when
// Spec.SamplesPerTooth is zero.
const DefaultSamplesPerTooth = 20

// ToothShapeFunc maps a normalized position u in [0,1) within one tooth's
// angular slice to a radial offset above the inner radius. The builder
// clamps the effective radius into [InnerRadius, OuterRadius].
type ToothShapeFunc func(u float64) float64

// AngleFunc maps a layer index in [0, Layers] to a twist angle in radians
// applied uniformly to that layer's ring.
type AngleFunc func(layer int) float64

// ErrInvalidParameter is wrapped by all Spec validation failures.
var ErrInvalidParameter = errors.New("gear: invalid parameter")

// Spec is the immutable description of one gear. The zero values of
// SamplesPerTooth, ToothShape and Angle select the defaults: 20 samples,
// a sinusoidal tooth spanning the full radial band, and zero twist.
type Spec struct {
	InnerRadius float64 // radius to the troughs between teeth
	OuterRadius float64 // radius to the tooth tips
	Teeth       int
	Thickness   float64
	Layers      int // vertical subdivisions of the thickness

	SamplesPerTooth int
	ToothShape      ToothShapeFunc
	Angle           AngleFunc
}

// Validate fails fast on a malformed Spec, before any sampling happens.
func (s *Spec) Validate() error {
	if !(s.InnerRadius > 0) {
		return fmt.Errorf("%w: inner radius must be > 0, got %g", ErrInvalidParameter, s.InnerRadius)
	}
	if !(s.OuterRadius > s.InnerRadius) {
		return fmt.Errorf("%w: outer radius %g must exceed inner radius %g", ErrInvalidParameter, s.OuterRadius, s.InnerRadius)
	}
	if s.Teeth < 2 {
		return fmt.Errorf("%w: tooth count must be >= 2, got %d", ErrInvalidParameter, s.Teeth)
	}
	if !(s.Thickness > 0) {
		return fmt.Errorf("%w: thickness must be > 0, got %g", ErrInvalidParameter, s.Thickness)
	}
	if s.Layers < 1 {
		return fmt.Errorf("%w: layer count must be >= 1, got %d", ErrInvalidParameter, s.Layers)
	}
	if s.SamplesPerTooth < 0 || s.SamplesPerTooth == 1 {
		return fmt.Errorf("%w: samples per tooth must be 0 (default) or >= 2, got %d", ErrInvalidParameter, s.SamplesPerTooth)
	}
	return nil
}

// PointsPerRing returns the number of samples in every ring of this gear.
func (s *Spec) PointsPerRing() int {
	return s.Teeth * s.samplesPerTooth()
}

// DefaultFileName derives an output name from the main parameters,
// e.g. "12t_24r_4y.obj".
func (s *Spec) DefaultFileName(ext string) string {
	return fmt.Sprintf("%dt_%gr_%gy%s", s.Teeth, s.OuterRadius, s.Thickness, ext)
}

func (s *Spec) samplesPerTooth() int {
	if s.SamplesPerTooth == 0 {
		return DefaultSamplesPerTooth
	}
	return s.SamplesPerTooth
}

func (s *Spec) toothShape() ToothShapeFunc {
	if s.ToothShape == nil {
		return SineTooth(s.OuterRadius - s.InnerRadius)
	}
	return s.ToothShape
}

func (s *Spec) angleFunc() AngleFunc {
	if s.Angle == nil {
		return StraightAngle()
	}
	return s.Angle
}

// ShapeFuncError reports a caller-supplied shaping function that panicked
// or returned a non-finite value at a sampled input. The sample is kept
// for diagnosability; the value is never approximated or suppressed.
type ShapeFuncError struct {
	Stage string  // "tooth shape" or "angle"
	Layer int     // layer index, meaningful for angle errors
	U     float64 // tooth position, meaningful for tooth shape errors
	Value float64 // offending return value when Panic is nil
	Panic any     // recovered panic value, nil otherwise
}

func (e *ShapeFuncError) Error() string {
	if e.Panic != nil {
		return fmt.Sprintf("gear: %s function panicked at layer %d, u=%g: %v", e.Stage, e.Layer, e.U, e.Panic)
	}
	return fmt.Sprintf("gear: %s function returned non-finite value %g at layer %d, u=%g", e.Stage, e.Value, e.Layer, e.U)
}

// DegenerateMeshError reports two consecutive ring points that coincide
// exactly after radius clamping, which collapses a side-wall edge. It
// signals a tooth shape or parameter mismatch, not a kernel bug.
type DegenerateMeshError struct {
	Layer int
	Point int
}

func (e *DegenerateMeshError) Error() string {
	return fmt.Sprintf("gear: ring points %d and %d coincide at layer %d", e.Point, e.Point+1, e.Layer)
}

func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
