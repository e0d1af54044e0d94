package gear

import (
	"errors"
	"math"
	"testing"
)

func TestBuildRingsCounts(t *testing.T) {
	s := validSpec()
	s.Layers = 4
	rings, err := BuildRings(s)
	if err != nil {
		t.Fatalf("BuildRings() error: %v", err)
	}
	if len(rings) != 5 {
		t.Fatalf("expected Layers+1 = 5 rings, got %d", len(rings))
	}
	for i, ring := range rings {
		if len(ring) != s.PointsPerRing() {
			t.Errorf("ring %d has %d points, want %d", i, len(ring), s.PointsPerRing())
		}
	}
}

func TestBuildRingsSingleLayer(t *testing.T) {
	rings, err := BuildRings(validSpec())
	if err != nil {
		t.Fatalf("BuildRings() error: %v", err)
	}
	if len(rings) != 2 {
		t.Errorf("v_layers=1 must yield exactly 2 rings, got %d", len(rings))
	}
}

func TestBuildRingsAngleOrder(t *testing.T) {
	s := validSpec()
	rings, err := BuildRings(s)
	if err != nil {
		t.Fatalf("BuildRings() error: %v", err)
	}
	ring := rings[0]
	if ring[0].Angle != 0 {
		t.Errorf("first point angle = %v, want 0", ring[0].Angle)
	}
	for i := 1; i < len(ring); i++ {
		if ring[i].Angle <= ring[i-1].Angle {
			t.Fatalf("angles not strictly increasing at %d: %v <= %v", i, ring[i].Angle, ring[i-1].Angle)
		}
	}
	if last := ring[len(ring)-1].Angle; last >= 2*math.Pi {
		t.Errorf("last angle %v outside [0, 2π)", last)
	}
}

func TestBuildRingsRadiusClamp(t *testing.T) {
	s := validSpec()
	s.ToothShape = func(u float64) float64 { return 1000 } // way past the outer radius
	rings, err := BuildRings(s)
	if err != nil {
		t.Fatalf("BuildRings() error: %v", err)
	}
	for _, p := range rings[0] {
		if p.Radius != s.OuterRadius {
			t.Fatalf("radius %v not clamped to outer radius %v", p.Radius, s.OuterRadius)
		}
	}

	s.ToothShape = func(u float64) float64 { return -1000 }
	rings, err = BuildRings(s)
	if err != nil {
		t.Fatalf("BuildRings() error: %v", err)
	}
	for _, p := range rings[0] {
		if p.Radius != s.InnerRadius {
			t.Fatalf("radius %v not clamped to inner radius %v", p.Radius, s.InnerRadius)
		}
	}
}

func TestBuildRingsRadiusBand(t *testing.T) {
	s := validSpec()
	rings, err := BuildRings(s) // default sinusoidal tooth
	if err != nil {
		t.Fatalf("BuildRings() error: %v", err)
	}
	for _, p := range rings[0] {
		if p.Radius < s.InnerRadius || p.Radius > s.OuterRadius {
			t.Fatalf("radius %v outside [%v, %v]", p.Radius, s.InnerRadius, s.OuterRadius)
		}
	}
	// The default tooth tip at u=0 must reach the outer radius.
	if rings[0][0].Radius != s.OuterRadius {
		t.Errorf("tooth tip radius = %v, want %v", rings[0][0].Radius, s.OuterRadius)
	}
}

func TestBuildRingsShapeFuncNaN(t *testing.T) {
	s := validSpec()
	s.ToothShape = func(u float64) float64 {
		if u > 0.4 {
			return math.NaN()
		}
		return 1
	}
	_, err := BuildRings(s)
	var sfe *ShapeFuncError
	if !errors.As(err, &sfe) {
		t.Fatalf("BuildRings() = %v, want *ShapeFuncError", err)
	}
	if sfe.Stage != "tooth shape" {
		t.Errorf("Stage = %q, want \"tooth shape\"", sfe.Stage)
	}
	if sfe.U <= 0.4 {
		t.Errorf("offending u = %v, want > 0.4", sfe.U)
	}
}

func TestBuildRingsShapeFuncPanic(t *testing.T) {
	s := validSpec()
	s.ToothShape = func(u float64) float64 { panic("bad shape") }
	_, err := BuildRings(s)
	var sfe *ShapeFuncError
	if !errors.As(err, &sfe) {
		t.Fatalf("BuildRings() = %v, want *ShapeFuncError", err)
	}
	if sfe.Panic == nil {
		t.Error("expected recovered panic value in error")
	}
}

func TestBuildRingsAngleFuncError(t *testing.T) {
	s := validSpec()
	s.Layers = 3
	s.Angle = func(layer int) float64 {
		if layer == 2 {
			return math.Inf(1)
		}
		return 0
	}
	_, err := BuildRings(s)
	var sfe *ShapeFuncError
	if !errors.As(err, &sfe) {
		t.Fatalf("BuildRings() = %v, want *ShapeFuncError", err)
	}
	if sfe.Stage != "angle" || sfe.Layer != 2 {
		t.Errorf("got stage %q layer %d, want angle layer 2", sfe.Stage, sfe.Layer)
	}
}

func TestBuildRingsInvalidSpec(t *testing.T) {
	s := validSpec()
	s.Teeth = 0
	if _, err := BuildRings(s); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("BuildRings() = %v, want ErrInvalidParameter", err)
	}
}

// angularOffset returns the difference b-a folded into [0, 2π).
func angularOffset(a, b float64) float64 {
	d := math.Mod(b-a, 2*math.Pi)
	if d < 0 {
		d += 2 * math.Pi
	}
	return d
}

func TestBuildRingsHelicalTwist(t *testing.T) {
	s := validSpec()
	s.Layers = 8
	s.Angle = func(layer int) float64 { return float64(layer) / 8 }
	rings, err := BuildRings(s)
	if err != nil {
		t.Fatalf("BuildRings() error: %v", err)
	}

	prev := 0.0
	for layer := 1; layer <= 8; layer++ {
		off := angularOffset(rings[0][0].Angle, rings[layer][0].Angle)
		want := float64(layer) / 8
		if math.Abs(off-want) > 1e-9 {
			t.Errorf("layer %d twist offset = %v, want %v", layer, off, want)
		}
		if off <= prev {
			t.Errorf("twist not monotonically increasing at layer %d", layer)
		}
		prev = off
	}
}
