package gear

import "math"

// Preset tooth silhouettes. Each returns a ToothShapeFunc whose offset is
// scaled by depth, typically OuterRadius-InnerRadius so the tooth spans
// the whole radial band.

// SineTooth is a smooth sinusoidal tooth with its tip at u=0.
func SineTooth(depth float64) ToothShapeFunc {
	return func(u float64) float64 {
		return (math.Cos(u*2*math.Pi)/2 + 0.5) * depth
	}
}

// VShapeTooth is a sawtooth with a sharp trough at u=0.5.
func VShapeTooth(depth float64) ToothShapeFunc {
	return func(u float64) float64 {
		return math.Abs(0.5-u) * 2 * depth
	}
}

// AShapeTooth is the inverse of VShapeTooth: a sharp tip at u=0.5.
func AShapeTooth(depth float64) ToothShapeFunc {
	return func(u float64) float64 {
		return (1 - math.Abs(0.5-u)*2) * depth
	}
}

// HalfSineTooth is an undercut half-sinusoidal tooth: the trough half of
// the slice sits flat on the inner radius.
func HalfSineTooth(depth float64) ToothShapeFunc {
	return func(u float64) float64 {
		return math.Max(math.Cos(u*2*math.Pi), 0) * depth
	}
}

// ToothPresetNames lists the accepted ToothPreset names.
var ToothPresetNames = []string{"sine", "vshape", "ashape", "halfsine"}

// ToothPreset returns the named preset silhouette, or false for an
// unknown name.
func ToothPreset(name string, depth float64) (ToothShapeFunc, bool) {
	switch name {
	case "sine":
		return SineTooth(depth), true
	case "vshape", "v":
		return VShapeTooth(depth), true
	case "ashape", "a":
		return AShapeTooth(depth), true
	case "halfsine":
		return HalfSineTooth(depth), true
	}
	return nil, false
}

// Twist helpers producing AngleFunc values for the common gear families.

// StraightAngle is a zero twist: a plain spur gear.
func StraightAngle() AngleFunc {
	return func(int) float64 { return 0 }
}

// HelicalAngle twists linearly from 0 at the bottom layer to total at the
// top layer.
func HelicalAngle(total float64, layers int) AngleFunc {
	return func(layer int) float64 {
		return total * float64(layer) / float64(layers)
	}
}

// FishboneAngle rises linearly to total at mid-thickness and folds back to
// zero at the top, producing a chevron tooth profile.
func FishboneAngle(total float64, layers int) AngleFunc {
	return func(layer int) float64 {
		p := float64(layer) / float64(layers)
		return total * (1 - math.Abs(0.5-p)*2)
	}
}

// TwistPresetNames lists the accepted TwistPreset names.
var TwistPresetNames = []string{"straight", "helical", "fishbone"}

// TwistPreset returns the named twist pattern, or false for an unknown
// name. The total angle is ignored by "straight".
func TwistPreset(name string, total float64, layers int) (AngleFunc, bool) {
	switch name {
	case "straight":
		return StraightAngle(), true
	case "helical":
		return HelicalAngle(total, layers), true
	case "fishbone":
		return FishboneAngle(total, layers), true
	}
	return nil, false
}
