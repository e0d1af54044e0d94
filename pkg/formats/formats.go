// Package formats reads and writes polygon mesh interchange formats.
//
// Supported formats:
//   - Wavefront OBJ (encode and parse)
//   - binary STL (encode)
package formats

import "strconv"

// formatCoord renders a coordinate in plain decimal notation with enough
// digits to round-trip the float64 exactly. OBJ readers in the wild choke
// on scientific notation, so the 'f' format is mandatory here.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
