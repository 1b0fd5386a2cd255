// Package helpers provides clamped numeric conversions used where wire
// fields are narrower than the native int values that feed them.
package helpers

import "math"

// ClampIntToUint16 converts v to uint16, clamping to [0, math.MaxUint16].
func ClampIntToUint16(v int) uint16 {
	if v < 0 {
		return 0
	}
	if v > math.MaxUint16 {
		return math.MaxUint16
	}
	return uint16(v)
}

// ClampIntToUint32 converts v to uint32, clamping to [0, math.MaxUint32].
func ClampIntToUint32(v int) uint32 {
	if v < 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
