package emath

import "math"

// Some functions that only operate on basic types, that are useful

// smallestNormal is the smallest positive normal float64 (2^-1022)
const smallestNormal = 0x1p-1022

// IsNormal reports whether f is an IEEE-754 normal number: not NaN, not
// infinite, not zero and not subnormal.
func IsNormal(f float64) bool {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	return math.Abs(f) >= smallestNormal
}
