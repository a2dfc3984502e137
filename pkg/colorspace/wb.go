package colorspace

import "github.com/abworrall/camcolor/pkg/emath"

// NormalizeWB scales white balance multipliers so the reference (green)
// channel, index 1, is exactly 1.0. Any multiplier that isn't a normal
// number (NaN, Inf, zero, subnormal) becomes 1.0.
//
// The divisor is always the raw vals[1]. If vals[1] is itself not normal,
// it comes back as 1.0 but the other channels are still divided by it, so
// they can come back as ±Inf or NaN. A second pass turns those into 1.0,
// which is what ToLab does when it re-normalizes.
func NormalizeWB(vals emath.Vec4) emath.Vec4 {
	unity := vals[1]

	var out emath.Vec4
	for i, v := range vals {
		if !emath.IsNormal(v) {
			out[i] = 1.0
		} else {
			out[i] = v / unity
		}
	}
	return out
}
