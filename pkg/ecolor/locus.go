package ecolor

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/abworrall/camcolor/pkg/emath"
)

// The range of color temperatures we map onto the CIE daylight locus.
// The locus polynomial is only defined from 4000K, but stays monotonic
// well below that, so we extend it down to cover tungsten light.
const (
	MinTemp = 2500.0
	MaxTemp = 25000.0
)

// daylightX is the CIE daylight locus chromaticity x coordinate, for a
// correlated color temperature in Kelvin.
// https://en.wikipedia.org/wiki/Standard_illuminant#Illuminant_series_D
func daylightX(t float64) float64 {
	t2 := t * t
	t3 := t2 * t
	if t <= 7000.0 {
		return -4.6070*(1e9/t3) + 2.9678*(1e6/t2) + 0.09911*(1e3/t) + 0.244063
	}
	return -2.0064*(1e9/t3) + 1.9018*(1e6/t2) + 0.24748*(1e3/t) + 0.237040
}

func clampTemp(t float64) float64 {
	if !(t >= MinTemp) {
		return MinTemp
	}
	if t > MaxTemp {
		return MaxTemp
	}
	return t
}

// TempToXYZ returns the XYZ of the daylight illuminant at `temp` Kelvin,
// scaled so that Y = 1.0. Temperatures outside [MinTemp, MaxTemp] are clamped.
func TempToXYZ(temp float64) emath.Vec3 {
	x := daylightX(clampTemp(temp))
	y := -3.000*x*x + 2.870*x - 0.275

	X, Y, Z := colorful.XyyToXyz(x, y, 1.0)
	return emath.Vec3{X, Y, Z}
}

// XYZToTemp finds the point on the daylight locus with the same Z/X ratio
// as `xyz`, by binary search. The tint is how far `xyz` sits off the
// locus, as the ratio of Y/X on the locus to Y/X in `xyz`; so
// TempToXYZ(t) with Y divided by `tint` maps back to (t, tint).
//
// Degenerate inputs still produce a value. If any component of `xyz` is
// negative, or the tint is not a normal number, the tint comes back as 1.0.
func XYZToTemp(xyz emath.Vec3) (float64, float64) {
	target := xyz[2] / xyz[0]

	lo, hi := MinTemp, MaxTemp
	for hi-lo > 0.01 {
		mid := (lo + hi) / 2
		test := TempToXYZ(mid)
		if test[2]/test[0] >= target {
			hi = mid
		} else {
			lo = mid
		}
	}

	temp := (lo + hi) / 2
	test := TempToXYZ(temp)
	tint := (test[1] / test[0]) / (xyz[1] / xyz[0])
	if !emath.IsNormal(tint) || xyz[0] < 0 || xyz[1] < 0 || xyz[2] < 0 {
		tint = 1.0
	}

	return temp, tint
}
