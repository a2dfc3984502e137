package ecolor

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/abworrall/camcolor/pkg/emath"
)

// We use go-colorful's CIE Lab transfer functions, against the D65
// reference white. Note that colorful scales Lab down by 100, so L lives
// in [0, 1] rather than [0, 100].

func XYZToLab(xyz emath.Vec3) emath.Vec3 {
	l, a, b := colorful.XyzToLabWhiteRef(xyz[0], xyz[1], xyz[2], colorful.D65)
	return emath.Vec3{l, a, b}
}

func LabToXYZ(lab emath.Vec3) emath.Vec3 {
	x, y, z := colorful.LabToXyzWhiteRef(lab[0], lab[1], lab[2], colorful.D65)
	return emath.Vec3{x, y, z}
}

// CameraToLab applies the per-channel white balance multipliers to a
// camera sample, maps it into XYZ(D65) with `cmatrix`, and then into Lab.
func CameraToLab(mul emath.Vec4, cmatrix emath.Mat3x4, pix emath.Vec4) emath.Vec3 {
	balanced := emath.Vec4{
		pix[0] * mul[0],
		pix[1] * mul[1],
		pix[2] * mul[2],
		pix[3] * mul[3],
	}
	return XYZToLab(cmatrix.Apply(balanced))
}

// LabToRGB takes a Lab color back to XYZ(D65), and then maps it into RGB
// with `xyzToRGB`. The result is linear (no gamma applied).
func LabToRGB(xyzToRGB emath.Mat3, lab emath.Vec3) emath.Vec3 {
	return xyzToRGB.Apply(LabToXYZ(lab))
}
