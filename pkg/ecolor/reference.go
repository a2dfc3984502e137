package ecolor

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/abworrall/camcolor/pkg/emath"
)

var (
	// Linear sRGB(D65) to XYZ(D65), and back again.
	// http://www.brucelindbloom.com/index.html?Eqn_RGB_XYZ_Matrix.html
	//
	// Both are D65 on both sides, so no chromatic adaptation is bundled in.
	SRGBToXYZ = emath.Mat3{
		0.4124564, 0.3575761, 0.1804375,
		0.2126729, 0.7151522, 0.0721750,
		0.0193339, 0.1191920, 0.9503041,
	}
	XYZToSRGB = emath.Mat3{
		3.2404542, -1.5371385, -0.4985314,
		-0.9692660, 1.8760108, 0.0415560,
		0.0556434, -0.2040259, 1.0572252,
	}

	// RefCamToXYZ and RefXYZToCam treat linear sRGB(D65) as if it were a
	// camera with three channels. The fourth channel has no weight.
	RefCamToXYZ = SRGBToXYZ.Extend34()
	RefXYZToCam = XYZToSRGB.Extend43()

	// The D65 reference white in XYZ, as used for Lab
	D65White = emath.Vec3(colorful.D65)
)
