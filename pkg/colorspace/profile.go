// Package colorspace converts camera samples into Lab, and Lab into
// displayable RGB. It also maps a color temperature and tint onto the
// camera's white balance multipliers, and back.
package colorspace

import (
	"fmt"
	"log"

	"gopkg.in/yaml.v2"

	"github.com/abworrall/camcolor/pkg/camera"
	"github.com/abworrall/camcolor/pkg/ecolor"
	"github.com/abworrall/camcolor/pkg/emath"
)

// Profile is everything we need to know about the camera to get its
// samples into Lab. It is a value; edits return or fill in a new one, and
// nothing in here points at shared state.
type Profile struct {
	CamToXYZ           emath.Mat3x4 // camera native -> XYZ(D65)
	CamToXYZNormalized emath.Mat3x4 // white balanced camera -> XYZ(D65), used for conversion
	XYZToCam           emath.Mat4x3 // XYZ(D65) -> camera native, from the calibration
	WBCoeffs           emath.Vec4   // per channel multipliers, WBCoeffs[1] == 1.0
}

// NewProfile reads the color calibration from the image source. It never
// fails: bad white balance data falls back to the neutral white balance,
// and anything that isn't a raw sensor is treated as sRGB(D65).
func NewProfile(src camera.Source) Profile {
	if raw, ok := src.(camera.Raw); ok && raw.Sensor != nil {
		return newRawProfile(raw.Sensor)
	}

	return Profile{
		CamToXYZ:           ecolor.RefCamToXYZ,
		CamToXYZNormalized: ecolor.RefCamToXYZ,
		XYZToCam:           ecolor.RefXYZToCam,
		WBCoeffs:           emath.Vec4{1, 1, 1, 0},
	}
}

func newRawProfile(s camera.Sensor) Profile {
	coeffs := s.WBCoeffs()
	if !emath.IsNormal(coeffs[0]) || !emath.IsNormal(coeffs[1]) || !emath.IsNormal(coeffs[2]) {
		log.Printf("white balance %s unusable, using neutral white balance\n", coeffs)
		coeffs = s.NeutralWB()
	}

	return Profile{
		CamToXYZ:           s.CamToXYZ(),
		CamToXYZNormalized: s.CamToXYZNormalized(),
		XYZToCam:           s.XYZToCam(),
		WBCoeffs:           NormalizeWB(coeffs),
	}
}

// SetTemp recomputes the white balance multipliers so that the daylight
// illuminant at `temp` Kelvin, with its Y divided by `tint`, comes out
// neutral. The matrices are not touched.
func (p *Profile) SetTemp(temp, tint float64) {
	xyz := ecolor.TempToXYZ(temp)
	xyz[1] /= tint

	// A channel with zero response gets an infinite multiplier, which
	// normalization turns into 1.0
	cam := p.XYZToCam.Apply(xyz)
	for i := range cam {
		p.WBCoeffs[i] = 1.0 / cam[i]
	}
	p.WBCoeffs = NormalizeWB(p.WBCoeffs)
}

// WithTemp is SetTemp on a copy, leaving `p` as it was.
func (p Profile) WithTemp(temp, tint float64) Profile {
	p.SetTemp(temp, tint)
	return p
}

// Temp estimates the temperature and tint that the current multipliers
// correspond to. Channels with a non-positive multiplier don't contribute.
// This is not an exact inverse of SetTemp.
func (p Profile) Temp() (float64, float64) {
	var xyz emath.Vec3
	for i := 0; i < 3; i++ {
		for c := 0; c < 4; c++ {
			if mul := p.WBCoeffs[c]; mul > 0.0 {
				xyz[i] += p.CamToXYZ[i][c] / mul
			}
		}
	}
	return ecolor.XYZToTemp(xyz)
}

func (p Profile) String() string {
	return fmt.Sprintf("Profile{wb: %s}", p.WBCoeffs)
}

func (p Profile) AsYaml() string {
	b, err := yaml.Marshal(p)
	if err != nil {
		log.Printf("can't marshal profile yaml: %v\n", err)
		return ""
	}
	return string(b)
}
