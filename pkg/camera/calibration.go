package camera

import (
	"fmt"
	"log"

	"github.com/abworrall/camcolor/pkg/ecolor"
	"github.com/abworrall/camcolor/pkg/emath"
)

// Calibration is a Sensor built from the camera's color matrix (as found
// in DNG ColorMatrix tags, or dcraw's adobe_coeff table) and the white
// balance multipliers recorded in the file. Three channel cameras leave
// the fourth row of the matrix as zeros.
type Calibration struct {
	Make        string
	Model       string
	ColorMatrix emath.Mat4x3 // XYZ(D65) -> camera native
	AsShotWB    emath.Vec4   // Multipliers, not neutral values: R = 1/AsShotNeutral[0], etc.
}

func (c Calibration) String() string {
	return fmt.Sprintf("%s %s", c.Make, c.Model)
}

func (c Calibration) XYZToCam() emath.Mat4x3 { return c.ColorMatrix }
func (c Calibration) WBCoeffs() emath.Vec4   { return c.AsShotWB }

func (c Calibration) CamToXYZ() emath.Mat3x4 {
	return c.invert(c.ColorMatrix)
}

// CamToXYZNormalized first scales each row of the color matrix so the
// camera reads the D65 white as 1.0 on every channel, and then inverts it.
// All-zero rows (unused channels) are left alone.
func (c Calibration) CamToXYZNormalized() emath.Mat3x4 {
	m := c.ColorMatrix
	for i := range m {
		sum := m[i][0]*ecolor.D65White[0] + m[i][1]*ecolor.D65White[1] + m[i][2]*ecolor.D65White[2]
		if sum == 0 {
			continue
		}
		for j := range m[i] {
			m[i][j] /= sum
		}
	}
	return c.invert(m)
}

// NeutralWB returns the multipliers that make the D65 white come out
// neutral. Channels with no response get an infinite multiplier, which
// white balance normalization turns back into 1.0.
func (c Calibration) NeutralWB() emath.Vec4 {
	white := c.ColorMatrix.Apply(ecolor.D65White)
	return emath.Vec4{1 / white[0], 1 / white[1], 1 / white[2], 1 / white[3]}
}

// A matrix that can't be inverted means the calibration data is junk; we
// fall back to treating the camera as if it were sRGB, so there is still an image.
func (c Calibration) invert(m emath.Mat4x3) emath.Mat3x4 {
	pinv, err := emath.PseudoInverse(m)
	if err != nil {
		log.Printf("camera %s: bad color matrix (%v), using sRGB reference\n", c, err)
		return ecolor.RefCamToXYZ
	}
	return pinv
}
