// Package camera describes where an image came from, as far as color is
// concerned: either a raw sensor with calibration data, or a generic image
// that is already in a reference color space.
package camera

import "github.com/abworrall/camcolor/pkg/emath"

// Source is a closed union; the only variants are Raw and Generic.
type Source interface {
	isSource()
}

// Raw is an image read off a camera sensor, which has not yet been white
// balanced or color corrected.
type Raw struct {
	Sensor Sensor
}

// Generic is any other image (JPEG, PNG, ...). Its samples are taken to be
// linear sRGB(D65) already.
type Generic struct{}

func (Raw) isSource()     {}
func (Generic) isSource() {}

// A Sensor is the color calibration data that the raw decoder makes
// available for a camera.
type Sensor interface {
	// XYZToCam maps XYZ(D65) into camera native values, one row per channel.
	XYZToCam() emath.Mat4x3

	// WBCoeffs are the white balance multipliers recorded at capture time.
	// Channel 1 is the reference (green) channel.
	WBCoeffs() emath.Vec4

	// CamToXYZ maps camera native values into XYZ(D65).
	CamToXYZ() emath.Mat3x4

	// CamToXYZNormalized is CamToXYZ for camera values that have already
	// been white balanced, so that equal channels map to the D65 white.
	CamToXYZNormalized() emath.Mat3x4

	// NeutralWB is a white balance derived from the calibration alone,
	// used when the recorded multipliers are unusable.
	NeutralWB() emath.Vec4
}
