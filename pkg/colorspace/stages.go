package colorspace

import (
	"github.com/abworrall/camcolor/pkg/ecolor"
	"github.com/abworrall/camcolor/pkg/emath"
	"github.com/abworrall/camcolor/pkg/pixbuf"
)

// ToLab converts 4 channel camera samples into 3 channel Lab, white
// balancing and color correcting them with the profile on the way.
type ToLab struct {
	Profile Profile
	Workers int // goroutines to use; <=0 means one per CPU
}

func (op ToLab) Name() string { return "to_lab" }

// Run returns a new Lab buffer; `buf` is not changed. A monochrome buffer
// has no camera specific color to correct, so it is treated as if the
// camera were sRGB(D65), with no white balance. Buffers with fewer than 4
// channels read the missing channels as zero.
func (op ToLab) Run(buf *pixbuf.Buffer) *pixbuf.Buffer {
	cmatrix := op.Profile.CamToXYZNormalized
	mul := NormalizeWB(op.Profile.WBCoeffs)
	if buf.Monochrome {
		cmatrix = ecolor.RefCamToXYZ
		mul = emath.Vec4{1, 1, 1, 1}
	}

	stride := buf.Colors
	return buf.ProcessInto(3, op.Workers, func(out, in []float64) {
		for i, o := 0, 0; o+3 <= len(out); i, o = i+stride, o+3 {
			var pix emath.Vec4
			copy(pix[:], in[i:i+stride])

			lab := ecolor.CameraToLab(mul, cmatrix, pix)
			out[o], out[o+1], out[o+2] = lab[0], lab[1], lab[2]
		}
	})
}

// FromLab converts Lab back into linear sRGB(D65). By this point the image
// is camera independent, so it needs no profile.
type FromLab struct {
	Workers int
}

func (op FromLab) Name() string { return "from_lab" }

func (op FromLab) Run(buf *pixbuf.Buffer) *pixbuf.Buffer {
	stride := buf.Colors
	return buf.ProcessInto(3, op.Workers, func(out, in []float64) {
		for i, o := 0, 0; o+3 <= len(out); i, o = i+stride, o+3 {
			var lab emath.Vec3
			copy(lab[:], in[i:i+stride])

			rgb := ecolor.LabToRGB(ecolor.XYZToSRGB, lab)
			out[o], out[o+1], out[o+2] = rgb[0], rgb[1], rgb[2]
		}
	})
}
