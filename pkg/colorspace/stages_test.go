package colorspace

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abworrall/camcolor/pkg/camera"
	"github.com/abworrall/camcolor/pkg/ecolor"
	"github.com/abworrall/camcolor/pkg/emath"
	"github.com/abworrall/camcolor/pkg/pixbuf"
)

func uniform(w, h int, vals ...float64) *pixbuf.Buffer {
	b := pixbuf.New(w, h, len(vals))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			b.SetPixel(x, y, vals...)
		}
	}
	return b
}

func TestStageNames(t *testing.T) {
	assert.Equal(t, "to_lab", ToLab{}.Name())
	assert.Equal(t, "from_lab", FromLab{}.Name())
}

func TestRoundTripGrey(t *testing.T) {
	p := NewProfile(camera.Generic{})
	in := uniform(5, 4, 0.5, 0.5, 0.5, 0.5)

	lab := ToLab{Profile: p}.Run(in)
	assert.Equal(t, 3, lab.Colors)
	assert.Equal(t, in.NumPixels(), lab.NumPixels())

	rgb := FromLab{}.Run(lab)
	assert.Equal(t, 3, rgb.Colors)
	assert.Equal(t, in.NumPixels(), rgb.NumPixels())

	for _, v := range rgb.Data {
		assert.InDelta(t, 0.5, v, 1e-4)
	}
}

func TestToLabNeutralIsNeutral(t *testing.T) {
	// A camera reading of the D65 white, balanced with the neutral white
	// balance, has no chroma
	cal := camera.Builtins["nikon-df"]
	cal.AsShotWB = emath.Vec4{} // unusable, so NeutralWB gets used
	p := NewProfile(camera.Raw{Sensor: cal})

	white := cal.ColorMatrix.Apply(ecolor.D65White)
	lab := ToLab{Profile: p}.Run(uniform(2, 2, white[0]*0.3, white[1]*0.3, white[2]*0.3, white[3]*0.3))
	for i := 0; i < len(lab.Data); i += 3 {
		assert.InDelta(t, 0.0, lab.Data[i+1], 1e-9)
		assert.InDelta(t, 0.0, lab.Data[i+2], 1e-9)
	}
}

func TestToLabMonochrome(t *testing.T) {
	p := NewProfile(camera.Raw{Sensor: fakeSensor{wb: emath.Vec4{4, 2, 1, 3}}})
	pix := []float64{0.3, 0.5, 0.2, 0.9}

	in := uniform(3, 2, pix...)
	in.Monochrome = true
	out := ToLab{Profile: p}.Run(in)
	assert.True(t, out.Monochrome)

	want := ecolor.CameraToLab(emath.Vec4{1, 1, 1, 1}, ecolor.RefCamToXYZ, emath.Vec4{0.3, 0.5, 0.2, 0.9})
	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			assert.Equal(t, want[:], out.Pixel(x, y))
		}
	}

	// Same data, not flagged monochrome, goes through the profile
	in.Monochrome = false
	color := ToLab{Profile: p}.Run(in)
	assert.NotEqual(t, want[:], color.Pixel(0, 0))
	wantColor := ecolor.CameraToLab(emath.Vec4{2, 1, 0.5, 1.5}, fakeCamToXYZNorm, emath.Vec4{0.3, 0.5, 0.2, 0.9})
	assert.Equal(t, wantColor[:], color.Pixel(0, 0))
}

func TestToLabRenormalizes(t *testing.T) {
	// Multipliers that were never normalized still come out the same as
	// normalized ones
	p := NewProfile(camera.Raw{Sensor: fakeSensor{wb: emath.Vec4{4, 2, 1, 3}}})
	in := uniform(2, 2, 0.1, 0.2, 0.3, 0.4)
	want := ToLab{Profile: p}.Run(in)

	p.WBCoeffs = emath.Vec4{8, 4, 2, 6}
	assert.Equal(t, want.Data, ToLab{Profile: p}.Run(in).Data)
}

func TestToLabThreeChannelInput(t *testing.T) {
	p := NewProfile(camera.Generic{})
	four := ToLab{Profile: p}.Run(uniform(2, 1, 0.2, 0.4, 0.6, 0))
	three := ToLab{Profile: p}.Run(uniform(2, 1, 0.2, 0.4, 0.6))
	assert.Equal(t, four.Data, three.Data)
}

func TestStagesPreserveLayout(t *testing.T) {
	p := NewProfile(camera.Generic{})
	in := pixbuf.New(7, 3, 4)
	for y := 0; y < in.Height; y++ {
		for x := 0; x < in.Width; x++ {
			v := float64(y*in.Width+x) / 21.0
			in.SetPixel(x, y, v, v/2, v/3, 0)
		}
	}

	rgb := FromLab{Workers: 3}.Run(ToLab{Profile: p, Workers: 2}.Run(in))
	assert.Equal(t, in.Width, rgb.Width)
	assert.Equal(t, in.Height, rgb.Height)
	for y := 0; y < in.Height; y++ {
		for x := 0; x < in.Width; x++ {
			want := in.Pixel(x, y)
			got := rgb.Pixel(x, y)
			for c := 0; c < 3; c++ {
				assert.InDelta(t, want[c], got[c], 1e-4, "(%d,%d)[%d]", x, y, c)
			}
		}
	}
}

func TestHandle(t *testing.T) {
	h := NewHandle(NewProfile(camera.Generic{}))
	p, version := h.Snapshot()
	assert.Equal(t, uint64(0), version)
	assert.Equal(t, emath.Vec4{1, 1, 1, 0}, p.WBCoeffs)

	assert.Equal(t, uint64(1), h.SetTemp(5000, 1.0))
	q, version := h.Snapshot()
	assert.Equal(t, uint64(1), version)
	assert.Equal(t, p.WithTemp(5000, 1.0), q)

	// The snapshot we took earlier is unchanged
	assert.Equal(t, emath.Vec4{1, 1, 1, 0}, p.WBCoeffs)
}

func TestHandleConcurrentEdits(t *testing.T) {
	h := NewHandle(NewProfile(camera.Raw{Sensor: camera.Builtins["nikon-df"]}))
	in := uniform(8, 8, 0.2, 0.3, 0.4, 0)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			h.SetTemp(3000+float64(i)*500, 1.0)
		}(i)
		go func() {
			defer wg.Done()
			p, _ := h.Snapshot()
			out := ToLab{Profile: p}.Run(in)
			// Every pixel of a run sees the same profile
			first := out.Pixel(0, 0)
			for y := 0; y < out.Height; y++ {
				for x := 0; x < out.Width; x++ {
					assert.Equal(t, first, out.Pixel(x, y))
				}
			}
		}()
	}
	wg.Wait()

	_, version := h.Snapshot()
	assert.Equal(t, uint64(8), version)
}
