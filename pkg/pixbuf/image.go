package pixbuf

import (
	"fmt"
	"image"
	"image/color"

	"github.com/mdouchement/hdr"
	"github.com/mdouchement/hdr/hdrcolor"
)

// FromImage copies a decoded image into a 4 channel buffer, ready for a
// generic (non raw) source. HDR images keep their float values; others
// have their 16 bit channels mapped from [0, 0xFFFF] to [0.0, 1.0]. The
// fourth channel is left at zero.
func FromImage(img image.Image) *Buffer {
	bounds := img.Bounds()
	b := New(bounds.Dx(), bounds.Dy(), 4)
	hdrImg, isHDR := img.(hdr.Image)

	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			ix, iy := x+bounds.Min.X, y+bounds.Min.Y
			if isHDR {
				r, g, bl, _ := hdrImg.HDRAt(ix, iy).HDRRGBA()
				b.SetPixel(x, y, r, g, bl, 0)
				continue
			}
			r, g, bl, _ := img.At(ix, iy).RGBA()
			b.SetPixel(x, y, float64(r)/float64(0xFFFF), float64(g)/float64(0xFFFF), float64(bl)/float64(0xFFFF), 0)
		}
	}

	return b
}

// HDRImage wraps a 3 channel buffer of linear RGB, and implements
// hdr.Image (and so image.Image), so it can be handed to the hdr tone
// mapping operators.
type HDRImage struct {
	*Buffer
}

var _ hdr.Image = HDRImage{}

func (b *Buffer) AsHDR() (HDRImage, error) {
	if b.Colors != 3 {
		return HDRImage{}, fmt.Errorf("%s: HDR image needs 3 colors", b)
	}
	return HDRImage{b}, nil
}

// Implement image.Image
func (im HDRImage) ColorModel() color.Model { return hdrcolor.RGBModel }
func (im HDRImage) Bounds() image.Rectangle { return image.Rect(0, 0, im.Width, im.Height) }
func (im HDRImage) At(x, y int) color.Color { return im.HDRAt(x, y) }

// Implement hdr.Image
func (im HDRImage) HDRAt(x, y int) hdrcolor.Color {
	p := im.Pixel(x, y)
	return hdrcolor.RGB{R: p[0], G: p[1], B: p[2]}
}
func (im HDRImage) Size() int { return im.NumPixels() }
