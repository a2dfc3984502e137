package pipeline

import (
	"fmt"
	"image"

	"github.com/mdouchement/hdr"
	"github.com/mdouchement/hdr/tmo"

	"github.com/abworrall/camcolor/pkg/pixbuf"
)

var (
	Tonemappers = []string{"drago03", "durand", "icam06", "linear", "reinhard05"}
)

func ListTonemappers() string {
	return fmt.Sprintf("%v", Tonemappers)
}

func isTonemapper(name string) bool {
	for _, n := range Tonemappers {
		if n == name {
			return true
		}
	}
	return false
}

func NewTonemapper(name string, img hdr.Image) (tmo.ToneMappingOperator, error) {
	switch name {
	case "drago03":
		return tmo.NewDefaultDrago03(img), nil
	case "durand":
		return tmo.NewDefaultDurand(img), nil
	case "icam06":
		return tmo.NewDefaultICam06(img), nil
	case "linear":
		return tmo.NewLinear(img), nil
	case "reinhard05":
		return tmo.NewDefaultReinhard05(img), nil
	}
	return nil, fmt.Errorf("tonemapper '%s' not recognized, wanted %s", name, ListTonemappers())
}

// Tonemap squashes a linear sRGB buffer (the output of Run) into a low
// dynamic range image for display.
//
// Colors outside the sRGB gamut come out of from_lab with slightly
// negative channels; those are clipped to zero first, or the tone mappers
// turn them into really bright pixels.
func (p *Pipeline) Tonemap(rgb *pixbuf.Buffer) (image.Image, error) {
	clipped := FloorAt(rgb, 0.0, p.Workers)
	img, err := clipped.AsHDR()
	if err != nil {
		return nil, fmt.Errorf("tonemap: %v", err)
	}

	op, err := NewTonemapper(p.Tonemapper, img)
	if err != nil {
		return nil, err
	}

	return op.Perform(), nil
}

// Develop runs the pipeline over camera samples, and tone maps the result.
func (p *Pipeline) Develop(buf *pixbuf.Buffer) (image.Image, error) {
	return p.Tonemap(p.Run(buf))
}

// FloorAt returns a copy of `buf` with every sample below `min` raised to `min`.
func FloorAt(buf *pixbuf.Buffer, min float64, workers int) *pixbuf.Buffer {
	return buf.ProcessInto(buf.Colors, workers, func(out, in []float64) {
		for i, v := range in {
			if v < min {
				v = min
			}
			out[i] = v
		}
	})
}
