// Package pipeline strings the color stages together: camera samples go
// into Lab, through whatever Lab edits are configured, and back out to
// linear sRGB, which can then be tone mapped for display.
package pipeline

import (
	"log"
	"time"

	"github.com/abworrall/camcolor/pkg/colorspace"
	"github.com/abworrall/camcolor/pkg/emath"
	"github.com/abworrall/camcolor/pkg/pixbuf"
)

// An Op is one stage of the pipeline. It must not change the buffer it is
// given.
type Op interface {
	Name() string
	Run(buf *pixbuf.Buffer) *pixbuf.Buffer
}

type Pipeline struct {
	Config
	Profile *colorspace.Handle
	Edits   []Op // Run in order, on Lab data
}

// New builds the profile for the configured source, and applies the
// configured white balance (if any).
func New(cfg Config) (*Pipeline, error) {
	src, err := cfg.Source()
	if err != nil {
		return nil, err
	}

	prof := colorspace.NewProfile(src)
	if cfg.Temperature > 0 {
		prof.SetTemp(cfg.Temperature, cfg.Tint)
	}

	if cfg.Verbosity > 0 {
		temp, tint := prof.Temp()
		log.Printf("Profile (%.0fK, tint %.3f):-\n\n%s\n", temp, tint, prof.AsYaml())
	}

	return &Pipeline{
		Config:  cfg,
		Profile: colorspace.NewHandle(prof),
	}, nil
}

// SetTemp changes the white balance used by subsequent runs.
func (p *Pipeline) SetTemp(temp, tint float64) {
	v := p.Profile.SetTemp(temp, tint)
	if p.Verbosity > 0 {
		log.Printf("white balance set to %.0fK, tint %.3f (profile v%d)\n", temp, tint, v)
	}
}

// Ops returns the stages a run would use, built from the current profile.
func (p *Pipeline) Ops() []Op {
	prof, _ := p.Profile.Snapshot()

	ops := []Op{colorspace.ToLab{Profile: prof, Workers: p.Workers}}
	ops = append(ops, p.Edits...)
	return append(ops, colorspace.FromLab{Workers: p.Workers})
}

// Run takes 4 channel camera samples to 3 channel linear sRGB(D65).
func (p *Pipeline) Run(buf *pixbuf.Buffer) *pixbuf.Buffer {
	for _, op := range p.Ops() {
		start := time.Now()
		buf = op.Run(buf)
		if p.Verbosity > 0 {
			log.Printf(" -- %s: %s (%s)\n", op.Name(), buf, time.Since(start))
		}
	}
	return buf
}

// LabMap is an Op that edits each Lab pixel independently.
type LabMap struct {
	OpName  string
	Func    func(lab emath.Vec3) emath.Vec3
	Workers int
}

func (op LabMap) Name() string { return op.OpName }

func (op LabMap) Run(buf *pixbuf.Buffer) *pixbuf.Buffer {
	stride := buf.Colors
	return buf.ProcessInto(3, op.Workers, func(out, in []float64) {
		for i, o := 0, 0; o+3 <= len(out); i, o = i+stride, o+3 {
			var lab emath.Vec3
			copy(lab[:], in[i:i+stride])
			lab = op.Func(lab)
			out[o], out[o+1], out[o+2] = lab[0], lab[1], lab[2]
		}
	})
}
