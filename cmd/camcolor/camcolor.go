// Command camcolor shows how a camera's white balance multipliers relate
// to a color temperature and tint.
//
//	camcolor -camera nikon-df                 # as-shot white balance, as a temperature
//	camcolor -camera nikon-df -temp 3200      # multipliers for tungsten light
//	camcolor -camera nikon-df -wb 2,1,1.4     # temperature for some multipliers
package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/abworrall/camcolor/pkg/camera"
	"github.com/abworrall/camcolor/pkg/colorspace"
	"github.com/abworrall/camcolor/pkg/emath"
	"github.com/abworrall/camcolor/pkg/pipeline"
)

var (
	fVerbosity int
	fCamera    string
	fTemp      float64
	fTint      float64
	fWB        string
)

func init() {
	flag.IntVar(&fVerbosity, "v", 0, "how verbose to get")
	flag.StringVar(&fCamera, "camera", camera.GenericName, fmt.Sprintf("which camera calibration: %v", camera.ListSources()))
	flag.Float64Var(&fTemp, "temp", 0, "color temperature in Kelvin (0 = as shot)")
	flag.Float64Var(&fTint, "tint", 1.0, "tint; >1 is more magenta, <1 more green")
	flag.StringVar(&fWB, "wb", "", "comma separated white balance multipliers, e.g. '2.0,1.0,1.4'")
}

func parseWB(s string) (emath.Vec4, error) {
	var wb emath.Vec4
	fields := strings.Split(s, ",")
	if len(fields) < 3 || len(fields) > 4 {
		return wb, fmt.Errorf("wb '%s': want 3 or 4 values", s)
	}
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return wb, fmt.Errorf("wb '%s': %v", s, err)
		}
		wb[i] = v
	}
	return wb, nil
}

func main() {
	flag.Parse()

	cfg := pipeline.NewConfig()
	cfg.Verbosity = fVerbosity
	cfg.Camera = fCamera
	cfg.Temperature = fTemp
	cfg.Tint = fTint
	if err := cfg.Finalize(); err != nil {
		log.Fatal(err)
	}

	if cfg.Verbosity > 0 {
		log.Printf("Final configuration:-\n\n%s\n", cfg.AsYaml())
	}

	p, err := pipeline.New(cfg)
	if err != nil {
		log.Fatal(err)
	}

	prof, _ := p.Profile.Snapshot()
	if fWB != "" {
		wb, err := parseWB(fWB)
		if err != nil {
			log.Fatal(err)
		}
		prof.WBCoeffs = colorspace.NormalizeWB(wb)
	}

	temp, tint := prof.Temp()
	fmt.Printf("%s# %.0fK, tint %.4f\n", prof.AsYaml(), temp, tint)
}
