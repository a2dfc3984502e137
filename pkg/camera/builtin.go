package camera

import (
	"fmt"
	"sort"

	"github.com/abworrall/camcolor/pkg/emath"
)

// Builtins are some calibrations we know about, keyed by a short name.
var Builtins = map[string]Calibration{
	// From `dng_validate.exe -v` against a DNG from a Nikon Df:
	//   ColorMatrix2 (D65), and AsShotNeutral: 0.5010 1.0000 0.7014
	"nikon-df": {
		Make:  "NIKON CORPORATION",
		Model: "NIKON Df",
		ColorMatrix: emath.Mat3{
			0.8598, -0.2848, -0.0857,
			-0.5618, 1.3606, 0.2195,
			-0.1002, 0.1773, 0.7137,
		}.Extend43(),
		AsShotWB: emath.Vec4{1 / 0.5010, 1.0, 1 / 0.7014, 0},
	},
}

// GenericName is the name Lookup uses for a non-raw source.
const GenericName = "generic"

// ListSources returns all the names that Lookup will accept.
func ListSources() []string {
	names := []string{GenericName}
	for name := range Builtins {
		names = append(names, name)
	}
	sort.Strings(names[1:])
	return names
}

// Lookup returns a Source by name.
func Lookup(name string) (Source, error) {
	if name == GenericName || name == "" {
		return Generic{}, nil
	}
	if cal, exists := Builtins[name]; exists {
		return Raw{Sensor: cal}, nil
	}
	return nil, fmt.Errorf("no camera named '%s', wanted one of %v", name, ListSources())
}
