package pipeline

import (
	"fmt"
	"log"
	"math"

	"gopkg.in/yaml.v2"

	"github.com/abworrall/camcolor/pkg/camera"
	"github.com/abworrall/camcolor/pkg/ecolor"
)

/* Example config ...

verbosity: 1
camera: nikon-df
temperature: 5200
tint: 1.02
tonemapper: reinhard05

... or with an explicit calibration, instead of a named camera:

calibration:
  make: ACME
  model: Pinhole 3000
  colormatrix:
  - [0.8598, -0.2848, -0.0857]
  - [-0.5618, 1.3606, 0.2195]
  - [-0.1002, 0.1773, 0.7137]
  - [0, 0, 0]
  asshotwb: [1.996, 1.0, 1.4257, 0]

*/

type Config struct {
	Verbosity   int
	Camera      string              // A builtin camera name (see camera.ListSources)
	Calibration *camera.Calibration // If set, overrides Camera
	Temperature float64             // Kelvin. If zero, we use the as-shot white balance
	Tint        float64
	Tonemapper  string
	Workers     int // goroutines per stage; 0 means one per CPU
}

func NewConfig() Config {
	return Config{
		Camera:     camera.GenericName,
		Tint:       1.0,
		Tonemapper: "linear",
	}
}

func NewConfigFromYaml(b []byte) (Config, error) {
	c := NewConfig()
	if err := yaml.Unmarshal(b, &c); err != nil {
		return c, fmt.Errorf("parse config: %v", err)
	}
	return c, c.Finalize()
}

func (c Config) AsYaml() string {
	b, err := yaml.Marshal(c)
	if err != nil {
		log.Printf("can't marshal config yaml: %v\n", err)
		return ""
	}
	return string(b)
}

// Finalize does sanity checks, and fills in defaults
func (c *Config) Finalize() error {
	if c.Tint == 0 {
		c.Tint = 1.0
	}
	if c.Tint < 0 || math.IsNaN(c.Tint) || math.IsInf(c.Tint, 0) {
		return fmt.Errorf("tint %f must be positive", c.Tint)
	}

	if math.IsNaN(c.Temperature) {
		return fmt.Errorf("temperature %f is not a number", c.Temperature)
	}
	if c.Temperature != 0 && (c.Temperature < ecolor.MinTemp || c.Temperature > ecolor.MaxTemp) {
		return fmt.Errorf("temperature %.0fK outside [%.0f, %.0f]", c.Temperature, ecolor.MinTemp, ecolor.MaxTemp)
	}

	if c.Tonemapper == "" {
		c.Tonemapper = "linear"
	}
	if !isTonemapper(c.Tonemapper) {
		return fmt.Errorf("tonemapper '%s' not recognized, wanted %s", c.Tonemapper, ListTonemappers())
	}

	if _, err := c.Source(); err != nil {
		return err
	}

	return nil
}

// Source returns the image source described by the config.
func (c Config) Source() (camera.Source, error) {
	if c.Calibration != nil {
		return camera.Raw{Sensor: *c.Calibration}, nil
	}
	return camera.Lookup(c.Camera)
}
