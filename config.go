package roundsvg

import (
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config is the file form of Options:
//
//	corner_radius = 4
//	curve = "cubic"
//	precision = 3
//	scale = 2
//	attributes = ["stroke", "fill"]
//
//	[keys]
//	x = "left"
//	y = "top"
//	radius = "r"
type Config struct {
	Keys         Keys     `toml:"keys"`
	CornerRadius float64  `toml:"corner_radius"`
	Curve        string   `toml:"curve"`
	Delimiter    string   `toml:"delimiter"`
	Precision    int      `toml:"precision"`
	Scale        float64  `toml:"scale"`
	Attributes   []string `toml:"attributes"`
}

// ReadConfig decodes a TOML configuration. Unknown keys are an error.
func ReadConfig(r io.Reader) (Config, error) {
	var c Config
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&c); err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return c, nil
}

// Options converts the configuration.
func (c Config) Options() (Options, error) {
	o := DefaultOptions()
	o.Keys = c.Keys.withDefaults()
	o.DefaultRadius = c.CornerRadius
	switch c.Delimiter {
	case "":
	case " ", ",":
		o.Delimiter = c.Delimiter
	default:
		return Options{}, fmt.Errorf("delimiter must be a space or a comma: %q", c.Delimiter)
	}
	if c.Precision < 0 {
		return Options{}, fmt.Errorf("precision must not be negative: %d", c.Precision)
	}
	o.Precision = c.Precision

	curve, err := ParseCurveKind(c.Curve)
	if err != nil {
		return Options{}, err
	}
	o.Curve = curve
	if c.Scale != 0 {
		o.Transform = ScaleTransform(c.Scale)
	}
	if c.Attributes != nil {
		o.Attributes = append([]string(nil), c.Attributes...)
	}
	return o, nil
}

// ParseCurveKind accepts "quadratic", "cubic" or an empty string.
func ParseCurveKind(s string) (CurveKind, error) {
	switch strings.ToLower(s) {
	case "", "quadratic", "q":
		return CurveQuadratic, nil
	case "cubic", "c":
		return CurveCubic, nil
	}
	return 0, fmt.Errorf("unknown curve kind %q", s)
}
