package roundsvg

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// ErrInvalidVertex is returned when a point record has no usable x or y
// coordinate, or carries a corner radius that is not a finite number.
var ErrInvalidVertex = errors.New("invalid vertex")

// Tuple is an X,Y coordinate
type Tuple [2]float64

// Point is a loosely typed point record, usually decoded from JSON.
type Point map[string]interface{}

// Vertex is a normalized polyline vertex. Radius 0 means a sharp corner.
type Vertex struct {
	X, Y   float64
	Radius float64
}

// Pos returns the vertex position.
func (v Vertex) Pos() Tuple { return Tuple{v.X, v.Y} }

// Keys names the fields of a Point that hold the coordinates and the
// corner radius.
type Keys struct {
	X      string `toml:"x"`
	Y      string `toml:"y"`
	Radius string `toml:"radius"`
}

// DefaultKeys are the field names used by the JSON path document.
var DefaultKeys = Keys{X: "x", Y: "y", Radius: "cornerRadius"}

func (k Keys) withDefaults() Keys {
	if k.X == "" {
		k.X = DefaultKeys.X
	}
	if k.Y == "" {
		k.Y = DefaultKeys.Y
	}
	if k.Radius == "" {
		k.Radius = DefaultKeys.Radius
	}
	return k
}

// Normalize extracts a Vertex from p. The radius is taken from the point
// itself when set, then from defaultRadius. Negative radii yield a sharp
// corner.
func Normalize(p Point, keys Keys, defaultRadius float64) (Vertex, error) {
	keys = keys.withDefaults()

	x, err := coordinate(p, keys.X)
	if err != nil {
		return Vertex{}, err
	}
	y, err := coordinate(p, keys.Y)
	if err != nil {
		return Vertex{}, err
	}

	r := defaultRadius
	if raw, ok := p[keys.Radius]; ok && raw != nil {
		r, ok = toFloat(raw)
		if !ok || math.IsNaN(r) || math.IsInf(r, 0) {
			return Vertex{}, fmt.Errorf("%w: %s is not a finite number: %v", ErrInvalidVertex, keys.Radius, raw)
		}
	}
	if r < 0 || math.IsNaN(r) {
		r = 0
	}
	return Vertex{X: x, Y: y, Radius: r}, nil
}

// NormalizeAll normalizes every point. The first failure aborts and names
// the offending index.
func NormalizeAll(points []Point, keys Keys, defaultRadius float64) ([]Vertex, error) {
	vs := make([]Vertex, 0, len(points))
	for i, p := range points {
		v, err := Normalize(p, keys, defaultRadius)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		vs = append(vs, v)
	}
	return vs, nil
}

func coordinate(p Point, key string) (float64, error) {
	raw, ok := p[key]
	if !ok || raw == nil {
		return 0, fmt.Errorf("%w: %s is missing", ErrInvalidVertex, key)
	}
	f, ok := toFloat(raw)
	if !ok {
		return 0, fmt.Errorf("%w: %s is not a number: %v", ErrInvalidVertex, key, raw)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %s is not finite: %v", ErrInvalidVertex, key, f)
	}
	return f, nil
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
