package roundsvg

import (
	mt "github.com/rustyoz/Mtransform"
)

// Options configures a Generator. The zero value is usable: default keys,
// no default radius, quadratic corners and space separated operands.
type Options struct {
	// Keys names the point fields holding x, y and the corner radius.
	Keys Keys
	// DefaultRadius applies to points without their own radius.
	DefaultRadius float64
	// Curve, Delimiter and Precision control serialization. Delimiter is
	// a space or a comma.
	Curve     CurveKind
	Delimiter string
	Precision int
	// Transform is applied to vertex positions before rounding. Radii are
	// not transformed.
	Transform *mt.Transform
	// Attributes is the allow-list used when wrapping a path into a
	// <path> element. Nil means DefaultAttributes.
	Attributes []string
}

// DefaultOptions returns the options used by the JSON path document.
func DefaultOptions() Options {
	return Options{
		Keys:       DefaultKeys,
		Delimiter:  " ",
		Attributes: append([]string(nil), DefaultAttributes...),
	}
}

// Generator converts point records to path descriptions and back. Its
// configuration is fixed at construction; whether a path is closed is
// decided per call, so a Generator can be shared between goroutines.
type Generator struct {
	opts    Options
	allowed map[string]bool
}

// NewGenerator returns a Generator owning a copy of opts.
func NewGenerator(opts Options) *Generator {
	opts.Keys = opts.Keys.withDefaults()
	if opts.Delimiter != " " && opts.Delimiter != "," {
		if opts.Delimiter != "" {
			Logger().Warn("unsupported operand delimiter, using a space", "delimiter", opts.Delimiter)
		}
		opts.Delimiter = " "
	}
	if opts.Attributes == nil {
		opts.Attributes = DefaultAttributes
	}
	opts.Attributes = append([]string(nil), opts.Attributes...)
	opts.Transform = copyTransform(opts.Transform)

	g := &Generator{opts: opts, allowed: make(map[string]bool, len(opts.Attributes))}
	for _, a := range opts.Attributes {
		g.allowed[a] = true
	}
	return g
}

// Options returns a copy of the generator configuration.
func (g *Generator) Options() Options {
	o := g.opts
	o.Attributes = append([]string(nil), g.opts.Attributes...)
	o.Transform = copyTransform(g.opts.Transform)
	return o
}

// Format is the serialization format derived from the options.
func (g *Generator) Format() Format {
	return Format{Curve: g.opts.Curve, Delimiter: g.opts.Delimiter, Precision: g.opts.Precision}
}

// Polyline normalizes and transforms points using defaultRadius for
// points without a radius.
func (g *Generator) Polyline(points []Point, closed bool, defaultRadius float64) (Polyline, error) {
	vs, err := NormalizeAll(points, g.opts.Keys, defaultRadius)
	if err != nil {
		return Polyline{}, err
	}
	return Polyline{Vertices: transformVertices(g.opts.Transform, vs), Closed: closed}, nil
}

// Encode converts points into a path description with rounded corners.
// An invalid point fails the whole call. Fewer than two points give an
// empty string.
func (g *Generator) Encode(points []Point, closed bool) (string, error) {
	return g.EncodeWithRadius(points, closed, g.opts.DefaultRadius)
}

// EncodeWithRadius is Encode with a default radius overriding the
// configured one for this call.
func (g *Generator) EncodeWithRadius(points []Point, closed bool, defaultRadius float64) (string, error) {
	pl, err := g.Polyline(points, closed, defaultRadius)
	if err != nil {
		return "", err
	}
	Logger().Debug("encoding polyline", "vertices", pl.Len(), "closed", closed, "defaultRadius", defaultRadius)
	return pl.Round().Format(g.Format()), nil
}

// EncodeVertices renders already normalized vertices. The generator
// transform is not applied.
func (g *Generator) EncodeVertices(vs []Vertex, closed bool) string {
	return Round(vs, closed).Format(g.Format())
}

// Decode returns the end points of the path description d. The
// generator transform is not undone.
func (g *Generator) Decode(d string) []Tuple {
	return ParsePath(d)
}

// DecodeJSON is the package level DecodeJSON.
func (g *Generator) DecodeJSON(data []byte) ([]byte, error) {
	return DecodeJSON(data)
}
