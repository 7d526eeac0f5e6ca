package roundsvg

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrInvalidDocument is returned for a path document that is not a
	// JSON object or has a badly typed field.
	ErrInvalidDocument = errors.New("invalid path document")
	// ErrMissingPoints is returned when "points" is missing or not an
	// array.
	ErrMissingPoints = errors.New("points array is missing or not an array")
)

// DefaultAttributes are the presentation attributes copied from a path
// document into the <path> element.
var DefaultAttributes = []string{
	"class",
	"fill",
	"fill-opacity",
	"fill-rule",
	"id",
	"opacity",
	"stroke",
	"stroke-dasharray",
	"stroke-dashoffset",
	"stroke-linecap",
	"stroke-linejoin",
	"stroke-miterlimit",
	"stroke-opacity",
	"stroke-width",
	"transform",
	"vector-effect",
	"visibility",
}

// Document is a decoded JSON path document:
//
//	{"points": [{"x": 10, "y": 10, "cornerRadius": 5}, ...],
//	 "closePath": true, "cornerRadius": 2, "stroke": "blue", ...}
type Document struct {
	Points []Point
	Closed bool
	// Radius overrides the generator default radius when set.
	Radius *float64
	// Attributes holds every other key, rendered as text.
	Attributes map[string]string
}

// ParseDocument decodes a JSON path document.
func ParseDocument(data []byte) (*Document, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	pts, ok := raw["points"]
	if !ok || !bytes.HasPrefix(bytes.TrimSpace(pts), []byte("[")) {
		return nil, ErrMissingPoints
	}
	doc := &Document{Attributes: make(map[string]string)}
	if err := json.Unmarshal(pts, &doc.Points); err != nil {
		return nil, fmt.Errorf("%w: points: %v", ErrInvalidDocument, err)
	}

	for k, v := range raw {
		switch k {
		case "points":
		case "closePath":
			if err := json.Unmarshal(v, &doc.Closed); err != nil {
				return nil, fmt.Errorf("%w: closePath: %v", ErrInvalidDocument, err)
			}
		case "cornerRadius":
			var r float64
			if err := json.Unmarshal(v, &r); err != nil {
				return nil, fmt.Errorf("%w: cornerRadius: %v", ErrInvalidDocument, err)
			}
			doc.Radius = &r
		default:
			doc.Attributes[k] = attributeText(v)
		}
	}
	return doc, nil
}

// attributeText renders strings unquoted and anything else as compact
// JSON.
func attributeText(v json.RawMessage) string {
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s
	}
	var b bytes.Buffer
	if err := json.Compact(&b, v); err != nil {
		return string(v)
	}
	return b.String()
}

// Element renders doc as a <path> element. Attributes outside the allow
// list are dropped; values are XML escaped and written in key order.
func (g *Generator) Element(doc *Document) (string, error) {
	radius := g.opts.DefaultRadius
	if doc.Radius != nil {
		radius = *doc.Radius
	}
	d, err := g.EncodeWithRadius(doc.Points, doc.Closed, radius)
	if err != nil {
		return "", err
	}

	keys := make([]string, 0, len(doc.Attributes))
	for k := range doc.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(`<path d="`)
	writeEscaped(&b, d)
	b.WriteByte('"')
	for _, k := range keys {
		if !g.allowed[k] {
			Logger().Warn("dropping path attribute outside allow-list", "attribute", k)
			continue
		}
		b.WriteByte(' ')
		b.WriteString(k)
		b.WriteString(`="`)
		writeEscaped(&b, doc.Attributes[k])
		b.WriteByte('"')
	}
	b.WriteString(" />")
	return b.String(), nil
}

// WrapJSON parses a JSON path document and renders it as a <path>
// element.
func (g *Generator) WrapJSON(data []byte) (string, error) {
	doc, err := ParseDocument(data)
	if err != nil {
		return "", err
	}
	return g.Element(doc)
}

func writeEscaped(b *strings.Builder, s string) {
	// strings.Builder writes never fail.
	_ = xml.EscapeText(b, []byte(s))
}
