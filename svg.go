package roundsvg

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// PathElement is a decoded SVG path element.
type PathElement struct {
	ID     string
	D      string
	Points []Tuple
}

// Svg holds the path elements of an SVG document, in document order.
// Groups are flattened and their transforms ignored.
type Svg struct {
	Title string
	Name  string
	Paths []PathElement
}

// ParseSvg parses an SVG string and decodes every path element. See
// ScaleTransform for the meaning of scale.
func ParseSvg(str string, name string, scale float64) (*Svg, error) {
	return ParseSvgFromReader(strings.NewReader(str), name, scale)
}

// ParseSvgFromReader parses an SVG document from an io.Reader. Documents
// in a non UTF-8 encoding are converted according to their XML
// declaration.
func ParseSvgFromReader(r io.Reader, name string, scale float64) (*Svg, error) {
	svg := &Svg{Name: name}
	dec := NewDecoder(scale)

	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ParseSvg Error: %v", err)
		}

		se, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		switch se.Name.Local {
		case "title":
			if svg.Title != "" {
				continue
			}
			if err = decoder.DecodeElement(&svg.Title, &se); err != nil {
				return nil, fmt.Errorf("error decoding title element: %s", err)
			}
		case "path":
			var p PathElement
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "id":
					p.ID = attr.Value
				case "d":
					p.D = attr.Value
				}
			}
			p.Points = dec.Decode(p.D)
			svg.Paths = append(svg.Paths, p)
		}
	}
	Logger().Debug("parsed svg", "name", name, "paths", len(svg.Paths))
	return svg, nil
}
