package roundsvg

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidPath is returned by Path.Validate.
var ErrInvalidPath = errors.New("invalid path")

// CurveKind selects how a rounded corner is written out.
type CurveKind int

const (
	// CurveQuadratic writes "Q v t" with the corner vertex as control point.
	CurveQuadratic CurveKind = iota
	// CurveCubic writes "C v v t" with both control points on the corner
	// vertex.
	CurveCubic
)

// Format controls how a Path is rendered to text.
type Format struct {
	// Curve selects quadratic or cubic corner curves.
	Curve CurveKind
	// Delimiter separates the operands of one command: a space or a
	// comma. Anything else is written as a space.
	Delimiter string
	// Precision is the maximum number of decimals. Zero prints the
	// shortest representation that parses back to the same float64.
	Precision int
}

func (f Format) delimiter() string {
	if f.Delimiter == "," {
		return ","
	}
	return " "
}

// DefaultFormat renders quadratic corners with space separated operands.
var DefaultFormat = Format{Curve: CurveQuadratic, Delimiter: " "}

// Path describes a sequence of drawing commands. A valid Path starts with
// its only MoveTo and may end with a ClosePath.
type Path []Segment

// Validate checks that p starts with its only MoveTo, that ClosePath only
// appears last and that every coordinate is finite.
func (p Path) Validate() error {
	for i, s := range p {
		switch {
		case i == 0 && s.Kind != MoveTo:
			return fmt.Errorf("%w: first segment is %s, not MoveTo", ErrInvalidPath, s.Kind)
		case i > 0 && s.Kind == MoveTo:
			return fmt.Errorf("%w: extra MoveTo at segment %d", ErrInvalidPath, i)
		case s.Kind == ClosePath && i != len(p)-1:
			return fmt.Errorf("%w: ClosePath at segment %d is not last", ErrInvalidPath, i)
		}
		for _, t := range s.operands() {
			if !finite(t[0]) || !finite(t[1]) {
				return fmt.Errorf("%w: non-finite coordinate in segment %d", ErrInvalidPath, i)
			}
		}
	}
	return nil
}

// Closed reports whether p ends with a ClosePath.
func (p Path) Closed() bool {
	return len(p) > 0 && p[len(p)-1].Kind == ClosePath
}

// Format renders p as an SVG path "d" attribute value.
func (p Path) Format(f Format) string {
	delim := f.delimiter()
	chunks := make([]string, len(p))
	for i, s := range p {
		var letter string
		ops := s.operands()
		switch s.Kind {
		case MoveTo:
			letter = "M"
		case LineTo:
			letter = "L"
		case QuadTo:
			letter = "Q"
			if f.Curve == CurveCubic {
				letter = "C"
				ops = []Tuple{s.C1, s.C1, s.To}
			}
		case CubicTo:
			letter = "C"
		case ClosePath:
			chunks[i] = "Z"
			continue
		}
		nums := make([]string, 0, 2*len(ops))
		for _, t := range ops {
			nums = append(nums, formatNumber(t[0], f.Precision), formatNumber(t[1], f.Precision))
		}
		chunks[i] = letter + " " + strings.Join(nums, delim)
	}
	return strings.Join(chunks, " ")
}

// String returns p in DefaultFormat.
func (p Path) String() string {
	return p.Format(DefaultFormat)
}

// formatNumber never uses exponent notation: the path lexer reads "e" as
// a command letter.
func formatNumber(v float64, prec int) string {
	var s string
	if prec > 0 {
		s = strconv.FormatFloat(v, 'f', prec, 64)
		if strings.IndexByte(s, '.') >= 0 {
			s = strings.TrimRight(s, "0")
			s = strings.TrimSuffix(s, ".")
		}
	} else {
		s = strconv.FormatFloat(v, 'f', -1, 64)
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
