package roundsvg

// SegmentKind tells the serializer which path command a Segment renders
// as.
type SegmentKind int

// These are the segment kinds produced by the corner rounder.
const (
	MoveTo SegmentKind = iota
	LineTo
	QuadTo
	CubicTo
	ClosePath
)

func (k SegmentKind) String() string {
	switch k {
	case MoveTo:
		return "MoveTo"
	case LineTo:
		return "LineTo"
	case QuadTo:
		return "QuadTo"
	case CubicTo:
		return "CubicTo"
	case ClosePath:
		return "ClosePath"
	}
	return "Unknown"
}

// Segment is a single drawing command. To is the end point for every kind
// except ClosePath. C1 is the control point of a QuadTo; C1 and C2 are the
// control points of a CubicTo.
type Segment struct {
	Kind SegmentKind
	C1   Tuple
	C2   Tuple
	To   Tuple
}

func moveTo(p Tuple) Segment { return Segment{Kind: MoveTo, To: p} }
func lineTo(p Tuple) Segment { return Segment{Kind: LineTo, To: p} }

func quadTo(c, p Tuple) Segment { return Segment{Kind: QuadTo, C1: c, To: p} }

// operands returns the coordinates written after the command letter.
func (s Segment) operands() []Tuple {
	switch s.Kind {
	case MoveTo, LineTo:
		return []Tuple{s.To}
	case QuadTo:
		return []Tuple{s.C1, s.To}
	case CubicTo:
		return []Tuple{s.C1, s.C2, s.To}
	}
	return nil
}
