package roundsvg

import "math"

// corner is the geometry of one vertex after clamping. When rounded is
// false only at is meaningful.
type corner struct {
	at      Tuple
	in, out Tuple
	radius  float64
	rounded bool
}

// EffectiveRadius returns the radius actually used at vertex i: its own
// radius clamped to half of each adjacent edge. The end points of an open
// polyline and corners touching a zero-length edge get 0.
func EffectiveRadius(vs []Vertex, i int, closed bool) float64 {
	n := len(vs)
	if n < 2 || i < 0 || i >= n {
		return 0
	}
	if !closed && (i == 0 || i == n-1) {
		return 0
	}
	v := vs[i]
	dPrev := distance(vs[(i-1+n)%n], v)
	dNext := distance(v, vs[(i+1)%n])
	if dPrev == 0 || dNext == 0 {
		return 0
	}
	r := math.Min(v.Radius, math.Min(dPrev/2, dNext/2))
	if !(r > 0) {
		return 0
	}
	return r
}

func cornerAt(vs []Vertex, i int, closed bool) corner {
	n := len(vs)
	v := vs[i]
	c := corner{at: v.Pos()}
	r := EffectiveRadius(vs, i, closed)
	if r == 0 {
		return c
	}
	prev, next := vs[(i-1+n)%n], vs[(i+1)%n]
	dPrev, dNext := distance(prev, v), distance(v, next)
	c.in = Tuple{v.X + (prev.X-v.X)/dPrev*r, v.Y + (prev.Y-v.Y)/dPrev*r}
	c.out = Tuple{v.X + (next.X-v.X)/dNext*r, v.Y + (next.Y-v.Y)/dNext*r}
	c.radius = r
	c.rounded = true
	return c
}

// Round turns vertices into a Path whose corners are rounded with each
// vertex's own radius. A rounded corner is a straight line to the incoming
// tangent point followed by a curve to the outgoing tangent point,
// controlled by the vertex.
//
// For an open polyline the first and last vertices are plain end points.
// A closed polyline starts at the first point of vertex 0's corner and
// ends with ClosePath, which draws the edge back into it.
//
// Fewer than two vertices give an empty Path.
func Round(vs []Vertex, closed bool) Path {
	n := len(vs)
	if n < 2 {
		return nil
	}
	path := make(Path, 0, 2*n+1)
	for i := 0; i < n; i++ {
		c := cornerAt(vs, i, closed)
		switch {
		case i == 0 && c.rounded:
			path = append(path, moveTo(c.in), quadTo(c.at, c.out))
		case i == 0:
			path = append(path, moveTo(c.at))
		case c.rounded:
			path = append(path, lineTo(c.in), quadTo(c.at, c.out))
		default:
			path = append(path, lineTo(c.at))
		}
		if c.rounded {
			Logger().Debug("rounded corner", "vertex", i, "radius", c.radius, "declared", vs[i].Radius)
		}
	}
	if closed {
		path = append(path, Segment{Kind: ClosePath})
	}
	return path
}

func distance(a, b Vertex) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
