package roundsvg

// Polyline is an ordered run of vertices. Closed connects the last vertex
// back to the first.
type Polyline struct {
	Vertices []Vertex
	Closed   bool
}

// Round returns the rounded-corner Path of the polyline.
func (p Polyline) Round() Path {
	return Round(p.Vertices, p.Closed)
}

// Len is the number of vertices.
func (p Polyline) Len() int { return len(p.Vertices) }
