package roundsvg

import mt "github.com/rustyoz/Mtransform"

// ScaleTransform returns a uniform scale. A positive scale multiplies
// coordinates, a negative one divides by -scale and zero is the identity.
func ScaleTransform(scale float64) *mt.Transform {
	t := mt.NewTransform()
	if scale > 0 {
		t.Scale(scale, scale)
	}
	if scale < 0 {
		t.Scale(1.0/-scale, 1.0/-scale)
	}
	return t
}

// ComposeTransforms returns the product of a and b. Either may be nil.
func ComposeTransforms(a, b *mt.Transform) *mt.Transform {
	switch {
	case a == nil && b == nil:
		return nil
	case a == nil:
		return copyTransform(b)
	case b == nil:
		return copyTransform(a)
	}
	m := mt.MultiplyTransforms(*a, *b)
	return &m
}

func copyTransform(t *mt.Transform) *mt.Transform {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func applyTransform(t *mt.Transform, x, y float64) (float64, float64) {
	if t == nil {
		return x, y
	}
	return t.Apply(x, y)
}

// transformVertices returns moved copies of vs; radii are kept as is.
func transformVertices(t *mt.Transform, vs []Vertex) []Vertex {
	if t == nil {
		return vs
	}
	out := make([]Vertex, len(vs))
	for i, v := range vs {
		x, y := t.Apply(v.X, v.Y)
		out[i] = Vertex{X: x, Y: y, Radius: v.Radius}
	}
	return out
}
