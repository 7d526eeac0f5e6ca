package roundsvg

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func TestRoundOpenScenario(t *testing.T) {
	vs := []Vertex{{0, 0, 0}, {10, 0, 2}, {10, 10, 0}}
	path := Round(vs, false)

	require.Equal(t, Path{
		moveTo(Tuple{0, 0}),
		lineTo(Tuple{8, 0}),
		quadTo(Tuple{10, 0}, Tuple{10, 2}),
		lineTo(Tuple{10, 10}),
	}, path)
	require.NoError(t, path.Validate())
}

func TestRoundClampsToHalfEdge(t *testing.T) {
	vs := []Vertex{{0, 0, 10}, {10, 0, 10}, {10, 10, 10}}
	assert.Equal(t, 5.0, EffectiveRadius(vs, 1, false))

	path := Round(vs, false)
	require.Len(t, path, 4)
	assert.Equal(t, Tuple{5, 0}, path[1].To)
	assert.Equal(t, Tuple{10, 5}, path[2].To)
}

func TestRoundOpenEndpointsAreNotRounded(t *testing.T) {
	vs := []Vertex{{0, 0, 5}, {10, 0, 5}, {10, 10, 5}}
	assert.Equal(t, 0.0, EffectiveRadius(vs, 0, false))
	assert.Equal(t, 0.0, EffectiveRadius(vs, 2, false))

	path := Round(vs, false)
	assert.Equal(t, moveTo(Tuple{0, 0}), path[0])
	assert.Equal(t, lineTo(Tuple{10, 10}), path[len(path)-1])
}

func TestRoundSharpCorners(t *testing.T) {
	vs := []Vertex{{0, 0, 0}, {3, 4, 0}, {-2, 7, 0}, {1, -1, 0}}
	for _, closed := range []bool{false, true} {
		path := Round(vs, closed)
		var ends []Tuple
		for _, s := range path {
			require.Contains(t, []SegmentKind{MoveTo, LineTo, ClosePath}, s.Kind)
			if s.Kind != ClosePath {
				ends = append(ends, s.To)
			}
		}
		require.Len(t, ends, len(vs))
		for i, v := range vs {
			assert.Equal(t, v.Pos(), ends[i])
		}
		assert.Equal(t, closed, path.Closed())
	}
}

func TestRoundTooFewVertices(t *testing.T) {
	assert.Empty(t, Round(nil, false))
	assert.Empty(t, Round(nil, true))
	assert.Empty(t, Round([]Vertex{{1, 1, 3}}, false))
	assert.Empty(t, Round([]Vertex{{1, 1, 3}}, true))
}

func TestRoundTwoVertices(t *testing.T) {
	path := Round([]Vertex{{0, 0, 4}, {10, 0, 4}}, false)
	assert.Equal(t, Path{moveTo(Tuple{0, 0}), lineTo(Tuple{10, 0})}, path)

	// closed: both corners fold back on the same edge
	path = Round([]Vertex{{0, 0, 4}, {10, 0, 4}}, true)
	require.NoError(t, path.Validate())
	assert.True(t, path.Closed())
}

func TestRoundCoincidentPoints(t *testing.T) {
	vs := []Vertex{{0, 0, 2}, {5, 5, 2}, {5, 5, 2}, {10, 0, 2}}
	for _, closed := range []bool{false, true} {
		assert.Equal(t, 0.0, EffectiveRadius(vs, 1, closed))
		assert.Equal(t, 0.0, EffectiveRadius(vs, 2, closed))
		path := Round(vs, closed)
		require.NoError(t, path.Validate())
	}

	all := []Vertex{{3, 3, 2}, {3, 3, 2}, {3, 3, 2}}
	path := Round(all, true)
	require.NoError(t, path.Validate())
	assert.Equal(t, Path{moveTo(Tuple{3, 3}), lineTo(Tuple{3, 3}), lineTo(Tuple{3, 3}), {Kind: ClosePath}}, path)
}

func TestRoundClosedSquare(t *testing.T) {
	vs := []Vertex{{0, 0, 2}, {10, 0, 2}, {10, 10, 2}, {0, 10, 2}}
	path := Round(vs, true)
	require.NoError(t, path.Validate())

	require.Equal(t, Path{
		moveTo(Tuple{0, 2}),
		quadTo(Tuple{0, 0}, Tuple{2, 0}),
		lineTo(Tuple{8, 0}),
		quadTo(Tuple{10, 0}, Tuple{10, 2}),
		lineTo(Tuple{10, 8}),
		quadTo(Tuple{10, 10}, Tuple{8, 10}),
		lineTo(Tuple{2, 10}),
		quadTo(Tuple{0, 10}, Tuple{0, 8}),
		{Kind: ClosePath},
	}, path)
}

func TestRoundClosedRegularPolygonSymmetry(t *testing.T) {
	const n, size, r = 7, 50.0, 6.0
	vs := make([]Vertex, n)
	for i := range vs {
		a := 2 * math.Pi * float64(i) / n
		vs[i] = Vertex{X: size * math.Cos(a), Y: size * math.Sin(a), Radius: r}
	}
	path := Round(vs, true)
	require.NoError(t, path.Validate())

	var curves int
	for i, s := range path {
		if s.Kind != QuadTo {
			continue
		}
		curves++
		start := path[i-1].To
		dIn := math.Hypot(start[0]-s.C1[0], start[1]-s.C1[1])
		dOut := math.Hypot(s.To[0]-s.C1[0], s.To[1]-s.C1[1])
		assert.InDelta(t, r, dIn, eps)
		assert.InDelta(t, r, dOut, eps)
	}
	assert.Equal(t, n, curves)
}

func TestEffectiveRadiusBound(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for iter := 0; iter < 200; iter++ {
		n := 2 + rnd.Intn(8)
		vs := make([]Vertex, n)
		for i := range vs {
			vs[i] = Vertex{X: rnd.Float64()*100 - 50, Y: rnd.Float64()*100 - 50, Radius: rnd.Float64() * 40}
		}
		closed := rnd.Intn(2) == 0
		for i, v := range vs {
			r := EffectiveRadius(vs, i, closed)
			prev, next := vs[(i-1+n)%n], vs[(i+1)%n]
			assert.True(t, r >= 0)
			assert.True(t, r <= v.Radius)
			assert.True(t, r <= distance(prev, v)/2+eps)
			assert.True(t, r <= distance(v, next)/2+eps)
		}

		path := Round(vs, closed)
		require.NoError(t, path.Validate())
	}
}
