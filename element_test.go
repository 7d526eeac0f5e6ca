package roundsvg

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapJSON(t *testing.T) {
	g := NewGenerator(DefaultOptions())
	el, err := g.WrapJSON([]byte(`{
		"points": [{"x": 0, "y": 0}, {"x": 10, "y": 0, "cornerRadius": 2}, {"x": 10, "y": 10}],
		"stroke": "blue",
		"stroke-width": 2,
		"fill": "none"
	}`))
	require.NoError(t, err)
	assert.Equal(t, `<path d="M 0 0 L 8 0 Q 10 0 10 2 L 10 10" fill="none" stroke="blue" stroke-width="2" />`, el)
}

func TestWrapJSONClosedWithDocumentRadius(t *testing.T) {
	g := NewGenerator(DefaultOptions())
	el, err := g.WrapJSON([]byte(`{
		"points": [{"x": 0, "y": 0}, {"x": 10, "y": 0}, {"x": 10, "y": 10}, {"x": 0, "y": 10, "cornerRadius": 0}],
		"closePath": true,
		"cornerRadius": 2
	}`))
	require.NoError(t, err)
	assert.Equal(t, `<path d="M 0 2 Q 0 0 2 0 L 8 0 Q 10 0 10 2 L 10 8 Q 10 10 8 10 L 0 10 Z" />`, el)
}

func TestWrapJSONEscapesAndFilters(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	g := NewGenerator(DefaultOptions())
	el, err := g.WrapJSON([]byte(`{
		"points": [{"x": 0, "y": 0}, {"x": 1, "y": 1}],
		"id": "a\" onload=\"alert(1)",
		"onclick": "steal()",
		"class": "<b>&"
	}`))
	require.NoError(t, err)
	assert.Equal(t, `<path d="M 0 0 L 1 1" class="&lt;b&gt;&amp;" id="a&#34; onload=&#34;alert(1)" />`, el)
	assert.NotContains(t, el, "onclick")
	assert.Contains(t, buf.String(), "attribute=onclick")
}

func TestWrapJSONCustomAllowList(t *testing.T) {
	opts := DefaultOptions()
	opts.Attributes = []string{"data-shape"}
	g := NewGenerator(opts)
	el, err := g.WrapJSON([]byte(`{"points": [], "data-shape": {"a": [1, 2]}, "stroke": "red"}`))
	require.NoError(t, err)
	assert.Equal(t, `<path d="" data-shape="{&#34;a&#34;:[1,2]}" />`, el)
}

func TestWrapJSONErrors(t *testing.T) {
	g := NewGenerator(DefaultOptions())

	tests := []struct {
		Description string
		JSON        string
		Err         error
	}{
		{"not json", `{points`, ErrInvalidDocument},
		{"not an object", `[1, 2]`, ErrInvalidDocument},
		{"missing points", `{"stroke": "red"}`, ErrMissingPoints},
		{"points not array", `{"points": {"x": 1}}`, ErrMissingPoints},
		{"null points", `{"points": null}`, ErrMissingPoints},
		{"point not object", `{"points": [1, 2]}`, ErrInvalidDocument},
		{"closePath not bool", `{"points": [], "closePath": "yes"}`, ErrInvalidDocument},
		{"cornerRadius not number", `{"points": [], "cornerRadius": "big"}`, ErrInvalidDocument},
		{"invalid vertex", `{"points": [{"x": 1, "y": 1}, {"x": "a", "y": 2}]}`, ErrInvalidVertex},
	}
	for _, test := range tests {
		el, err := g.WrapJSON([]byte(test.JSON))
		require.Error(t, err, test.Description)
		assert.True(t, errors.Is(err, test.Err), "%s: %v", test.Description, err)
		assert.Empty(t, el, test.Description)
	}
}

func TestParseDocument(t *testing.T) {
	doc, err := ParseDocument([]byte(`{"points": [{"x": 1, "y": 2}], "closePath": true, "cornerRadius": 3, "opacity": 0.5, "visible": false}`))
	require.NoError(t, err)
	require.Len(t, doc.Points, 1)
	assert.Equal(t, 1.0, doc.Points[0]["x"])
	assert.True(t, doc.Closed)
	require.NotNil(t, doc.Radius)
	assert.Equal(t, 3.0, *doc.Radius)
	assert.Equal(t, map[string]string{"opacity": "0.5", "visible": "false"}, doc.Attributes)
}
