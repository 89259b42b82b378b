// Copyright 2025 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package svg_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"m4o.io/svgmap/svg"
)

func TestFormatNumber(t *testing.T) {
	testCases := []struct {
		name      string
		value     float64
		precision int
		expected  string
	}{
		{"integral", 100, 1, "100"},
		{"trailing zero", 2.50, 2, "2.5"},
		{"rounded", 3.14159, 3, "3.142"},
		{"zero precision", 249.6, 0, "250"},
		{"negative precision", 12.34, -1, "12"},
		{"negative zero", -0.04, 1, "0"},
		{"negative", -12.26, 1, "-12.3"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, svg.FormatNumber(tc.value, tc.precision))
		})
	}
}

func TestRound(t *testing.T) {
	assert.InDelta(t, 1.23, svg.Round(1.2345, 2), 1e-12)
	assert.InDelta(t, float32(2), svg.Round(float32(1.5), 0), 1e-6)
}

func TestRoot(t *testing.T) {
	root := svg.NewRoot(500, 400)

	assert.Equal(t, `<svg height="400" width="500" xmlns="http://www.w3.org/2000/svg" />`, root.String())
}

func TestElement_WriteTo(t *testing.T) {
	root := svg.NewRoot(500, 500)
	root.Append(svg.NewStyle("#empty { stroke: black; fill: red; }"))

	poly := svg.NewPolygon([]svg.Vertex{{100, 100}, {400, 100}, {400, 400}, {100, 400}}, 1)
	poly.Attributes().Set("id", "empty")
	root.Append(poly.Element())

	var buf bytes.Buffer
	n, err := root.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)

	s := buf.String()
	assert.Contains(t, s, `<svg height="500" width="500" xmlns="http://www.w3.org/2000/svg">`)
	assert.Contains(t, s, "<style>#empty { stroke: black; fill: red; }</style>")
	assert.Contains(t, s, `<polygon id="empty" points="100,100 400,100 400,400 100,400" />`)
	assert.Contains(t, s, "</svg>")
}

func TestElement_Escaping(t *testing.T) {
	e := svg.NewElement("text")
	e.Attributes().Set("title", `a "quoted" <b> & c`)
	e.Text = "x < y & z > w"

	assert.Equal(t,
		`<text title="a &quot;quoted&quot; &lt;b&gt; &amp; c">x &lt; y &amp; z &gt; w</text>`,
		e.String())
}

func TestAttributes(t *testing.T) {
	a := svg.Attributes{}
	a.Set("stroke", "black")
	a.Set("fill", "red")

	v, ok := a.Get("fill")
	assert.True(t, ok)
	assert.Equal(t, "red", v)

	_, ok = a.Get("missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"fill", "stroke"}, a.Names())

	c := a.Clone()
	c.Set("fill", "blue")
	v, _ = a.Get("fill")
	assert.Equal(t, "red", v)
}

func TestCircle(t *testing.T) {
	c := svg.NewCircle(svg.Vertex{10.26, 20}, 3, 1)
	c.Attributes().Set("class", "dot")

	assert.Equal(t, `<circle class="dot" cx="10.3" cy="20" r="3" />`, c.Element().String())
}

func TestPath_Descriptor(t *testing.T) {
	testCases := []struct {
		name     string
		path     *svg.Path
		expected string
	}{
		{
			name:     "open",
			path:     svg.NewPath([][]svg.Vertex{{{0, 0}, {10, 0}, {10, 10}}}, false, 1),
			expected: "M0,0 L10,0 L10,10",
		},
		{
			name:     "closed rings",
			path:     svg.NewPath([][]svg.Vertex{{{0, 0}, {1, 0}, {1, 1}}, {{5, 5}, {6, 5}}}, true, 1),
			expected: "M0,0 L1,0 L1,1 Z M5,5 L6,5 Z",
		},
		{
			name:     "dot",
			path:     svg.NewPath([][]svg.Vertex{{{250, 250}}}, true, 1),
			expected: "M250,250 Z",
		},
		{
			name:     "precision",
			path:     svg.NewPath([][]svg.Vertex{{{1.26, 2.04}, {3.333, 4.449}}}, false, 2),
			expected: "M1.26,2.04 L3.33,4.45",
		},
		{
			name:     "empty subpath skipped",
			path:     svg.NewPath([][]svg.Vertex{{}, {{1, 1}}}, true, 1),
			expected: "M1,1 Z",
		},
		{
			name: "relative",
			path: &svg.Path{
				Subpaths:  [][]svg.Vertex{{{10, 10}, {15, 10}, {15, 4.5}}},
				Closed:    true,
				Relative:  true,
				Precision: 1,
			},
			expected: "M10,10 l5,0 l0,-5.5 Z",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.path.Descriptor())
		})
	}
}

func TestPath_Element(t *testing.T) {
	p := svg.NewPath([][]svg.Vertex{{{1, 2}}}, true, 1)
	p.Attributes().Set("stroke-linecap", "round")

	e := p.Element()
	assert.Equal(t, "path", e.Name)
	assert.Equal(t, `<path d="M1,2 Z" stroke-linecap="round" />`, e.String())

	// the primitive keeps its own attributes untouched
	_, ok := p.Attributes().Get("d")
	assert.False(t, ok)
}
