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

package svg

import (
	"strconv"
	"strings"
)

// Vertex is a point in canvas coordinates.
type Vertex [2]float64

// Primitive is a drawable shape that can be decorated with attributes and
// turned into an Element.
type Primitive interface {
	// Attributes returns the mutable attribute set of the primitive.
	Attributes() Attributes

	// Element returns the element for the primitive in its current state.
	Element() *Element
}

// NewRoot creates the root svg element of a width by height canvas.
func NewRoot(width, height int) *Element {
	e := NewElement("svg")
	e.Attrs.Set("width", strconv.Itoa(width))
	e.Attrs.Set("height", strconv.Itoa(height))
	e.Attrs.Set("xmlns", Namespace)

	return e
}

// NewStyle creates an inline stylesheet element.  The CSS is written as is.
func NewStyle(css string) *Element {
	e := NewElement("style")
	e.Text = css

	return e
}

// NewGroup creates an empty g element.
func NewGroup() *Element {
	return NewElement("g")
}

// Circle is a circle of a given radius.
type Circle struct {
	Center    Vertex
	Radius    float64
	Precision int
	Attrs     Attributes
}

// NewCircle creates a circle primitive.
func NewCircle(center Vertex, radius float64, precision int) *Circle {
	return &Circle{Center: center, Radius: radius, Precision: precision, Attrs: Attributes{}}
}

// Attributes implements Primitive.
func (c *Circle) Attributes() Attributes {
	if c.Attrs == nil {
		c.Attrs = Attributes{}
	}

	return c.Attrs
}

// Element implements Primitive.
func (c *Circle) Element() *Element {
	e := &Element{Name: "circle", Attrs: c.Attributes().Clone()}
	e.Attrs.Set("cx", FormatNumber(c.Center[0], c.Precision))
	e.Attrs.Set("cy", FormatNumber(c.Center[1], c.Precision))
	e.Attrs.Set("r", FormatNumber(c.Radius, c.Precision))

	return e
}

// Polygon is a closed polygon given by its vertices.
type Polygon struct {
	Vertices  []Vertex
	Precision int
	Attrs     Attributes
}

// NewPolygon creates a polygon primitive.
func NewPolygon(vertices []Vertex, precision int) *Polygon {
	return &Polygon{Vertices: vertices, Precision: precision, Attrs: Attributes{}}
}

// Attributes implements Primitive.
func (p *Polygon) Attributes() Attributes {
	if p.Attrs == nil {
		p.Attrs = Attributes{}
	}

	return p.Attrs
}

// Element implements Primitive.
func (p *Polygon) Element() *Element {
	points := make([]string, len(p.Vertices))
	for i, v := range p.Vertices {
		points[i] = formatPair(v[0], v[1], p.Precision)
	}

	e := &Element{Name: "polygon", Attrs: p.Attributes().Clone()}
	e.Attrs.Set("points", strings.Join(points, " "))

	return e
}

// Path is a list of subpaths.  Each subpath starts with an absolute move-to.
// Subsequent vertices are absolute line-to commands, or relative ones when
// Relative is set.  Closed subpaths end with a close-path command.
type Path struct {
	Subpaths  [][]Vertex
	Closed    bool
	Relative  bool
	Precision int
	Attrs     Attributes
}

// NewPath creates a path primitive.
func NewPath(subpaths [][]Vertex, closed bool, precision int) *Path {
	return &Path{Subpaths: subpaths, Closed: closed, Precision: precision, Attrs: Attributes{}}
}

// Attributes implements Primitive.
func (p *Path) Attributes() Attributes {
	if p.Attrs == nil {
		p.Attrs = Attributes{}
	}

	return p.Attrs
}

// Element implements Primitive.
func (p *Path) Element() *Element {
	e := &Element{Name: "path", Attrs: p.Attributes().Clone()}
	e.Attrs.Set("d", p.Descriptor())

	return e
}

// Descriptor returns the path data, the value of the d attribute.
func (p *Path) Descriptor() string {
	var cmds []string

	for _, sp := range p.Subpaths {
		if len(sp) == 0 {
			continue
		}

		xs := make([]float64, len(sp))
		ys := make([]float64, len(sp))

		for i, v := range sp {
			xs[i] = Round(v[0], p.Precision)
			ys[i] = Round(v[1], p.Precision)
		}

		cmds = append(cmds, "M"+formatPair(xs[0], ys[0], p.Precision))

		if p.Relative {
			dxs, dys := deltas(xs), deltas(ys)
			for i := 1; i < len(sp); i++ {
				cmds = append(cmds, "l"+formatPair(dxs[i], dys[i], p.Precision))
			}
		} else {
			for i := 1; i < len(sp); i++ {
				cmds = append(cmds, "L"+formatPair(xs[i], ys[i], p.Precision))
			}
		}

		if p.Closed {
			cmds = append(cmds, "Z")
		}
	}

	return strings.Join(cmds, " ")
}
