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

// Package pathbuild turns flattened geometry into path primitives.
package pathbuild

import (
	"fmt"

	"m4o.io/svgmap/internal/viewport"
	"m4o.io/svgmap/internal/walk"
	"m4o.io/svgmap/model"
	"m4o.io/svgmap/projection"
	"m4o.io/svgmap/svg"
)

// Options control how a record is drawn.
type Options struct {
	// Precision is the number of decimal places kept in coordinates.
	Precision int

	// Relative emits every vertex after the first of a subpath as a delta
	// from its predecessor.
	Relative bool

	// ClassName, when set, is written as the class attribute.
	ClassName string

	// IDName, when set, is written as the id attribute.
	IDName string
}

// Builder projects and transforms the vertices of records and assembles
// them into paths.
type Builder struct {
	proj      projection.Projection
	transform viewport.Transform
}

// New creates a Builder drawing through proj and then t.
func New(proj projection.Projection, t viewport.Transform) *Builder {
	return &Builder{proj: proj, transform: t}
}

// Build converts r into exactly one path.  Lines are open subpaths; polygon
// rings are closed subpaths; points are closed single vertex subpaths drawn
// with a round line cap so they show up as dots.
func (b *Builder) Build(r walk.Record, opts Options) (*svg.Path, error) {
	switch r.Kind {
	case model.KindPoint, model.KindLineString, model.KindPolygon,
		model.KindMultiPoint, model.KindMultiLineString, model.KindMultiPolygon:
	default:
		return nil, fmt.Errorf("%w: %s", model.ErrUnsupportedGeometry, r.Kind)
	}

	subpaths := make([][]svg.Vertex, len(r.Rings))
	for i, ring := range r.Rings {
		subpaths[i] = b.vertices(ring)
	}

	p := svg.NewPath(subpaths, r.Closed(), opts.Precision)
	p.Relative = opts.Relative

	attrs := p.Attributes()

	if r.Dotted() {
		attrs.Set("stroke-linecap", "round")
	}

	if opts.ClassName != "" {
		attrs.Set("class", opts.ClassName)
	}

	if opts.IDName != "" {
		attrs.Set("id", opts.IDName)
	}

	return p, nil
}

func (b *Builder) vertices(ring []model.Position) []svg.Vertex {
	vs := make([]svg.Vertex, len(ring))

	for i, pos := range ring {
		x, y := b.proj.Project(pos.Lon(), pos.Lat())
		vs[i][0], vs[i][1] = b.transform.Apply(x, y)
	}

	return vs
}
