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

// Package viewport resolves the affine transform that maps projected
// coordinates onto the pixels of a canvas.
package viewport

import (
	"math"

	"github.com/golang/geo/r2"

	"m4o.io/svgmap/internal/walk"
	"m4o.io/svgmap/model"
	"m4o.io/svgmap/projection"
)

// Case identifies the rule that produced a Transform.
type Case int

const (
	// CaseBBox is an explicit geographic bounding box.
	CaseBBox Case = iota + 1

	// CaseScale is an explicit scale around a center.
	CaseScale

	// CaseWorld is the default world bounding box.
	CaseWorld
)

func (c Case) String() string {
	switch c {
	case CaseBBox:
		return "bbox"
	case CaseScale:
		return "scale"
	case CaseWorld:
		return "world"
	default:
		return "unknown"
	}
}

// Params are the viewport parameters of a sheet.  A zero Scale means no
// scale was given.
type Params struct {
	Width  int
	Height int
	BBox   *model.BoundingBox
	Scale  float64
	Center *model.Position
}

// Transform maps projected coordinates to canvas pixels:
//
//	px = OX + SX·(x − CX)
//	py = OY + SY·(y − CY)
type Transform struct {
	SX, SY float64
	CX, CY float64
	OX, OY float64
}

// Apply maps the projected point (x, y) onto the canvas.
func (t Transform) Apply(x, y float64) (px, py float64) {
	return t.OX + t.SX*(x-t.CX), t.OY + t.SY*(y-t.CY)
}

// Viewport is a resolved viewport.
type Viewport struct {
	Transform

	// Case is the rule that was applied.
	Case Case

	// Scale is the ratio of canvas pixels to projected units.
	Scale float64

	// Bounds is the projected rectangle that fills the canvas.
	Bounds r2.Rect

	// Degenerate is set when a zero span was replaced with a unit span.
	Degenerate bool
}

// Resolve computes the viewport of a width by height canvas.  In order of
// precedence:
//
//  1. an explicit bbox is projected at its corners,
//  2. an explicit scale spans the canvas around the projected center, or the
//     centroid of data when no center is given,
//  3. otherwise the world bounding box is used as in 1.
//
// data is the union of the projected bounds of everything to be drawn and is
// only consulted in case 2.
func Resolve(p Params, proj projection.Projection, data r2.Rect) Viewport {
	north := northing(proj)

	var (
		c      Case
		scale  float64
		x0, y0 float64
		x1, y1 float64
	)

	switch {
	case p.BBox != nil:
		c = CaseBBox
		x0, y0, x1, y1 = projectBBox(proj, p.BBox)
	case p.Scale > 0:
		c = CaseScale
		scale = p.Scale

		var center r2.Point

		switch {
		case p.Center != nil:
			center = projectPoint(proj, *p.Center)
		case !data.IsEmpty():
			center = data.Center()
		default:
			center = projectPoint(proj, model.Position{0, 0})
		}

		hw := float64(p.Width) / (2 * scale)
		hh := float64(p.Height) / (2 * scale)

		x0, x1 = center.X-hw, center.X+hw
		y0, y1 = center.Y-north*hh, center.Y+north*hh
	default:
		c = CaseWorld
		x0, y0, x1, y1 = projectBBox(proj, model.WorldBoundingBox())
	}

	degenerate := false

	if x1 == x0 || math.IsNaN(x1-x0) {
		cx := (x0 + x1) / 2
		x0, x1 = cx-0.5, cx+0.5
		degenerate = true
	}

	if y1 == y0 || math.IsNaN(y1-y0) {
		cy := (y0 + y1) / 2
		y0, y1 = cy-north*0.5, cy+north*0.5
		degenerate = true
	}

	w, h := float64(p.Width), float64(p.Height)

	if c != CaseScale {
		scale = math.Hypot(w, h) / math.Hypot(x1-x0, y1-y0)
	}

	return Viewport{
		Transform: Transform{
			SX: w / (x1 - x0),
			SY: -h / (y1 - y0),
			CX: (x0 + x1) / 2,
			CY: (y0 + y1) / 2,
			OX: w / 2,
			OY: h / 2,
		},
		Case:       c,
		Scale:      scale,
		Bounds:     r2.RectFromPoints(r2.Point{X: x0, Y: y0}, r2.Point{X: x1, Y: y1}),
		Degenerate: degenerate,
	}
}

// northing is the sign of the projected y axis when moving north along the
// prime meridian at the equator.
func northing(proj projection.Projection) float64 {
	_, y0 := proj.Project(0, 0)
	_, y1 := proj.Project(0, 1)

	if y1 < y0 {
		return -1
	}

	return 1
}

func projectBBox(proj projection.Projection, b *model.BoundingBox) (x0, y0, x1, y1 float64) {
	ll, ur := projectPoint(proj, b.LowerLeft()), projectPoint(proj, b.UpperRight())

	return ll.X, ll.Y, ur.X, ur.Y
}

func projectPoint(proj projection.Projection, p model.Position) r2.Point {
	x, y := proj.Project(p.Lon(), p.Lat())
	return r2.Point{X: x, Y: y}
}

// ProjectedBounds returns the bounding rectangle of g after projection.
// Geometry without vertices has an empty rectangle.
func ProjectedBounds(g model.Geometry, proj projection.Projection) (r2.Rect, error) {
	rect := r2.EmptyRect()

	err := walk.Walk(g, func(r walk.Record) error {
		rect = rect.Union(RecordBounds(r, proj))
		return nil
	})
	if err != nil {
		return r2.EmptyRect(), err
	}

	return rect, nil
}

// RecordBounds returns the bounding rectangle of the projected vertices of r.
func RecordBounds(r walk.Record, proj projection.Projection) r2.Rect {
	rect := r2.EmptyRect()

	for _, ring := range r.Rings {
		for _, pos := range ring {
			rect = rect.AddPoint(projectPoint(proj, pos))
		}
	}

	return rect
}
