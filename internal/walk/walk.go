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

// Package walk flattens nested geometry values into a pre-ordered list of
// drawable records.
package walk

import (
	"fmt"

	"m4o.io/svgmap/model"
)

// Record is a single terminal geometry together with the properties of the
// feature that contained it.  Rings holds the geometry's vertex sequences:
// one per point for Point and MultiPoint, one per line for LineString and
// MultiLineString, and one per ring for Polygon and MultiPolygon.
type Record struct {
	Kind       model.Kind
	Rings      [][]model.Position
	Properties model.Properties
}

// Closed reports whether the subpaths of the record are closed when drawn.
func (r Record) Closed() bool {
	switch r.Kind {
	case model.KindPoint, model.KindMultiPoint, model.KindPolygon, model.KindMultiPolygon:
		return true
	default:
		return false
	}
}

// Dotted reports whether the record is drawn as dots.
func (r Record) Dotted() bool {
	return r.Kind == model.KindPoint || r.Kind == model.KindMultiPoint
}

type item struct {
	geom  model.Geometry
	props model.Properties
}

// Flatten expands g into its terminal geometries in pre-order.  Features pass
// their properties to every geometry beneath them.  Geometry collections have
// no properties of their own, so a bare collection yields records without
// properties.  A feature without geometry yields nothing.
//
// The traversal uses an explicit stack, so arbitrarily deep nesting does not
// grow the goroutine stack.
func Flatten(g model.Geometry) ([]Record, error) {
	var records []Record

	err := Walk(g, func(r Record) error {
		records = append(records, r)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}

// Walk calls fn for each terminal geometry of g in pre-order.  Walking stops
// at the first error returned by fn.
func Walk(g model.Geometry, fn func(Record) error) error {
	stack := []item{{geom: g}}

	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch v := deref(it.geom).(type) {
		case model.FeatureCollection:
			for i := len(v.Features) - 1; i >= 0; i-- {
				stack = append(stack, item{geom: v.Features[i]})
			}
		case model.Feature:
			if v.Geometry == nil {
				continue
			}

			stack = append(stack, item{geom: v.Geometry, props: v.Properties})
		case model.GeometryCollection:
			for i := len(v.Geometries) - 1; i >= 0; i-- {
				stack = append(stack, item{geom: v.Geometries[i], props: it.props})
			}
		case model.Point:
			if err := fn(Record{
				Kind:       model.KindPoint,
				Rings:      [][]model.Position{{v.Coordinates}},
				Properties: it.props,
			}); err != nil {
				return err
			}
		case model.LineString:
			if err := fn(Record{
				Kind:       model.KindLineString,
				Rings:      [][]model.Position{v.Coordinates},
				Properties: it.props,
			}); err != nil {
				return err
			}
		case model.Polygon:
			if err := fn(Record{
				Kind:       model.KindPolygon,
				Rings:      v.Coordinates,
				Properties: it.props,
			}); err != nil {
				return err
			}
		case model.MultiPoint:
			rings := make([][]model.Position, len(v.Coordinates))
			for i, p := range v.Coordinates {
				rings[i] = []model.Position{p}
			}

			if err := fn(Record{
				Kind:       model.KindMultiPoint,
				Rings:      rings,
				Properties: it.props,
			}); err != nil {
				return err
			}
		case model.MultiLineString:
			if err := fn(Record{
				Kind:       model.KindMultiLineString,
				Rings:      v.Coordinates,
				Properties: it.props,
			}); err != nil {
				return err
			}
		case model.MultiPolygon:
			var rings [][]model.Position
			for _, poly := range v.Coordinates {
				rings = append(rings, poly...)
			}

			if err := fn(Record{
				Kind:       model.KindMultiPolygon,
				Rings:      rings,
				Properties: it.props,
			}); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %T", model.ErrUnsupportedGeometry, it.geom)
		}
	}

	return nil
}

// deref turns pointers to geometry values into the values themselves.
func deref(g model.Geometry) model.Geometry {
	switch v := g.(type) {
	case *model.Point:
		if v != nil {
			return *v
		}
	case *model.LineString:
		if v != nil {
			return *v
		}
	case *model.Polygon:
		if v != nil {
			return *v
		}
	case *model.MultiPoint:
		if v != nil {
			return *v
		}
	case *model.MultiLineString:
		if v != nil {
			return *v
		}
	case *model.MultiPolygon:
		if v != nil {
			return *v
		}
	case *model.GeometryCollection:
		if v != nil {
			return *v
		}
	case *model.Feature:
		if v != nil {
			return *v
		}
	case *model.FeatureCollection:
		if v != nil {
			return *v
		}
	default:
		return g
	}

	return nil
}
