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

// Package geojson reads GeoJSON documents into model geometry.
package geojson

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"m4o.io/svgmap/model"
)

var ErrInvalidDocument = errors.New("invalid GeoJSON document")

// Decode parses a GeoJSON geometry, feature or feature collection.
// Coordinates beyond longitude and latitude are dropped.  Numeric properties
// are kept as json.Number so that 5 and 5.0 remain distinct.
func Decode(data []byte) (model.Geometry, error) {
	var head struct {
		Type string `json:"type"`
	}

	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	switch head.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
		}

		var props struct {
			Features []featureProperties `json:"features"`
		}

		if err = decodeNumbers(data, &props); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
		}

		for i, f := range fc.Features {
			if i < len(props.Features) {
				f.Properties = props.Features[i].Properties
			}
		}

		mfc, err := FromFeatureCollection(fc)
		if err != nil {
			return nil, err
		}

		return mfc, nil
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
		}

		var props featureProperties
		if err = decodeNumbers(data, &props); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
		}

		f.Properties = props.Properties

		mf, err := FromFeature(f)
		if err != nil {
			return nil, err
		}

		return mf, nil
	case "":
		return nil, fmt.Errorf("%w: missing type member", ErrInvalidDocument)
	case "Point", "MultiPoint", "LineString", "MultiLineString", "Polygon", "MultiPolygon", "GeometryCollection":
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
		}

		return FromOrb(g.Geometry())
	default:
		return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidDocument, head.Type)
	}
}

type featureProperties struct {
	Properties map[string]any `json:"properties"`
}

// decodeNumbers unmarshals data into v with numbers decoded as json.Number.
func decodeNumbers(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	return dec.Decode(v)
}

// DecodeString is Decode for documents held in strings.
func DecodeString(s string) (model.Geometry, error) {
	return Decode([]byte(s))
}

// FromFeatureCollection converts an orb feature collection.
func FromFeatureCollection(fc *geojson.FeatureCollection) (model.FeatureCollection, error) {
	out := model.FeatureCollection{Features: make([]model.Feature, 0, len(fc.Features))}

	for i, f := range fc.Features {
		mf, err := FromFeature(f)
		if err != nil {
			return model.FeatureCollection{}, fmt.Errorf("feature %d: %w", i, err)
		}

		out.Features = append(out.Features, mf)
	}

	return out, nil
}

// FromFeature converts an orb feature.  A feature without geometry converts
// to a feature whose Geometry is nil.
func FromFeature(f *geojson.Feature) (model.Feature, error) {
	mf := model.Feature{ID: f.ID, Properties: model.Properties(f.Properties)}

	if f.Geometry == nil {
		return mf, nil
	}

	g, err := FromOrb(f.Geometry)
	if err != nil {
		return model.Feature{}, err
	}

	mf.Geometry = g

	return mf, nil
}

// FromOrb converts an orb geometry.  Rings and bounds become polygons.
func FromOrb(g orb.Geometry) (model.Geometry, error) {
	switch v := g.(type) {
	case orb.Point:
		return model.Point{Coordinates: position(v)}, nil
	case orb.MultiPoint:
		return model.MultiPoint{Coordinates: positions(v)}, nil
	case orb.LineString:
		return model.LineString{Coordinates: positions(v)}, nil
	case orb.MultiLineString:
		lines := make([][]model.Position, len(v))
		for i, ls := range v {
			lines[i] = positions(ls)
		}

		return model.MultiLineString{Coordinates: lines}, nil
	case orb.Ring:
		return model.Polygon{Coordinates: [][]model.Position{positions(v)}}, nil
	case orb.Polygon:
		return model.Polygon{Coordinates: rings(v)}, nil
	case orb.MultiPolygon:
		polys := make([][][]model.Position, len(v))
		for i, p := range v {
			polys[i] = rings(p)
		}

		return model.MultiPolygon{Coordinates: polys}, nil
	case orb.Bound:
		return model.Polygon{Coordinates: rings(v.ToPolygon())}, nil
	case orb.Collection:
		gc := model.GeometryCollection{Geometries: make([]model.Geometry, len(v))}

		for i, child := range v {
			mg, err := FromOrb(child)
			if err != nil {
				return nil, err
			}

			gc.Geometries[i] = mg
		}

		return gc, nil
	default:
		return nil, fmt.Errorf("%w: %T", model.ErrUnsupportedGeometry, g)
	}
}

func position(p orb.Point) model.Position {
	return model.Position{p[0], p[1]}
}

func positions[S ~[]orb.Point](points S) []model.Position {
	out := make([]model.Position, len(points))
	for i, p := range points {
		out[i] = position(p)
	}

	return out
}

func rings(p orb.Polygon) [][]model.Position {
	out := make([][]model.Position, len(p))
	for i, r := range p {
		out[i] = positions(r)
	}

	return out
}
