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

// Package model contains the geometry model shared by the map renderer, its
// GeoJSON adapter and its command line tools.
package model

import (
	"errors"
	"strconv"
)

// ErrUnsupportedGeometry is returned when a geometry value is not one of the
// nine supported kinds.
var ErrUnsupportedGeometry = errors.New("unsupported geometry kind")

// Kind enumerates the supported geometry, feature and collection kinds.
type Kind int

const (
	KindPoint Kind = iota
	KindLineString
	KindPolygon
	KindMultiPoint
	KindMultiLineString
	KindMultiPolygon
	KindGeometryCollection
	KindFeature
	KindFeatureCollection
)

var kindNames = [...]string{
	KindPoint:              "Point",
	KindLineString:         "LineString",
	KindPolygon:            "Polygon",
	KindMultiPoint:         "MultiPoint",
	KindMultiLineString:    "MultiLineString",
	KindMultiPolygon:       "MultiPolygon",
	KindGeometryCollection: "GeometryCollection",
	KindFeature:            "Feature",
	KindFeatureCollection:  "FeatureCollection",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}

	return kindNames[k]
}

// Position is a longitude/latitude pair.  Any third coordinate of the source
// data is dropped when a Position is built.
type Position [2]float64

// Lon returns the longitude.
func (p Position) Lon() float64 { return p[0] }

// Lat returns the latitude.
func (p Position) Lat() float64 { return p[1] }

// Properties holds the scalar attributes of a Feature.
type Properties map[string]any

// Lookup returns the value of key.  Keys bound to a JSON null are reported as
// absent.
func (p Properties) Lookup(key string) (any, bool) {
	v, ok := p[key]
	if !ok || v == nil {
		return nil, false
	}

	return v, true
}

// Geometry is one of Point, LineString, Polygon, MultiPoint,
// MultiLineString, MultiPolygon, GeometryCollection, Feature or
// FeatureCollection.
type Geometry interface {
	isGeometry() // prevents extensions

	Kind() Kind
}

// Point is a single position.
type Point struct {
	Coordinates Position
}

// LineString is an open sequence of positions.
type LineString struct {
	Coordinates []Position
}

// Polygon is a list of rings, the first being the exterior.
type Polygon struct {
	Coordinates [][]Position
}

// MultiPoint is a list of positions.
type MultiPoint struct {
	Coordinates []Position
}

// MultiLineString is a list of line strings.
type MultiLineString struct {
	Coordinates [][]Position
}

// MultiPolygon is a list of polygons.
type MultiPolygon struct {
	Coordinates [][][]Position
}

// GeometryCollection groups geometries.  It carries no properties.
type GeometryCollection struct {
	Geometries []Geometry
}

// Feature binds a geometry to its properties.  Geometry may be nil.
type Feature struct {
	ID         any
	Geometry   Geometry
	Properties Properties
}

// FeatureCollection is a list of features.
type FeatureCollection struct {
	Features []Feature
}

var (
	_ Geometry = Point{}
	_ Geometry = LineString{}
	_ Geometry = Polygon{}
	_ Geometry = MultiPoint{}
	_ Geometry = MultiLineString{}
	_ Geometry = MultiPolygon{}
	_ Geometry = GeometryCollection{}
	_ Geometry = Feature{}
	_ Geometry = FeatureCollection{}
)

func (Point) isGeometry()              {}
func (LineString) isGeometry()         {}
func (Polygon) isGeometry()            {}
func (MultiPoint) isGeometry()         {}
func (MultiLineString) isGeometry()    {}
func (MultiPolygon) isGeometry()       {}
func (GeometryCollection) isGeometry() {}
func (Feature) isGeometry()            {}
func (FeatureCollection) isGeometry()  {}

func (Point) Kind() Kind              { return KindPoint }
func (LineString) Kind() Kind         { return KindLineString }
func (Polygon) Kind() Kind            { return KindPolygon }
func (MultiPoint) Kind() Kind         { return KindMultiPoint }
func (MultiLineString) Kind() Kind    { return KindMultiLineString }
func (MultiPolygon) Kind() Kind       { return KindMultiPolygon }
func (GeometryCollection) Kind() Kind { return KindGeometryCollection }
func (Feature) Kind() Kind            { return KindFeature }
func (FeatureCollection) Kind() Kind  { return KindFeatureCollection }
