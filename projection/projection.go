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

// Package projection maps geographic longitude/latitude pairs onto a plane.
//
// Every projection is a stateless value and may be shared freely between
// goroutines.
package projection

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"m4o.io/svgmap/model"
)

// EarthRadius is the mean radius of the earth in metres.
const EarthRadius = 6371000.0

// ErrUnsupportedProjection is returned by ByName for unknown names.
var ErrUnsupportedProjection = errors.New("unsupported projection")

// Projection maps a longitude and latitude, in degrees, to planar x and y.
type Projection interface {
	Project(lon, lat float64) (x, y float64)
}

// Func adapts an ordinary function to a Projection.
type Func func(lon, lat float64) (x, y float64)

// Project calls f(lon, lat).
func (f Func) Project(lon, lat float64) (x, y float64) {
	return f(lon, lat)
}

// Identity returns coordinates unchanged.  It is meant for data that is
// already planar.
type Identity struct{}

// Project implements Projection.
func (Identity) Project(lon, lat float64) (x, y float64) {
	return lon, lat
}

// SphericalMercator is the Mercator projection of a sphere of radius R.  The
// y axis grows southward.  Latitudes of ±90 project to infinity.
type SphericalMercator struct {
	R float64
}

// Project implements Projection.
func (m SphericalMercator) Project(lon, lat float64) (x, y float64) {
	x = m.R / math.Pi * (model.Degrees(lon).Radians() + math.Pi)
	y = m.R / math.Pi * (math.Pi - math.Log(math.Tan(math.Pi*(0.25+lat/360))))

	return x, y
}

// SphericalStereographic is the azimuthal stereographic projection of a
// sphere, with scale factor K0, central longitude Lon0 and central latitude
// Lat1.  Lat1 of ±90 gives the polar aspects.
type SphericalStereographic struct {
	K0   float64
	Lon0 float64
	Lat1 float64
}

// Project implements Projection.
func (s SphericalStereographic) Project(lon, lat float64) (x, y float64) {
	lambda0 := model.Degrees(s.Lon0).Radians()
	phi1 := model.Degrees(s.Lat1).Radians()
	lambda := model.Degrees(lon).Radians()
	phi := model.Degrees(lat).Radians()

	sinPhi1, cosPhi1 := math.Sincos(phi1)
	sinPhi, cosPhi := math.Sincos(phi)
	sinDl, cosDl := math.Sincos(lambda - lambda0)

	k := 2 * s.K0 / (1 + sinPhi1*sinPhi + cosPhi1*cosPhi*cosDl)
	x = k * cosPhi * sinDl
	y = k * (cosPhi1*sinPhi - sinPhi1*cosPhi*cosDl)

	return x, y
}

// Preconfigured projections.
var (
	WebMercator             Projection = SphericalMercator{R: 128}
	NorthPolarStereographic Projection = SphericalStereographic{K0: EarthRadius, Lon0: 0, Lat1: 90}
	SouthPolarStereographic Projection = SphericalStereographic{K0: EarthRadius, Lon0: 0, Lat1: -90}
)

var byName = map[string]Projection{
	"identity":                  Identity{},
	"mercator":                  WebMercator,
	"webmercator":               WebMercator,
	"north-polar-stereographic": NorthPolarStereographic,
	"south-polar-stereographic": SouthPolarStereographic,
}

// Names lists the names accepted by ByName.
func Names() []string {
	return []string{
		"identity",
		"mercator",
		"webmercator",
		"north-polar-stereographic",
		"south-polar-stereographic",
	}
}

// ByName looks up one of the preconfigured projections.  Matching ignores
// case and surrounding white space.
func ByName(name string) (Projection, error) {
	p, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedProjection, name)
	}

	return p, nil
}
