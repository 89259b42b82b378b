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

package projection

import (
	"math"

	"m4o.io/svgmap/model"
)

// haversineThreshold is the separation, in radians, below which the
// spherical law of cosines loses too much precision.
const haversineThreshold = 0.01

// SphereDistance returns the great circle distance between two positions
// given in degrees, on a sphere of the given radius.
func SphereDistance(lon1, lat1, lon2, lat2, radius float64) float64 {
	phi1 := model.Degrees(lat1).Radians()
	phi2 := model.Degrees(lat2).Radians()
	dx := math.Abs(model.Degrees(lon1 - lon2).Radians())
	dy := math.Abs(phi1 - phi2)

	var d float64
	if dx > haversineThreshold || dy > haversineThreshold {
		c := math.Sin(phi1)*math.Sin(phi2) + math.Cos(phi1)*math.Cos(phi2)*math.Cos(dx)
		d = math.Acos(math.Max(-1, math.Min(1, c)))
	} else {
		h := math.Pow(math.Sin(dy/2), 2) + math.Cos(phi1)*math.Cos(phi2)*math.Pow(math.Sin(dx/2), 2)
		d = 2 * math.Asin(math.Sqrt(h))
	}

	return radius * d
}
