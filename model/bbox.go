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

package model

import (
	"fmt"
)

const (
	MaxLat Degrees = 90.0
	MaxLon Degrees = 180.0
	MinLat Degrees = -90.0
	MinLon Degrees = -180.0
)

// BoundingBox is a geographic extent given by its four edges.
type BoundingBox struct {
	Left   Degrees
	Bottom Degrees
	Right  Degrees
	Top    Degrees
}

// NewBoundingBox creates a BoundingBox from the lower-left and upper-right
// corners, in the (minLon, minLat, maxLon, maxLat) order GeoJSON uses.
func NewBoundingBox(left, bottom, right, top float64) *BoundingBox {
	return &BoundingBox{
		Left:   Degrees(left),
		Bottom: Degrees(bottom),
		Right:  Degrees(right),
		Top:    Degrees(top),
	}
}

// WorldBoundingBox is the extent used when no other viewport information is
// available.  The poles are excluded since they are singular under Mercator.
func WorldBoundingBox() *BoundingBox {
	return NewBoundingBox(-180, -80, 180, 80)
}

// GlobeBoundingBox spans every valid longitude and latitude.
func GlobeBoundingBox() *BoundingBox {
	return &BoundingBox{Left: MinLon, Bottom: MinLat, Right: MaxLon, Top: MaxLat}
}

// InitialBoundingBox creates a BoundingBox that is meant to be expanded.
func InitialBoundingBox() *BoundingBox {
	return &BoundingBox{
		Top:    MinLat,
		Left:   MaxLon,
		Bottom: MaxLat,
		Right:  MinLon,
	}
}

// IsEmpty reports whether nothing has been added to an initial bounding box.
func (b *BoundingBox) IsEmpty() bool {
	return b.Left > b.Right || b.Bottom > b.Top
}

// Contains checks if the bounding box contains the position.
func (b *BoundingBox) Contains(p Position) bool {
	lon, lat := Degrees(p.Lon()), Degrees(p.Lat())

	return b.Left <= lon && lon <= b.Right && b.Bottom <= lat && lat <= b.Top
}

// ExpandWithPosition grows the bounding box to include p.
func (b *BoundingBox) ExpandWithPosition(p Position) {
	lon, lat := Degrees(p.Lon()), Degrees(p.Lat())

	if b.Top < lat {
		b.Top = lat
	}

	if b.Bottom > lat {
		b.Bottom = lat
	}

	if b.Left > lon {
		b.Left = lon
	}

	if b.Right < lon {
		b.Right = lon
	}
}

// ExpandWithBoundingBox grows the bounding box to include bbox.
func (b *BoundingBox) ExpandWithBoundingBox(bbox *BoundingBox) {
	if bbox.IsEmpty() {
		return
	}

	b.ExpandWithPosition(bbox.LowerLeft())
	b.ExpandWithPosition(bbox.UpperRight())
}

// LowerLeft returns the south-west corner.
func (b *BoundingBox) LowerLeft() Position {
	return Position{float64(b.Left), float64(b.Bottom)}
}

// UpperRight returns the north-east corner.
func (b *BoundingBox) UpperRight() Position {
	return Position{float64(b.Right), float64(b.Top)}
}

func (b *BoundingBox) String() string {
	return fmt.Sprintf("[%s, %s, %s, %s]", b.Left, b.Bottom, b.Right, b.Top)
}
