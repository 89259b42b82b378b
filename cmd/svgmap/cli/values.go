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

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"m4o.io/svgmap/model"
)

// -- *model.BoundingBox Value
type bboxValue struct {
	value **model.BoundingBox
}

// NewBBoxValue creates a cobra Value for a bounding box written as
// "left,bottom,right,top" in degrees.
func NewBBoxValue(p **model.BoundingBox) pflag.Value {
	return &bboxValue{value: p}
}

func (b *bboxValue) Set(val string) error {
	d, err := parseDegrees(val, 4)
	if err != nil {
		return err
	}

	bbox := &model.BoundingBox{Left: d[0], Bottom: d[1], Right: d[2], Top: d[3]}

	if !onGlobe(bbox.LowerLeft()) || !onGlobe(bbox.UpperRight()) {
		return fmt.Errorf("bounding box %s is outside %s", bbox, model.GlobeBoundingBox())
	}

	*b.value = bbox

	return nil
}

func (b *bboxValue) Type() string {
	return "bbox"
}

func (b *bboxValue) String() string {
	if *b.value == nil {
		return ""
	}

	bb := *b.value

	return joinDegrees(bb.Left, bb.Bottom, bb.Right, bb.Top)
}

// -- *model.Position Value
type positionValue struct {
	value **model.Position
}

// NewPositionValue creates a cobra Value for a position written as
// "lon,lat" in degrees.
func NewPositionValue(p **model.Position) pflag.Value {
	return &positionValue{value: p}
}

func (c *positionValue) Set(val string) error {
	d, err := parseDegrees(val, 2)
	if err != nil {
		return err
	}

	pos := model.Position{float64(d[0]), float64(d[1])}

	if !onGlobe(pos) {
		return fmt.Errorf("position %s,%s is outside %s", d[0], d[1], model.GlobeBoundingBox())
	}

	*c.value = &pos

	return nil
}

func (c *positionValue) Type() string {
	return "lon,lat"
}

func (c *positionValue) String() string {
	if *c.value == nil {
		return ""
	}

	p := *c.value

	return joinDegrees(model.Degrees(p.Lon()), model.Degrees(p.Lat()))
}

func onGlobe(p model.Position) bool {
	return model.GlobeBoundingBox().Contains(p)
}

func parseDegrees(val string, n int) ([]model.Degrees, error) {
	parts := strings.Split(val, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("expected %d comma separated numbers but got %q", n, val)
	}

	out := make([]model.Degrees, n)

	for i, p := range parts {
		d, err := model.ParseDegrees(p)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", p, err)
		}

		out[i] = d
	}

	return out, nil
}

func joinDegrees(ds ...model.Degrees) string {
	parts := make([]string, len(ds))
	for i, d := range ds {
		parts[i] = d.String()
	}

	return strings.Join(parts, ",")
}
