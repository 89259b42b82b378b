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

package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"m4o.io/svgmap/model"
)

func TestInitialBoundingBox(t *testing.T) {
	initial := model.InitialBoundingBox()
	assert.Equal(t, initial.Top, model.MinLat)
	assert.Equal(t, initial.Bottom, model.MaxLat)
	assert.Equal(t, initial.Right, model.MinLon)
	assert.Equal(t, initial.Left, model.MaxLon)
	assert.True(t, initial.IsEmpty())
}

func TestGlobeBoundingBox(t *testing.T) {
	globe := model.GlobeBoundingBox()
	assert.Equal(t, "[-180, -90, 180, 90]", globe.String())
	assert.True(t, globe.Contains(model.Position{180, -90}))
	assert.False(t, globe.Contains(model.Position{180.5, 0}))
}

func TestBoundingBox_Contains(t *testing.T) {
	bbox := model.NewBoundingBox(-0.511482, 51.28554, 0.335437, 51.69344)
	eps := 1e-5

	testCases := []struct {
		name     string
		pos      model.Position
		expected bool
	}{
		{"bottom/left", bbox.LowerLeft(), true},
		{"top/right", bbox.UpperRight(), true},
		{"left-E5", model.Position{float64(bbox.Left) - eps, float64(bbox.Bottom)}, false},
		{"bottom-E5", model.Position{float64(bbox.Left), float64(bbox.Bottom) - eps}, false},
		{"right+E5", model.Position{float64(bbox.Right) + eps, float64(bbox.Top)}, false},
		{"top+E5", model.Position{float64(bbox.Right), float64(bbox.Top) + eps}, false},
		{"inside", model.Position{0, 51.5}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, bbox.Contains(tc.pos))
		})
	}
}

func TestBoundingBox_ExpandWithPosition(t *testing.T) {
	bbox := model.InitialBoundingBox()
	bbox.ExpandWithPosition(model.Position{90, -45})
	bbox.ExpandWithPosition(model.Position{-90, 45})

	assert.False(t, bbox.IsEmpty())
	assert.True(t, bbox.Contains(model.Position{90, -45}))
	assert.True(t, bbox.Contains(model.Position{-90, 45}))
	assert.True(t, bbox.Contains(model.Position{-90, -45}))
	assert.True(t, bbox.Contains(model.Position{90, 45}))
}

func TestBoundingBox_ExpandWithBoundingBox(t *testing.T) {
	bbox := model.InitialBoundingBox()
	bbox.ExpandWithBoundingBox(model.NewBoundingBox(70, 20, 90, 45))
	bbox.ExpandWithBoundingBox(model.NewBoundingBox(-20, -20, 20, 20))
	bbox.ExpandWithBoundingBox(model.NewBoundingBox(-90, -45, -70, -25))
	bbox.ExpandWithBoundingBox(model.InitialBoundingBox())

	assert.Equal(t, "[-90, -45, 90, 45]", bbox.String())
}

func TestWorldBoundingBox(t *testing.T) {
	assert.Equal(t, "[-180, -80, 180, 80]", model.WorldBoundingBox().String())
}
