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

package geojson_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"m4o.io/svgmap/geojson"
	"m4o.io/svgmap/model"
)

const vancouverIsland = "testdata/vancouver_island.geojson"

func TestDecode_Geometries(t *testing.T) {
	testCases := []struct {
		name     string
		doc      string
		expected model.Geometry
	}{
		{
			"point",
			`{"type": "Point", "coordinates": [1.0, 3.0]}`,
			model.Point{Coordinates: model.Position{1, 3}},
		},
		{
			"point with elevation",
			`{"type": "Point", "coordinates": [1.0, 3.0, 250.0]}`,
			model.Point{Coordinates: model.Position{1, 3}},
		},
		{
			"line string",
			`{"type": "LineString", "coordinates": [[0, 0], [1, 1]]}`,
			model.LineString{Coordinates: []model.Position{{0, 0}, {1, 1}}},
		},
		{
			"polygon",
			`{"type": "Polygon", "coordinates": [[[0, 0], [1, 0], [1, 1], [0, 0]]]}`,
			model.Polygon{Coordinates: [][]model.Position{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}}},
		},
		{
			"multi point",
			`{"type": "MultiPoint", "coordinates": [[0, 0], [1, 1]]}`,
			model.MultiPoint{Coordinates: []model.Position{{0, 0}, {1, 1}}},
		},
		{
			"multi line string",
			`{"type": "MultiLineString", "coordinates": [[[0, 0], [1, 1]], [[2, 2], [3, 3]]]}`,
			model.MultiLineString{Coordinates: [][]model.Position{{{0, 0}, {1, 1}}, {{2, 2}, {3, 3}}}},
		},
		{
			"multi polygon",
			`{"type": "MultiPolygon", "coordinates": [[[[0, 0], [1, 0], [0, 0]]], [[[5, 5], [6, 5], [5, 5]]]]}`,
			model.MultiPolygon{Coordinates: [][][]model.Position{
				{{{0, 0}, {1, 0}, {0, 0}}},
				{{{5, 5}, {6, 5}, {5, 5}}},
			}},
		},
		{
			"geometry collection",
			`{"type": "GeometryCollection", "geometries": [
				{"type": "Point", "coordinates": [5, 2]},
				{"type": "LineString", "coordinates": [[0, 0], [1, 1]]}
			]}`,
			model.GeometryCollection{Geometries: []model.Geometry{
				model.Point{Coordinates: model.Position{5, 2}},
				model.LineString{Coordinates: []model.Position{{0, 0}, {1, 1}}},
			}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := geojson.DecodeString(tc.doc)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, g)
		})
	}
}

func TestDecode_Feature(t *testing.T) {
	g, err := geojson.DecodeString(`{"type": "Feature",
		"geometry": {"type": "Point", "coordinates": [1.0, 3.0]},
		"properties": {"size": 5.0, "name": "dot"}}`)
	require.NoError(t, err)

	f, ok := g.(model.Feature)
	require.True(t, ok)

	assert.Equal(t, model.Point{Coordinates: model.Position{1, 3}}, f.Geometry)
	assert.Equal(t, json.Number("5.0"), f.Properties["size"])
	assert.Equal(t, "dot", f.Properties["name"])
}

func TestDecode_NumericProperties(t *testing.T) {
	g, err := geojson.DecodeString(`{"type": "FeatureCollection", "features": [
		{"type": "Feature", "geometry": null, "properties": {"size": 5, "f": 5.0}},
		{"type": "Feature", "geometry": null, "properties": null},
		{"type": "Feature", "geometry": null, "properties": {"nested": {"n": 7}}}]}`)
	require.NoError(t, err)

	fc, ok := g.(model.FeatureCollection)
	require.True(t, ok)
	require.Len(t, fc.Features, 3)

	assert.Equal(t, model.Properties{"size": json.Number("5"), "f": json.Number("5.0")}, fc.Features[0].Properties)
	assert.Empty(t, fc.Features[1].Properties)
	assert.Equal(t, map[string]any{"n": json.Number("7")}, fc.Features[2].Properties["nested"])
}

func TestDecode_FeatureWithoutGeometry(t *testing.T) {
	g, err := geojson.DecodeString(`{"type": "Feature", "geometry": null, "properties": {"a": 1}}`)
	require.NoError(t, err)

	f, ok := g.(model.Feature)
	require.True(t, ok)
	assert.Nil(t, f.Geometry)
}

func TestDecode_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		doc  string
	}{
		{"not json", `{"type": `},
		{"no type", `{"coordinates": [1, 2]}`},
		{"unknown type", `{"type": "Circle", "coordinates": [1, 2]}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := geojson.DecodeString(tc.doc)
			assert.ErrorIs(t, err, geojson.ErrInvalidDocument)
		})
	}
}

func TestFromOrb(t *testing.T) {
	g, err := geojson.FromOrb(orb.Ring{{0, 0}, {1, 0}, {1, 1}, {0, 0}})
	require.NoError(t, err)
	assert.Equal(t, model.KindPolygon, g.Kind())

	g, err = geojson.FromOrb(orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{2, 1}})
	require.NoError(t, err)

	p, ok := g.(model.Polygon)
	require.True(t, ok)
	require.Len(t, p.Coordinates, 1)
	assert.Len(t, p.Coordinates[0], 5)

	_, err = geojson.FromOrb(nil)
	assert.ErrorIs(t, err, model.ErrUnsupportedGeometry)
}

func TestLoadFile(t *testing.T) {
	for _, path := range []string{vancouverIsland, vancouverIsland + ".gz"} {
		t.Run(path, func(t *testing.T) {
			g, err := geojson.LoadFile(path)
			require.NoError(t, err)

			fc, ok := g.(model.FeatureCollection)
			require.True(t, ok)
			assert.Len(t, fc.Features, 22)

			for _, f := range fc.Features {
				assert.NotNil(t, f.Geometry)
				assert.Contains(t, f.Properties, "name")
			}
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := geojson.LoadFile("testdata/missing.geojson")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFile_Opener(t *testing.T) {
	opened := ""

	g, err := geojson.LoadFile("memory.geojson", geojson.WithOpener(func(path string) (io.ReadCloser, error) {
		opened = path
		return io.NopCloser(strings.NewReader(`{"type": "Point", "coordinates": [7, 8]}`)), nil
	}))
	require.NoError(t, err)

	assert.Equal(t, "memory.geojson", opened)
	assert.Equal(t, model.Point{Coordinates: model.Position{7, 8}}, g)
}

func TestLoadFiles(t *testing.T) {
	docs := map[string]string{
		"a": `{"type": "Point", "coordinates": [1, 1]}`,
		"b": `{"type": "Point", "coordinates": [2, 2]}`,
		"c": `{"type": "Point", "coordinates": [3, 3]}`,
		"d": `{"type": "Point", "coordinates": [4, 4]}`,
	}

	open := func(path string) (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(docs[path])), nil
	}

	gs, err := geojson.LoadFiles(context.Background(), []string{"d", "b", "a", "c"},
		geojson.WithOpener(open), geojson.WithNCpus(3))
	require.NoError(t, err)
	require.Len(t, gs, 4)

	for i, lon := range []float64{4, 2, 1, 3} {
		assert.Equal(t, model.Point{Coordinates: model.Position{lon, lon}}, gs[i])
	}
}

func TestLoadFiles_Error(t *testing.T) {
	boom := errors.New("boom")

	open := func(path string) (io.ReadCloser, error) {
		if path == "bad" {
			return nil, boom
		}

		return io.NopCloser(strings.NewReader(`{"type": "Point", "coordinates": [1, 1]}`)), nil
	}

	_, err := geojson.LoadFiles(context.Background(), []string{"ok", "bad", "ok"}, geojson.WithOpener(open))
	assert.ErrorIs(t, err, boom)
}

func TestLoadFiles_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := geojson.LoadFiles(ctx, []string{vancouverIsland})
	assert.ErrorIs(t, err, context.Canceled)
}
