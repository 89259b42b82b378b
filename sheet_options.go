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

package svgmap

import (
	"log/slog"

	"m4o.io/svgmap/model"
	"m4o.io/svgmap/projection"
)

const (
	// DefaultWidth is the default canvas width in pixels.
	DefaultWidth = 500

	// DefaultHeight is the default canvas height in pixels.
	DefaultHeight = 500
)

// sheetOptions provides optional configuration parameters for Sheet construction.
type sheetOptions struct {
	width    int
	height   int
	style    string
	proj     projection.Projection
	projName string // resolved by NewSheet, overrides proj
	bbox     *model.BoundingBox
	scale    *float64
	center   *model.Position
	logger   *slog.Logger
}

// SheetOption configures how we set up the sheet.
type SheetOption func(*sheetOptions)

// WithWidth lets you set the canvas width in pixels.  The default is 500.
func WithWidth(w int) SheetOption {
	return func(o *sheetOptions) {
		o.width = w
	}
}

// WithHeight lets you set the canvas height in pixels.  The default is 500.
func WithHeight(h int) SheetOption {
	return func(o *sheetOptions) {
		o.height = h
	}
}

// WithStyle sets the CSS stylesheet embedded in the document.
func WithStyle(css string) SheetOption {
	return func(o *sheetOptions) {
		o.style = css
	}
}

// WithProjection sets the projection.  The default is projection.WebMercator.
func WithProjection(p projection.Projection) SheetOption {
	return func(o *sheetOptions) {
		o.proj = p
		o.projName = ""
	}
}

// WithProjectionName selects one of the preconfigured projections by name.
// NewSheet fails with projection.ErrUnsupportedProjection for unknown names.
func WithProjectionName(name string) SheetOption {
	return func(o *sheetOptions) {
		o.projName = name
	}
}

// WithBBox sets the geographic extent of the map.  It takes precedence over
// the scale and the center.
func WithBBox(left, bottom, right, top float64) SheetOption {
	return WithBoundingBox(model.NewBoundingBox(left, bottom, right, top))
}

// WithBoundingBox is WithBBox for an existing bounding box.
func WithBoundingBox(bbox *model.BoundingBox) SheetOption {
	return func(o *sheetOptions) {
		o.bbox = bbox
	}
}

// WithScale sets the number of pixels per projected unit.  Without a bounding
// box, the canvas is filled around the center at this scale.
func WithScale(scale float64) SheetOption {
	return func(o *sheetOptions) {
		o.scale = &scale
	}
}

// WithCenter sets the geographic center used together with WithScale.
// Without it, the centroid of the projected data is used.
func WithCenter(lon, lat float64) SheetOption {
	return func(o *sheetOptions) {
		o.center = &model.Position{lon, lat}
	}
}

// WithLogger lets you replace slog.Default().
func WithLogger(l *slog.Logger) SheetOption {
	return func(o *sheetOptions) {
		o.logger = l
	}
}

// defaultSheetConfig provides a default configuration for sheets.
func defaultSheetConfig() sheetOptions {
	return sheetOptions{
		width:  DefaultWidth,
		height: DefaultHeight,
		proj:   projection.WebMercator,
	}
}
