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

// Package svgmap renders geographic vector data as SVG maps.
//
// A Sheet accumulates geometry and ready-made shapes, then on Close projects
// every vertex, fits the result onto the canvas and writes the document to
// its destination exactly once.
package svgmap

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/golang/geo/r2"

	"m4o.io/svgmap/geojson"
	"m4o.io/svgmap/internal/pathbuild"
	"m4o.io/svgmap/internal/style"
	"m4o.io/svgmap/internal/viewport"
	"m4o.io/svgmap/internal/walk"
	"m4o.io/svgmap/model"
	"m4o.io/svgmap/projection"
	"m4o.io/svgmap/svg"
)

var (
	ErrInvalidDimensions = errors.New("canvas width and height must be positive")
	ErrInvalidScale      = errors.New("scale must be positive")
	ErrFinalized         = errors.New("sheet already finalized")
)

// Transform maps projected coordinates to canvas pixels.
type Transform = viewport.Transform

// entity is either geometry with its drawing options or ready-made shapes.
type entity struct {
	geom  model.Geometry
	opts  addOptions
	nodes []svg.Primitive
}

// Sheet is a map image under construction.  A Sheet is not safe for
// concurrent use.
type Sheet struct {
	cfg  sheetOptions
	dest io.Writer
	log  *slog.Logger

	entities []entity

	finalized bool
	viewport  viewport.Viewport
	doc       *svg.Element
	out       []byte
}

// NewSheet returns a new sheet, configured with options, that writes the
// finished document to dest.  dest may be nil when only Bytes is wanted.
func NewSheet(dest io.Writer, opts ...SheetOption) (*Sheet, error) {
	cfg := defaultSheetConfig()

	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.width <= 0 || cfg.height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, cfg.width, cfg.height)
	}

	if cfg.scale != nil && !(*cfg.scale > 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScale, *cfg.scale)
	}

	if cfg.projName != "" {
		p, err := projection.ByName(cfg.projName)
		if err != nil {
			return nil, err
		}

		cfg.proj = p
	}

	if cfg.proj == nil {
		return nil, fmt.Errorf("%w: nil", projection.ErrUnsupportedProjection)
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Sheet{cfg: cfg, dest: dest, log: logger}, nil
}

// Width returns the canvas width in pixels.
func (s *Sheet) Width() int {
	return s.cfg.width
}

// Height returns the canvas height in pixels.
func (s *Sheet) Height() int {
	return s.cfg.height
}

// Projection returns the projection of the sheet.
func (s *Sheet) Projection() projection.Projection {
	return s.cfg.proj
}

// Len returns the number of pending entities.
func (s *Sheet) Len() int {
	return len(s.entities)
}

// SetStyle replaces the CSS stylesheet embedded in the document.
func (s *Sheet) SetStyle(css string) error {
	if s.finalized {
		return ErrFinalized
	}

	s.cfg.style = css

	return nil
}

// Add queues g to be drawn with the given options.  Geometry is drawn in the
// order it is added.
func (s *Sheet) Add(g model.Geometry, opts ...AddOption) error {
	if s.finalized {
		return ErrFinalized
	}

	s.entities = append(s.entities, entity{geom: g, opts: newAddOptions(opts)})

	return nil
}

// AddGeoJSON parses doc and queues it like Add.
func (s *Sheet) AddGeoJSON(doc string, opts ...AddOption) error {
	if s.finalized {
		return ErrFinalized
	}

	g, err := geojson.DecodeString(doc)
	if err != nil {
		return err
	}

	return s.Add(g, opts...)
}

// AddGeoJSONFile loads the GeoJSON file at path and queues it like Add.
// Compressed files are recognised by their extension.
func (s *Sheet) AddGeoJSONFile(path string, opts ...AddOption) error {
	if s.finalized {
		return ErrFinalized
	}

	g, err := geojson.LoadFile(path)
	if err != nil {
		return err
	}

	return s.Add(g, opts...)
}

// AddNodes queues ready-made shapes.  Their coordinates are canvas pixels and
// are neither projected nor transformed.
func (s *Sheet) AddNodes(nodes ...svg.Primitive) error {
	if s.finalized {
		return ErrFinalized
	}

	if len(nodes) == 0 {
		return nil
	}

	for i, n := range nodes {
		if n == nil {
			return fmt.Errorf("node %d is nil", i)
		}
	}

	s.entities = append(s.entities, entity{nodes: nodes})

	return nil
}

// Close finalizes the sheet: it resolves the viewport, renders every entity
// and writes the document to the destination.  Closing a sheet a second time
// returns ErrFinalized.
func (s *Sheet) Close() error {
	if s.finalized {
		return ErrFinalized
	}

	s.finalized = true

	doc, err := s.render()
	if err != nil {
		return err
	}

	s.doc = doc
	s.out = doc.Bytes()

	if s.dest == nil {
		return nil
	}

	if _, err := s.dest.Write(s.out); err != nil {
		return fmt.Errorf("unable to write map: %w", err)
	}

	return nil
}

// Bytes returns the serialized document of a closed sheet, or nil if the
// sheet has not been closed successfully.
func (s *Sheet) Bytes() []byte {
	if s.out == nil {
		return nil
	}

	out := make([]byte, len(s.out))
	copy(out, s.out)

	return out
}

// Document returns the document tree of a closed sheet.
func (s *Sheet) Document() *svg.Element {
	return s.doc
}

// Viewport returns the transform from projected coordinates to pixels that
// was resolved when the sheet was closed.
func (s *Sheet) Viewport() Transform {
	return s.viewport.Transform
}

func (s *Sheet) render() (*svg.Element, error) {
	vp, err := s.resolveViewport()
	if err != nil {
		return nil, err
	}

	s.viewport = vp

	builder := pathbuild.New(s.cfg.proj, vp.Transform)
	group := svg.NewGroup()

	for _, e := range s.entities {
		if e.nodes != nil {
			for _, n := range e.nodes {
				group.Append(n.Element())
			}

			continue
		}

		params := e.opts.styleParams()
		popts := pathbuild.Options{
			Precision: e.opts.precision,
			Relative:  e.opts.relative,
			ClassName: e.opts.className,
			IDName:    e.opts.idName,
		}

		err := walk.Walk(e.geom, func(r walk.Record) error {
			p, err := builder.Build(r, popts)
			if err != nil {
				return err
			}

			style.Bind([]svg.Primitive{p}, params, r.Properties)
			group.Append(p.Element())

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("unable to render map: %w", err)
		}
	}

	s.log.Debug("rendered map", "primitives", len(group.Children))

	root := svg.NewRoot(s.cfg.width, s.cfg.height)
	if s.cfg.style != "" {
		root.Append(svg.NewStyle(s.cfg.style))
	}

	root.Append(group)

	return root, nil
}

func (s *Sheet) resolveViewport() (viewport.Viewport, error) {
	params := viewport.Params{
		Width:  s.cfg.width,
		Height: s.cfg.height,
		BBox:   s.cfg.bbox,
		Center: s.cfg.center,
	}

	if s.cfg.scale != nil {
		params.Scale = *s.cfg.scale
	}

	data := r2.EmptyRect()

	// only a scale without bounding box or center depends on the data
	if params.BBox == nil && params.Scale > 0 && params.Center == nil {
		var err error
		if data, err = s.ProjectedBounds(); err != nil {
			return viewport.Viewport{}, fmt.Errorf("unable to resolve viewport: %w", err)
		}
	}

	vp := viewport.Resolve(params, s.cfg.proj, data)

	if vp.Degenerate {
		s.log.Warn("degenerate viewport, using a unit span", "bounds", vp.Bounds.String())
	}

	s.log.Debug("resolved viewport",
		"case", vp.Case.String(),
		"scale", vp.Scale,
		"sx", vp.SX,
		"sy", vp.SY,
		"cx", vp.CX,
		"cy", vp.CY)

	return vp, nil
}

// ProjectedBounds returns the union of the projected bounds of every pending
// geometry.  Ready-made shapes are not included.
func (s *Sheet) ProjectedBounds() (r2.Rect, error) {
	rect := r2.EmptyRect()

	for _, e := range s.entities {
		if e.nodes != nil {
			continue
		}

		b, err := viewport.ProjectedBounds(e.geom, s.cfg.proj)
		if err != nil {
			return r2.EmptyRect(), err
		}

		rect = rect.Union(b)
	}

	return rect, nil
}
