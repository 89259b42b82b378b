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

package render

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"m4o.io/svgmap"
	"m4o.io/svgmap/cmd/svgmap/cli"
	"m4o.io/svgmap/geojson"
	"m4o.io/svgmap/internal/compress"
	"m4o.io/svgmap/model"
	"m4o.io/svgmap/projection"
	"m4o.io/svgmap/svg"
)

var out io.Writer = os.Stdout

// config holds the flags of the render command.
type config struct {
	output     string
	width      int
	height     int
	bbox       *model.BoundingBox
	center     *model.Position
	scale      float64
	projection string
	style      string
	class      string
	id         string
	precision  int
	static     map[string]string
	dynamic    map[string]string
	relative   bool
	ncpu       uint16
	progress   bool
}

var cfg config

func init() {
	cli.RootCmd.AddCommand(renderCmd)

	flags := renderCmd.Flags()
	flags.StringVarP(&cfg.output, "output", "o", "", "write the map to a file instead of stdout, compressed according to its extension")
	flags.IntVarP(&cfg.width, "width", "W", svgmap.DefaultWidth, "canvas width in pixels")
	flags.IntVarP(&cfg.height, "height", "H", svgmap.DefaultHeight, "canvas height in pixels")
	flags.Var(cli.NewBBoxValue(&cfg.bbox), "bbox", "geographic extent as left,bottom,right,top")
	flags.Var(cli.NewPositionValue(&cfg.center), "center", "geographic center as lon,lat, used with --scale")
	flags.Float64VarP(&cfg.scale, "scale", "s", 0, "pixels per projected unit")
	flags.StringVarP(&cfg.projection, "projection", "P", "mercator", fmt.Sprintf("one of %v", projection.Names()))
	flags.StringVar(&cfg.style, "style", "", "CSS stylesheet file to embed")
	flags.StringVar(&cfg.class, "class", "", "class attribute of every shape")
	flags.StringVar(&cfg.id, "id", "", "id attribute of every shape")
	flags.IntVar(&cfg.precision, "precision", svg.DefaultPrecision, "decimal places kept in coordinates")
	flags.StringToStringVar(&cfg.static, "static", nil, "attribute=value set on every shape")
	flags.StringToStringVar(&cfg.dynamic, "dynamic", nil, "attribute=property set from feature properties")
	flags.BoolVar(&cfg.relative, "relative", false, "write path vertices relative to their predecessor")
	flags.Uint16VarP(&cfg.ncpu, "cpu", "c", geojson.DefaultNCpu(), "number of files to load concurrently")
	flags.BoolVarP(&cfg.progress, "progress", "p", false, "show a progress bar while reading files")
}

var renderCmd = &cobra.Command{
	Use:   "render [<GeoJSON file>...]",
	Short: "Render GeoJSON files as an SVG map",
	Long: `Render GeoJSON files as an SVG map.

Files are drawn in the order given, later files on top of earlier ones.
Compressed inputs and outputs are recognised by their extension (.gz, .svgz,
.zst, .lz4, .xz, .lzma).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			args = []string{cli.Stdin}
		}

		ncpu := cfg.ncpu
		if cfg.progress {
			ncpu = 1
		}

		geoms, err := geojson.LoadFiles(cmd.Context(), args,
			geojson.WithOpener(cli.Opener(cfg.progress)),
			geojson.WithNCpus(ncpu))
		if err != nil {
			slog.Error("unable to load GeoJSON", "error", err)
			return err
		}

		return run(cfg, geoms)
	},
}

func (c config) sheetOptions() ([]svgmap.SheetOption, error) {
	opts := []svgmap.SheetOption{
		svgmap.WithWidth(c.width),
		svgmap.WithHeight(c.height),
		svgmap.WithProjectionName(c.projection),
	}

	if c.bbox != nil {
		opts = append(opts, svgmap.WithBoundingBox(c.bbox))
	}

	if c.scale != 0 {
		opts = append(opts, svgmap.WithScale(c.scale))
	}

	if c.center != nil {
		opts = append(opts, svgmap.WithCenter(c.center.Lon(), c.center.Lat()))
	}

	if c.style != "" {
		css, err := os.ReadFile(c.style)
		if err != nil {
			return nil, err
		}

		opts = append(opts, svgmap.WithStyle(string(css)))
	}

	return opts, nil
}

func (c config) addOptions() []svgmap.AddOption {
	static := make(map[string]any, len(c.static))
	for k, v := range c.static {
		static[k] = v
	}

	return []svgmap.AddOption{
		svgmap.WithStaticParams(static),
		svgmap.WithDynamicParams(c.dynamic),
		svgmap.WithClassName(c.class),
		svgmap.WithIDName(c.id),
		svgmap.WithPrecision(c.precision),
		svgmap.WithRelativeCoordinates(c.relative),
	}
}

func run(c config, geoms []model.Geometry) (err error) {
	opts, err := c.sheetOptions()
	if err != nil {
		return err
	}

	cw := &countingWriter{w: out}

	if c.output != "" {
		var f *os.File
		if f, err = os.Create(c.output); err != nil {
			return err
		}

		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = cerr
			}

			if err != nil {
				if rerr := os.Remove(c.output); rerr != nil {
					slog.Warn("unable to remove partial map", "path", c.output, "error", rerr)
				}

				return
			}

			slog.Info("wrote map", "path", c.output, "size", humanize.Bytes(uint64(cw.n)))
		}()

		cw.w = f
	}

	zw, err := compress.NewWriter(cw, compress.FromPath(c.output))
	if err != nil {
		return err
	}

	if err = draw(zw, opts, geoms, c.addOptions()); err != nil {
		_ = zw.Close()
		return err
	}

	return zw.Close()
}

func draw(w io.Writer, opts []svgmap.SheetOption, geoms []model.Geometry, addOpts []svgmap.AddOption) error {
	sheet, err := svgmap.NewSheet(w, opts...)
	if err != nil {
		return err
	}

	for _, g := range geoms {
		if err = sheet.Add(g, addOpts...); err != nil {
			return err
		}
	}

	return sheet.Close()
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)

	return n, err
}
