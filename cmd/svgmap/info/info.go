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

package info

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"m4o.io/svgmap/cmd/svgmap/cli"
	"m4o.io/svgmap/geojson"
	"m4o.io/svgmap/internal/walk"
	"m4o.io/svgmap/model"
)

var out io.Writer = os.Stdout

type fileInfo struct {
	Path        string             `json:"path"`
	Size        int64              `json:"size,omitempty"`
	Features    int64              `json:"features"`
	Geometries  map[string]int64   `json:"geometries"`
	Vertices    int64              `json:"vertices"`
	BoundingBox *model.BoundingBox `json:"bbox,omitempty"`
}

func init() {
	cli.RootCmd.AddCommand(infoCmd)

	flags := infoCmd.Flags()
	flags.BoolP("json", "j", false, "format information in JSON")
	flags.Uint16P("cpu", "c", geojson.DefaultNCpu(), "number of files to load concurrently")
	flags.BoolP("progress", "p", false, "show a progress bar while reading files")
}

var infoCmd = &cobra.Command{
	Use:   "info [<GeoJSON file>...]",
	Short: "Print information about GeoJSON files",
	Long:  "Print feature and geometry counts and the bounding box of GeoJSON files",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			args = []string{cli.Stdin}
		}

		flags := cmd.Flags()

		ncpu, err := flags.GetUint16("cpu")
		if err != nil {
			return err
		}

		progress, err := flags.GetBool("progress")
		if err != nil {
			return err
		}

		if progress {
			ncpu = 1
		}

		geoms, err := geojson.LoadFiles(cmd.Context(), args,
			geojson.WithOpener(cli.Opener(progress)),
			geojson.WithNCpus(ncpu))
		if err != nil {
			slog.Error("unable to load GeoJSON", "error", err)
			return err
		}

		infos := make([]*fileInfo, len(geoms))

		for i, g := range geoms {
			if infos[i], err = runInfo(args[i], g); err != nil {
				return err
			}
		}

		jsonfmt, err := flags.GetBool("json")
		if err != nil {
			return err
		}

		if jsonfmt {
			return renderJSON(infos)
		}

		renderTxt(infos)

		return nil
	},
}

func runInfo(path string, g model.Geometry) (*fileInfo, error) {
	info := &fileInfo{Path: path, Geometries: map[string]int64{}}

	if fi, err := os.Stat(path); err == nil {
		info.Size = fi.Size()
	}

	switch v := g.(type) {
	case model.FeatureCollection:
		info.Features = int64(len(v.Features))
	case model.Feature:
		info.Features = 1
	}

	bbox := model.InitialBoundingBox()

	err := walk.Walk(g, func(r walk.Record) error {
		info.Geometries[r.Kind.String()]++

		for _, ring := range r.Rings {
			info.Vertices += int64(len(ring))

			for _, p := range ring {
				bbox.ExpandWithPosition(p)
			}
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if !bbox.IsEmpty() {
		info.BoundingBox = bbox
	}

	return info, nil
}

func renderJSON(infos []*fileInfo) error {
	b, err := json.Marshal(infos)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(out, string(b))

	return err
}

func renderTxt(infos []*fileInfo) {
	for i, info := range infos {
		if i > 0 {
			fmt.Fprintln(out)
		}

		fmt.Fprintf(out, "File: %s\n", info.Path)

		if info.Size > 0 {
			fmt.Fprintf(out, "Size: %s\n", humanize.Bytes(uint64(info.Size)))
		}

		fmt.Fprintf(out, "Features: %s\n", humanize.Comma(info.Features))

		for k := model.KindPoint; k <= model.KindMultiPolygon; k++ {
			if n := info.Geometries[k.String()]; n > 0 {
				fmt.Fprintf(out, "%s: %s\n", k, humanize.Comma(n))
			}
		}

		fmt.Fprintf(out, "Vertices: %s\n", humanize.Comma(info.Vertices))

		if info.BoundingBox != nil {
			fmt.Fprintf(out, "BoundingBox: %s\n", info.BoundingBox)
		}
	}

	if len(infos) < 2 {
		return
	}

	t := total(infos)

	fmt.Fprintf(out, "\nTotal: %d files\n", len(infos))
	fmt.Fprintf(out, "Features: %s\n", humanize.Comma(t.Features))
	fmt.Fprintf(out, "Vertices: %s\n", humanize.Comma(t.Vertices))

	if t.BoundingBox != nil {
		fmt.Fprintf(out, "BoundingBox: %s\n", t.BoundingBox)
	}
}

// total sums the counts of infos and unions their bounding boxes.
func total(infos []*fileInfo) *fileInfo {
	t := &fileInfo{Geometries: map[string]int64{}}
	bbox := model.InitialBoundingBox()

	for _, info := range infos {
		t.Features += info.Features
		t.Vertices += info.Vertices

		for k, n := range info.Geometries {
			t.Geometries[k] += n
		}

		if info.BoundingBox != nil {
			bbox.ExpandWithBoundingBox(info.BoundingBox)
		}
	}

	if !bbox.IsEmpty() {
		t.BoundingBox = bbox
	}

	return t
}
