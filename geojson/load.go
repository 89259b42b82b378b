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

package geojson

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/destel/rill"

	"m4o.io/svgmap/internal/compress"
	"m4o.io/svgmap/model"
)

// DefaultNCpu provides the default number of files loaded concurrently.
func DefaultNCpu() uint16 {
	cpus := uint16(runtime.GOMAXPROCS(-1))

	return max(cpus-1, 1)
}

// Opener opens a named input for reading.
type Opener func(path string) (io.ReadCloser, error)

// loadOptions provides optional configuration parameters for loading files.
type loadOptions struct {
	open Opener // opens each path
	nCPU uint16 // the number of files loaded concurrently
}

// LoadOption configures how files are loaded.
type LoadOption func(*loadOptions)

// WithOpener lets you replace os.Open, for example to report progress.
func WithOpener(open Opener) LoadOption {
	return func(o *loadOptions) {
		o.open = open
	}
}

// WithNCpus lets you set the number of files loaded concurrently.
func WithNCpus(n uint16) LoadOption {
	return func(o *loadOptions) {
		o.nCPU = n
	}
}

func openFile(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	return f, nil
}

func newLoadOptions(opts []LoadOption) loadOptions {
	cfg := loadOptions{open: openFile, nCPU: DefaultNCpu()}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.nCPU == 0 {
		cfg.nCPU = 1
	}

	return cfg
}

// Read decodes a document from r, decompressing it first.
func Read(r io.Reader, c compress.Compression) (model.Geometry, error) {
	rc, err := compress.NewReader(r, c)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read error: %w", err)
	}

	return Decode(data)
}

// LoadFile decodes the document at path.  Compressed files are recognised by
// their extension, such as .gz or .zst.
func LoadFile(path string, opts ...LoadOption) (model.Geometry, error) {
	return newLoadOptions(opts).load(path)
}

func (o loadOptions) load(path string) (model.Geometry, error) {
	f, err := o.open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := Read(f, compress.FromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// LoadFiles decodes the documents at paths concurrently.  The geometries are
// returned in the order of paths.  Loading stops at the first failure or when
// ctx is done.
func LoadFiles(ctx context.Context, paths []string, opts ...LoadOption) ([]model.Geometry, error) {
	cfg := newLoadOptions(opts)

	in := rill.FromSlice(paths, nil)

	loaded := rill.OrderedMap(in, int(cfg.nCPU), func(path string) (model.Geometry, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		return cfg.load(path)
	})

	return rill.ToSlice(loaded)
}
