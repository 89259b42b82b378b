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

// Package compress selects and creates the stream codecs used for map inputs
// and outputs.
package compress

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4"
	"github.com/ulikunitz/xz"
	"github.com/ulikunitz/xz/lzma"
)

var ErrUnknownCompression = errors.New("unknown compression")

// Compression is a stream compression format.
type Compression int

const (
	None Compression = iota
	Gzip
	Zstd
	Lz4
	Xz
	Lzma
)

var names = [...]string{
	None: "none",
	Gzip: "gzip",
	Zstd: "zstd",
	Lz4:  "lz4",
	Xz:   "xz",
	Lzma: "lzma",
}

var extensions = map[string]Compression{
	".gz":   Gzip,
	".svgz": Gzip,
	".zst":  Zstd,
	".zstd": Zstd,
	".lz4":  Lz4,
	".xz":   Xz,
	".lzma": Lzma,
}

func (c Compression) String() string {
	if c < 0 || int(c) >= len(names) {
		return fmt.Sprintf("Compression(%d)", int(c))
	}

	return names[c]
}

// Parse returns the compression with the given name.
func Parse(name string) (Compression, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range names {
		if n == name {
			return Compression(i), nil
		}
	}

	return None, fmt.Errorf("%w: %q", ErrUnknownCompression, name)
}

// FromPath infers the compression from the extension of path.  Paths without
// a known extension are uncompressed.
func FromPath(path string) Compression {
	if c, ok := extensions[strings.ToLower(filepath.Ext(path))]; ok {
		return c
	}

	return None
}

// NewReader decompresses r.  Closing the returned reader does not close r.
func NewReader(r io.Reader, c Compression) (io.ReadCloser, error) {
	switch c {
	case None:
		return io.NopCloser(r), nil
	case Gzip:
		return readCloser(gzip.NewReader(r))
	case Zstd:
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}

		return d.IOReadCloser(), nil
	case Lz4:
		return io.NopCloser(lz4.NewReader(r)), nil
	case Xz:
		x, err := xz.NewReader(r)
		if err != nil {
			return nil, err
		}

		return io.NopCloser(x), nil
	case Lzma:
		l, err := lzma.NewReader(r)
		if err != nil {
			return nil, err
		}

		return io.NopCloser(l), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownCompression, c)
	}
}

// NewWriter compresses into w.  The returned writer must be closed to flush
// the compressed stream; closing it does not close w.
func NewWriter(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case None:
		return nopCloserWriter{w}, nil
	case Gzip:
		return gzip.NewWriter(w), nil
	case Zstd:
		return writeCloser(zstd.NewWriter(w))
	case Lz4:
		return lz4.NewWriter(w), nil
	case Xz:
		return writeCloser(xz.NewWriter(w))
	case Lzma:
		return writeCloser(lzma.NewWriter(w))
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownCompression, c)
	}
}

// readCloser keeps a failed constructor from yielding a non-nil interface
// holding a nil pointer.
func readCloser[T io.ReadCloser](rc T, err error) (io.ReadCloser, error) {
	if err != nil {
		return nil, err
	}

	return rc, nil
}

func writeCloser[T io.WriteCloser](wc T, err error) (io.WriteCloser, error) {
	if err != nil {
		return nil, err
	}

	return wc, nil
}

type nopCloserWriter struct {
	io.Writer
}

func (w nopCloserWriter) Close() error {
	return nil
}
