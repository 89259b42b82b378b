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

package compress_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"m4o.io/svgmap/internal/compress"
)

func TestFromPath(t *testing.T) {
	testCases := []struct {
		path     string
		expected compress.Compression
	}{
		{"map.svg", compress.None},
		{"coast.geojson", compress.None},
		{"map.svgz", compress.Gzip},
		{"coast.geojson.GZ", compress.Gzip},
		{"coast.geojson.zst", compress.Zstd},
		{"coast.geojson.lz4", compress.Lz4},
		{"coast.geojson.xz", compress.Xz},
		{"coast.geojson.lzma", compress.Lzma},
		{"", compress.None},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			assert.Equal(t, tc.expected, compress.FromPath(tc.path))
		})
	}
}

func TestParse(t *testing.T) {
	c, err := compress.Parse(" ZSTD ")
	require.NoError(t, err)
	assert.Equal(t, compress.Zstd, c)

	_, err = compress.Parse("brotli")
	assert.ErrorIs(t, err, compress.ErrUnknownCompression)

	assert.Equal(t, "lzma", compress.Lzma.String())
	assert.Equal(t, "Compression(42)", compress.Compression(42).String())
}

func TestReaderWriter(t *testing.T) {
	payload := bytes.Repeat([]byte(`{"type":"Point","coordinates":[-123.1,49.2]}`), 100)

	for _, c := range []compress.Compression{
		compress.None, compress.Gzip, compress.Zstd, compress.Lz4, compress.Xz, compress.Lzma,
	} {
		t.Run(c.String(), func(t *testing.T) {
			var buf bytes.Buffer

			w, err := compress.NewWriter(&buf, c)
			require.NoError(t, err)

			_, err = w.Write(payload)
			require.NoError(t, err)
			require.NoError(t, w.Close())

			if c != compress.None {
				assert.Less(t, buf.Len(), len(payload))
			}

			r, err := compress.NewReader(&buf, c)
			require.NoError(t, err)

			got, err := io.ReadAll(r)
			require.NoError(t, err)
			require.NoError(t, r.Close())

			assert.Equal(t, payload, got)
		})
	}
}

func TestUnknown(t *testing.T) {
	_, err := compress.NewReader(&bytes.Buffer{}, compress.Compression(-1))
	assert.ErrorIs(t, err, compress.ErrUnknownCompression)

	_, err = compress.NewWriter(&bytes.Buffer{}, compress.Compression(99))
	assert.ErrorIs(t, err, compress.ErrUnknownCompression)
}
