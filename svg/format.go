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

package svg

import (
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// DefaultPrecision is the number of decimal places kept in coordinates when
// no precision is given.
const DefaultPrecision = 1

// FormatNumber formats v with at most precision decimal places, dropping
// trailing zeros.  A negative precision is treated as zero.
func FormatNumber(v float64, precision int) string {
	if precision < 0 {
		precision = 0
	}

	s := strconv.FormatFloat(v, 'f', precision, 64)
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}

	if s == "-0" {
		s = "0"
	}

	return s
}

// Round rounds v to precision decimal places.
func Round[T constraints.Float](v T, precision int) T {
	if precision < 0 {
		precision = 0
	}

	s := strconv.FormatFloat(float64(v), 'f', precision, 64)

	r, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return v
	}

	return T(r)
}

// deltas returns the differences between consecutive values, the first value
// being taken relative to zero.
func deltas[T constraints.Integer | constraints.Float](values []T) []T {
	prev := T(0)
	out := make([]T, len(values))

	for i, v := range values {
		out[i] = v - prev
		prev = v
	}

	return out
}

func formatPair(x, y float64, precision int) string {
	return FormatNumber(x, precision) + "," + FormatNumber(y, precision)
}
