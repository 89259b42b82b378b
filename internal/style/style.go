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

// Package style binds attribute values to drawable primitives, either as
// constants or as functions of feature properties.
package style

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"m4o.io/svgmap/model"
	"m4o.io/svgmap/svg"
)

// ScaleFunc transforms a value before it is written as an attribute.
type ScaleFunc func(any) any

// Identity returns v unchanged.
func Identity(v any) any {
	return v
}

// Numeric adapts fn into a ScaleFunc.  Numbers, including numeric strings,
// are passed through fn.  Any other value is returned unchanged.
func Numeric(fn func(float64) float64) ScaleFunc {
	return func(v any) any {
		f, ok := toFloat(v)
		if !ok {
			return v
		}

		return fn(f)
	}
}

// Params are the attribute bindings of one add call.
type Params struct {
	// Static maps attribute names to literal values.
	Static map[string]any

	// Dynamic maps attribute names to the property read from each feature.
	Dynamic map[string]string

	// Scales maps attribute names to the function applied to their values.
	Scales map[string]ScaleFunc
}

// IsZero reports whether p binds nothing.
func (p Params) IsZero() bool {
	return len(p.Static) == 0 && len(p.Dynamic) == 0
}

func (p Params) scale(name string) ScaleFunc {
	if fn, ok := p.Scales[name]; ok && fn != nil {
		return fn
	}

	return Identity
}

// Attributes computes the attributes for a feature with the given
// properties.  Static values are applied first, then dynamic values override
// them.  A dynamic binding whose property is absent, or null, is skipped.  A
// binding whose scaled value is nil unsets the attribute, including a static
// value of the same name.
func (p Params) Attributes(props model.Properties) svg.Attributes {
	attrs := make(svg.Attributes, len(p.Static)+len(p.Dynamic))

	for _, name := range sortedKeys(p.Static) {
		if v := p.scale(name)(p.Static[name]); v != nil {
			attrs.Set(name, FormatValue(v))
		}
	}

	for _, name := range sortedKeys(p.Dynamic) {
		v, ok := props.Lookup(p.Dynamic[name])
		if !ok {
			continue
		}

		if v = p.scale(name)(v); v != nil {
			attrs.Set(name, FormatValue(v))
		} else {
			delete(attrs, name)
		}
	}

	return attrs
}

// Bind decorates every primitive with the attributes computed for props.
// The attributes are computed once and shared by all primitives, so every
// primitive of a feature carries the same values.
func Bind(prims []svg.Primitive, p Params, props model.Properties) {
	if p.IsZero() {
		return
	}

	attrs := p.Attributes(props)

	for _, prim := range prims {
		a := prim.Attributes()
		for name, value := range attrs {
			a.Set(name, value)
		}
	}
}

// FormatValue renders a scalar as attribute text.  Floating point numbers
// always carry a decimal point, so 5.0 is written "5.0" and 3.14 "3.14".
// A json.Number is written as it appeared in the document.
func FormatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return formatFloat(t, 64)
	case float32:
		return formatFloat(float64(t), 32)
	case int:
		return strconv.Itoa(t)
	case int8:
		return strconv.FormatInt(int64(t), 10)
	case int16:
		return strconv.FormatInt(int64(t), 10)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint:
		return strconv.FormatUint(uint64(t), 10)
	case uint8:
		return strconv.FormatUint(uint64(t), 10)
	case uint16:
		return strconv.FormatUint(uint64(t), 10)
	case uint32:
		return strconv.FormatUint(uint64(t), 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case json.Number:
		return t.String()
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

func formatFloat(f float64, bitSize int) string {
	s := strconv.FormatFloat(f, 'f', -1, bitSize)
	if math.IsInf(f, 0) || math.IsNaN(f) || strings.ContainsRune(s, '.') {
		return s
	}

	return s + ".0"
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint32:
		return float64(t), true
	case uint64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
