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
	"maps"

	"m4o.io/svgmap/internal/style"
	"m4o.io/svgmap/svg"
)

// ScaleFunc transforms a value before it is written as an attribute.
type ScaleFunc = style.ScaleFunc

// Identity is the ScaleFunc used for attributes without one.
func Identity(v any) any {
	return style.Identity(v)
}

// Numeric adapts fn into a ScaleFunc applied to numeric values only.
func Numeric(fn func(float64) float64) ScaleFunc {
	return style.Numeric(fn)
}

// addOptions provides optional parameters for adding geometry to a sheet.
type addOptions struct {
	static    map[string]any
	dynamic   map[string]string
	scales    map[string]ScaleFunc
	className string
	idName    string
	precision int
	relative  bool
}

// AddOption configures how added geometry is drawn.
type AddOption func(*addOptions)

// WithStaticParams sets attributes to the same value on every primitive.
func WithStaticParams(params map[string]any) AddOption {
	return func(o *addOptions) {
		if o.static == nil {
			o.static = make(map[string]any, len(params))
		}

		maps.Copy(o.static, params)
	}
}

// WithDynamicParams sets attributes from feature properties.  params maps
// attribute names to property names.  Features lacking the property do not
// get the attribute.
func WithDynamicParams(params map[string]string) AddOption {
	return func(o *addOptions) {
		if o.dynamic == nil {
			o.dynamic = make(map[string]string, len(params))
		}

		maps.Copy(o.dynamic, params)
	}
}

// WithScales sets the functions applied to attribute values, by attribute
// name.
func WithScales(scales map[string]ScaleFunc) AddOption {
	return func(o *addOptions) {
		if o.scales == nil {
			o.scales = make(map[string]ScaleFunc, len(scales))
		}

		maps.Copy(o.scales, scales)
	}
}

// WithScaleFunc sets the function applied to the values of one attribute.
func WithScaleFunc(attr string, fn ScaleFunc) AddOption {
	return WithScales(map[string]ScaleFunc{attr: fn})
}

// WithClassName sets the class attribute of every primitive.
func WithClassName(name string) AddOption {
	return func(o *addOptions) {
		o.className = name
	}
}

// WithIDName sets the id attribute of every primitive.
func WithIDName(name string) AddOption {
	return func(o *addOptions) {
		o.idName = name
	}
}

// WithPrecision sets the number of decimal places kept in coordinates.  The
// default is 1.
func WithPrecision(p int) AddOption {
	return func(o *addOptions) {
		o.precision = p
	}
}

// WithRelativeCoordinates writes every vertex after the first of a subpath
// as a delta from its predecessor.
func WithRelativeCoordinates(relative bool) AddOption {
	return func(o *addOptions) {
		o.relative = relative
	}
}

func newAddOptions(opts []AddOption) addOptions {
	cfg := addOptions{precision: svg.DefaultPrecision}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func (o addOptions) styleParams() style.Params {
	return style.Params{Static: o.static, Dynamic: o.dynamic, Scales: o.scales}
}
