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

// Package svg is a small element tree for SVG documents together with the
// drawable primitives the map renderer produces.
package svg

import (
	"bufio"
	"bytes"
	"io"
	"sort"
	"strings"
)

var (
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
)

// Namespace is the SVG XML namespace.
const Namespace = "http://www.w3.org/2000/svg"

// Attributes maps attribute names to their string values.  Attributes are
// always written in name order so that a document serializes identically
// every time.
type Attributes map[string]string

// Set assigns value to name, replacing any previous value.
func (a Attributes) Set(name, value string) {
	a[name] = value
}

// Get returns the value of name and whether it is set.
func (a Attributes) Get(name string) (string, bool) {
	v, ok := a[name]
	return v, ok
}

// Names returns the attribute names in the order they are serialized.
func (a Attributes) Names() []string {
	names := make([]string, 0, len(a))
	for k := range a {
		names = append(names, k)
	}

	sort.Strings(names)

	return names
}

// Clone returns a copy of a.
func (a Attributes) Clone() Attributes {
	c := make(Attributes, len(a))
	for k, v := range a {
		c[k] = v
	}

	return c
}

// Element is a node of an SVG document.
type Element struct {
	Name     string
	Attrs    Attributes
	Text     string
	Children []*Element
}

var _ Primitive = (*Element)(nil)

// NewElement creates an element without attributes.
func NewElement(name string) *Element {
	return &Element{Name: name, Attrs: Attributes{}}
}

// Attributes implements Primitive.
func (e *Element) Attributes() Attributes {
	if e.Attrs == nil {
		e.Attrs = Attributes{}
	}

	return e.Attrs
}

// Element implements Primitive by returning e itself.
func (e *Element) Element() *Element {
	return e
}

// Append adds children to e.
func (e *Element) Append(children ...*Element) {
	e.Children = append(e.Children, children...)
}

// WriteTo serializes e and its descendants to w.
func (e *Element) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: bufio.NewWriter(w)}

	e.write(cw)

	if cw.err == nil {
		cw.err = cw.w.Flush()
	}

	return cw.n, cw.err
}

// Bytes returns the serialized form of e.
func (e *Element) Bytes() []byte {
	var buf bytes.Buffer

	// writes to a bytes.Buffer cannot fail
	_, _ = e.WriteTo(&buf)

	return buf.Bytes()
}

func (e *Element) String() string {
	return string(e.Bytes())
}

func (e *Element) write(w *countingWriter) {
	w.writeString("<")
	w.writeString(e.Name)

	for _, name := range e.Attrs.Names() {
		w.writeString(" ")
		w.writeString(name)
		w.writeString(`="`)
		w.escape(attrEscaper, e.Attrs[name])
		w.writeString(`"`)
	}

	if e.Text == "" && len(e.Children) == 0 {
		w.writeString(" />")
		return
	}

	w.writeString(">")
	w.escape(textEscaper, e.Text)

	for _, c := range e.Children {
		c.write(w)
	}

	w.writeString("</")
	w.writeString(e.Name)
	w.writeString(">")
}

type countingWriter struct {
	w   *bufio.Writer
	n   int64
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}

	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err

	return n, err
}

func (c *countingWriter) writeString(s string) {
	_, _ = c.Write([]byte(s))
}

func (c *countingWriter) escape(r *strings.Replacer, s string) {
	if c.err != nil {
		return
	}

	_, c.err = r.WriteString(c, s)
}
