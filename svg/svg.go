// Copyright (c) 2022 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

package svg

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/constraints"
)

const (
	xmlDecl = `<?xml version="1.0" encoding="UTF-8"?>`
	doctype = `<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN" "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd">`
	svgNS   = "http://www.w3.org/2000/svg"
)

// FrameRatio is the width of the frame relative to the image size.
const FrameRatio = 0.00875

// Colors of the gray frame shared by the identicon styles.
const (
	FrameNE = "rgb(123,123,123)"
	FrameSW = "rgb(80,80,80)"
)

// Attr is an attribute of an element. Attributes are written in the order
// they are given.
type Attr struct {
	Name, Value string
}

// Value is the set of types accepted by A.
type Value interface {
	constraints.Integer | constraints.Float | ~string
}

// A returns an attribute whose value is v formatted the way numbers appear
// in the image: floats through Num, integers in decimal.
func A[V Value](name string, v V) Attr {
	var s string
	switch x := any(v).(type) {
	case string:
		s = x
	case int:
		s = strconv.Itoa(x)
	case float64:
		s = Num(x)
	case float32:
		s = Num(float64(x))
	default:
		s = fmt.Sprint(x)
	}
	return Attr{Name: name, Value: s}
}

// Document is an SVG 1.1 document of a square image built by appending
// elements to the root. A Document is not safe for concurrent use.
type Document struct {
	size  int
	body  bytes.Buffer
	open  []string
	nodes int
}

// New creates an empty document of size x size user units.
func New(size int) *Document {
	return &Document{size: size}
}

// Size returns the width and height of the document.
func (d *Document) Size() int { return d.size }

// Nodes returns the number of elements appended so far, groups included.
func (d *Document) Nodes() int { return d.nodes }

// Element appends an empty element.
func (d *Document) Element(name string, attrs ...Attr) {
	d.start(name, attrs)
	d.body.WriteString("/>")
}

// Group opens a <g> element. Subsequent elements are appended to the group
// until the matching EndGroup.
func (d *Document) Group(attrs ...Attr) {
	d.start("g", attrs)
	d.body.WriteByte('>')
	d.open = append(d.open, "g")
}

// EndGroup closes the innermost open group. It does nothing if no group is
// open.
func (d *Document) EndGroup() {
	if len(d.open) == 0 {
		return
	}
	d.body.WriteString("</g>")
	d.open = d.open[:len(d.open)-1]
}

// Comment appends an XML comment. Double hyphens, which are not allowed in
// comments, are separated by a space.
func (d *Document) Comment(text string) {
	for strings.Contains(text, "--") {
		text = strings.ReplaceAll(text, "--", "- -")
	}
	d.body.WriteString("<!--")
	d.body.WriteString(text)
	d.body.WriteString("-->")
}

// GenerationComment appends a comment recording when the image was
// generated. It does not affect the rendering.
func (d *Document) GenerationComment(t time.Time) {
	d.Comment(" SVG Generated on " + t.Format(time.RFC1123Z) + " ")
}

func (d *Document) start(name string, attrs []Attr) {
	d.nodes++
	d.body.WriteByte('<')
	d.body.WriteString(name)
	for _, a := range attrs {
		d.body.WriteByte(' ')
		d.body.WriteString(a.Name)
		d.body.WriteString(`="`)
		_ = xml.EscapeText(&d.body, []byte(a.Value))
		d.body.WriteByte('"')
	}
}

// Canvas appends a path covering the whole image with the given fill color.
func (d *Document) Canvas(color string) {
	w := strconv.Itoa(d.size)
	d.Element("path",
		Attr{"stroke", "none"},
		Attr{"fill", color},
		Attr{"d", "M0,0 l" + w + ",0 l0," + w + " l-" + w + ",0 l0,-" + w + "z"},
	)
}

// FrameWidth returns the width of the frame drawn by Frame.
func (d *Document) FrameWidth() int { return int(float64(d.size) * FrameRatio) }

// Frame appends the two half frames, north-east then south-west, both
// translucent so that they overlap at the corners.
func (d *Document) Frame(ne, sw string) {
	var (
		w     = strconv.Itoa(d.size)
		fw    = strconv.Itoa(d.FrameWidth())
		inner = strconv.Itoa(d.size - 2*d.FrameWidth())
	)
	d.Element("path",
		Attr{"d", "M0,0 l" + w + ",0 l0," + w + " l-" + fw + ",-" + fw + " l0,-" + inner + " l-" + inner + ",0z"},
		Attr{"stroke", "none"},
		Attr{"fill-opacity", "0.6"},
		Attr{"fill", ne},
	)
	d.Element("path",
		Attr{"d", "M0,0 l0," + w + " l" + w + ",0 l-" + fw + ",-" + fw + " l-" + inner + ",0 l0,-" + inner + "z"},
		Attr{"stroke", "none"},
		Attr{"fill-opacity", "0.6"},
		Attr{"fill", sw},
	)
}

// StrokePath appends an unfilled path starting at (x, y) and continuing with
// the path data tail.
func (d *Document) StrokePath(x, y float64, tail, color string, width float64) {
	d.Element("path",
		Attr{"stroke", color},
		Attr{"fill", "none"},
		A("stroke-width", width),
		Attr{"d", "M" + Num(x) + "," + Num(y) + " " + tail},
	)
}

// FillPath appends a path without stroke starting at (x, y) and continuing
// with the path data tail. The fill-opacity attribute is omitted when
// opacity is 1.
func (d *Document) FillPath(x, y float64, tail, color string, opacity float64) {
	attrs := []Attr{{"stroke", "none"}, {"fill", color}}
	if o := Num(opacity); o != "1" {
		attrs = append(attrs, Attr{"fill-opacity", o})
	}
	attrs = append(attrs, Attr{"d", "M" + Num(x) + "," + Num(y) + " " + tail})
	d.Element("path", attrs...)
}

// FilledCircle appends a circle without stroke. The fill-opacity attribute
// is omitted when opacity is 1.
func (d *Document) FilledCircle(cx, cy, r float64, color string, opacity float64) {
	attrs := []Attr{
		A("cx", cx),
		A("cy", cy),
		A("r", r),
		{"stroke", "none"},
		{"fill", color},
	}
	if o := Num(opacity); o != "1" {
		attrs = append(attrs, Attr{"fill-opacity", o})
	}
	d.Element("circle", attrs...)
}

// Bytes returns the serialized document. Groups left open are closed.
func (d *Document) Bytes() []byte {
	var b bytes.Buffer
	b.Grow(d.body.Len() + 512)
	d.writeTo(&b)
	return b.Bytes()
}

// String returns the serialized document as a string.
func (d *Document) String() string { return string(d.Bytes()) }

// WriteTo writes the serialized document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(d.Bytes())
	return int64(n), err
}

func (d *Document) writeTo(b *bytes.Buffer) {
	w := strconv.Itoa(d.size)
	b.WriteString(xmlDecl)
	b.WriteByte('\n')
	b.WriteString(doctype)
	b.WriteByte('\n')
	b.WriteString(`<svg xmlns="` + svgNS + `" version="1.1" width="` + w + `" height="` + w + `" viewBox="0 0 ` + w + ` ` + w + `">`)
	b.Write(d.body.Bytes())
	for range d.open {
		b.WriteString("</g>")
	}
	b.WriteString("</svg>\n")
}
