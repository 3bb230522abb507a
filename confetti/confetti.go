// Copyright (c) 2022 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

package confetti

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/tunabay/go-groovytar/param"
	"github.com/tunabay/go-groovytar/svg"
	"golang.org/x/exp/constraints"
)

// Size is the width and height of a confetti image.
const Size = 800

// Options controls the optional parts of the output.
type Options struct {
	// Comment appends the generation date comment.
	Comment bool

	// Now returns the date written in the comment. time.Now is used if nil.
	Now func() time.Time
}

// Render draws the confetti image of the parameter vector v with the shape
// sequence selected by the order digit.
func Render(v param.Vector, order byte, opts Options) *svg.Document {
	doc := svg.New(Size)
	Draw(doc, v, order)
	if opts.Comment {
		now := opts.Now
		if now == nil {
			now = time.Now
		}
		doc.GenerationComment(now())
	}

	return doc
}

// Draw appends the 32 shapes and the frame to doc, which is expected to be
// Size wide.
func Draw(doc *svg.Document, v param.Vector, order byte) {
	p := &painter{doc: doc, v: v}
	for _, s := range Sequence(order) {
		p.draw(s)
	}
	doc.Frame(svg.FrameNE, svg.FrameSW)
}

// Shape is a confetti primitive.
type Shape int

// Confetti primitives.
const (
	Circle Shape = iota
	Diamond
	Triangle
	Polygon
)

func (s Shape) String() string {
	switch s {
	case Circle:
		return "circle"
	case Diamond:
		return "diamond"
	case Triangle:
		return "triangle"
	case Polygon:
		return "polygon"
	}
	return "Shape(" + strconv.Itoa(int(s)) + ")"
}

// Step is one drawing operation of a sequence: a shape, its size hint and
// the index of the parameter byte seeding its position and colors.
type Step struct {
	Shape Shape
	Hint  int
	Start int
}

// SequenceIndex returns the index of the sequence selected by the order
// digit. The digits '0' to '9' and 'a' to 'e' select their own sequence,
// anything else selects the last one.
func SequenceIndex(order byte) int {
	switch {
	case '0' <= order && order <= '9':
		return int(order - '0')
	case 'a' <= order && order <= 'e':
		return int(order-'a') + 10
	}
	return len(sequences) - 1
}

// Sequence returns the drawing steps selected by the order digit.
func Sequence(order byte) []Step {
	seq := sequences[SequenceIndex(order)]
	return seq[:]
}

type painter struct {
	doc *svg.Document
	v   param.Vector
}

func (p *painter) draw(s Step) {
	switch s.Shape {
	case Circle:
		p.circle(s.Hint, s.Start)
	case Diamond:
		p.diamond(s.Hint, s.Start)
	case Triangle:
		p.triangle(s.Hint, s.Start)
	case Polygon:
		p.polygon(s.Hint, s.Start)
	}
}

// rgb returns the color seeded at index s.
func (p *painter) rgb(s int) string {
	return svg.RGB(p.v.At(s+4), p.v.At(s+6), p.v.At(s+9))
}

// center returns the point on the 16 x 16 lattice of 50 unit steps encoded
// by the byte at index s.
func (p *painter) center(s int) (int, int) {
	b := p.v.At(s)
	return b / 16 * 50, b % 16 * 50
}

func (p *painter) circle(hint, start int) {
	r := modAbove(abs(hint), 150) + 50
	cx, cy := p.center(start)

	p.doc.Element("circle",
		svg.A("cx", cx),
		svg.A("cy", cy),
		svg.A("r", r),
		svg.A("stroke-width", int(0.08*float64(r))),
		svg.A("stroke-opacity", "0.4"),
		svg.A("stroke", p.rgb(start)),
		svg.A("fill-opacity", "0.6"),
		svg.A("fill", p.rgb(start+9)),
	)
}

func (p *painter) diamond(hint, start int) {
	deg := p.v.At(start+12) % 90
	r := modAbove(abs(hint), 150)
	short := r + 120
	long := short + p.v.At(start)%60
	cx, cy := p.center(start)
	cx, cy = wrap(cx, 150, 650, 200), wrap(cy, 150, 650, 200)

	d := fmt.Sprintf("M%d,%d l%d,%d l%d,-%d l-%d,-%d l-%d,%dz",
		cx, cy, short, long, short, long, short, long, short, long)
	p.doc.Element("path",
		svg.A("stroke-width", int(0.12*float64(r))),
		svg.A("stroke-opacity", "0.4"),
		svg.A("stroke", p.rgb(start)),
		svg.A("fill", p.rgb(start+9)),
		svg.A("fill-opacity", "0.6"),
		svg.A("d", d),
		svg.A("transform", "rotate("+strconv.Itoa(deg)+")"),
	)
}

func (p *painter) triangle(hint, start int) {
	deg := p.v.At(start+12) % 180
	r := modAbove(abs(hint), 120) + 90
	cx, cy := p.center(start)
	cx, cy = wrap(cx, 150, 650, 200), wrap(cy, 150, 650, 200)
	b := p.v.At(start)
	odd := b%2 == 1

	angle := 30 - b%7
	if odd {
		angle = 30 + b%7
	}
	x1, y1 := leg(angle, int(float64(2*r)*1.319507))

	if odd {
		angle = 2*angle + b%11
	} else {
		angle = 2*angle - b%11
	}
	x2, y2 := leg(angle, int(float64(2*r)*1.2))

	d := fmt.Sprintf("M%d,%s l%d,%d l-%d,-%dz",
		cx, svg.Num(float64(cy)-float64(r)/2), x1, y1, x2, y2)
	p.doc.Element("path",
		svg.A("stroke-width", int(0.08*float64(r))),
		svg.A("stroke-opacity", "0.4"),
		svg.A("stroke", p.rgb(start)),
		svg.A("fill", p.rgb(start+2)),
		svg.A("fill-opacity", "0.6"),
		svg.A("d", d),
		svg.A("transform", "rotate("+strconv.Itoa(deg)+")"),
	)
}

// leg returns the absolute horizontal and vertical extents of a segment of
// the given length pointing at angle degrees.
func leg(angle, length int) (int, int) {
	rad := deg2rad(float64(angle))
	return abs(int(math.Sin(rad) * float64(length))), abs(int(math.Cos(rad) * float64(length)))
}

func (p *painter) polygon(hint, start int) {
	sides := 5 + p.v.At(start)%7
	step := 360.0 / float64(sides)
	shift := p.v.At(start+7) % 12
	r := modAbove(abs(hint), 160) + 70
	cx, cy := p.center(start)
	cx, cy = wrap(cx, 110, 690, 200), wrap(cy, 110, 690, 200)

	var sb strings.Builder
	a := float64(shift)
	var px, py int
	for i := 0; i < sides; i++ {
		rad := deg2rad(a)
		x, y := int(math.Sin(rad)*float64(r)), int(math.Cos(rad)*float64(r))
		if i == 0 {
			fmt.Fprintf(&sb, "M%d,%d", cx+x, cy+y)
		} else {
			fmt.Fprintf(&sb, " l%d,%d", x-px, y-py)
		}
		px, py = x, y
		a += step
	}
	sb.WriteByte('z')

	p.doc.Element("path",
		svg.A("stroke-width", int(0.05*float64(r))),
		svg.A("stroke-opacity", "0.4"),
		svg.A("stroke", p.rgb(start+4)),
		svg.A("fill", p.rgb(start+14)),
		svg.A("fill-opacity", "0.6"),
		svg.A("d", sb.String()),
	)
}

func deg2rad(deg float64) float64 { return deg / 180 * math.Pi }

func abs[T constraints.Signed | constraints.Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// modAbove reduces v modulo m only when it exceeds m, so that m itself is
// kept.
func modAbove[T constraints.Integer](v, m T) T {
	if v > m {
		return v % m
	}
	return v
}

// wrap shifts v by multiples of step until it lies in [lo, hi].
func wrap[T constraints.Integer](v, lo, hi, step T) T {
	for v < lo {
		v += step
	}
	for v > hi {
		v -= step
	}
	return v
}
