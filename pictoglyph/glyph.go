// Copyright (c) 2022 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

package pictoglyph

import (
	"math"
	"strings"

	"github.com/tunabay/go-groovytar/svg"
	"github.com/tunabay/go-groovytar/wcag"
)

type glyph struct {
	name string
	draw func(p *pen)
}

// library is indexed by glyph id. Appending a glyph changes the selection of
// every image, so the order is part of the output format.
var library = [...]glyph{
	{"triquetra", triquetra},
	{"fertility", fertility},
	{"yin-yang", yinYang},
	{"asase-ye-duru", asaseYeDuru},
	{"elvin-star", elvinStar},
	{"turtle", turtle},
	{"boa-me-na-me-mmoa-wo", boaMeNaMeMmoaWo},
	{"coqui", coqui},
	{"sun", sun},
	{"waugal", waugal},
	{"awen", awen},
}

var placeholder = glyph{"circle", circle}

// Count is the number of glyphs in the library.
const Count = len(library)

func lookup(id int) glyph {
	if id < 0 || id >= Count {
		return placeholder
	}
	return library[id]
}

// Name returns the name of the glyph id. Ids outside the library name the
// placeholder circle.
func Name(id int) string { return lookup(id).name }

// DrawGlyph appends the glyph id centered at (x, y) in the colors of pair.
func DrawGlyph(doc *svg.Document, id, x, y int, pair wcag.Pair) {
	p := &pen{
		doc: doc,
		fg:  pair.Foreground.RGB(),
		bg:  pair.Background.RGB(),
		x:   float64(x),
		y:   float64(y),
	}
	lookup(id).draw(p)
}

// pen draws one cell.
type pen struct {
	doc    *svg.Document
	fg, bg string
	x, y   float64
}

// pt formats the point at offset (dx, dy) from the center of the cell.
func (p *pen) pt(dx, dy float64) string {
	return svg.Num(p.x+dx) + "," + svg.Num(p.y+dy)
}

func (p *pen) fill(color string, dx, dy float64, tail ...string) {
	p.doc.FillPath(p.x+dx, p.y+dy, strings.Join(tail, " "), color, 1)
}

func (p *pen) cx(dx float64) svg.Attr { return svg.A("cx", p.x+dx) }
func (p *pen) cy(dy float64) svg.Attr { return svg.A("cy", p.y+dy) }

func circle(p *pen) {
	p.doc.Element("circle",
		p.cx(0),
		p.cy(0),
		svg.A("r", 75),
		svg.A("stroke", "none"),
		svg.A("fill", p.fg),
	)
}

func triquetra(p *pen) {
	p.doc.Element("path",
		svg.A("fill", "none"),
		svg.A("stroke-width", 11),
		svg.A("stroke", p.fg),
		svg.A("d", "M"+p.pt(-65, 54)+" a 66,66 0 0 1 130,0 a 66,66 0 0 1 -65,-113 a 66,66 0 0 1 -65,113z"),
	)
}

func fertility(p *pen) {
	p.doc.Element("path",
		svg.A("fill", "none"),
		svg.A("stroke-width", 9),
		svg.A("stroke", p.fg),
		svg.A("d", "M"+p.pt(-30, -83)+" l60,83 l-60,83"),
	)
	p.doc.Element("path",
		svg.A("fill", "none"),
		svg.A("stroke-width", 11),
		svg.A("stroke", p.fg),
		svg.A("d", "M"+p.pt(30, -83)+" l-60,83 l60,83"),
	)
}

func yinYang(p *pen) {
	p.fill(p.fg, 0, -74, "a37,37 0 0 1 0,74 a37,37 0 0 0 0,74 a74,74 0 0 1 0,-148z")
	p.doc.Element("circle",
		p.cx(0),
		p.cy(0),
		svg.A("r", 75),
		svg.A("stroke-width", 3),
		svg.A("stroke", p.fg),
		svg.A("fill", "none"),
	)
	for _, dot := range []struct {
		dy    float64
		color string
	}{{-37, p.bg}, {37, p.fg}} {
		p.doc.Element("circle",
			p.cx(0),
			p.cy(dot.dy),
			svg.A("r", 8),
			svg.A("stroke", "none"),
			svg.A("fill", dot.color),
		)
	}
}

func asaseYeDuru(p *pen) {
	p.fill(p.fg, 0, 75,
		"q-16.5,-9.75 -30,-22.5",
		"q-9.75,-8.25 -18,-24",
		"a20.25,21.75 0 0 1 9.75,-27",
		"a20.25,20.25 0 0 1 -8,-27",
		"q3,-8.25 16.5,-24",
		"q16.5,-16.5 30,-25.5",
		"q21,13.5 33,25.5",
		"q6,5.25 13.5,18.75",
		"a21.75,21.75 0 0 1 -8.25,30",
		"a20.25,21 0 0 1 7.5,30",
		"q-11.25,18.75 -24,30",
		"q-11.25,9.75 -21,15.75z",
	)
	p.fill(p.bg, -1, -65,
		"q21.75,15 33.75,30",
		"q6.75,7.5 8.25,18",
		"a15,14.25 0 0 1 -11.25,14.25",
		"q-12,1.5 -17.25,-3.75",
		"q-5.25,-5.25 -5.25,-8.25",
		"q0.75,-5.25 7.5,-6",
		"q3,-0.75 5.25,0.75",
		"q1.5,2.25 2.25,6",
		"a4.5,4.5 0 0 0 7.875,-1.5",
		"a7.5,7.5 0 0 0 -1.125,-8.25",
		"q-2.25,-3.75 -8.25,-6",
		"a14.25,14.25 0 0 0 -8.25,1.5",
		"q-7.5,3 -12,7.5",
		"a18.75,18.75 0 0 0 -16.5,-9.75",
		"q-6,-0.375 -14.25,8.625",
		"q-2.25,3.75 -2.25,6.75",
		"a3,3 0 0 0 3.75,2.25",
		"q3,0 4.875,-2.625",
		"a7.5,9 0 0 1 8.25,-6",
		"a9,9.75 0 0 1 8.25,7.5",
		"q0,10.5 -15,10.5",
		"a15.75,15 0 0 1 -16.5,-12",
		"q-0.375,-3.375 1.5,-7.5",
		"q4.5,-11.25 15,-22.5",
		"q16.875,-18 21.375,-19.5z",
	)
	p.fill(p.bg, 1, 66,
		"q-21.75,-15 -33.75,-30",
		"q-6.75,-7.5 -8.25,-18",
		"a-15,-14.25 0 0 1 11.25,-14.25",
		"q12,-1.5 17.25,3.75",
		"q5.25,5.25 5.25,8.25",
		"q-0.75,5.25 -7.5,6",
		"q-3,0.75 -5.25,-0.75",
		"q-1.5,-2.25 -2.25,-6",
		"a-4.5,-4.5 0 0 0 -7.875,1.5",
		"a-7.5,-7.5 0 0 0 1.125,8.25",
		"q2.25,3.75 8.25,6",
		"a-14.25,-14.25 0 0 0 8.25,-1.5",
		"q7.5,-3 12,-7.5",
		"a-18.75,-18.75 0 0 0 16.5,9.75",
		"q6,0.375 14.25,-8.625",
		"q2.25,-3.75 2.25,-6.75",
		"a-3,-3 0 0 0 -3.75,-2.25",
		"q-3,0 -4.875,2.625",
		"a-7.5,-9 0 0 1 -8.25,6",
		"a-9,-9.75 0 0 1 -8.25,-7.5",
		"q0,-10.5 15,-10.5",
		"a-15.75,-15 0 0 1 16.5,12",
		"q0.375,3.375 -1.5,7.5",
		"q-4.5,11.25 -15,22.5",
		"q-16.875,18 -21.375,19.5z",
	)
	p.fill(p.bg, -7, 0,
		"a21,21 0 0 0 6.5,-6",
		"a18,18 0 0 0 8,7.5",
		"a21,21 0 0 0 -6.5,6",
		"a18,18 0 0 0 -8,-7.5z",
	)
}

// Angles of the heptagram in radians: a seventh and a fourteenth of a turn.
const (
	rad07 = 0.897597901
	rad14 = 0.448798951
)

func elvinStar(p *pen) {
	const r = 75
	var xs, ys [7]float64
	for k := range xs {
		a := rad14 + float64(3*k)*rad07
		xs[k] = p.x - r*math.Sin(a)
		ys[k] = p.y + r*math.Cos(a)
	}

	var sb strings.Builder
	sb.WriteString("M" + svg.Num(xs[0]) + "," + svg.Num(ys[0]))
	for k := 1; k <= len(xs); k++ {
		prev, cur := k-1, k%len(xs)
		sb.WriteString(" l" + svg.Num(xs[cur]-xs[prev]) + "," + svg.Num(ys[cur]-ys[prev]))
	}
	sb.WriteByte('z')

	p.doc.Element("path",
		svg.A("fill", "none"),
		svg.A("stroke", p.fg),
		svg.A("stroke-width", 5),
		svg.A("d", sb.String()),
	)
}

func turtle(p *pen) {
	p.fill(p.fg, 0, 75,
		"a24.5,47 0 0 0 -44.5,13.5",
		"a20,27.5 0 0 1 9.5,-47.75",
		"a87.5,75 0 0 1 0,-73",
		"a10,10 0 0 0 -3,-4",
		"a10,10 0 0 0 -6.5,-0.5",
		"a40,40 0 0 0 -26.5,30",
		"a6,40 0 0 1 -4,9.25",
		"a10,15 0 0 1 -9,-7.5",
		"a10,15 0 0 1 -9,-7.5",
		"a50,50 0 0 1 15,-40.5",
		"a35,40 0 0 1 31.5,-3.5",
		"l 10,4",
		"a15,20 0 0 0 10.5,-0.5",
		"a27.5,20 0 0 1 10,-2.75",
		"c1,-8 -7,-15 -7,-25",
		"a14,15 0 0 1 28,0",
		"c0,10 -8,17 -7,25",
		"a27.5,20 0 0 1 10,2.75",
		"a15,20 0 0 0 10.5,0.5",
		"l 10,-4",
		"a35,40 0 0 1 32,3.5",
		"a50,50 0 0 1 16,40.5",
		"a10,15 0 0 1 -9.5,8",
		"a6,40 0 0 1 -4,-9.25",
		"a40,40 0 0 0 -26.5,-30.5",
		"a10,10 0 0 0 -7,0.5",
		"a10,10 0 0 0 -3.5,4",
		"a87.5,75 0 0 1 0,73",
		"a20,27.5 0 0 1 9.5,47.75",
		"a24.5,47 0 0 0 -44.5,-13.5z",
	)
	p.fill(p.fg, -25, 51.5, "a30,20 0 0 0 50,0z")
	p.doc.FillPath(p.x-2.75, p.y-33.75,
		"l 0,78 c0,6.5 -7.5,5 -11,3 a37.5,45 0 0 1 0,-84 c3.5,-2 11,-3.5 11,3z", p.bg, 0.7)
	p.doc.FillPath(p.x+2.75, p.y-33.75,
		"l 0,78 c0,6.5 7.5,5 11,3 a37.5,45 0 0 0 0,-84 c-3.5,-2 -11,-3.5 -11,3z", p.bg, 0.7)
}

func boaMeNaMeMmoaWo(p *pen) {
	p.fill(p.fg, -34, 50, "a390,150 0 0 1 0,-100 l 11,14 a 700,175 0 0 0 0,72 l -11,14z")
	p.fill(p.fg, 34, 50, "a 390,150 0 0 0 0,-100 l -11,14 a 700,175 0 0 1 0,72 l 11,14z")
	p.fill(p.fg, 0, 0, "l -47.5,61.5 l 95,0 l -47.5,-61.5z")
	p.fill(p.fg, 0, 0, "l -47.5,-61.5 l 95,0 l -47.5,61.5z")
	p.fill(p.fg, -14, 59, "l 0,28 l 28,0 l 0,-28l -28,0z")
	p.doc.Element("circle",
		svg.A("stroke", "none"),
		svg.A("fill", p.fg),
		p.cx(0),
		p.cy(-71.5),
		svg.A("r", 16),
	)
	p.doc.Element("circle",
		svg.A("stroke", "none"),
		svg.A("fill", p.bg),
		p.cx(0),
		p.cy(38.5),
		svg.A("r", 13),
	)
	p.fill(p.bg, -11.5, -50, "l 0,23 l 23,0 l 0,-23 l -23,0z")
}

func coqui(p *pen) {
	p.fill(p.fg, -15.5, 23,
		"l5.5,-42",
		"a80,90 0 0 1 -53.75,-34.5",
		"l-5,1.5",
		"c-7.5,2.25 -13.5,1.5 -8,-8",
		"c3.25,-5.613635 2.5,-8.5 1.25,-11.5",
		"c-2.5,-6 0,-8 0.5,-8.75",
		"c2,-3 3,-3.5 6.5,-1.75",
		"c3.5,1.75 5,4 7,5.5",
		"c1,0.75 2,1 4,-0.5",
		"c5,-3.75 11.5,-3.5 6.5,10",
		"c-1.5,5 -2,8 -1.75,8.25",
		"c15,16.25 31.25,22.5 42.5,22.25",
		"c1,-0.75 3.75,-12.5 4,-15",
		"c0.25,-2.5 2.25,-11.75 2.5,-12.5",
		"c1.75,-5.25 5,-9 7.25,-9",
		"c4,0 5.25,5 6,6.75",
		"c1,2.333333 1.75,8.75 1.5,11",
		"c-0.5,8.666667 -1,15 -1.5,18.75",
		"c-0.25,5.041667 4.25,4.5 5,4.75",
		"c3.75,1.25 38.25,-5 42.5,-11.75",
		"c0.75,-4 1,-8 1.25,-10.5",
		"c0.5,-5 3.75,-6.5 6.75,-3",
		"c1.75,3.5 4.25,3.75 6.75,0.5",
		"c1.25,-1.625 2,-2.25 5.75,-0.75",
		"c3.25,2.383333 4.5,2 4.75,4.5",
		"c0.25,2.5 -3,5.5 -4.5,6",
		"c-4.5,1.5 -4.75,4.75 1.25,6",
		"c1.25,0.260418 3.25,0.75 3.5,3.75",
		"c0.25,3 -1.5,3.25 -2.25,4",
		"c-0.5,0.5 -1.25,2 -4.25,1.25",
		"c-3,-0.75 -6,-0.75 -7.25,0",
		"c-20.25,7 -35,13 -62,16",
		"l-3.5,32.5",
		"c-0.375,3.482143 1.75,5.75 5,5",
		"c28.75,-6.634615 62.5,7.5 27.5,55",
		"c-1.25,1.696428 -3,2 -3.75,4.5",
		"c-0.75,2.5 -5,5.25 -8.75,5.5",
		"c-5,-0.333333 -6.75,-2 -6.75,-12.5",
		"c0,-4.5 -4.25,-3.75 -5,-3.25",
		"c-3.75,2.5 -6,-2.5 -0.5,-6.5",
		"c3.5,-2.545455 8.75,-5 10.5,-10",
		"c0.625,-1.785715 4,-2.5 5,-5.5",
		"c2.25,-3 3.5,-14.5 -7.5,-14.5",
		"c-7.5,0 -17.5,7.5 -28.75,25",
		"c-6.75,10.5 -12,3.75 -12.5,-2.5",
		"c-1,-12.5 -2.75,-12.5 -3.75,-13.75",
		"c-3,-3.75 -15,0 -21.75,10",
		"c-1.5,2.222222 -2.5,4.5 -3.5,5",
		"c-1,0.5 -2.75,3 -3,5",
		"c-0.25,2 -1,4.5 -2,5",
		"c-0.5,1 -0.55,2 -0.5,4",
		"c-0.25,1.25 -0.5,5 -1.25,6",
		"c-2,2.6666667 -2.75,3.25 -7.5,0",
		"c-2.5,-1.710528 -5,-1.75 -10,0",
		"c-1.75,0.6125 -3.5,1.5 -5.25,1.5",
		"c-1.5,0 -4,-1 -3.25,-3.5",
		"c11.25,-37.5 45,-52.5 68.5,-53.25z",
	)
	p.doc.Element("ellipse",
		p.cx(-45),
		p.cy(-55),
		svg.A("rx", 8),
		svg.A("ry", 5.5),
		svg.A("fill", p.fg),
		svg.A("transform", "rotate(24 "+svg.Num(p.x)+" "+svg.Num(p.y)+")"),
	)
	p.doc.Element("circle",
		p.cx(25.25),
		p.cy(-63),
		svg.A("r", 5.25),
		svg.A("fill", p.fg),
	)
}

func sun(p *pen) {
	const (
		short = "l0,-136 c0,-2.25 3,-3 4,-3 c1,0 4,0.75 4,3 l0,136 c0,2.25 -3,3 -4,3 c-1,0 -4,-0.75 -4,-4z"
		long  = "l0,-165 c0,-2.25 3,-3 4,-3 c1,0 4,0.75 4,3 l0,165 c0,2.25 -3,3 -4,3 c-1,0 -4,-0.75 -4,-3z"
		wide  = "l-136,0 c-2.25,0 -3,3 -3,4 c0,1 0.75,4 3,4 l136,0 c2.25,0 3,-3 3,-4 c 0,-1 -0.75,-4 -3,-4z"
		wider = "l-165,0 c-2.25,0 -3,3 -3,4 c0,1 0.75,4 3,4 l165,0 c2.25,0 3,-3 3,-4 c 0,-1 -0.75,-4 -3,-4z"
	)
	// vertical bars
	p.fill(p.fg, -21.5, 68, short)
	p.fill(p.fg, 13.5, 68, short)
	p.fill(p.fg, -9.833333, 82.5, long)
	p.fill(p.fg, 1.833333, 82.5, long)
	// horizontal bars
	p.fill(p.fg, 68, -21.5, wide)
	p.fill(p.fg, 68, 13.5, wide)
	p.fill(p.fg, 82.5, -9.833333, wider)
	p.fill(p.fg, 82.5, 1.833333, wider)

	for _, disc := range []struct {
		r     int
		color string
	}{{36, p.fg}, {28, p.bg}} {
		p.doc.Element("circle",
			p.cx(0),
			p.cy(0),
			svg.A("r", disc.r),
			svg.A("fill", disc.color),
		)
	}
}

// waugalSpine is the center line of the serpent body from the neck to the
// tail, relative to the cell center.
var waugalSpine = [][2]float64{
	{0, -40}, {16, -22}, {26, 0}, {20, 20}, {-10, 41}, {-31, 61}, {-6, 78},
}

func waugal(p *pen) {
	p.doc.Element("path",
		svg.A("stroke", "none"),
		svg.A("fill", p.fg),
		svg.A("d", "M"+p.pt(0, -80)+
			" C"+p.pt(22, -80)+" "+p.pt(32, -62)+" "+p.pt(30, -48)+
			" C"+p.pt(28, -38)+" "+p.pt(18, -34)+" "+p.pt(14, -28)+
			" C"+p.pt(40, -10)+" "+p.pt(44, 14)+" "+p.pt(20, 30)+
			" C"+p.pt(0, 44)+" "+p.pt(-30, 46)+" "+p.pt(-24, 64)+
			" C"+p.pt(-20, 76)+" "+p.pt(-2, 82)+" "+p.pt(10, 84)+
			" C"+p.pt(-10, 86)+" "+p.pt(-40, 76)+" "+p.pt(-40, 60)+
			" C"+p.pt(-40, 36)+" "+p.pt(-4, 32)+" "+p.pt(10, 16)+
			" C"+p.pt(22, 2)+" "+p.pt(12, -16)+" "+p.pt(-14, -28)+
			" C"+p.pt(-18, -34)+" "+p.pt(-28, -38)+" "+p.pt(-30, -48)+
			" C"+p.pt(-32, -62)+" "+p.pt(-22, -80)+" "+p.pt(0, -80)+"z"),
	)
	// forked tongue
	p.fill(p.fg, 0, -80, "l-1.5,-6 l-5,-5 l6,2.5 l0.5,-3 l0.5,3 l6,-2.5 l-5,5z")
	// nostrils
	for _, dx := range []float64{-6, 6} {
		p.doc.FilledCircle(p.x+dx, p.y-74, 1.75, p.bg, 1)
	}
	for _, dx := range []float64{-15, 15} {
		p.eye(p.x+dx, p.y-58, 5, 10, 8)
	}
	// holes along the body
	for _, h := range [][2]float64{{24, 0}, {20, 20}, {-10, 41}, {-31, 61}, {-6, 78}} {
		p.doc.FilledCircle(p.x+h[0], p.y+h[1], 2.5, p.bg, 1)
	}
	p.scaleLines(waugalSpine, 50)
}

// eye draws an eye of radius r at (ex, ey) surrounded by seven scales that
// fill the ellipse (rx, ry) outside the gap circle of radius r+1.
func (p *pen) eye(ex, ey, r, rx, ry float64) {
	p.doc.FilledCircle(ex, ey, r, p.bg, 1)

	g := r + 1
	const step = 360.0 / 7
	for n := 0; n < 7; n++ {
		a1 := deg2rad(95 + float64(n)*step)
		a2 := deg2rad(85 + float64(n+1)*step)
		in1 := xy(ex+g*math.Cos(a1), ey+g*math.Sin(a1))
		out1 := xy(ex+rx*math.Cos(a1), ey+ry*math.Sin(a1))
		out2 := xy(ex+rx*math.Cos(a2), ey+ry*math.Sin(a2))
		in2 := xy(ex+g*math.Cos(a2), ey+g*math.Sin(a2))
		d := "M" + in1 +
			" L" + out1 +
			" A" + svg.Num(rx) + "," + svg.Num(ry) + " 0 0 1 " + out2 +
			" L" + in2 +
			" A" + svg.Num(g) + "," + svg.Num(g) + " 0 0 0 " + in1 + "z"
		p.doc.Element("path",
			svg.A("stroke", "none"),
			svg.A("fill", p.bg),
			svg.A("fill-opacity", 0.5),
			svg.A("d", d),
		)
	}
}

// scaleLines strokes n short diagonal ticks spread evenly along the
// polyline spine.
func (p *pen) scaleLines(spine [][2]float64, n int) {
	var seg []float64
	total := 0.0
	for i := 1; i < len(spine); i++ {
		l := math.Hypot(spine[i][0]-spine[i-1][0], spine[i][1]-spine[i-1][1])
		seg = append(seg, l)
		total += l
	}

	var sb strings.Builder
	for k := 0; k < n; k++ {
		at := total * (float64(k) + 0.5) / float64(n)
		i := 0
		for i < len(seg)-1 && at > seg[i] {
			at -= seg[i]
			i++
		}
		t := at / seg[i]
		x := spine[i][0] + t*(spine[i+1][0]-spine[i][0])
		y := spine[i][1] + t*(spine[i+1][1]-spine[i][1])
		if k > 0 {
			sb.WriteByte(' ')
		}
		if k%2 == 0 {
			sb.WriteString("M" + p.pt(round3(x-3), round3(y-3)) + " l6,6")
		} else {
			sb.WriteString("M" + p.pt(round3(x-3), round3(y+3)) + " l6,-6")
		}
	}
	p.doc.Element("path",
		svg.A("fill", "none"),
		svg.A("stroke", p.bg),
		svg.A("stroke-width", 0.75),
		svg.A("d", sb.String()),
	)
}

func awen(p *pen) {
	for _, ring := range []struct{ r, width float64 }{{75, 3}, {70.75, 1.5}, {66.25, 3}} {
		p.doc.Element("circle",
			p.cx(0),
			p.cy(0),
			svg.A("r", ring.r),
			svg.A("stroke-width", ring.width),
			svg.A("stroke", p.fg),
			svg.A("fill", "none"),
		)
	}
	for _, dot := range [][2]float64{{-22, -44}, {0, -50}, {22, -44}} {
		p.doc.FilledCircle(p.x+dot[0], p.y+dot[1], 3, p.fg, 1)
	}
	// rays
	p.fill(p.fg, -20, -35, "l-20,79 l-12,-8z")
	p.fill(p.fg, 0, -40, "l7,98 l-14,0z")
	p.fill(p.fg, 20, -35, "l20,79 l12,-8z")
}

func xy(x, y float64) string { return svg.Num(round3(x)) + "," + svg.Num(round3(y)) }

func round3(v float64) float64 { return math.Round(v*1000) / 1000 }

func deg2rad(deg float64) float64 { return deg / 180 * math.Pi }

