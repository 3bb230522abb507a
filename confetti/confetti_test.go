// Copyright (c) 2022 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

package confetti_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/tunabay/go-groovytar/confetti"
	"github.com/tunabay/go-groovytar/internal/svgtest"
	"github.com/tunabay/go-groovytar/param"
)

const emptyMD5 = "d41d8cd98f00b204e9800998ecf8427e"

func TestRenderEmptyMD5(t *testing.T) {
	v, order := param.Confetti(emptyMD5)
	if order != '5' {
		t.Fatalf("order = %c, want 5", order)
	}
	out := confetti.Render(v, order, confetti.Options{}).Bytes()

	root, err := svgtest.Parse(out)
	if err != nil {
		t.Fatalf("parse: %v\n%s", err, out)
	}
	if w, h := root.Get("width"), root.Get("height"); w != "800" || h != "800" {
		t.Errorf("size %sx%s, want 800x800", w, h)
	}
	if vb := root.Get("viewBox"); vb != "0 0 800 800" {
		t.Errorf("viewBox = %q", vb)
	}
	if n := len(root.Children); n != 34 {
		t.Errorf("%d children, want 34", n)
	}
	if n := root.Count("path") + root.Count("circle"); n != 34 {
		t.Errorf("%d path/circle nodes, want 34", n)
	}

	s := string(out)
	for _, want := range []string{
		// sequence '5' starts with a circle, a triangle then two diamonds
		`<circle cx="450" cy="400" r="140" stroke-width="11" stroke-opacity="0.4" stroke="rgb(202,94,61)" fill-opacity="0.6" fill="rgb(178,108,15)"/>` +
			`<path stroke-width="16" stroke-opacity="0.4" stroke="rgb(15,202,254)" fill="rgb(202,94,61)" fill-opacity="0.6" d="M150,345 l285,474 l-452,-220z" transform="rotate(21)"/>` +
			`<path stroke-width="3" stroke-opacity="0.4" stroke="rgb(141,186,94)" fill="rgb(21,17,108)" fill-opacity="0.6" d="M550,300 l150,208 l150,-208 l-150,-208 l-150,208z" transform="rotate(61)"/>`,
		`<path stroke-width="6" stroke-opacity="0.4" stroke="rgb(254,61,17)" fill="rgb(141,186,94)" fill-opacity="0.6" d="M323,733 l88,-55 l22,-101 l-55,-88 l-101,-22 l-88,55 l-22,101 l55,88z"/>`,
		`<path stroke-width="5" stroke-opacity="0.4" stroke="rgb(108,141,202)" fill="rgb(61,0,57)" fill-opacity="0.6" d="M567,610 l80,-55 l6,-96 l-71,-66 l-95,15 l-48,85 l36,89z"/>`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("missing element:\n%s", want)
		}
	}
}

func TestFrameLast(t *testing.T) {
	for _, id := range []string{emptyMD5, "a", "b", "c", "user@example.com"} {
		v, order := param.Confetti(id)
		root, err := svgtest.Parse(confetti.Render(v, order, confetti.Options{}).Bytes())
		if err != nil {
			t.Fatal(err)
		}
		n := len(root.Children)
		ne, sw := root.Children[n-2], root.Children[n-1]
		got := [][2]string{
			{ne.Get("fill"), ne.Get("fill-opacity")},
			{sw.Get("fill"), sw.Get("fill-opacity")},
		}
		want := [][2]string{
			{"rgb(123,123,123)", "0.6"},
			{"rgb(80,80,80)", "0.6"},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%q: frame (-want +got):\n%s", id, diff)
		}
	}
}

func TestDeterministic(t *testing.T) {
	for _, id := range []string{emptyMD5, "x", "hello"} {
		v, order := param.Confetti(id)
		a := confetti.Render(v, order, confetti.Options{}).Bytes()
		b := confetti.Render(v, order, confetti.Options{}).Bytes()
		if !bytes.Equal(a, b) {
			t.Errorf("%q: output differs between runs", id)
		}
	}
}

func TestComment(t *testing.T) {
	v, order := param.Confetti(emptyMD5)
	now := func() time.Time { return time.Date(2022, 1, 2, 3, 4, 5, 0, time.UTC) }
	with := confetti.Render(v, order, confetti.Options{Comment: true, Now: now}).Bytes()
	if !bytes.HasSuffix(with, []byte("<!-- SVG Generated on Sun, 02 Jan 2022 03:04:05 +0000 --></svg>\n")) {
		t.Errorf("comment is not the last child:\n%s", with)
	}
	without := confetti.Render(v, order, confetti.Options{}).Bytes()
	if !bytes.Equal(svgtest.StripComment(with), without) {
		t.Error("output differs beyond the comment")
	}
}

func TestSequences(t *testing.T) {
	tests := map[byte]int{'0': 0, '9': 9, 'a': 10, 'e': 14, 'f': 15, 'x': 15, 0: 15}
	for order, want := range tests {
		if got := confetti.SequenceIndex(order); got != want {
			t.Errorf("SequenceIndex(%q) = %d, want %d", order, got, want)
		}
	}

	count := map[confetti.Shape]int{}
	for _, order := range []byte("0123456789abcdef") {
		seq := confetti.Sequence(order)
		if len(seq) != 32 {
			t.Errorf("sequence %c has %d steps", order, len(seq))
		}
		for _, s := range seq {
			if s.Start < 0 || s.Start > 15 {
				t.Errorf("sequence %c: start %d out of range", order, s.Start)
			}
			count[s.Shape]++
		}
	}
	want := map[confetti.Shape]int{
		confetti.Circle:   128,
		confetti.Diamond:  128,
		confetti.Triangle: 128,
		confetti.Polygon:  128,
	}
	if diff := cmp.Diff(want, count); diff != "" {
		t.Errorf("shape usage (-want +got):\n%s", diff)
	}

	first := confetti.Sequence('0')[0]
	if diff := cmp.Diff(confetti.Step{Shape: confetti.Polygon, Hint: 50, Start: 7}, first); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestAllOrdersWellFormed(t *testing.T) {
	v := param.Vector{0, 17, 34, 51, 68, 85, 102, 119, 136, 153, 170, 187, 204, 221, 238, 255}
	for _, order := range []byte("0123456789abcdef") {
		doc := confetti.Render(v, order, confetti.Options{})
		root, err := svgtest.Parse(doc.Bytes())
		if err != nil {
			t.Fatalf("order %c: %v", order, err)
		}
		if len(root.Children) != 34 || doc.Nodes() != 34 {
			t.Errorf("order %c: %d children", order, len(root.Children))
		}
	}
}
