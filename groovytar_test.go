// Copyright (c) 2022 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

package groovytar_test

import (
	"bytes"
	"errors"
	"io"
	"math/rand"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/tunabay/go-groovytar"
	"github.com/tunabay/go-groovytar/internal/svgtest"
	"github.com/tunabay/go-groovytar/param"
)

const emptyMD5 = "d41d8cd98f00b204e9800998ecf8427e"

func render(t *testing.T, id string, style groovytar.Style, size int, opts ...groovytar.Option) []byte {
	t.Helper()
	b, err := groovytar.Render(id, style, size, opts...)
	if err != nil {
		t.Fatalf("Render(%q, %s, %d): %v", id, style, size, err)
	}
	return b
}

func parse(t *testing.T, b []byte) *svgtest.Node {
	t.Helper()
	root, err := svgtest.Parse(b)
	if err != nil {
		t.Fatalf("parse: %v\n%s", err, b)
	}
	return root
}

func TestParseStyle(t *testing.T) {
	tests := []struct {
		d        string
		style    groovytar.Style
		resolved groovytar.Style
	}{
		{"identicon", groovytar.Confetti, groovytar.Confetti},
		{"confetti", groovytar.Confetti, groovytar.Confetti},
		{" Confetti ", groovytar.Confetti, groovytar.Confetti},
		{"wavatar", groovytar.Amphibious, groovytar.PictoGlyph},
		{"amphibious", groovytar.Amphibious, groovytar.PictoGlyph},
		{"monsterid", groovytar.Ogre, groovytar.PictoGlyph},
		{"ogre", groovytar.Ogre, groovytar.PictoGlyph},
		{"retro", groovytar.Simplebit, groovytar.PictoGlyph},
		{"simplebit", groovytar.Simplebit, groovytar.PictoGlyph},
		{"robohash", groovytar.Automaton, groovytar.PictoGlyph},
		{"automaton", groovytar.Automaton, groovytar.PictoGlyph},
		{"mm", groovytar.PictoGlyph, groovytar.PictoGlyph},
		{"pictoglyph", groovytar.PictoGlyph, groovytar.PictoGlyph},
		{"", groovytar.PictoGlyph, groovytar.PictoGlyph},
		{"404", groovytar.PictoGlyph, groovytar.PictoGlyph},
		{"blank", groovytar.PictoGlyph, groovytar.PictoGlyph},
	}
	for _, tt := range tests {
		style := groovytar.ParseStyle(tt.d)
		if style != tt.style || style.Resolve() != tt.resolved {
			t.Errorf("ParseStyle(%q) = %s -> %s, want %s -> %s", tt.d, style, style.Resolve(), tt.style, tt.resolved)
		}
	}
}

func TestSizeModifier(t *testing.T) {
	tests := []struct {
		style groovytar.Style
		size  int
		want  string
	}{
		{groovytar.PictoGlyph, 32, "-small"},
		{groovytar.PictoGlyph, 128, "-small"},
		{groovytar.PictoGlyph, 129, ""},
		{groovytar.PictoGlyph, 240, ""},
		{groovytar.Ogre, 64, "-small"},
		{groovytar.Confetti, 32, ""},
		{groovytar.Confetti, 1000, ""},
	}
	for _, tt := range tests {
		if got := tt.style.SizeModifier(tt.size); got != tt.want {
			t.Errorf("%s.SizeModifier(%d) = %q, want %q", tt.style, tt.size, got, tt.want)
		}
	}
}

func TestParseSize(t *testing.T) {
	tests := map[string]int{
		"":      240,
		"abc":   240,
		"0x40":  240,
		"inf":   240,
		"NaN":   240,
		"31":    240,
		"-31":   240,
		"32":    32,
		"-64":   64,
		" 96 ":  96,
		"400.7": 400,
		"1e3":   1000,
		"128":   128,
		"9e99":  1<<31 - 1,
		"12px":  240,
	}
	for s, want := range tests {
		if got := groovytar.ParseSize(s); got != want {
			t.Errorf("ParseSize(%q) = %d, want %d", s, got, want)
		}
	}
}

func TestParseRating(t *testing.T) {
	tests := map[string]groovytar.Rating{
		"":    groovytar.RatingG,
		"g":   groovytar.RatingG,
		"PG":  groovytar.RatingPG,
		" r ": groovytar.RatingR,
		"x":   groovytar.RatingX,
		"nc":  groovytar.RatingG,
	}
	for s, want := range tests {
		if got := groovytar.ParseRating(s); got != want {
			t.Errorf("ParseRating(%q) = %s, want %s", s, got, want)
		}
	}
}

func TestHashFromPath(t *testing.T) {
	tests := []struct {
		path string
		hash string
		ok   bool
	}{
		{"/" + emptyMD5, emptyMD5, true},
		{"/avatar/" + strings.ToUpper(emptyMD5), emptyMD5, true},
		{"/avatar/" + emptyMD5 + "?s=64", emptyMD5, true},
		{"/avatar/" + emptyMD5 + "/", "", false},
		{"/avatar/" + emptyMD5[:31], "", false},
		{"/avatar/" + emptyMD5 + "0", "", false},
		{"/avatar/d41d8cd98f00b204e9800998ecf8427g", "", false},
		{"/", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		hash, ok := groovytar.HashFromPath(tt.path)
		if hash != tt.hash || ok != tt.ok {
			t.Errorf("HashFromPath(%q) = %q, %v, want %q, %v", tt.path, hash, ok, tt.hash, tt.ok)
		}
	}
}

func TestParseRequest(t *testing.T) {
	u, _ := url.Parse("/avatar/D41D8CD98F00B204E9800998ECF8427E?s=-96&d=wavatar&r=PG")
	req, err := groovytar.ParseRequest(u, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := &groovytar.Request{
		Hash:      emptyMD5,
		Valid:     true,
		Style:     groovytar.PictoGlyph,
		Requested: groovytar.Amphibious,
		Size:      96,
		Rating:    groovytar.RatingPG,
	}
	if diff := cmp.Diff(want, req); diff != "" {
		t.Errorf("request (-want +got):\n%s", diff)
	}
	e, ok := req.Entry()
	if !ok {
		t.Fatal("valid request not cacheable")
	}
	if got := e.RelPath(); got != "pictoglyph/"+emptyMD5+"-small.svg" {
		t.Errorf("RelPath = %s", got)
	}
}

func TestParseRequestMalformed(t *testing.T) {
	u, _ := url.Parse("/avatar/not-a-hash?d=identicon")
	seed := bytes.Repeat([]byte{0xab}, 16)
	req, err := groovytar.ParseRequest(u, bytes.NewReader(seed))
	if err != nil {
		t.Fatal(err)
	}
	if req.Valid || req.Hash != strings.Repeat("ab", 16) || req.Style != groovytar.Confetti || req.Size != 240 {
		t.Errorf("request %+v", req)
	}
	if _, ok := req.Entry(); ok {
		t.Error("substituted hash is cacheable")
	}

	if _, err := groovytar.ParseRequest(u, bytes.NewReader(nil)); !errors.Is(err, param.ErrRandom) {
		t.Errorf("empty random source: %v", err)
	}
}

func TestEntry(t *testing.T) {
	tests := []struct {
		e    groovytar.Entry
		rel  string
		size int
	}{
		{groovytar.Entry{Style: groovytar.Confetti, Hash: emptyMD5}, "confetti/" + emptyMD5 + ".svg", 240},
		{groovytar.Entry{Style: groovytar.PictoGlyph, Hash: emptyMD5, Small: true}, "pictoglyph/" + emptyMD5 + "-small.svg", 32},
	}
	for _, tt := range tests {
		if rel := tt.e.RelPath(); rel != tt.rel {
			t.Errorf("%v: RelPath = %s, want %s", tt.e, rel, tt.rel)
		}
		b, err := tt.e.Render()
		if err != nil {
			t.Fatal(err)
		}
		small := tt.e.Style.SizeModifier(tt.size) != ""
		if !bytes.Equal(b, render(t, tt.e.Hash, tt.e.Style, tt.size)) || small != tt.e.Small {
			t.Errorf("%v: rendered variant mismatch", tt.e)
		}
	}
}

func TestHashNormalization(t *testing.T) {
	for _, style := range []groovytar.Style{groovytar.Confetti, groovytar.PictoGlyph} {
		for _, size := range []int{64, 240} {
			lower := render(t, emptyMD5, style, size)
			if upper := render(t, strings.ToUpper(emptyMD5), style, size); !bytes.Equal(lower, upper) {
				t.Errorf("%s/%d: uppercase hash renders differently", style, size)
			}
			x := render(t, "x", style, size)
			if md5x := render(t, "9dd4e461268c8034f5c8564e155c67a6", style, size); !bytes.Equal(x, md5x) {
				t.Errorf("%s/%d: \"x\" differs from its md5", style, size)
			}
		}
	}
}

func TestDeterministic(t *testing.T) {
	now := func() time.Time { return time.Date(2022, 5, 1, 0, 0, 0, 0, time.UTC) }
	for _, style := range []groovytar.Style{groovytar.Confetti, groovytar.PictoGlyph} {
		a := render(t, "someone@example.com", style, 240)
		b := render(t, "someone@example.com", style, 240, groovytar.WithComment(now))
		if bytes.Equal(a, b) {
			t.Errorf("%s: comment missing", style)
		}
		if !bytes.Equal(a, svgtest.StripComment(b)) {
			t.Errorf("%s: output differs beyond the comment", style)
		}
	}
}

func TestRenderConfetti(t *testing.T) {
	root := parse(t, render(t, emptyMD5, groovytar.Confetti, 32))
	if w, h := root.Get("width"), root.Get("height"); w != "800" || h != "800" {
		t.Errorf("size %s x %s", w, h)
	}
	if n := root.Count("path") + root.Count("circle"); n != 34 {
		t.Errorf("%d shapes", n)
	}
	last := root.Children[len(root.Children)-2:]
	got := []string{last[0].Get("fill"), last[1].Get("fill")}
	if diff := cmp.Diff([]string{"rgb(123,123,123)", "rgb(80,80,80)"}, got); diff != "" {
		t.Errorf("frame (-want +got):\n%s", diff)
	}
}

func TestRenderPictoGlyph(t *testing.T) {
	tests := []struct {
		size   int
		width  string
		groups int
	}{
		{64, "600", 9},
		{128, "600", 9},
		{129, "800", 16},
		{400, "800", 16},
	}
	for _, tt := range tests {
		root := parse(t, render(t, "not-a-hash", groovytar.PictoGlyph, tt.size))
		if w, vb := root.Get("width"), root.Get("viewBox"); w != tt.width || vb != "0 0 "+tt.width+" "+tt.width {
			t.Errorf("size %d: width %s, viewBox %q", tt.size, w, vb)
		}
		if n := root.Count("g"); n != tt.groups {
			t.Errorf("size %d: %d groups, want %d", tt.size, n, tt.groups)
		}
	}
}

func TestUnimplementedStyle(t *testing.T) {
	want := render(t, emptyMD5, groovytar.PictoGlyph, 240)
	for _, style := range []groovytar.Style{groovytar.Amphibious, groovytar.Ogre, groovytar.Simplebit, groovytar.Automaton, "nope"} {
		if got := render(t, emptyMD5, style, 240); !bytes.Equal(got, want) {
			t.Errorf("%s is not drawn as pictoglyph", style)
		}
	}
}

func TestExample(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	a := render(t, emptyMD5, groovytar.PictoGlyph, 240, groovytar.WithExample(rnd))
	if n := parse(t, a).Count("g"); n != 16 {
		t.Errorf("example has %d groups", n)
	}
	if b := render(t, emptyMD5, groovytar.PictoGlyph, 240, groovytar.WithExample(rnd)); bytes.Equal(a, b) {
		t.Error("example mode repeats itself")
	}

	// confetti has no example mode
	if c := render(t, emptyMD5, groovytar.Confetti, 240, groovytar.WithExample(rnd)); !bytes.Equal(c, render(t, emptyMD5, groovytar.Confetti, 240)) {
		t.Error("confetti changed in example mode")
	}

	_, err := groovytar.Render(emptyMD5, groovytar.PictoGlyph, 240, groovytar.WithExample(io.LimitReader(rnd, 3)))
	if !errors.Is(err, groovytar.ErrRender) || !errors.Is(err, param.ErrRandom) {
		t.Errorf("short random source: %v", err)
	}
}

func TestVerify(t *testing.T) {
	doc := render(t, emptyMD5, groovytar.PictoGlyph, 240, groovytar.WithComment(nil))
	if err := groovytar.Verify(bytes.NewReader(doc)); err != nil {
		t.Errorf("rendered document: %v", err)
	}
	for name, b := range map[string][]byte{
		"empty":     nil,
		"truncated": doc[:len(doc)/2],
		"no close":  doc[:len(doc)-7],
		"html":      []byte("<html></html>"),
		"two roots": []byte(`<svg xmlns="http://www.w3.org/2000/svg"/><svg/>`),
	} {
		if err := groovytar.Verify(bytes.NewReader(b)); !errors.Is(err, groovytar.ErrInvalidDocument) {
			t.Errorf("%s: %v", name, err)
		}
	}
}
