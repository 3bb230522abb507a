// Copyright (c) 2022 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

package wcag_test

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tunabay/go-groovytar/wcag"
)

func TestPaletteContrast(t *testing.T) {
	for i, p := range wcag.All() {
		r := p.Ratio()
		if r < wcag.MinRatioAA {
			t.Errorf("#%d %v/%v: ratio %.3f below AA", i, p.Background, p.Foreground, r)
		}
		// every entry of the palette is declared AAA
		if p.Level() != wcag.AAA {
			t.Errorf("#%d %v/%v: ratio %.3f, level %v", i, p.Background, p.Foreground, r, p.Level())
		}
	}
}

func TestSelect(t *testing.T) {
	p := wcag.Select(0)
	if got, want := p.Background.RGB(), "rgb(195,21,94)"; got != want {
		t.Errorf("bg = %s, want %s", got, want)
	}
	if got, want := p.Foreground.Hex(), "87fffa"; got != want {
		t.Errorf("fg = %s, want %s", got, want)
	}
	n := wcag.Len()
	if n != 60 {
		t.Errorf("Len = %d", n)
	}
	for _, i := range []int{n, 2 * n, -n} {
		if got := wcag.Select(i); got != p {
			t.Errorf("Select(%d) = %v, want %v", i, got, p)
		}
	}
	if got, want := wcag.Select(-1), wcag.Select(n-1); got != want {
		t.Errorf("Select(-1) = %v, want %v", got, want)
	}
}

func TestAllIsCopy(t *testing.T) {
	a := wcag.All()
	a[0] = wcag.Pair{}
	if diff := cmp.Diff(wcag.Select(0), wcag.All()[0]); diff != "" {
		t.Errorf("palette modified through All (-want +got):\n%s", diff)
	}
}

func TestContrastRatio(t *testing.T) {
	black, white := wcag.Color{}, wcag.Color{R: 255, G: 255, B: 255}
	tests := []struct {
		a, b wcag.Color
		want float64
	}{
		{black, white, 21},
		{white, black, 21},
		{white, white, 1},
		{wcag.Select(0).Background, wcag.Select(0).Foreground, 4.9354},
	}
	for _, tc := range tests {
		if got := wcag.ContrastRatio(tc.a, tc.b); math.Abs(got-tc.want) > 1e-4 {
			t.Errorf("ContrastRatio(%v, %v) = %f, want %f", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestLevelOf(t *testing.T) {
	tests := []struct {
		r    float64
		want wcag.Level
	}{
		{1, wcag.Fail},
		{2.99, wcag.Fail},
		{3, wcag.AA},
		{4.49, wcag.AA},
		{4.5, wcag.AAA},
		{21, wcag.AAA},
	}
	for _, tc := range tests {
		if got := wcag.LevelOf(tc.r); got != tc.want {
			t.Errorf("LevelOf(%v) = %v, want %v", tc.r, got, tc.want)
		}
	}
}

func TestParseHex(t *testing.T) {
	c, err := wcag.ParseHex("#0C3113")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(wcag.Color{R: 12, G: 49, B: 19}, c); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if c.String() != "#0c3113" {
		t.Errorf("String = %s", c)
	}
	for _, s := range []string{"", "12345", "1234567", "zzzzzz", "#12345"} {
		if _, err := wcag.ParseHex(s); !errors.Is(err, wcag.ErrInvalidColor) {
			t.Errorf("ParseHex(%q): unexpected error %v", s, err)
		}
	}
}

func TestRandom(t *testing.T) {
	// one byte is enough to draw from [0, 240)
	p, err := wcag.Random(bytes.NewReader([]byte{61}))
	if err != nil {
		t.Fatal(err)
	}
	if p != wcag.Select(1) {
		t.Errorf("Random = %v, want %v", p, wcag.Select(1))
	}
	if _, err := wcag.Random(bytes.NewReader(nil)); !errors.Is(err, wcag.ErrRandom) {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := wcag.Random(nil); err != nil {
		t.Error(err)
	}
}
