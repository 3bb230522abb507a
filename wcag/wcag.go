// Copyright (c) 2022 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

package wcag

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"math"
	"strconv"
)

// Color is a 24-bit sRGB color.
type Color struct {
	R, G, B uint8
}

// ParseHex parses a six digit hexadecimal color such as "c3155e". A leading
// '#' is accepted.
func ParseHex(s string) (Color, error) {
	if len(s) == 7 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	var b [3]byte
	if _, err := hex.Decode(b[:], []byte(s)); err != nil {
		return Color{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, s, err)
	}

	return Color{R: b[0], G: b[1], B: b[2]}, nil
}

// RGB returns the color in the "rgb(r,g,b)" notation used in SVG attributes.
func (c Color) RGB() string {
	b := make([]byte, 0, 16)
	b = append(b, "rgb("...)
	b = strconv.AppendUint(b, uint64(c.R), 10)
	b = append(b, ',')
	b = strconv.AppendUint(b, uint64(c.G), 10)
	b = append(b, ',')
	b = strconv.AppendUint(b, uint64(c.B), 10)
	b = append(b, ')')
	return string(b)
}

// Hex returns the color as six lowercase hexadecimal digits.
func (c Color) Hex() string { return hex.EncodeToString([]byte{c.R, c.G, c.B}) }

// String returns the color in the "#rrggbb" form.
func (c Color) String() string { return "#" + c.Hex() }

// Luminance returns the relative luminance of the color as defined by
// WCAG 2.0, in the range [0, 1].
func Luminance(c Color) float64 {
	lin := func(v uint8) float64 {
		s := float64(v) / 255
		if s <= .03928 {
			return s / 12.92
		}
		return math.Pow((s+.055)/1.055, 2.4)
	}
	return .2126*lin(c.R) + .7152*lin(c.G) + .0722*lin(c.B)
}

// ContrastRatio returns the WCAG 2.0 contrast ratio of two colors, in the
// range [1, 21]. The order of the arguments does not matter.
func ContrastRatio(a, b Color) float64 {
	la, lb := Luminance(a), Luminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + .05) / (lb + .05)
}

// Level is the WCAG conformance level of a color pair for large text.
type Level int

// Conformance levels.
const (
	Fail Level = iota
	AA
	AAA
)

// Contrast thresholds for large text.
const (
	MinRatioAA  = 3.0
	MinRatioAAA = 4.5
)

// String returns the conventional name of the level.
func (l Level) String() string {
	switch l {
	case AAA:
		return "AAA"
	case AA:
		return "AA"
	}
	return "Fail"
}

// LevelOf returns the conformance level for the contrast ratio r.
func LevelOf(r float64) Level {
	switch {
	case r >= MinRatioAAA:
		return AAA
	case r >= MinRatioAA:
		return AA
	}
	return Fail
}

// Pair is a background and foreground color combination.
type Pair struct {
	Background Color
	Foreground Color
}

// Ratio returns the contrast ratio between the background and the foreground.
func (p Pair) Ratio() float64 { return ContrastRatio(p.Background, p.Foreground) }

// Level returns the conformance level of the pair.
func (p Pair) Level() Level { return LevelOf(p.Ratio()) }

type hexPair struct {
	bg, fg string
}

var table = func() []Pair {
	t := make([]Pair, len(pairs))
	for i, hp := range pairs {
		bg, err := ParseHex(hp.bg)
		if err != nil {
			panic(err)
		}
		fg, err := ParseHex(hp.fg)
		if err != nil {
			panic(err)
		}
		t[i] = Pair{Background: bg, Foreground: fg}
	}
	return t
}()

// Len returns the number of pairs in the palette.
func Len() int { return len(table) }

// Select returns the pair at index n modulo the palette length. Negative
// values are folded into range.
func Select(n int) Pair {
	n %= len(table)
	if n < 0 {
		n += len(table)
	}
	return table[n]
}

// Random returns a pair drawn uniformly from the palette. A nil r means
// crypto/rand.
func Random(r io.Reader) (Pair, error) {
	if r == nil {
		r = rand.Reader
	}
	// rejection sampling over single bytes keeps the draw uniform
	limit := 4 * len(table)
	var b [1]byte
	for {
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return Pair{}, fmt.Errorf("%w: %v", ErrRandom, err)
		}
		if int(b[0]) < limit {
			return Select(int(b[0])), nil
		}
	}
}

// All returns a copy of the palette in selection order.
func All() []Pair {
	t := make([]Pair, len(table))
	copy(t, table)
	return t
}
