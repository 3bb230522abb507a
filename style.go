// Copyright (c) 2022 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

package groovytar

import (
	"strings"

	"github.com/tunabay/go-groovytar/pictoglyph"
)

// Style is the name of an avatar renderer.
type Style string

// Known styles. Only Confetti and PictoGlyph are implemented, the others are
// recognised and drawn as PictoGlyph.
const (
	Confetti   Style = "confetti"
	PictoGlyph Style = "pictoglyph"
	Amphibious Style = "amphibious"
	Ogre       Style = "ogre"
	Simplebit  Style = "simplebit"
	Automaton  Style = "automaton"
)

// DefaultStyle is used for unknown and unimplemented styles.
const DefaultStyle = PictoGlyph

// ParseStyle maps the style selector of a request, including the aliases used
// by other avatar services, to a style. Unknown selectors give DefaultStyle.
// The result may be unimplemented, see Resolve.
func ParseStyle(d string) Style {
	switch strings.ToLower(strings.TrimSpace(d)) {
	case "identicon", "confetti":
		return Confetti
	case "wavatar", "amphibious":
		return Amphibious
	case "monsterid", "ogre":
		return Ogre
	case "retro", "simplebit":
		return Simplebit
	case "robohash", "automaton":
		return Automaton
	case "mm", "pictoglyph":
		return PictoGlyph
	}
	return DefaultStyle
}

// Implemented reports whether s has its own renderer.
func (s Style) Implemented() bool {
	return s == Confetti || s == PictoGlyph
}

// Resolve returns the style actually drawn for s.
func (s Style) Resolve() Style {
	if s.Implemented() {
		return s
	}
	return DefaultStyle
}

// SmallLimit returns the requested size below which the style draws its small
// variant. Zero means the style has a single variant.
func (s Style) SmallLimit() int {
	if s.Resolve() == PictoGlyph {
		return pictoglyph.SmallLimit
	}
	return 0
}

// Small reports whether a request of the given size is served by the small
// variant of s.
func (s Style) Small(size int) bool { return size < s.SmallLimit() }

// SizeModifier returns the file name suffix of the size variant, "-small" or
// an empty string.
func (s Style) SizeModifier(size int) string {
	if s.Small(size) {
		return smallModifier
	}
	return ""
}

const smallModifier = "-small"

func (s Style) String() string { return string(s) }
