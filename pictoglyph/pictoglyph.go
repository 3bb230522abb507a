// Copyright (c) 2022 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

package pictoglyph

import (
	"strconv"
	"time"

	"github.com/tunabay/go-groovytar/param"
	"github.com/tunabay/go-groovytar/svg"
	"github.com/tunabay/go-groovytar/wcag"
)

// Image sizes. Requests smaller than SmallLimit get the small 3 x 3 image.
const (
	SmallSize  = 600
	LargeSize  = 800
	SmallLimit = 129
)

// Cell is the width and height of the square each glyph is drawn in.
const Cell = 200

// colorSeed is added to the parameter sum before selecting the palette entry.
const colorSeed = 17

// Options controls the optional parts of the output.
type Options struct {
	// Comment appends the generation date comment.
	Comment bool

	// Now returns the date written in the comment. time.Now is used if nil.
	Now func() time.Time
}

// SizeFor returns the image size used for the requested display size.
func SizeFor(size int) int {
	if size < SmallLimit {
		return SmallSize
	}
	return LargeSize
}

// Colors returns the palette entry selected by the parameter vector.
func Colors(v param.Vector) wcag.Pair {
	return wcag.Select((colorSeed + v.Sum()) % 256)
}

// GlyphID returns the id of the glyph drawn in the cell (i, j).
func GlyphID(v param.Vector, i, j int) int {
	return int(v[4*j+i]) % Count
}

// Render draws the glyph grid of the parameter vector v for the requested
// display size.
func Render(v param.Vector, size int, opts Options) *svg.Document {
	w := SizeFor(size)
	n := w / Cell
	pair := Colors(v)

	doc := svg.New(w)
	doc.Canvas(pair.Background.RGB())
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			id := GlyphID(v, i, j)
			doc.Group(
				svg.A("id", "glyph-"+strconv.Itoa(i)+"-"+strconv.Itoa(j)),
				svg.A("class", Name(id)),
			)
			DrawGlyph(doc, id, Cell*i+Cell/2, Cell*j+Cell/2, pair)
			doc.EndGroup()
		}
	}
	doc.Frame(svg.FrameNE, svg.FrameSW)

	if opts.Comment {
		now := opts.Now
		if now == nil {
			now = time.Now
		}
		doc.GenerationComment(now())
	}

	return doc
}
