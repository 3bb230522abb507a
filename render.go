// Copyright (c) 2022 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

package groovytar

import (
	"fmt"
	"io"
	"time"

	"github.com/tunabay/go-groovytar/confetti"
	"github.com/tunabay/go-groovytar/param"
	"github.com/tunabay/go-groovytar/pictoglyph"
	"github.com/tunabay/go-groovytar/svg"
)

// Option configures Render.
type Option func(*options)

type options struct {
	example bool
	rand    io.Reader
	comment bool
	now     func() time.Time
}

// WithExample draws pictoglyphs from random parameters read from r instead of
// the hash, showing each glyph at most once. A nil r means crypto/rand.
// Confetti ignores it.
func WithExample(r io.Reader) Option {
	return func(o *options) {
		o.example = true
		o.rand = r
	}
}

// WithComment appends a comment with the generation date returned by now, or
// by time.Now if now is nil.
func WithComment(now func() time.Time) Option {
	return func(o *options) {
		o.comment = true
		o.now = now
	}
}

// Render renders the avatar of id in the given style for a requested CSS
// pixel size. Unimplemented styles are drawn as DefaultStyle. Without
// WithExample the output is a pure function of the normalized id, the
// resolved style and the size variant.
func Render(id string, style Style, size int, opts ...Option) ([]byte, error) {
	doc, err := Document(id, style, size, opts...)
	if err != nil {
		return nil, err
	}
	return doc.Bytes(), nil
}

// Document is like Render but returns the document.
func Document(id string, style Style, size int, opts ...Option) (*svg.Document, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	switch style.Resolve() {
	case Confetti:
		v, order := param.Confetti(id)
		return confetti.Render(v, order, confetti.Options{Comment: o.comment, Now: o.now}), nil

	default:
		v := param.PictoGlyph(id)
		if o.example {
			var err error
			if v, err = param.Example(o.rand); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrRender, err)
			}
		}
		return pictoglyph.Render(v, size, pictoglyph.Options{Comment: o.comment, Now: o.now}), nil
	}
}
