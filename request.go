// Copyright (c) 2022 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

package groovytar

import (
	"fmt"
	"io"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/tunabay/go-groovytar/param"
)

// Requested CSS pixel sizes.
const (
	DefaultSize = 240
	MinSize     = 32
)

// Rating is the content rating of a request. It only matters for uploaded
// avatars, generated ones are always suitable for any rating.
type Rating string

// Ratings.
const (
	RatingG  Rating = "g"
	RatingPG Rating = "pg"
	RatingR  Rating = "r"
	RatingX  Rating = "x"
)

// ParseRating returns the rating named by r, or RatingG if r is not one.
func ParseRating(r string) Rating {
	switch rt := Rating(strings.ToLower(strings.TrimSpace(r))); rt {
	case RatingPG, RatingR, RatingX:
		return rt
	}
	return RatingG
}

// ParseSize returns the requested size given by s. A numeric value is taken
// as its absolute integer part, and is ignored below MinSize. DefaultSize is
// returned when s gives no usable size.
func ParseSize(s string) int {
	f, ok := parseNumeric(s)
	if !ok {
		return DefaultSize
	}
	f = math.Trunc(math.Abs(f))
	switch {
	case f < MinSize:
		return DefaultSize
	case f > math.MaxInt32:
		return math.MaxInt32
	}
	return int(f)
}

// parseNumeric accepts decimal integers and floating point numbers with an
// optional exponent. Hexadecimal, infinities and NaN are rejected.
func parseNumeric(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case '0' <= c && c <= '9', c == '.', c == '+', c == '-', c == 'e', c == 'E':
		default:
			return 0, false
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// HashFromPath extracts the hash from the last segment of a request path. The
// segment is lowercased and accepted only if it is 32 hexadecimal digits.
func HashFromPath(path string) (string, bool) {
	path = strings.ToLower(path)
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		path = path[i+1:]
	}
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if !param.IsHash(path) {
		return "", false
	}
	return path, true
}

// Request is an avatar request.
type Request struct {
	// Hash is the lowercase 32-digit hash to render.
	Hash string

	// Valid is false when the requested hash was malformed and Hash was
	// replaced by a random one. Such a request must not be cached.
	Valid bool

	// Style is the style to draw, already resolved to an implemented one.
	// Requested is the style that was asked for.
	Style     Style
	Requested Style

	Size   int
	Rating Rating
}

// ParseRequest builds a request from the path and the s, d and r query
// parameters of u. A malformed hash is replaced by a random one read from
// rand, or crypto/rand if rand is nil. The returned error only reports a
// failure of the random source.
func ParseRequest(u *url.URL, rand io.Reader) (*Request, error) {
	q := u.Query()
	style := ParseStyle(q.Get("d"))
	req := &Request{
		Style:     style.Resolve(),
		Requested: style,
		Size:      ParseSize(q.Get("s")),
		Rating:    ParseRating(q.Get("r")),
	}

	if h, ok := HashFromPath(u.Path); ok {
		req.Hash, req.Valid = h, true
		return req, nil
	}
	h, err := param.RandomID(rand)
	if err != nil {
		return nil, fmt.Errorf("substitute hash: %w", err)
	}
	req.Hash = h

	return req, nil
}

// Small reports whether the request is served by the small variant.
func (r *Request) Small() bool { return r.Style.Small(r.Size) }

// Entry returns the cache entry of the request. ok is false when the request
// must not be cached.
func (r *Request) Entry() (e Entry, ok bool) {
	if !r.Valid {
		return Entry{}, false
	}
	return Entry{Style: r.Style, Hash: r.Hash, Small: r.Small()}, true
}

func (r *Request) String() string {
	return fmt.Sprintf("%s %s s=%d r=%s", r.Style, r.Hash, r.Size, r.Rating)
}
