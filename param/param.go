// Copyright (c) 2022 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

package param

import (
	"crypto/md5"
	"crypto/rand"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/tunabay/go-groovytar/internal/ripemd128"
	"github.com/tunabay/go-groovytar/internal/tiger"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // fixed by the image format
)

// Len is the number of bytes in a parameter vector.
const Len = 16

// Vector is the deterministic parameter vector driving every visual choice
// of a renderer.
type Vector [Len]byte

// Sum returns the sum of all the bytes of v.
func (v Vector) Sum() int {
	n := 0
	for _, b := range v {
		n += int(b)
	}
	return n
}

// At returns the byte at index i taken modulo Len, so that any offset
// computed by a renderer can be used directly.
func (v Vector) At(i int) int {
	i %= Len
	if i < 0 {
		i += Len
	}
	return int(v[i])
}

// String returns the lowercase hexadecimal form of v.
func (v Vector) String() string { return hex.EncodeToString(v[:]) }

// IsHash reports whether s consists of exactly 32 hexadecimal digits in
// either case.
func IsHash(s string) bool {
	if len(s) != 32 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return false
		}
	}
	return true
}

// Normalize maps an arbitrary identifier onto a 128-bit hash. A 32-digit
// hexadecimal identifier is used as is, any other string is replaced by its
// MD5 digest. The returned norm is the lowercase hexadecimal form of raw.
func Normalize(id string) (norm string, raw [16]byte) {
	if IsHash(id) {
		// IsHash guarantees the decoding succeeds.
		_, _ = hex.Decode(raw[:], []byte(id))
	} else {
		raw = md5.Sum([]byte(id))
	}
	return hex.EncodeToString(raw[:]), raw
}

// Confetti derives the parameter vector and the order nibble used by the
// confetti renderer. The order is a lowercase hexadecimal digit.
func Confetti(id string) (Vector, byte) {
	_, raw := Normalize(id)

	h := ripemd160.New()
	h.Write(raw[:])
	v := Vector(tiger.Sum128(h.Sum(nil), 4))

	rs := ripemd128.Sum(raw[:])
	order := hex.EncodeToString(rs[4:5])[0]

	return v, order
}

// PictoGlyph derives the parameter vector used by the pictoglyph renderer.
func PictoGlyph(id string) Vector {
	_, raw := Normalize(id)
	s := sha512.Sum384(raw[:])

	return Vector(tiger.Sum128(s[:], 3))
}

// Example returns a vector of random bytes whose values modulo 32 are
// pairwise distinct, so that a pictoglyph drawn from it shows no glyph
// twice. A nil r means crypto/rand.
func Example(r io.Reader) (Vector, error) {
	if r == nil {
		r = rand.Reader
	}
	var (
		v    Vector
		seen [32]bool
		buf  [Len]byte
	)
	for n := 0; n < Len; {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return v, fmt.Errorf("%w: %v", ErrRandom, err)
		}
		for _, b := range buf {
			if seen[b%32] {
				continue
			}
			seen[b%32] = true
			v[n] = b
			if n++; n == Len {
				break
			}
		}
	}

	return v, nil
}

// RandomID returns a fresh random 32-digit lowercase hexadecimal identifier.
// A nil r means crypto/rand.
func RandomID(r io.Reader) (string, error) {
	if r == nil {
		r = rand.Reader
	}
	var b [16]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRandom, err)
	}
	return hex.EncodeToString(b[:]), nil
}

func isHexDigit(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f', 'A' <= c && c <= 'F':
		return true
	}
	return false
}
