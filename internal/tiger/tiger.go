// Copyright (c) 2022 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

// Package tiger implements the Tiger hash function with a configurable number
// of passes. The digest byte order is the one of the NESSIE test vectors,
// i.e. each 64-bit chaining word is emitted in little-endian order, and the
// truncated variants (128 and 160 bits) are prefixes of the 192-bit digest.
package tiger

//go:generate go run gen.go

import (
	"encoding/binary"
	"fmt"
	"hash"
)

// BlockSize is the block size of Tiger in bytes.
const BlockSize = 64

// Size192, Size160 and Size128 are the supported digest sizes in bytes.
const (
	Size192 = 24
	Size160 = 20
	Size128 = 16
)

const (
	init0 = 0x0123456789ABCDEF
	init1 = 0xFEDCBA9876543210
	init2 = 0xF096A5B4C3B2E187
)

// digest represents the partial evaluation of a Tiger checksum.
type digest struct {
	a, b, c uint64
	x       [BlockSize]byte
	nx      int
	length  uint64
	passes  int
	size    int
}

// New returns a new hash.Hash computing the Tiger checksum with the given
// number of passes (at least 3) truncated to size bytes.
func New(passes, size int) (hash.Hash, error) {
	switch {
	case passes < 3:
		return nil, fmt.Errorf("tiger: invalid number of passes %d", passes)
	case size != Size128 && size != Size160 && size != Size192:
		return nil, fmt.Errorf("tiger: invalid digest size %d", size)
	}
	d := &digest{passes: passes, size: size}
	d.Reset()

	return d, nil
}

// Sum128 returns the 128-bit Tiger checksum of the data computed with the
// given number of passes.
func Sum128(data []byte, passes int) (sum [Size128]byte) {
	d := &digest{passes: passes, size: Size128}
	d.Reset()
	_, _ = d.Write(data)
	copy(sum[:], d.checkSum())
	return
}

func (d *digest) Reset() {
	d.a, d.b, d.c = init0, init1, init2
	d.nx = 0
	d.length = 0
}

func (d *digest) Size() int { return d.size }

func (d *digest) BlockSize() int { return BlockSize }

func (d *digest) Write(p []byte) (int, error) {
	nn := len(p)
	d.length += uint64(nn)
	if d.nx > 0 {
		n := copy(d.x[d.nx:], p)
		d.nx += n
		if d.nx == BlockSize {
			d.compress(d.x[:])
			d.nx = 0
		}
		p = p[n:]
	}
	for len(p) >= BlockSize {
		d.compress(p[:BlockSize])
		p = p[BlockSize:]
	}
	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}

	return nn, nil
}

func (d *digest) Sum(in []byte) []byte {
	d0 := *d
	return append(in, d0.checkSum()...)
}

func (d *digest) checkSum() []byte {
	length := d.length

	// Tiger pads with 0x01, not 0x80.
	var tmp [BlockSize + 8]byte
	tmp[0] = 0x01
	pad := 56 - int(length%BlockSize)
	if pad <= 0 {
		pad += BlockSize
	}
	binary.LittleEndian.PutUint64(tmp[pad:], length<<3)
	_, _ = d.Write(tmp[:pad+8])

	out := make([]byte, Size192)
	binary.LittleEndian.PutUint64(out[0:], d.a)
	binary.LittleEndian.PutUint64(out[8:], d.b)
	binary.LittleEndian.PutUint64(out[16:], d.c)

	return out[:d.size]
}

func (d *digest) compress(block []byte) {
	var x [8]uint64
	for i := range x {
		x[i] = binary.LittleEndian.Uint64(block[i*8:])
	}
	a, b, c := d.a, d.b, d.c
	aa, bb, cc := a, b, c

	for n := 0; n < d.passes; n++ {
		if n != 0 {
			keySchedule(&x)
		}
		var mul uint64 = 9
		switch n {
		case 0:
			mul = 5
		case 1:
			mul = 7
		}
		a, b, c = pass(a, b, c, &x, mul)
		a, b, c = c, a, b
	}

	d.a = a ^ aa
	d.b = b - bb
	d.c = c + cc
}

func round(a, b, c, x, mul uint64) (uint64, uint64, uint64) {
	c ^= x
	a -= t1[byte(c)] ^ t2[byte(c>>16)] ^ t3[byte(c>>32)] ^ t4[byte(c>>48)]
	b += t4[byte(c>>8)] ^ t3[byte(c>>24)] ^ t2[byte(c>>40)] ^ t1[byte(c>>56)]
	b *= mul
	return a, b, c
}

func pass(a, b, c uint64, x *[8]uint64, mul uint64) (uint64, uint64, uint64) {
	a, b, c = round(a, b, c, x[0], mul)
	b, c, a = round(b, c, a, x[1], mul)
	c, a, b = round(c, a, b, x[2], mul)
	a, b, c = round(a, b, c, x[3], mul)
	b, c, a = round(b, c, a, x[4], mul)
	c, a, b = round(c, a, b, x[5], mul)
	a, b, c = round(a, b, c, x[6], mul)
	b, c, a = round(b, c, a, x[7], mul)
	return a, b, c
}

func keySchedule(x *[8]uint64) {
	x[0] -= x[7] ^ 0xA5A5A5A5A5A5A5A5
	x[1] ^= x[0]
	x[2] += x[1]
	x[3] -= x[2] ^ (^x[1] << 19)
	x[4] ^= x[3]
	x[5] += x[4]
	x[6] -= x[5] ^ (^x[4] >> 23)
	x[7] ^= x[6]
	x[0] += x[7]
	x[1] -= x[0] ^ (^x[7] << 19)
	x[2] ^= x[1]
	x[3] += x[2]
	x[4] -= x[3] ^ (^x[2] >> 23)
	x[5] ^= x[4]
	x[6] += x[5]
	x[7] -= x[6] ^ 0x0123456789ABCDEF
}
