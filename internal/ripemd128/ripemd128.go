// Copyright (c) 2022 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

// Package ripemd128 implements the RIPEMD-128 hash algorithm.
package ripemd128

import (
	"encoding/binary"
	"hash"
	"math/bits"
)

// Size is the size of a RIPEMD-128 checksum in bytes.
const Size = 16

// BlockSize is the block size of RIPEMD-128 in bytes.
const BlockSize = 64

const (
	s0 = 0x67452301
	s1 = 0xefcdab89
	s2 = 0x98badcfe
	s3 = 0x10325476
)

type digest struct {
	s  [4]uint32
	x  [BlockSize]byte
	nx int
	tc uint64
}

// New returns a new hash.Hash computing the RIPEMD-128 checksum.
func New() hash.Hash {
	d := new(digest)
	d.Reset()
	return d
}

// Sum returns the RIPEMD-128 checksum of the data.
func Sum(data []byte) (sum [Size]byte) {
	d := new(digest)
	d.Reset()
	_, _ = d.Write(data)
	copy(sum[:], d.checkSum())
	return
}

func (d *digest) Reset() {
	d.s = [4]uint32{s0, s1, s2, s3}
	d.nx = 0
	d.tc = 0
}

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return BlockSize }

func (d *digest) Write(p []byte) (int, error) {
	nn := len(p)
	d.tc += uint64(nn)
	if d.nx > 0 {
		n := copy(d.x[d.nx:], p)
		d.nx += n
		if d.nx == BlockSize {
			d.block(d.x[:])
			d.nx = 0
		}
		p = p[n:]
	}
	for len(p) >= BlockSize {
		d.block(p[:BlockSize])
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
	tc := d.tc
	var tmp [BlockSize + 8]byte
	tmp[0] = 0x80
	pad := 56 - int(tc%BlockSize)
	if pad <= 0 {
		pad += BlockSize
	}
	binary.LittleEndian.PutUint64(tmp[pad:], tc<<3)
	_, _ = d.Write(tmp[:pad+8])

	out := make([]byte, Size)
	for i, v := range d.s {
		binary.LittleEndian.PutUint32(out[i*4:], v)
	}
	return out
}

// message word selection and rotation amounts for the left and right lines
var (
	rl = [64]uint8{
		0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
		7, 4, 13, 1, 10, 6, 15, 3, 12, 0, 9, 5, 2, 14, 11, 8,
		3, 10, 14, 4, 9, 15, 8, 1, 2, 7, 0, 6, 13, 11, 5, 12,
		1, 9, 11, 10, 0, 8, 12, 4, 13, 3, 7, 15, 14, 5, 6, 2,
	}
	rr = [64]uint8{
		5, 14, 7, 0, 9, 2, 11, 4, 13, 6, 15, 8, 1, 10, 3, 12,
		6, 11, 3, 7, 0, 13, 5, 10, 14, 15, 8, 12, 4, 9, 1, 2,
		15, 5, 1, 3, 7, 14, 6, 9, 11, 8, 12, 2, 10, 0, 4, 13,
		8, 6, 4, 1, 3, 11, 15, 0, 5, 12, 2, 13, 9, 7, 10, 14,
	}
	sl = [64]uint8{
		11, 14, 15, 12, 5, 8, 7, 9, 11, 13, 14, 15, 6, 7, 9, 8,
		7, 6, 8, 13, 11, 9, 7, 15, 7, 12, 15, 9, 11, 7, 13, 12,
		11, 13, 6, 7, 14, 9, 13, 15, 14, 8, 13, 6, 5, 12, 7, 5,
		11, 12, 14, 15, 14, 15, 9, 8, 9, 14, 5, 6, 8, 6, 5, 12,
	}
	sr = [64]uint8{
		8, 9, 9, 11, 13, 15, 15, 5, 7, 7, 8, 11, 14, 14, 12, 6,
		9, 13, 15, 7, 12, 8, 9, 11, 7, 7, 12, 7, 6, 15, 13, 11,
		9, 7, 15, 11, 8, 6, 6, 14, 12, 13, 5, 14, 13, 13, 7, 5,
		15, 5, 8, 11, 14, 14, 6, 14, 6, 9, 12, 9, 12, 5, 15, 8,
	}
	kl = [4]uint32{0x00000000, 0x5a827999, 0x6ed9eba1, 0x8f1bbcdc}
	kr = [4]uint32{0x50a28be6, 0x5c4dd124, 0x6d703ef3, 0x00000000}
)

func f(j int, x, y, z uint32) uint32 {
	switch j >> 4 {
	case 0:
		return x ^ y ^ z
	case 1:
		return x&y | ^x&z
	case 2:
		return (x | ^y) ^ z
	default:
		return x&z | y&^z
	}
}

func (d *digest) block(p []byte) {
	var x [16]uint32
	for i := range x {
		x[i] = binary.LittleEndian.Uint32(p[i*4:])
	}
	a, b, c, dd := d.s[0], d.s[1], d.s[2], d.s[3]
	a2, b2, c2, d2 := a, b, c, dd

	for j := 0; j < 64; j++ {
		t := bits.RotateLeft32(a+f(j, b, c, dd)+x[rl[j]]+kl[j>>4], int(sl[j]))
		a, dd, c, b = dd, c, b, t
		t = bits.RotateLeft32(a2+f(63-j, b2, c2, d2)+x[rr[j]]+kr[j>>4], int(sr[j]))
		a2, d2, c2, b2 = d2, c2, b2, t
	}

	t := d.s[1] + c + d2
	d.s[1] = d.s[2] + dd + a2
	d.s[2] = d.s[3] + a + b2
	d.s[3] = d.s[0] + b + c2
	d.s[0] = t
}
