// Copyright (c) 2022 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

//go:build ignore

// This program generates sbox.go. Invoke it as:
//
//	go run gen.go
package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"go/format"
	"log"
	"os"
)

const header = `// Copyright (c) 2022 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

// Code generated by gen.go; DO NOT EDIT.

package tiger
`

const seed = "Tiger - A Fast New Hash Function, by Ross Anderson and Eli Biham"

func main() {
	var tb [1024][8]byte
	for i := range tb {
		for col := range tb[i] {
			tb[i][col] = byte(i)
		}
	}
	table := func() (t [1024]uint64) {
		for i := range tb {
			t[i] = binary.LittleEndian.Uint64(tb[i][:])
		}
		return
	}

	state := [3]uint64{0x0123456789ABCDEF, 0xFEDCBA9876543210, 0xF096A5B4C3B2E187}
	abc := 2
	for cnt := 0; cnt < 5; cnt++ {
		for i := 0; i < 256; i++ {
			for sb := 0; sb < 1024; sb += 256 {
				abc++
				if abc == 3 {
					abc = 0
					t := table()
					compress(&t, []byte(seed), &state)
				}
				var sbytes [8]byte
				binary.LittleEndian.PutUint64(sbytes[:], state[abc])
				for col := 0; col < 8; col++ {
					j := sb + int(sbytes[col])
					tb[sb+i][col], tb[j][col] = tb[j][col], tb[sb+i][col]
				}
			}
		}
	}

	t := table()
	var buf bytes.Buffer
	buf.WriteString(header)
	for n := 0; n < 4; n++ {
		fmt.Fprintf(&buf, "\nvar t%d = [256]uint64{\n", n+1)
		for i := 0; i < 256; i++ {
			fmt.Fprintf(&buf, "0x%016X,", t[n*256+i])
			if i%4 == 3 {
				buf.WriteByte('\n')
			} else {
				buf.WriteByte(' ')
			}
		}
		buf.WriteString("}\n")
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile("sbox.go", src, 0o644); err != nil {
		log.Fatal(err)
	}
}

// compress is the 3-pass compression function working on an explicit table,
// since the tables do not exist yet while they are being generated.
func compress(t *[1024]uint64, block []byte, state *[3]uint64) {
	var x [8]uint64
	for i := range x {
		x[i] = binary.LittleEndian.Uint64(block[i*8:])
	}
	round := func(a, b, c, xi, mul uint64) (uint64, uint64, uint64) {
		c ^= xi
		a -= t[byte(c)] ^ t[256+int(byte(c>>16))] ^ t[512+int(byte(c>>32))] ^ t[768+int(byte(c>>48))]
		b += t[768+int(byte(c>>8))] ^ t[512+int(byte(c>>24))] ^ t[256+int(byte(c>>40))] ^ t[byte(c>>56)]
		b *= mul
		return a, b, c
	}
	a, b, c := state[0], state[1], state[2]
	aa, bb, cc := a, b, c
	for n, mul := range []uint64{5, 7, 9} {
		if n != 0 {
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
		a, b, c = round(a, b, c, x[0], mul)
		b, c, a = round(b, c, a, x[1], mul)
		c, a, b = round(c, a, b, x[2], mul)
		a, b, c = round(a, b, c, x[3], mul)
		b, c, a = round(b, c, a, x[4], mul)
		c, a, b = round(c, a, b, x[5], mul)
		a, b, c = round(a, b, c, x[6], mul)
		b, c, a = round(b, c, a, x[7], mul)
		a, b, c = c, a, b
	}
	state[0], state[1], state[2] = a^aa, b-bb, c+cc
}
