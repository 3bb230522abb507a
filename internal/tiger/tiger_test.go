// Copyright (c) 2022 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

package tiger

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"
)

var golden = []struct {
	passes int
	in     string
	out    string
}{
	{3, "", "3293ac630c13f0245f92bbb1766e16167a4e58492dde73f3"},
	{3, "abc", "2aab1484e8c158f2bfb8c5ff41b57a525129131c957b5f93"},
	{3, "Tiger", "dd00230799f5009fec6debc838bb6a27df2b9d6f110c7937"},
	{3, "The quick brown fox jumps over the lazy dog", "6d12a41e72e644f017b6f0e2f7b44c6285f06dd5d2c5b075"},
	{3, strings.Repeat("a", 1000), "42c18814a47b257c40160a80fbe604d949613ee029b31fd9"},
	{4, "", "24cc78a7f6ff3546e7984e59695ca13d804e0b686e255194"},
	{4, "abc", "538883c8fc5f28250299018e66bdf4fdb5ef7b65f2e91753"},
	{4, "Tiger", "aee020507279c0d2defcb767251cc0f824bbe38569d58ee4"},
	{4, "The quick brown fox jumps over the lazy dog", "c1f3a704e9f6267e9f75fa47191f83c354100a04c4f1dc6f"},
	{4, strings.Repeat("a", 1000), "63533e5d476a781949e58b25e67bb182d556a52241f6c3e4"},
}

func TestGolden(t *testing.T) {
	for _, g := range golden {
		for _, size := range []int{Size128, Size160, Size192} {
			h, err := New(g.passes, size)
			if err != nil {
				t.Fatalf("New(%d, %d): %v", g.passes, size, err)
			}
			h.Write([]byte(g.in))
			if got, want := hex.EncodeToString(h.Sum(nil)), g.out[:size*2]; got != want {
				t.Errorf("tiger%d,%d(%.16q) = %s, want %s", size*8, g.passes, g.in, got, want)
			}
		}
	}
}

func TestSum128(t *testing.T) {
	for _, g := range golden {
		sum := Sum128([]byte(g.in), g.passes)
		if got, want := hex.EncodeToString(sum[:]), g.out[:32]; got != want {
			t.Errorf("Sum128(%.16q, %d) = %s, want %s", g.in, g.passes, got, want)
		}
	}
}

func TestWriteSplit(t *testing.T) {
	data := make([]byte, 300)
	for i := range data {
		data[i] = byte(i * 7)
	}
	whole := Sum128(data, 4)

	for _, chunk := range []int{1, 3, 55, 56, 63, 64, 65, 128} {
		h, _ := New(4, Size128)
		for p := data; len(p) > 0; {
			n := chunk
			if n > len(p) {
				n = len(p)
			}
			h.Write(p[:n])
			p = p[n:]
		}
		if got := h.Sum(nil); !bytes.Equal(got, whole[:]) {
			t.Errorf("chunk %d: got %x, want %x", chunk, got, whole)
		}
	}
}

func TestSumDoesNotChangeState(t *testing.T) {
	h, _ := New(3, Size192)
	h.Write([]byte("ab"))
	first := h.Sum(nil)
	if second := h.Sum(nil); !bytes.Equal(first, second) {
		t.Fatalf("second Sum differs: %x != %x", second, first)
	}
	h.Write([]byte("c"))
	if got, want := hex.EncodeToString(h.Sum(nil)), golden[1].out; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	h.Reset()
	if got, want := hex.EncodeToString(h.Sum(nil)), golden[0].out; got != want {
		t.Errorf("after Reset: got %s, want %s", got, want)
	}
}

func TestNewInvalid(t *testing.T) {
	if _, err := New(2, Size192); err == nil {
		t.Error("expected error for 2 passes")
	}
	if _, err := New(3, 17); err == nil {
		t.Error("expected error for size 17")
	}
}
