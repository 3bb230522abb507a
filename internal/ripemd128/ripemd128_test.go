// Copyright (c) 2022 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

package ripemd128

import (
	"encoding/hex"
	"testing"
)

func TestVectors(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"", "cdf26213a150dc3ecb610f18f6b38b46"},
		{"a", "86be7afa339d0fc7cfc785e72f578d33"},
		{"abc", "c14a12199c66e4ba84636b0f69144c77"},
		{"message digest", "9e327b3d6e523062afc1132d7df9d1b8"},
		{"abcdefghijklmnopqrstuvwxyz", "fd2aa607f71dc8f510714922b371834e"},
		{"12345678901234567890123456789012345678901234567890123456789012345678901234567890", "3f45ef194732c2dbb2c4a2c769795fa3"},
		{string(make([]byte, 16)), "74c333697c413d8f390cf12124478cc3"},
	}
	for _, tc := range tests {
		sum := Sum([]byte(tc.in))
		if got := hex.EncodeToString(sum[:]); got != tc.out {
			t.Errorf("Sum(%q) = %s, want %s", tc.in, got, tc.out)
		}

		// byte at a time
		h := New()
		for i := 0; i < len(tc.in); i++ {
			h.Write([]byte{tc.in[i]})
		}
		if got := hex.EncodeToString(h.Sum(nil)); got != tc.out {
			t.Errorf("streamed %q = %s, want %s", tc.in, got, tc.out)
		}
	}
}
