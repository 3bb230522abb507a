// Copyright (c) 2022 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

package svg

import (
	"strconv"
	"strings"
)

// Precision is the number of significant digits Num writes.
const Precision = 14

// Num formats v with at most 14 significant digits and no trailing zeros.
// Integral values are written without a fraction. Very large or very small
// magnitudes use the exponent form "1.5E+20", whose mantissa always has a
// fraction. Path data and attribute values of existing images depend on
// this exact representation.
func Num(v float64) string {
	s := strconv.FormatFloat(v, 'g', Precision, 64)
	i := strings.IndexByte(s, 'e')
	if i < 0 {
		return s
	}
	mant, exp := s[:i], s[i+1:]
	if !strings.Contains(mant, ".") {
		mant += ".0"
	}
	sign := exp[0]
	exp = strings.TrimLeft(exp[1:], "0")
	if exp == "" {
		exp = "0"
	}
	return mant + "E" + string(sign) + exp
}

// RGB returns the "rgb(r,g,b)" color notation.
func RGB(r, g, b int) string {
	return "rgb(" + strconv.Itoa(r) + "," + strconv.Itoa(g) + "," + strconv.Itoa(b) + ")"
}
