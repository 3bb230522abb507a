// Copyright (c) 2022 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

/*
Package wcag provides a fixed palette of background and foreground color
pairs whose contrast satisfies the WCAG 2.0 requirements for large text, and
the luminance and contrast ratio calculations used to check them.

A pair is selected by an integer taken modulo the palette length, so a value
derived from a hash always maps to the same colors.
*/
package wcag
