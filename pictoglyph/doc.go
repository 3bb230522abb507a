// Copyright (c) 2022 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

/*
Package pictoglyph draws the PictoGlyph identicon: a grid of symbolic glyphs
in the foreground color of a WCAG compliant palette entry on its background
color.

The large image is 800 x 800 with 16 glyphs, the small one 600 x 600 with 9.
The glyph of each cell is selected by one byte of the parameter vector, the
palette entry by the sum of all of them. Each cell is wrapped in a group
whose id is "glyph-i-j" and whose class is the glyph name.
*/
package pictoglyph
