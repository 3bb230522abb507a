// Copyright (c) 2022 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

/*
Package confetti draws the confetti identicon: 32 translucent circles,
diamonds, triangles and regular polygons scattered over an 800 x 800 image
and covered by a gray frame.

Each shape takes a size hint and the index of a byte of the parameter vector.
That byte gives the position of the shape on a 16 x 16 lattice, and the bytes
that follow it give its colors, rotation and number of sides. The order digit
derived with the parameter vector selects one of 16 fixed drawing sequences.
*/
package confetti
