// Copyright (c) 2022 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

/*
Package svg writes the SVG 1.1 documents of the identicons.

A Document is an append-only list of elements under the root <svg> element.
Nothing is parsed or kept as a tree: each element is serialized when it is
appended, and Bytes wraps the body with the XML declaration, the SVG 1.1
DOCTYPE and the root element. The helpers Canvas, Frame, StrokePath, FillPath
and FilledCircle write the elements shared by all the identicon styles with a
fixed attribute order, so the output of a renderer is byte for byte stable.
*/
package svg
