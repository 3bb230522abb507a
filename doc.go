// Copyright (c) 2022 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

/*
Package groovytar renders deterministic SVG avatars (identicons) from a hash.

Any identifier can be rendered: a 32-digit hexadecimal hash is used as is, in
either case, and anything else is replaced by its MD5 digest first. Two styles
are drawn, confetti and pictoglyph. The other style names known to avatar
services are accepted and fall back to pictoglyph.

	b, err := groovytar.Render("d41d8cd98f00b204e9800998ecf8427e", groovytar.Confetti, 240)

The request model in this package follows the query interface of common avatar
services, so that an HTTP front end only has to call ParseRequest and Render.
Rendered documents are cached on disk by package filecache keyed by Entry.
*/
package groovytar
