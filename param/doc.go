// Copyright (c) 2022 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

/*
Package param derives the deterministic parameter vectors of the identicon
renderers from an arbitrary identifier.

An identifier that is exactly 32 hexadecimal digits is taken as a 128-bit hash,
anything else is first replaced by its MD5 digest. The 16 raw bytes are then
strengthened with a renderer specific chain of digests so that the same
identifier yields unrelated vectors for different styles:

	confetti:   tiger128,4(ripemd160(raw)), order = ripemd128(raw) hex digit 8
	pictoglyph: tiger128,3(sha384(raw))
*/
package param
