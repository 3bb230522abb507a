// Copyright (c) 2022 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

package groovytar

// Entry identifies a rendered document in the on-disk cache: one file per
// style, hash and size variant. Entry implements the key interface of package
// filecache.
type Entry struct {
	Style Style
	Hash  string
	Small bool
}

// Ext is the file name extension of cached documents.
const Ext = ".svg"

func (e Entry) modifier() string {
	if e.Small {
		return smallModifier
	}
	return ""
}

// String returns "<style>/<hash><modifier>".
func (e Entry) String() string { return string(e.Style) + "/" + e.Hash + e.modifier() }

// RelPath returns the slash separated path of the cached file relative to the
// cache directory.
func (e Entry) RelPath() string { return e.String() + Ext }

// Size returns a requested size that renders the variant of e.
func (e Entry) Size() int {
	if e.Small {
		return MinSize
	}
	return DefaultSize
}

// Render renders the document of e.
func (e Entry) Render(opts ...Option) ([]byte, error) {
	return Render(e.Hash, e.Style, e.Size(), opts...)
}
