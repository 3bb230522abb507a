// Copyright (c) 2022 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

package filecache

import (
	"fmt"
	"path"
	"strings"
)

// Key is the interface implemented by the key type to identify a file cache
// entry.
type Key interface {
	fmt.Stringer

	// RelPath returns the slash separated path of the file relative to the
	// cache directory. Different keys must return different paths.
	RelPath() string
}

// checkRelPath reports whether rel is a clean relative path inside the
// cache directory that ends with ext.
func checkRelPath(rel, ext string) error {
	switch {
	case rel == "", rel == ".":
		return fmt.Errorf("%w: empty path", ErrInvalidKey)
	case path.IsAbs(rel), strings.Contains(rel, `\`):
		return fmt.Errorf("%w: %q: not a relative path", ErrInvalidKey, rel)
	case path.Clean(rel) != rel, rel == "..", strings.HasPrefix(rel, "../"):
		return fmt.Errorf("%w: %q: not a clean path", ErrInvalidKey, rel)
	case strings.HasSuffix(rel, tmpSuffix), !strings.HasSuffix(rel, ext):
		return fmt.Errorf("%w: %q: unexpected extension", ErrInvalidKey, rel)
	}
	return nil
}
