// Copyright (c) 2022 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

package filecache

import "errors"

var (
	// ErrInvalidConfig is returned by NewWithConfig for unusable settings.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrInvalidKey is returned by Get for a key whose path leaves the
	// cache directory or lacks the configured extension.
	ErrInvalidKey = errors.New("invalid key")

	// ErrInternal reports an unexpected state of the cache or its
	// directory.
	ErrInternal = errors.New("internal error")
)
