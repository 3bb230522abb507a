// Copyright (c) 2022 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

package filecache

import (
	"time"

	"github.com/tunabay/go-infounit"
)

// Config holds the parameters of a Cache.
type Config[K Key] struct {
	// Dir is the cache directory, created if missing. It should not be
	// shared with anything else, as files with the configured extension
	// are counted and removed. A relative path is taken relative to
	// os.UserCacheDir().
	Dir string

	// Create writes the file of a key missing from the cache.
	Create CreateFunc[K]

	// Ext is the file name extension of cache files, such as ".svg". Every
	// key must map to a path ending with it. Empty means any file, and
	// ".tmp" is reserved for files being created.
	Ext string

	// Validate, if not nil, checks a cached file before it is served. A
	// file failing the check is created again.
	Validate ValidateFunc

	// MaxFiles and MaxSize limit the number and the total size of cached
	// files. Zero means unlimited. The least recently used files are
	// removed while a limit is exceeded, so the cache may stay over a limit
	// for up to GCInterval.
	MaxFiles uint64
	MaxSize  infounit.ByteCount

	// MaxAge is the time since the last access after which a file is
	// removed. Zero keeps files forever.
	MaxAge time.Duration

	// GCInterval is the minimum interval between two expiration passes. It
	// defaults to one minute.
	GCInterval time.Duration

	// Logger, if not nil, receives the log messages of the cache, and also
	// the debug messages if DebugLog is set.
	Logger   Logger
	DebugLog bool
}

const defaultGCInterval = time.Minute

// Logger receives the log messages of a Cache, one line per call.
type Logger interface {
	FileCacheLog(string)
}

// WarnLogger is implemented by a Logger that reports failures, such as a
// failed creation or an invalid file, apart from the other messages.
type WarnLogger interface {
	FileCacheWarn(string)
}
