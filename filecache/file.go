// Copyright (c) 2022 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

package filecache

import (
	"io"
	"io/fs"
	"os"
	"time"
)

// File is a cached file opened for reading by Get. It stays in the cache until
// it is closed.
type File[K Key] struct {
	parent  *Cache[K]
	key     K
	rel     string
	file    *os.File
	size    int64
	lastMod time.Time
}

// Name returns the string form of the key.
func (f *File[_]) Name() string { return f.key.String() }

// Key returns the key the file was requested with.
func (f *File[K]) Key() K { return f.key }

// RelPath returns the slash separated path of the file relative to the cache
// directory.
func (f *File[_]) RelPath() string { return f.rel }

// Size returns the length of the file in bytes.
func (f *File[_]) Size() int64 { return f.size }

// ModTime returns the time the file was last served or created, before this
// Get.
func (f *File[_]) ModTime() time.Time { return f.lastMod }

func (f *File[_]) Read(b []byte) (int, error) {
	return f.file.Read(b) //nolint:wrapcheck
}

func (f *File[_]) Seek(offset int64, whence int) (int64, error) {
	return f.file.Seek(offset, whence) //nolint:wrapcheck
}

// WriteTo writes the rest of the file to w. It lets io.Copy use the
// underlying file directly.
func (f *File[_]) WriteTo(w io.Writer) (int64, error) {
	return io.Copy(w, f.file) //nolint:wrapcheck
}

// Close closes the file and releases it, so that it may be removed from the
// cache again. Every file returned by Get must be closed.
func (f *File[_]) Close() error {
	f.parent.unref(f.rel)

	return f.file.Close() //nolint:wrapcheck
}

// Stat returns a fs.FileInfo describing the cache entry. Its name is the key,
// not the underlying file name.
func (f *File[K]) Stat() (fs.FileInfo, error) {
	return &entryInfo[K]{f: f}, nil
}

type entryInfo[K Key] struct{ f *File[K] }

func (i *entryInfo[_]) Name() string       { return i.f.Name() }
func (i *entryInfo[_]) Size() int64        { return i.f.size }
func (i *entryInfo[_]) Mode() fs.FileMode  { return 0o0400 }
func (i *entryInfo[_]) ModTime() time.Time { return i.f.lastMod }
func (i *entryInfo[_]) IsDir() bool        { return false }
func (i *entryInfo[_]) Sys() any           { return i.f.key }
