// Copyright (c) 2022 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

package filecache

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/tunabay/go-infounit"
)

// tmpSuffix is appended to the path of a file while it is being created.
const tmpSuffix = ".tmp"

// Cache is a directory of generated files.
type Cache[K Key] struct {
	dir        string
	ext        string
	create     CreateFunc[K]
	validate   ValidateFunc
	maxFiles   uint64
	maxSize    infounit.ByteCount
	maxAge     time.Duration
	gcInterval time.Duration

	mu   sync.Mutex
	cond *sync.Cond // signaled when a file is added
	stat Status

	ops  map[string]*operation // by relative path
	refs map[string]int        // open Files by relative path

	log      Logger
	debugLog bool
}

// CreateFunc writes the file of key to f. f is closed by the cache after the
// function returns, and discarded if an error is returned.
type CreateFunc[K Key] func(key K, f *os.File) error

// ValidateFunc checks the content of a cached file before it is served. A
// file that fails the check is removed and created again.
type ValidateFunc func(io.Reader) error

// operation is a check, a creation or a removal in progress. Others
// accessing the same entry wait until done is closed.
type operation struct {
	kind opKind
	done chan struct{}
	err  error // of a creation
}

type opKind uint8

const (
	opCheck opKind = iota
	opCreate
	opRemove
)

// New creates a cache in dir holding up to 512 files and 1 GiB, each kept for
// a day after its last access.
func New[K Key](dir string, create CreateFunc[K]) (*Cache[K], error) {
	return NewWithConfig(&Config[K]{
		Dir:      dir,
		Create:   create,
		MaxFiles: 512,
		MaxSize:  infounit.Gigabyte,
		MaxAge:   time.Hour * 24,
	})
}

// NewWithConfig creates a cache from conf. Files already in the directory are
// taken over, expired ones and temporary files left by an interrupted
// creation are removed.
func NewWithConfig[K Key](conf *Config[K]) (*Cache[K], error) {
	switch {
	case conf.Dir == "":
		return nil, fmt.Errorf("%w: empty Dir", ErrInvalidConfig)
	case conf.Create == nil:
		return nil, fmt.Errorf("%w: nil Create", ErrInvalidConfig)
	case conf.MaxAge < 0:
		return nil, fmt.Errorf("%w: negative MaxAge", ErrInvalidConfig)
	case conf.GCInterval < 0:
		return nil, fmt.Errorf("%w: negative GCInterval", ErrInvalidConfig)
	case conf.Ext == tmpSuffix:
		return nil, fmt.Errorf("%w: reserved Ext %q", ErrInvalidConfig, conf.Ext)
	}

	c := &Cache[K]{
		dir:        conf.Dir,
		ext:        conf.Ext,
		create:     conf.Create,
		validate:   conf.Validate,
		maxFiles:   conf.MaxFiles,
		maxSize:    conf.MaxSize,
		maxAge:     conf.MaxAge,
		gcInterval: conf.GCInterval,
		ops:        make(map[string]*operation),
		refs:       make(map[string]int),
		log:        conf.Logger,
		debugLog:   conf.DebugLog,
	}
	c.cond = sync.NewCond(&c.mu)
	if c.gcInterval == 0 {
		c.gcInterval = defaultGCInterval
	}

	if !filepath.IsAbs(c.dir) {
		base, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("%s: relative cache dir: %w", c.dir, err)
		}
		c.dir = filepath.Join(base, c.dir)
	}
	if err := os.MkdirAll(c.dir, 0o0700); err != nil {
		return nil, fmt.Errorf("%s: %w", c.dir, err)
	}
	c.logPrintf("cache dir %s", c.dir)

	if err := c.scan(); err != nil {
		return nil, fmt.Errorf("%s: scan: %w", c.dir, err)
	}

	return c, nil
}

// scan counts the files found in the cache directory.
func (c *Cache[_]) scan() error {
	var (
		removed     uint64
		removedSize infounit.ByteCount
	)
	err := filepath.WalkDir(c.dir, func(path string, d fs.DirEntry, err error) error {
		switch {
		case err != nil:
			c.logWarnf("%s: unreadable, skipped", path)
			return fs.SkipDir
		case d.IsDir():
			return nil
		case strings.HasSuffix(d.Name(), tmpSuffix):
			if err := os.Remove(path); err != nil {
				c.logWarnf("%s: stale temporary file: %v", c.rel(path), err)
			}
			return nil
		case !c.isEntry(d.Name()):
			c.logDebugf("%s: not a cache file, skipped", c.rel(path))
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			c.logWarnf("%s: %v", c.rel(path), err)
			return nil
		}
		sz := infounit.ByteCount(fi.Size())
		if age := time.Since(fi.ModTime()); c.expired(age) {
			if err := os.Remove(path); err != nil {
				c.logWarnf("%s: expired, remove: %v", c.rel(path), err)
				return nil
			}
			removed++
			removedSize += sz
			return nil
		}
		c.stat.NumFiles++
		c.stat.TotalSize += sz

		return nil
	})
	if err != nil {
		return err
	}
	if removed != 0 {
		c.logPrintf("removed %d expired files, %.1S", removed, removedSize)
	}
	if c.stat.NumFiles != 0 {
		c.logPrintf("found %d files, %.1S", c.stat.NumFiles, c.stat.TotalSize)
	}

	return nil
}

// Dir returns the absolute path of the cache directory.
func (c *Cache[_]) Dir() string { return c.dir }

// isEntry reports whether the file name belongs to a cache entry.
func (c *Cache[_]) isEntry(name string) bool {
	return !strings.HasSuffix(name, tmpSuffix) && strings.HasSuffix(name, c.ext)
}

// expired reports whether a file not accessed for age should be removed.
func (c *Cache[_]) expired(age time.Duration) bool {
	return c.maxAge != 0 && c.maxAge < age
}

// rel returns the slash separated path of a file relative to the cache
// directory.
func (c *Cache[_]) rel(path string) string {
	r, err := filepath.Rel(c.dir, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(r)
}

// Get returns the file of key opened for reading, and whether it was already
// cached. A missing file, or one failing validation, is written by the
// CreateFunc under a temporary name and renamed into place, so that readers
// never see a partial file. Concurrent calls for the same key wait for a
// single check or creation, while different keys are checked and created in
// parallel.
//
// The file is not removed from the cache until it is closed, and the caller
// must close it.
func (c *Cache[K]) Get(key K) (*File[K], bool, error) {
	rel := key.RelPath()
	if err := checkRelPath(rel, c.ext); err != nil {
		return nil, false, err
	}
	path := filepath.Join(c.dir, filepath.FromSlash(rel))
	c.logDebugf("get %s", rel)

	c.mu.Lock()
	c.stat.NumRequested++
	c.mu.Unlock()

	var (
		cached  bool
		lastMod time.Time
		removed bool
	)
	for {
		c.mu.Lock()
		if op, busy := c.ops[rel]; busy {
			c.mu.Unlock()
			<-op.done
			switch op.kind {
			case opCheck:
				continue
			case opRemove:
				if removed {
					return nil, false, fmt.Errorf("%w: %s: removed twice", ErrInternal, rel)
				}
				removed = true
				continue
			}
			// created by another call
			if op.err != nil {
				return nil, false, op.err
			}
			c.mu.Lock()
			c.stat.NumHit++
			c.mu.Unlock()
			cached = true
			break
		}

		// the file is checked without the lock, others wait on check
		check := &operation{kind: opCheck, done: make(chan struct{})}
		c.ops[rel] = check
		c.mu.Unlock()

		var (
			invalid int64
			err     error
		)
		lastMod, invalid, err = c.lookup(rel, path)

		c.mu.Lock()
		delete(c.ops, rel)
		switch {
		case err == nil:
			c.stat.NumHit++
			c.mu.Unlock()
			close(check.done)
			cached = true

		case !errors.Is(err, fs.ErrNotExist):
			c.stat.NumFailed++
			c.mu.Unlock()
			close(check.done)
			c.logWarnf("%s: %v", rel, err)
			return nil, false, err

		default:
			if invalid >= 0 {
				c.stat.NumInvalid++
				c.forget(infounit.ByteCount(invalid))
			}
			create := &operation{kind: opCreate, done: make(chan struct{})}
			c.ops[rel] = create
			c.mu.Unlock()
			close(check.done)
			if err := c.runCreate(key, rel, path, create); err != nil {
				return nil, false, err
			}
		}
		break
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, cached, fmt.Errorf("open: %w", err)
	}
	fi, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, cached, fmt.Errorf("stat: %w", err)
	}
	if lastMod.IsZero() {
		lastMod = fi.ModTime()
	}
	c.ref(rel)

	return &File[K]{
		parent:  c,
		key:     key,
		rel:     rel,
		file:    f,
		size:    fi.Size(),
		lastMod: lastMod,
	}, cached, nil
}

// lookup checks the cached file at path and marks it as accessed. It returns
// fs.ErrNotExist if the file is missing, or if it was invalid and has been
// removed, in which case invalid is its size and otherwise -1. It is called
// without c.mu, while an opCheck operation is registered for rel.
func (c *Cache[_]) lookup(rel, path string) (lastMod time.Time, invalid int64, err error) {
	fi, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return time.Time{}, -1, err
	case err != nil:
		return time.Time{}, -1, fmt.Errorf("%w: stat: %w", ErrInternal, err)
	}
	if !c.valid(path) {
		c.logWarnf("%s: invalid, creating again", rel)
		// a file that can not be removed is replaced by the rename
		if err := os.Remove(path); err == nil {
			c.mu.Lock()
			c.stat.NumRemoved++
			c.mu.Unlock()
		}
		return time.Time{}, fi.Size(), fs.ErrNotExist
	}
	now := time.Now()
	_ = os.Chtimes(path, now, now)

	return fi.ModTime(), -1, nil
}

// runCreate creates the file of key for the registered operation op and
// publishes the result to concurrent callers.
func (c *Cache[K]) runCreate(key K, rel, path string, op *operation) error {
	sz, err := c.createFile(key, path)

	c.mu.Lock()
	delete(c.ops, rel)
	if err != nil {
		op.err = err
		c.stat.NumFailed++
	} else {
		c.stat.NumFiles++
		c.stat.TotalSize += sz
		c.stat.NumCreated++
		c.cond.Broadcast()
	}
	c.mu.Unlock()
	close(op.done)

	if err != nil {
		c.logWarnf("%s: %v", rel, err)
		return err
	}
	c.logPrintf("%s: created, %.1S", rel, sz)

	return nil
}

// createFile calls the CreateFunc to write the file for key into a temporary
// file and moves it to path. The temporary name is unique, so processes
// sharing the directory never write to the same file. Nothing is left behind
// on failure.
func (c *Cache[K]) createFile(key K, path string) (infounit.ByteCount, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o0700); err != nil {
		return 0, fmt.Errorf("%s: mkdir: %w", c.rel(dir), err)
	}

	f, err := os.CreateTemp(dir, filepath.Base(path)+".*"+tmpSuffix)
	if err != nil {
		return 0, fmt.Errorf("create: %w", err)
	}
	tmp := f.Name()
	fail := func(err error) (infounit.ByteCount, error) {
		_ = os.Remove(tmp)
		return 0, err
	}
	if err := f.Chmod(0o0644); err != nil {
		_ = f.Close()
		return fail(fmt.Errorf("chmod: %w", err))
	}
	if err := c.create(key, f); err != nil {
		_ = f.Close()
		return fail(fmt.Errorf("create %s: %w", key, err))
	}
	if err := f.Close(); err != nil {
		return fail(fmt.Errorf("write: %w", err))
	}
	fi, err := os.Stat(tmp)
	if err != nil {
		return fail(fmt.Errorf("stat: %w", err))
	}
	if err := os.Rename(tmp, path); err != nil {
		return fail(fmt.Errorf("rename: %w", err))
	}

	return infounit.ByteCount(fi.Size()), nil
}

// valid runs the ValidateFunc, if any, on the file at path.
func (c *Cache[_]) valid(path string) bool {
	if c.validate == nil {
		return true
	}
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	return c.validate(f) == nil
}

func (c *Cache[_]) ref(rel string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.refs[rel]++
}

func (c *Cache[_]) unref(rel string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.refs[rel] <= 1 {
		delete(c.refs, rel)
		return
	}
	c.refs[rel]--
}
