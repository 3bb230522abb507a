// Copyright (c) 2022 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

package filecache

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/petar/GoLLRB/llrb"
	"github.com/tunabay/go-infounit"
)

// Serve runs the expiration process until ctx is canceled, and always returns
// nil then. Files older than MaxAge are removed on every GCInterval, and the
// least recently used files while the cache exceeds MaxFiles or MaxSize.
// Files currently open or being created are never removed.
func (c *Cache[K]) Serve(ctx context.Context) error {
	// wake the wait below on cancellation
	stop := context.AfterFunc(ctx, func() {
		c.mu.Lock()
		c.cond.Broadcast()
		c.mu.Unlock()
	})
	defer stop()

	for {
		// aged files are looked for on every interval, limits only when
		// exceeded
		c.mu.Lock()
		for c.maxAge == 0 && !c.overflow() && ctx.Err() == nil {
			c.cond.Wait()
		}
		c.mu.Unlock()
		if ctx.Err() != nil {
			return nil
		}

		c.logDebugf("gc started")
		c.collect()
		c.logDebugf("gc finished")

		timer := time.NewTimer(c.gcInterval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}
	}
}

// collect removes the expired files, then the oldest ones while over a limit.
func (c *Cache[_]) collect() {
	c.mu.Lock()
	numFiles := c.stat.NumFiles
	c.mu.Unlock()

	// keep enough of the oldest files to get back under MaxFiles
	var maxCands uint64 = 64
	for c.maxFiles != 0 && numFiles > c.maxFiles && numFiles-c.maxFiles > maxCands {
		maxCands <<= 1
	}
	tree := llrb.New()

	err := filepath.WalkDir(c.dir, func(path string, d fs.DirEntry, err error) error {
		switch {
		case err != nil:
			return fs.SkipDir
		case d.IsDir(), !c.isEntry(d.Name()):
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			return nil
		}
		cand := &candidate{rel: c.rel(path), path: path, lastMod: fi.ModTime()}
		if c.expired(time.Since(cand.lastMod)) {
			if err := c.remove(cand); err != nil {
				c.logWarnf("%s: expired, remove: %v", cand.rel, err)
			}
			return nil
		}
		tree.InsertNoReplace(cand)
		if maxCands < uint64(tree.Len()) {
			tree.DeleteMax()
		}
		return nil
	})
	if err != nil {
		c.logWarnf("%s: walk: %v", c.dir, err)
	}

	var oldest []*candidate
	tree.AscendGreaterOrEqual(&candidate{}, func(it llrb.Item) bool {
		oldest = append(oldest, it.(*candidate)) //nolint:forcetypeassert
		return true
	})
	for _, cand := range oldest {
		c.mu.Lock()
		over := c.overflow()
		c.mu.Unlock()
		if !over {
			break
		}
		if err := c.remove(cand); err != nil {
			c.logWarnf("%s: remove: %v", cand.rel, err)
		}
	}
}

// remove deletes the file of cand unless it is open, busy, or was accessed
// since it was listed.
func (c *Cache[_]) remove(cand *candidate) error {
	c.mu.Lock()
	if _, open := c.refs[cand.rel]; open {
		c.mu.Unlock()
		return nil
	}
	if _, busy := c.ops[cand.rel]; busy {
		c.mu.Unlock()
		return nil
	}
	fi, err := os.Stat(cand.path)
	if err != nil || !cand.lastMod.Equal(fi.ModTime()) {
		c.mu.Unlock()
		return nil
	}
	op := &operation{kind: opRemove, done: make(chan struct{})}
	c.ops[cand.rel] = op
	c.mu.Unlock()

	err = os.Remove(cand.path)

	c.mu.Lock()
	delete(c.ops, cand.rel)
	if err == nil {
		c.stat.NumRemoved++
		c.forget(infounit.ByteCount(fi.Size()))
	}
	c.mu.Unlock()
	close(op.done)

	if err != nil {
		return fmt.Errorf("%s: %w", cand.rel, err)
	}
	c.logPrintf("%s: removed", cand.rel)

	return nil
}

// overflow reports whether the cache holds more than the configured limits.
// It must be called with c.mu held.
func (c *Cache[_]) overflow() bool {
	return (c.maxFiles != 0 && c.maxFiles < c.stat.NumFiles) ||
		(c.maxSize != 0 && c.maxSize < c.stat.TotalSize)
}

// forget drops a removed file from the statistics. It must be called with
// c.mu held.
func (c *Cache[_]) forget(sz infounit.ByteCount) {
	if c.stat.NumFiles != 0 {
		c.stat.NumFiles--
	}
	if sz < c.stat.TotalSize {
		c.stat.TotalSize -= sz
	} else {
		c.stat.TotalSize = 0
	}
}

// candidate is a file that may be removed. The tree of candidates is ordered
// by last access, oldest first.
type candidate struct {
	rel     string
	path    string
	lastMod time.Time
}

// Less implements llrb.Item. Files accessed at the same time are ordered by
// path.
func (c *candidate) Less(than llrb.Item) bool {
	x := than.(*candidate) //nolint:forcetypeassert
	if c.lastMod.Equal(x.lastMod) {
		return c.rel < x.rel
	}
	return c.lastMod.Before(x.lastMod)
}
