// Copyright (c) 2022 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

package filecache

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/tunabay/go-infounit"
)

// Status holds the state and the counters of a Cache.
type Status struct {
	NumFiles  uint64             // files in the cache
	TotalSize infounit.ByteCount // their total size

	NumRequested uint64 // Get calls
	NumHit       uint64 // Get calls served by an existing file
	NumCreated   uint64 // files created
	NumFailed    uint64 // failed creations and lookups
	NumRemoved   uint64 // files removed
	NumInvalid   uint64 // files failing validation

	NumOps  int // checks, creations and removals in progress
	NumRefs int // files currently open
}

func (s Status) String() string {
	return fmt.Sprintf(
		"files=%d, size=%.1S, req=%d, hit=%d, new=%d, fail=%d, del=%d, invalid=%d, op=%d, ref=%d",
		s.NumFiles, s.TotalSize,
		s.NumRequested, s.NumHit, s.NumCreated, s.NumFailed, s.NumRemoved, s.NumInvalid,
		s.NumOps, s.NumRefs,
	)
}

// Status returns a snapshot of the cache status.
func (c *Cache[_]) Status() *Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	st := c.stat
	st.NumOps = len(c.ops)
	st.NumRefs = len(c.refs)

	return &st
}

// logPrintf sends a log message to the Logger, prefixed with the caller
// position in debug mode.
func (c *Cache[_]) logPrintf(format string, v ...any) {
	if c.log == nil {
		return
	}
	c.log.FileCacheLog(c.caller() + fmt.Sprintf(format, v...))
}

// logDebugf is logPrintf for debug messages.
func (c *Cache[_]) logDebugf(format string, v ...any) {
	if c.log == nil || !c.debugLog {
		return
	}
	c.log.FileCacheLog(c.caller() + fmt.Sprintf(format, v...))
}

// logWarnf is logPrintf for failures. It goes to FileCacheWarn if the Logger
// implements WarnLogger.
func (c *Cache[_]) logWarnf(format string, v ...any) {
	if c.log == nil {
		return
	}
	line := c.caller() + fmt.Sprintf(format, v...)
	if wl, ok := c.log.(WarnLogger); ok {
		wl.FileCacheWarn(line)
		return
	}
	c.log.FileCacheLog(line)
}

func (c *Cache[_]) caller() string {
	if !c.debugLog {
		return ""
	}
	if _, file, line, ok := runtime.Caller(2); ok {
		return fmt.Sprintf("%s:%d: ", filepath.Base(file), line)
	}
	return "(unknown): "
}
