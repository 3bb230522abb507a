// Copyright (c) 2022 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

package main

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/tunabay/go-groovytar"
	"github.com/tunabay/go-groovytar/filecache"
	"github.com/tunabay/go-groovytar/param"
	"github.com/tunabay/go-infounit"
)

const (
	contentType = "image/svg+xml; charset=utf-8"

	// cacheControl is sent with avatars of a valid hash, which never change.
	cacheControl = "public, max-age=1209600"

	// faviconID is the id drawn as the favicon.
	faviconID = "groovytar"

	allowedMethods = "GET, HEAD"
)

type serverConfig struct {
	Dir        string
	MaxFiles   uint64
	MaxSize    infounit.ByteCount
	MaxAge     time.Duration
	GCInterval time.Duration
	StatusLog  time.Duration
	Example    bool
	Logger     hclog.Logger

	// Rand is the random source for substituted hashes, example mode and the
	// index page. crypto/rand is used if nil.
	Rand io.Reader
}

// server is the avatar server. It holds one filecache.Cache instance, keyed by
// style, hash and size variant.
type server struct {
	cache     *filecache.Cache[groovytar.Entry]
	log       hclog.Logger
	example   bool
	rand      io.Reader
	statusLog time.Duration
}

func newServer(conf *serverConfig) (*server, error) {
	sv := &server{
		log:       conf.Logger,
		example:   conf.Example,
		rand:      conf.Rand,
		statusLog: conf.StatusLog,
	}
	if sv.log == nil {
		sv.log = hclog.NewNullLogger()
	}
	cacheConf := &filecache.Config[groovytar.Entry]{
		Dir:        conf.Dir,
		Create:     sv.createAvatar,
		Ext:        groovytar.Ext,
		Validate:   groovytar.Verify,
		MaxFiles:   conf.MaxFiles,
		MaxSize:    conf.MaxSize,
		MaxAge:     conf.MaxAge,
		GCInterval: conf.GCInterval,
		Logger:     sv,
		DebugLog:   sv.log.IsTrace(),
	}
	cache, err := filecache.NewWithConfig(cacheConf)
	if err != nil {
		return nil, fmt.Errorf("failed to create cache: %w", err)
	}
	sv.cache = cache

	return sv, nil
}

// FileCacheLog implements filecache.Logger to receive log messages from the
// filecache package.
func (sv *server) FileCacheLog(line string) {
	sv.log.Named("filecache").Debug(line)
}

// FileCacheWarn implements filecache.WarnLogger to receive the failures.
func (sv *server) FileCacheWarn(line string) {
	sv.log.Named("filecache").Warn(line)
}

// createAvatar is the filecache.CreateFunc rendering a missing entry.
func (sv *server) createAvatar(e groovytar.Entry, f *os.File) error {
	b, err := e.Render(sv.renderOptions()...)
	if err != nil {
		return err
	}
	_, err = f.Write(b)
	return err
}

func (sv *server) renderOptions() []groovytar.Option {
	if sv.example {
		return []groovytar.Option{groovytar.WithExample(sv.rand)}
	}
	return nil
}

// serve runs the cache expiration process until ctx is done, and logs the
// cache status periodically.
func (sv *server) serve(ctx context.Context) error {
	if sv.statusLog > 0 {
		go func() {
			ticker := time.NewTicker(sv.statusLog)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
				}
				sv.log.Info("cache status", "status", sv.cache.Status().String())
			}
		}()
	}

	if err := sv.cache.Serve(ctx); err != nil {
		return fmt.Errorf("cache: %w", err)
	}

	return nil
}

// ServeHTTP responds to avatar requests. The avatar of a valid hash is looked
// up in the cache and created on a miss. If the cache fails, the avatar is
// rendered in memory instead. Requests with a malformed hash are drawn from a
// random hash and never cached. HEAD is answered with the headers of GET.
func (sv *server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	head := r.Method == http.MethodHead
	switch {
	case r.Method != http.MethodGet && !head:
		w.Header().Set("Allow", allowedMethods)
		sv.fail(w, http.StatusMethodNotAllowed)
		return

	case r.URL.Path == "/":
		if err := sv.serveIndex(w, head); err != nil {
			sv.log.Warn("index", "error", err)
		}
		return

	case r.URL.Path == "/favicon.ico":
		hash, _ := param.Normalize(faviconID)
		sv.serveEntry(w, groovytar.Entry{Style: groovytar.PictoGlyph, Hash: hash, Small: true}, head)
		return
	}

	req, err := groovytar.ParseRequest(r.URL, sv.rand)
	if err != nil {
		sv.log.Error("request", "url", r.URL.String(), "error", err)
		sv.fail(w, http.StatusInternalServerError)
		return
	}
	sv.log.Debug("request", "url", r.URL.String(), "avatar", req.String(), "valid", req.Valid)

	e, ok := req.Entry()
	if !ok {
		b, err := groovytar.Render(req.Hash, req.Style, req.Size, sv.renderOptions()...)
		if err != nil {
			sv.log.Error("render", "avatar", req.String(), "error", err)
			sv.fail(w, http.StatusInternalServerError)
			return
		}
		w.Header().Set("Cache-Control", "no-store")
		sv.write(w, b, head)
		return
	}
	sv.serveEntry(w, e, head)
}

func (sv *server) serveEntry(w http.ResponseWriter, e groovytar.Entry, head bool) {
	startedAt := time.Now()

	file, cached, err := sv.cache.Get(e)
	if err != nil {
		sv.log.Warn("cache unavailable, rendering in memory", "entry", e.String(), "error", err)
		b, err := e.Render(sv.renderOptions()...)
		if err != nil {
			sv.log.Error("render", "entry", e.String(), "error", err)
			sv.fail(w, http.StatusInternalServerError)
			return
		}
		w.Header().Set("Cache-Control", cacheControl)
		sv.write(w, b, head)
		return
	}
	// The file returned by Get must be closed by the caller.
	defer func() {
		if err := file.Close(); err != nil {
			sv.log.Warn("close", "entry", e.String(), "error", err)
		}
	}()

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.FormatInt(file.Size(), 10))
	w.Header().Set("Cache-Control", cacheControl)
	if head {
		w.WriteHeader(http.StatusOK)
		return
	}
	if _, err := io.Copy(w, file); err != nil {
		sv.log.Warn("write", "entry", e.String(), "error", err)
		return
	}

	sv.log.Debug("served", "entry", e.String(), "cached", cached, "elapsed", time.Since(startedAt))
}

// write sends b as an SVG image, or only its headers if head is set.
func (sv *server) write(w http.ResponseWriter, b []byte, head bool) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(b)))
	if head {
		w.WriteHeader(http.StatusOK)
		return
	}
	if _, err := w.Write(b); err != nil {
		sv.log.Warn("write", "error", err)
	}
}

// fail sends the status code with an empty body.
func (sv *server) fail(w http.ResponseWriter, code int) {
	w.Header().Set("Content-Length", "0")
	w.WriteHeader(code)
}

//go:embed index.html
var efs embed.FS

var indexTmpl = template.Must(template.ParseFS(efs, "index.html"))

type indexData struct {
	Hash   string
	Styles []groovytar.Style
	Sizes  []int
}

// serveIndex sends the demo page showing the avatars of one random hash.
func (sv *server) serveIndex(w http.ResponseWriter, head bool) error {
	hash, err := param.RandomID(sv.rand)
	if err != nil {
		sv.fail(w, http.StatusInternalServerError)
		return fmt.Errorf("index.html: %w", err)
	}
	var b bytes.Buffer
	if err := indexTmpl.Execute(&b, &indexData{
		Hash:   hash,
		Styles: []groovytar.Style{groovytar.PictoGlyph, groovytar.Confetti},
		Sizes:  []int{96, 128, 192, 256},
	}); err != nil {
		sv.fail(w, http.StatusInternalServerError)
		return fmt.Errorf("index.html: %w", err)
	}

	w.Header().Set("Content-Length", strconv.Itoa(b.Len()))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if head {
		w.WriteHeader(http.StatusOK)
		return nil
	}
	if _, err := b.WriteTo(w); err != nil {
		return fmt.Errorf("index.html: %w", err)
	}

	return nil
}
