// Copyright (c) 2022 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/go-hclog"
	"github.com/tunabay/go-groovytar"
)

const emptyMD5 = "d41d8cd98f00b204e9800998ecf8427e"

func newTestServer(t *testing.T, conf *serverConfig) *server {
	t.Helper()
	if conf.Dir == "" {
		conf.Dir = t.TempDir()
	}
	if conf.Logger == nil {
		conf.Logger = hclog.New(&hclog.LoggerOptions{
			Name:   "test",
			Level:  hclog.Trace,
			Output: testWriter{t},
		})
	}
	sv, err := newServer(conf)
	if err != nil {
		t.Fatal(err)
	}
	return sv
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(b []byte) (int, error) {
	w.t.Log(strings.TrimRight(string(b), "\n"))
	return len(b), nil
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func mustRender(t *testing.T, id string, style groovytar.Style, size int) []byte {
	t.Helper()
	b, err := groovytar.Render(id, style, size)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestServeAvatar(t *testing.T) {
	sv := newTestServer(t, &serverConfig{})
	tests := []struct {
		target string
		style  groovytar.Style
		size   int
		file   string
	}{
		{"/avatar/" + strings.ToUpper(emptyMD5) + "?d=identicon", groovytar.Confetti, 240, "confetti/" + emptyMD5 + ".svg"},
		{"/avatar/" + emptyMD5 + "?d=identicon&s=64", groovytar.Confetti, 64, "confetti/" + emptyMD5 + ".svg"},
		{"/avatar/" + emptyMD5, groovytar.PictoGlyph, 240, "pictoglyph/" + emptyMD5 + ".svg"},
		{"/avatar/" + emptyMD5 + "?s=64&d=monsterid&r=x", groovytar.PictoGlyph, 64, "pictoglyph/" + emptyMD5 + "-small.svg"},
	}
	for _, tt := range tests {
		for pass := 0; pass < 2; pass++ {
			rec := get(t, sv, tt.target)
			if rec.Code != http.StatusOK {
				t.Fatalf("%s: status %d", tt.target, rec.Code)
			}
			want := mustRender(t, emptyMD5, tt.style, tt.size)
			if !bytes.Equal(rec.Body.Bytes(), want) {
				t.Errorf("%s #%d: unexpected body", tt.target, pass)
			}
			hdr := rec.Result().Header
			got := []string{hdr.Get("Content-Type"), hdr.Get("Content-Length"), hdr.Get("Cache-Control"), hdr.Get("X-Powered-By")}
			wantHdr := []string{"image/svg+xml; charset=utf-8", strconv.Itoa(len(want)), cacheControl, ""}
			if diff := cmp.Diff(wantHdr, got); diff != "" {
				t.Errorf("%s: headers (-want +got):\n%s", tt.target, diff)
			}
		}
		onDisk, err := os.ReadFile(filepath.Join(sv.cache.Dir(), filepath.FromSlash(tt.file)))
		if err != nil {
			t.Fatal(err)
		}
		if err := groovytar.Verify(bytes.NewReader(onDisk)); err != nil {
			t.Errorf("%s: %v", tt.file, err)
		}
	}
	if st := sv.cache.Status(); st.NumFiles != 3 || st.NumCreated != 3 || st.NumRefs != 0 {
		t.Errorf("cache status %v", st)
	}
}

func TestServeMalformedHash(t *testing.T) {
	seed := bytes.Repeat([]byte{0x5a}, 16)
	sv := newTestServer(t, &serverConfig{Rand: bytes.NewReader(seed)})

	rec := get(t, sv, "/avatar/someone@example.com?d=confetti")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if !bytes.Equal(rec.Body.Bytes(), mustRender(t, strings.Repeat("5a", 16), groovytar.Confetti, 240)) {
		t.Error("not drawn from the substituted hash")
	}
	if cc := rec.Result().Header.Get("Cache-Control"); cc != "no-store" {
		t.Errorf("Cache-Control %q", cc)
	}
	if entries, _ := os.ReadDir(sv.cache.Dir()); len(entries) != 0 {
		t.Errorf("substituted hash was cached: %v", entries)
	}

	// the random source is exhausted now
	rec = get(t, sv, "/avatar/nope")
	if rec.Code != http.StatusInternalServerError || rec.Body.Len() != 0 {
		t.Errorf("status %d, body %q", rec.Code, rec.Body.Bytes())
	}
}

func TestServeMethodNotAllowed(t *testing.T) {
	sv := newTestServer(t, &serverConfig{})
	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
		rec := httptest.NewRecorder()
		sv.ServeHTTP(rec, httptest.NewRequest(method, "/avatar/"+emptyMD5, nil))
		if rec.Code != http.StatusMethodNotAllowed || rec.Body.Len() != 0 {
			t.Errorf("%s: status %d, body %q", method, rec.Code, rec.Body.Bytes())
		}
		if allow := rec.Result().Header.Get("Allow"); allow != "GET, HEAD" {
			t.Errorf("%s: Allow %q", method, allow)
		}
	}
}

func TestServeHead(t *testing.T) {
	for _, target := range []string{
		"/avatar/" + emptyMD5 + "?s=80",
		"/avatar/someone@example.com",
		"/favicon.ico",
		"/",
	} {
		sv := newTestServer(t, &serverConfig{Rand: bytes.NewReader(bytes.Repeat([]byte{0x01}, 64))})
		rec := httptest.NewRecorder()
		sv.ServeHTTP(rec, httptest.NewRequest(http.MethodHead, target, nil))
		if rec.Code != http.StatusOK || rec.Body.Len() != 0 {
			t.Errorf("HEAD %s: status %d, body %d bytes", target, rec.Code, rec.Body.Len())
			continue
		}

		sv = newTestServer(t, &serverConfig{Rand: bytes.NewReader(bytes.Repeat([]byte{0x01}, 64))})
		want := get(t, sv, target)
		if rec.Code != want.Code {
			t.Errorf("GET %s: status %d", target, want.Code)
		}
		for _, name := range []string{"Content-Type", "Cache-Control", "Content-Length"} {
			if got, want := rec.Result().Header.Get(name), want.Result().Header.Get(name); got != want {
				t.Errorf("HEAD %s: %s %q, want %q", target, name, got, want)
			}
		}
		if got := rec.Result().Header.Get("Content-Length"); got != strconv.Itoa(want.Body.Len()) {
			t.Errorf("HEAD %s: Content-Length %s, body of GET %d bytes", target, got, want.Body.Len())
		}
	}
}

func TestServeIndex(t *testing.T) {
	sv := newTestServer(t, &serverConfig{Rand: bytes.NewReader(bytes.Repeat([]byte{0x01}, 16))})
	rec := get(t, sv, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	body := rec.Body.String()
	hash := strings.Repeat("01", 16)
	if n := strings.Count(body, `<img src="/avatar/`+hash+`?d=`); n != 8 {
		t.Errorf("%d avatars on the index page:\n%s", n, body)
	}
	for _, want := range []string{"d=pictoglyph&amp;s=96", "d=confetti&amp;s=256"} {
		if !strings.Contains(body, want) {
			t.Errorf("index page lacks %q", want)
		}
	}
}

func TestServeFavicon(t *testing.T) {
	sv := newTestServer(t, &serverConfig{})
	rec := get(t, sv, "/favicon.ico")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if !bytes.Equal(rec.Body.Bytes(), mustRender(t, faviconID, groovytar.PictoGlyph, groovytar.MinSize)) {
		t.Error("unexpected favicon")
	}
}

func TestServeConcurrent(t *testing.T) {
	sv := newTestServer(t, &serverConfig{})
	want := mustRender(t, emptyMD5, groovytar.PictoGlyph, 400)

	const n = 8
	var wg sync.WaitGroup
	bodies := make([][]byte, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rec := httptest.NewRecorder()
			sv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/"+emptyMD5+"?s=400", nil))
			bodies[i] = rec.Body.Bytes()
		}(i)
	}
	wg.Wait()

	for i, b := range bodies {
		if !bytes.Equal(b, want) {
			t.Errorf("#%d: unexpected body", i)
		}
	}
	onDisk, err := os.ReadFile(filepath.Join(sv.cache.Dir(), "pictoglyph", emptyMD5+".svg"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(onDisk, want) {
		t.Error("cached file differs")
	}
	if st := sv.cache.Status(); st.NumCreated != 1 {
		t.Errorf("created %d times", st.NumCreated)
	}
}

func TestServeReplacesInvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "confetti", emptyMD5+".svg")
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(`<svg xmlns="http://www.w3.org/2000/svg"><path`), 0o600); err != nil {
		t.Fatal(err)
	}
	sv := newTestServer(t, &serverConfig{Dir: dir})

	rec := get(t, sv, "/"+emptyMD5+"?d=confetti")
	want := mustRender(t, emptyMD5, groovytar.Confetti, 240)
	if !bytes.Equal(rec.Body.Bytes(), want) {
		t.Errorf("served the broken file: %q", rec.Body.Bytes())
	}
	if onDisk, _ := os.ReadFile(path); !bytes.Equal(onDisk, want) {
		t.Error("broken file not replaced")
	}
}

func TestServeCacheFailure(t *testing.T) {
	var logs bytes.Buffer
	sv := newTestServer(t, &serverConfig{Logger: hclog.New(&hclog.LoggerOptions{
		Name:   "test",
		Level:  hclog.Info,
		Output: io.MultiWriter(&logs, testWriter{t}),
	})})
	// a regular file where the style directory belongs
	if err := os.WriteFile(filepath.Join(sv.cache.Dir(), "confetti"), nil, 0o600); err != nil {
		t.Fatal(err)
	}
	rec := get(t, sv, "/"+emptyMD5+"?d=confetti")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if !bytes.Equal(rec.Body.Bytes(), mustRender(t, emptyMD5, groovytar.Confetti, 240)) {
		t.Error("unexpected body")
	}

	var warned bool
	for _, line := range strings.Split(logs.String(), "\n") {
		if strings.Contains(line, "[WARN]") && strings.Contains(line, "test.filecache:") &&
			strings.Contains(line, "confetti/"+emptyMD5+".svg") {
			warned = true
		}
	}
	if !warned {
		t.Errorf("no cache warning in the log:\n%s", logs.String())
	}
}
