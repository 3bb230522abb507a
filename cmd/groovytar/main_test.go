// Copyright (c) 2022 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/tunabay/go-groovytar"
	"github.com/tunabay/go-groovytar/internal/svgtest"
	"github.com/tunabay/go-groovytar/wcag"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRenderCommand(t *testing.T) {
	out, err := execute(t, "render", "--style", "identicon", "someone@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if want := mustRender(t, "someone@example.com", groovytar.Confetti, 240); out != string(want) {
		t.Errorf("unexpected output:\n%s", out)
	}

	file := filepath.Join(t.TempDir(), "avatar.svg")
	if _, err := execute(t, "render", "-s", "64", "-o", file, "--comment", emptyMD5); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	if want := mustRender(t, emptyMD5, groovytar.PictoGlyph, 64); !bytes.Equal(svgtest.StripComment(b), want) {
		t.Errorf("unexpected file:\n%s", b)
	}

	if _, err := execute(t, "render"); err == nil {
		t.Error("no error without an id")
	}
}

func TestPaletteCommand(t *testing.T) {
	out, err := execute(t, "palette")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != wcag.Len()+1 {
		t.Fatalf("%d lines", len(lines))
	}
	if f := strings.Fields(lines[1]); len(f) != 5 || f[1] != "#c3155e" || f[2] != "#87fffa" {
		t.Errorf("first entry %q", lines[1])
	}
	for _, l := range lines[1:] {
		if strings.HasSuffix(l, "Fail") {
			t.Errorf("failing entry %q", l)
		}
	}
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		flag, env string
		want      hclog.Level
	}{
		{"", "", hclog.Info},
		{"debug", "", hclog.Debug},
		{"", "TRACE", hclog.Trace},
		{"warn", "trace", hclog.Warn},
	}
	for _, tt := range tests {
		t.Setenv(logLevelEnv, tt.env)
		gf := &globalFlags{logLevel: tt.flag}
		if got := gf.newLogger(&bytes.Buffer{}).GetLevel(); got != tt.want {
			t.Errorf("flag %q env %q: level %v, want %v", tt.flag, tt.env, got, tt.want)
		}
	}
}
