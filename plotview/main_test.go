// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/kelseyhightower/envconfig"
	"github.com/stretchr/testify/assert"
)

func writeFigure(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0666); err != nil {
		t.Fatal(err)
	}
}

func TestIndex(t *testing.T) {
	dir := t.TempDir()
	writeFigure(t, dir, "alpha.html", "<html>alpha</html>")
	writeFigure(t, dir, "volcano.html", "<html>volcano</html>")
	writeFigure(t, dir, "alpha.png", "not html")
	writeFigure(t, dir, "notes.txt", "not a figure")
	r := newRouter(dir)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `href="/figs/alpha.html"`)
	assert.Contains(t, body, `href="/figs/volcano.html"`)
	assert.NotContains(t, body, "alpha.png")
	assert.NotContains(t, body, "notes.txt")
}

func TestIndexNoFigures(t *testing.T) {
	r := newRouter(filepath.Join(t.TempDir(), "not-rendered-yet"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No figures yet")
}

func TestServeFigure(t *testing.T) {
	dir := t.TempDir()
	writeFigure(t, dir, "alpha.html", "<html>alpha</html>")
	r := newRouter(dir)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/figs/alpha.html", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "<html>alpha</html>", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/figs/missing.html", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestValidName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"alpha.html", true},
		{"color-ramp.html", true},
		{"volcano.png", true},
		{"", false},
		{"..", false},
		{".hidden", false},
		{"a/b.html", false},
		{"../main.go", false},
		{`..\main.go`, false},
	}
	for _, test := range tests {
		if got := validName(test.name); got != test.want {
			t.Errorf("validName(%q) = %v, want %v", test.name, got, test.want)
		}
	}
}

func TestConfig(t *testing.T) {
	// envconfig takes a set-but-empty variable over the default, so
	// the variables must be unset, not blanked, to test defaults.
	// t.Setenv registers the restore before the unset.
	for _, key := range []string{"PLOTVIEW_ADDR", "PLOTVIEW_DIR"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, ":8390", cfg.Addr)
	assert.Equal(t, "figsout", cfg.Dir)

	t.Setenv("PLOTVIEW_ADDR", "localhost:7000")
	t.Setenv("PLOTVIEW_DIR", "out")
	if err := envconfig.Process("", &cfg); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "localhost:7000", cfg.Addr)
	assert.Equal(t, "out", cfg.Dir)
}
