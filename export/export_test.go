// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jbixon13/plotly-book/plotly"
)

func testFigure() *plotly.Figure {
	fig := &plotly.Figure{Layout: &plotly.Layout{}}
	fig.AddTraces(&plotly.Trace{
		Type: "scatter", Mode: "markers",
		X: plotly.Floats{1, 2}, Y: plotly.Floats{3, 4},
	})
	return fig
}

// exportServer fakes an orca-style export server. Each request body
// is decoded into *got and the canned image bytes are returned.
func exportServer(t *testing.T, got *Request, img []byte) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(got))
		w.Write(img)
	}))
}

func TestPNG(t *testing.T) {
	var got Request
	srv := exportServer(t, &got, []byte("fake png bytes"))
	defer srv.Close()

	img, err := NewClient(srv.URL).PNG(testFigure(), 700, 450)
	assert.NoError(t, err)
	assert.Equal(t, []byte("fake png bytes"), img)

	assert.Equal(t, "png", got.Format)
	assert.Equal(t, 700, got.Width)
	assert.Equal(t, 450, got.Height)
	if assert.NotNil(t, got.Figure) && assert.Len(t, got.Figure.Data, 1) {
		assert.Equal(t, "scatter", got.Figure.Data[0].Type)
	}
}

func TestExportDefaultFormat(t *testing.T) {
	var got Request
	srv := exportServer(t, &got, []byte("x"))
	defer srv.Close()

	_, err := NewClient(srv.URL).Export(Request{Figure: testFigure()})
	assert.NoError(t, err)
	assert.Equal(t, "png", got.Format)
}

func TestExportAccepts2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("img"))
	}))
	defer srv.Close()

	img, err := NewClient(srv.URL).PNG(testFigure(), 0, 0)
	assert.NoError(t, err)
	assert.Equal(t, []byte("img"), img)
}

func TestExportServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "plotly.js not loaded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).PNG(testFigure(), 0, 0)
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "500")
		assert.Contains(t, err.Error(), "plotly.js not loaded")
	}
}

func TestExportUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // shut down before use

	_, err := NewClient(srv.URL).PNG(testFigure(), 0, 0)
	assert.Error(t, err)
}

func TestWriteFile(t *testing.T) {
	var got Request
	srv := exportServer(t, &got, []byte("svg bytes"))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "fig.svg")
	err := NewClient(srv.URL).WriteFile(path, testFigure(), 600, 400)
	assert.NoError(t, err)
	assert.Equal(t, "svg", got.Format)

	b, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, []byte("svg bytes"), b)
}

func TestFromEnv(t *testing.T) {
	var got Request
	srv := exportServer(t, &got, []byte("ok"))
	defer srv.Close()

	t.Setenv("PLOTLY_EXPORT_URL", srv.URL)
	t.Setenv("PLOTLY_EXPORT_TIMEOUT", "5s")
	c, err := FromEnv()
	assert.NoError(t, err)

	img, err := c.PNG(testFigure(), 0, 0)
	assert.NoError(t, err)
	assert.Equal(t, []byte("ok"), img)
}
