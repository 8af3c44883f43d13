// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package export renders figures to static images through a plotly
// export server.
//
// The server is any process that speaks the orca "serve" protocol:
// POST a JSON body {"figure": ..., "format": "png", ...} and the
// response body is the encoded image. Start one with, for example:
//
//	orca serve -p 9091
package export

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/jbixon13/plotly-book/plotly"
)

// Config locates the export server. FromEnv fills it from the
// environment.
type Config struct {
	URL     string        `envconfig:"PLOTLY_EXPORT_URL" default:"http://localhost:9091"`
	Timeout time.Duration `envconfig:"PLOTLY_EXPORT_TIMEOUT" default:"30s"`
}

// A Client renders figures through one export server.
type Client struct {
	url    string
	client *http.Client
}

// NewClient returns a Client that posts to the export server at url.
func NewClient(url string) *Client {
	return &Client{url: url, client: &http.Client{Timeout: 30 * time.Second}}
}

// FromEnv returns a Client configured from $PLOTLY_EXPORT_URL and
// $PLOTLY_EXPORT_TIMEOUT.
func FromEnv() (*Client, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errors.Wrap(err, "reading export configuration")
	}
	return &Client{url: cfg.URL, client: &http.Client{Timeout: cfg.Timeout}}, nil
}

// A Request asks the export server for one image of one figure.
type Request struct {
	Figure *plotly.Figure `json:"figure"`
	Format string         `json:"format"` // "png", "svg", "pdf", ...
	Width  int            `json:"width,omitempty"`
	Height int            `json:"height,omitempty"`
	Scale  float64        `json:"scale,omitempty"`
}

// Export renders one figure and returns the encoded image. An empty
// Format means "png".
func (c *Client) Export(req Request) ([]byte, error) {
	if req.Format == "" {
		req.Format = "png"
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, errors.Wrap(err, "encoding export request")
	}
	resp, err := c.client.Post(c.url, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrapf(err, "posting to export server %s", c.url)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, errors.Errorf("export server %s: %s: %s",
			c.url, resp.Status, strings.TrimSpace(string(msg)))
	}
	img, err := io.ReadAll(resp.Body)
	return img, errors.Wrap(err, "reading image")
}

// PNG renders fig as a width x height PNG.
func (c *Client) PNG(fig *plotly.Figure, width, height int) ([]byte, error) {
	return c.Export(Request{Figure: fig, Format: "png", Width: width, Height: height})
}

// WriteFile renders fig and writes the image to path. The format
// comes from path's extension, defaulting to PNG. Width and height
// of 0 leave the size to the server.
func (c *Client) WriteFile(path string, fig *plotly.Figure, width, height int) error {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	if format == "" {
		format = "png"
	}
	img, err := c.Export(Request{Figure: fig, Format: format, Width: width, Height: height})
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, img, 0666); err != nil {
		return err
	}
	log.WithFields(log.Fields{"path": path, "bytes": len(img)}).Info("wrote image")
	return nil
}
