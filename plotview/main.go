// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command plotview serves a directory of rendered figures over HTTP.
//
// The index page lists every .html figure in the directory, and
// /figs/ serves the files themselves, so browsing to a figure loads
// it with its interactive plotly.js handlers intact. Configuration
// comes from PLOTVIEW_* environment variables; flags override them.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"
)

// Config holds the server settings read from the environment.
type Config struct {
	Addr string `envconfig:"PLOTVIEW_ADDR" default:":8390"`
	Dir  string `envconfig:"PLOTVIEW_DIR" default:"figsout"`
}

func main() {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.WithFields(log.Fields{"error": err}).Fatal("reading configuration")
	}

	flagAddr := flag.String("addr", cfg.Addr, "listen on `address`")
	flagDir := flag.String("dir", cfg.Dir, "serve figures from `directory`")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(2)
	}

	if _, err := os.Stat(*flagDir); err != nil {
		log.WithFields(log.Fields{"dir": *flagDir}).Warn("figure directory does not exist yet")
	}

	r := newRouter(*flagDir)
	log.WithFields(log.Fields{"addr": *flagAddr, "dir": *flagDir}).Info("serving figures")
	if err := r.Run(*flagAddr); err != nil {
		log.WithFields(log.Fields{"error": err}).Fatal("server exited")
	}
}

// newRouter builds the figure-browser routes on a fresh engine.
func newRouter(dir string) *gin.Engine {
	r := gin.Default()
	r.GET("/", IndexHandler(dir))
	r.GET("/figs/:name", FigHandler(dir))
	return r
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Figures</title></head>
<body>
<h1>Figures in {{.Dir}}</h1>
{{if .Figures}}<ul>
{{range .Figures}}<li><a href="/figs/{{.}}">{{.}}</a></li>
{{end}}</ul>
{{else}}<p>No figures yet. Render some with the figures or volcano command.</p>
{{end}}</body>
</html>
`))

// IndexHandler lists the .html figures in dir.
func IndexHandler(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		figs, err := listFigures(dir)
		if err != nil {
			log.WithFields(log.Fields{"error": err, "dir": dir}).Error("listing figures")
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		var buf bytes.Buffer
		data := struct {
			Dir     string
			Figures []string
		}{dir, figs}
		if err := indexTemplate.Execute(&buf, data); err != nil {
			log.WithFields(log.Fields{"error": err}).Error("rendering index")
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
	}
}

// FigHandler serves one file out of dir. Only plain file names are
// accepted, so the handler cannot be walked out of its directory.
func FigHandler(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Params.ByName("name")
		if !validName(name) {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		c.File(path)
	}
}

// listFigures returns the .html file names in dir, sorted. A missing
// directory is treated as empty, since figures may not have been
// rendered yet.
func listFigures(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var figs []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !validName(name) || !strings.HasSuffix(name, ".html") {
			continue
		}
		figs = append(figs, name)
	}
	return figs, nil
}

// validName reports whether name is a plain file name with no path
// components and no leading dot.
func validName(name string) bool {
	return name != "" && name == filepath.Base(name) &&
		!strings.HasPrefix(name, ".") && !strings.ContainsAny(name, `/\`)
}
