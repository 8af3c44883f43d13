// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command figures renders the example figure gallery to standalone
// HTML files.
//
// Each figure demonstrates one scatter-trace technique: aesthetic
// mappings (color, symbol, size, line type) with automatic or
// overridden scales, layer composition, reference summaries, and the
// segment/polygon/ribbon trace shapes. The HTML files load plotly.js
// from its CDN and are self-contained otherwise; open them in any
// browser, or serve the output directory with the plotview command.
//
// With -png, each figure is also rasterized through a plotly export
// server (see package export for how to run one).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/jbixon13/plotly-book/export"
	"github.com/jbixon13/plotly-book/plotly"
)

type figure struct {
	name  string
	desc  string
	build func(seed int64) *plotly.Figure
}

// figureList is rendered in order; names are the output basenames.
var figureList = []figure{
	{"alpha", "overplotting and marker opacity", figAlpha},
	{"color-numeric", "numeric color mapping with a colorbar", figColorNumeric},
	{"color-discrete", "discrete color mapping in level order", figColorDiscrete},
	{"color-brewer", "discrete colors from a named palette", figColorBrewer},
	{"color-ramp", "discrete colors interpolated from a two-color ramp", figColorRamp},
	{"stroke-span", "marker outline color and width", figStrokeSpan},
	{"symbols", "discrete symbol mapping with an overridden cycle", figSymbols},
	{"sizes", "numeric size mapping with area scaling", figSizes},
	{"dotplot", "per-model economy dotplot", figDotplot},
	{"error-bars", "class means with error bars", figErrorBars},
	{"lines", "line per city for the busiest markets", figLines},
	{"linetypes", "line type mapping on an unpivoted series pair", figLinetypes},
	{"all-cities", "every city in gray with one highlighted", figAllCities},
	{"density", "kernel density estimates per drive train", figDensity},
	{"segments", "city-to-highway dumbbells per model", figSegments},
	{"polygons", "a band drawn as an explicit closed polygon", figPolygons},
	{"ribbons", "min/max band with a mean line", figRibbons},
}

func main() {
	log.SetPrefix("figures: ")
	log.SetFlags(0)

	var (
		flagOut  = flag.String("o", "figsout", "write HTML files to `dir`")
		flagFig  = flag.String("fig", "", "render only the figure named `name`")
		flagList = flag.Bool("list", false, "list figure names and exit")
		flagSeed = flag.Int64("seed", 42, "seed `n` for the generated datasets")
		flagPNG  = flag.Bool("png", false, "also export PNGs via $PLOTLY_EXPORT_URL")
		flagView = flag.Bool("view", false, "open the rendered figures with $BROWSER")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(2)
	}

	if *flagList {
		for _, f := range figureList {
			fmt.Printf("%-14s %s\n", f.name, f.desc)
		}
		return
	}

	figs := figureList
	if *flagFig != "" {
		figs = nil
		for _, f := range figureList {
			if f.name == *flagFig {
				figs = []figure{f}
				break
			}
		}
		if figs == nil {
			log.Fatalf("unknown figure %q; -list shows the known figures", *flagFig)
		}
	}

	var client *export.Client
	if *flagPNG {
		var err error
		client, err = export.FromEnv()
		if err != nil {
			log.Fatal(err)
		}
	}

	if err := os.MkdirAll(*flagOut, 0777); err != nil {
		log.Fatal(err)
	}

	var rendered []string
	for _, f := range figs {
		fig := f.build(*flagSeed)

		path := filepath.Join(*flagOut, f.name+".html")
		if err := writeHTML(path, fig, f.name); err != nil {
			log.Fatal(err)
		}
		fmt.Println(path)
		rendered = append(rendered, path)

		if client != nil {
			png := filepath.Join(*flagOut, f.name+".png")
			if err := client.WriteFile(png, fig, 700, 450); err != nil {
				log.Fatal(err)
			}
			fmt.Println(png)
		}
	}

	if *flagView {
		if err := view(rendered); err != nil {
			log.Fatal(err)
		}
	}
}

func writeHTML(path string, fig *plotly.Figure, title string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fig.WriteHTML(f, title); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// view opens paths with the command in $BROWSER.
func view(paths []string) error {
	browser := os.Getenv("BROWSER")
	if browser == "" {
		return fmt.Errorf("-view needs $BROWSER set to a browser command")
	}
	argv, err := shellquote.Split(browser)
	if err != nil {
		return fmt.Errorf("parsing $BROWSER: %s", err)
	}
	if len(argv) == 0 {
		return fmt.Errorf("-view needs $BROWSER set to a browser command")
	}
	cmd := exec.Command(argv[0], append(argv[1:], paths...)...)
	cmd.Stdout, cmd.Stderr = os.Stdout, os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %s", strings.Join(argv, " "), err)
	}
	return nil
}
