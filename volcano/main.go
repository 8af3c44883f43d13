// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command volcano renders a genome-wide association volcano plot.
//
// Each point is one variant, placed at its estimated effect size (x)
// and -log10 p-value (y), colored by significance tier. Dashed
// reference lines mark the conventional genome-wide (5e-8) and
// suggestive (1e-5) thresholds, and the most significant hits are
// annotated. Hovering shows the variant's rsID, locus, and p-value;
// clicking a point opens its NCBI dbSNP page in the browser. The
// click handler is JavaScript bound to the plotly.js click event, so
// it needs no server.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/aclements/go-gg/table"

	"github.com/jbixon13/plotly-book/dataset"
	"github.com/jbixon13/plotly-book/export"
	"github.com/jbixon13/plotly-book/plotly"
)

// The conventional GWAS significance thresholds.
const (
	genomeWide = 5e-8
	suggestive = 1e-5
)

func main() {
	log.SetPrefix("volcano: ")
	log.SetFlags(0)

	var (
		flagOut  = flag.String("o", "volcano.html", "write HTML to `file`")
		flagN    = flag.Int("n", 2000, "simulate `count` variants")
		flagSeed = flag.Int64("seed", 42, "seed `n` for the simulated study")
		flagTop  = flag.Int("top", 3, "annotate the `k` most significant hits")
		flagPNG  = flag.Bool("png", false, "also export a PNG via $PLOTLY_EXPORT_URL")
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

	fig := build(*flagSeed, *flagN, *flagTop)

	f, err := os.Create(*flagOut)
	if err != nil {
		log.Fatal(err)
	}
	if err := fig.WriteHTML(f, "Volcano plot"); err != nil {
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}
	fmt.Println(*flagOut)

	if *flagPNG {
		client, err := export.FromEnv()
		if err != nil {
			log.Fatal(err)
		}
		png := strings.TrimSuffix(*flagOut, ".html") + ".png"
		if err := client.WriteFile(png, fig, 900, 600); err != nil {
			log.Fatal(err)
		}
		fmt.Println(png)
	}
}

// build constructs the volcano figure for a simulated study.
func build(seed int64, n, top int) *plotly.Figure {
	g := dataset.GWAS(seed, n)
	rsid := g.MustColumn("rsid").([]string)
	chrom := g.MustColumn("chrom").([]string)
	pos := g.MustColumn("pos").([]int)
	beta := g.MustColumn("beta").([]float64)
	pvalue := g.MustColumn("pvalue").([]float64)

	neglogp := make([]float64, n)
	tier := make([]string, n)
	hover := make([]string, n)
	for i := range pvalue {
		neglogp[i] = -math.Log10(pvalue[i])
		tier[i] = tierOf(pvalue[i])
		hover[i] = fmt.Sprintf("%s<br>chr%s:%d<br>p = %.2g", rsid[i], chrom[i], pos[i], pvalue[i])
	}
	tab := table.NewBuilder(g).Add("neglogp", neglogp).
		Add("tier", tier).Add("hover", hover).Done()

	p := plotly.New(tab)
	// One palette entry per tier, in level (alphabetical) order:
	// "genome-wide", "not significant", "suggestive".
	p.SetColors([]color.RGBA{
		{0xd6, 0x27, 0x28, 0xff},
		{0xaa, 0xaa, 0xaa, 0xff},
		{0xff, 0x7f, 0x0e, 0xff},
	})
	p.Add(
		plotly.Title{Text: fmt.Sprintf("Association results, %d variants", n)},
		plotly.AxisLabel("x", "effect size (beta)"),
		plotly.AxisLabel("y", "-log10 p"),
		plotly.LayerMarkers{
			X: "beta", Y: "neglogp",
			Color:      "tier",
			Text:       "hover",
			HoverInfo:  "text",
			CustomData: "rsid",
			Opacity:    0.7,
		},
		plotly.HLine{Y: -math.Log10(genomeWide), Dash: "dash", Color: color.RGBA{0xd6, 0x27, 0x28, 0xff}},
		plotly.HLine{Y: -math.Log10(suggestive), Dash: "dash", Color: color.RGBA{0xff, 0x7f, 0x0e, 0xff}},
	)
	for _, i := range topHits(pvalue, top) {
		p.Add(plotly.Annotate(beta[i], neglogp[i], rsid[i]))
	}
	p.OnClick(`var d = data.points[0];
if (d.customdata) { window.open("https://www.ncbi.nlm.nih.gov/snp/" + d.customdata); }`)

	fig := p.Figure()
	fig.Layout.HoverMode = "closest"
	return fig
}

// tierOf buckets a p-value into its significance tier.
func tierOf(p float64) string {
	switch {
	case p < genomeWide:
		return "genome-wide"
	case p < suggestive:
		return "suggestive"
	default:
		return "not significant"
	}
}

// topHits returns the indices of the k smallest p-values, most
// significant first.
func topHits(pvalue []float64, k int) []int {
	idx := make([]int, len(pvalue))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return pvalue[idx[a]] < pvalue[idx[b]] })
	if k > len(idx) {
		k = len(idx)
	}
	return idx[:k]
}
