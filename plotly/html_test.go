// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotly

import (
	"regexp"
	"strings"
	"testing"
)

func TestWriteHTML(t *testing.T) {
	p := New(carsTable()).
		Add(Title{Text: "cars"}).
		Add(LayerMarkers{X: "displ", Y: "hwy"})

	var buf strings.Builder
	if err := p.WriteHTML(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{
		"<!DOCTYPE html>",
		plotlyCDN,
		"<title>cars</title>",
		"Plotly.newPlot(",
		`"type":"scatter"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("document does not contain %q", want)
		}
	}
	if strings.Contains(out, "plotly_click") {
		t.Error("click handler present without OnClick")
	}

	// The plot div ID is referenced by the style, the div, and the
	// newPlot call.
	m := regexp.MustCompile(`<div id="(plotly-[0-9a-f-]+)">`).FindStringSubmatch(out)
	if m == nil {
		t.Fatal("no plot div")
	}
	if n := strings.Count(out, m[1]); n != 3 {
		t.Errorf("div ID appears %d times; want 3", n)
	}
}

func TestWriteHTMLOnClick(t *testing.T) {
	p := New(carsTable()).
		Add(LayerMarkers{X: "displ", Y: "hwy", CustomData: "class"}).
		OnClick("window.open('https://example.invalid/' + data.points[0].customdata);")

	var buf strings.Builder
	if err := p.WriteHTML(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	if !strings.Contains(out, `gd.on("plotly_click"`) {
		t.Error("no click binding")
	}
	if !strings.Contains(out, "data.points[0].customdata") {
		t.Error("handler body not emitted")
	}
}

func TestWriteHTMLDistinctIDs(t *testing.T) {
	fig := New(carsTable()).Add(LayerMarkers{X: "displ", Y: "hwy"}).Figure()

	var a, b strings.Builder
	if err := fig.WriteHTML(&a, ""); err != nil {
		t.Fatal(err)
	}
	if err := fig.WriteHTML(&b, ""); err != nil {
		t.Fatal(err)
	}

	re := regexp.MustCompile(`<div id="(plotly-[0-9a-f-]+)">`)
	ida := re.FindStringSubmatch(a.String())
	idb := re.FindStringSubmatch(b.String())
	if ida == nil || idb == nil {
		t.Fatal("missing plot div")
	}
	if ida[1] == idb[1] {
		t.Error("documents share a div ID")
	}
}
