// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math"
	"testing"

	"github.com/jbixon13/plotly-book/dataset"
	"github.com/jbixon13/plotly-book/plotly"
)

// TestAllFiguresBuild smoke-tests every registered figure: each must
// build without panicking and produce at least one trace.
func TestAllFiguresBuild(t *testing.T) {
	seen := make(map[string]bool)
	for _, f := range figureList {
		if seen[f.name] {
			t.Errorf("duplicate figure name %q", f.name)
		}
		seen[f.name] = true

		fig := f.build(42)
		if len(fig.Data) == 0 {
			t.Errorf("%s: no traces", f.name)
		}
		if fig.Layout == nil || fig.Layout.Title == nil || fig.Layout.Title.Text == "" {
			t.Errorf("%s: no title", f.name)
		}
	}
}

func TestFigAlpha(t *testing.T) {
	fig := figAlpha(42)
	if len(fig.Data) != 2 {
		t.Fatalf("got %d traces, want 2", len(fig.Data))
	}
	if fig.Data[0].Marker != nil && fig.Data[0].Marker.Opacity != 0 {
		t.Errorf("first trace should be opaque")
	}
	if fig.Data[1].Marker == nil || fig.Data[1].Marker.Opacity != 0.2 {
		t.Errorf("second trace should have opacity 0.2")
	}
}

func TestFigColorNumeric(t *testing.T) {
	fig := figColorNumeric(42)
	if len(fig.Data) != 1 {
		t.Fatalf("got %d traces, want 1", len(fig.Data))
	}
	mk := fig.Data[0].Marker
	if mk == nil || mk.Colorscale == nil || !mk.ShowScale {
		t.Fatalf("want a continuous colorscale with a colorbar, got %+v", mk)
	}
	if mk.ColorBar == nil || mk.ColorBar.Title.Text != "cyl" {
		t.Errorf("colorbar should be titled cyl")
	}
}

func TestFigColorRamp(t *testing.T) {
	fig := figColorRamp(42)
	if len(fig.Data) != 3 {
		t.Fatalf("got %d traces, want one per cylinder level", len(fig.Data))
	}
	// The ramp endpoints map to the first and last levels exactly.
	if c := fig.Data[0].Marker.Color; c != "#132b43" {
		t.Errorf("got first level color %v, want #132b43", c)
	}
	if c := fig.Data[2].Marker.Color; c != "#56b1f7" {
		t.Errorf("got last level color %v, want #56b1f7", c)
	}
}

func TestFigLinetypes(t *testing.T) {
	fig := figLinetypes(42)
	if len(fig.Data) != 2 {
		t.Fatalf("got %d traces, want 2", len(fig.Data))
	}
	if fig.Data[0].Name != "psavert" || fig.Data[1].Name != "uempmed" {
		t.Errorf("got trace names %q, %q", fig.Data[0].Name, fig.Data[1].Name)
	}
	if d := fig.Data[0].Line.Dash; d != "solid" {
		t.Errorf("got first dash %q, want solid", d)
	}
	if d := fig.Data[1].Line.Dash; d != "dot" {
		t.Errorf("got second dash %q, want dot", d)
	}
}

func TestFigAllCities(t *testing.T) {
	fig := figAllCities(42)
	// 20 gray city lines, one highlight line, one text label.
	if len(fig.Data) != 22 {
		t.Fatalf("got %d traces, want 22", len(fig.Data))
	}
	if fig.Layout.ShowLegend == nil || *fig.Layout.ShowLegend {
		t.Errorf("legend should be hidden")
	}
	last := fig.Data[21]
	if last.Mode != "text" || len(last.Text) != 1 || last.Text[0] != "Austin" {
		t.Errorf("last trace should be the Austin label, got %+v", last)
	}
	if fig.Data[20].Line.Width != 2.5 {
		t.Errorf("highlight line should be wide")
	}
}

func TestFigDensity(t *testing.T) {
	fig := figDensity(42)
	if len(fig.Data) != 3 {
		t.Fatalf("got %d traces, want 3", len(fig.Data))
	}
	names := []string{"4-wheel", "front", "rear"}
	for i, tr := range fig.Data {
		if tr.Name != names[i] {
			t.Errorf("trace %d name %q, want %q", i, tr.Name, names[i])
		}
		if tr.Mode != "lines" {
			t.Errorf("trace %d mode %q, want lines", i, tr.Mode)
		}
		if xs := tr.X.(plotly.Floats); len(xs) != 200 {
			t.Errorf("trace %d has %d density samples, want 200", i, len(xs))
		}
	}
}

func TestFigErrorBars(t *testing.T) {
	fig := figErrorBars(42)
	if len(fig.Data) != 1 {
		t.Fatalf("got %d traces, want 1", len(fig.Data))
	}
	tr := fig.Data[0]
	classes := tr.X.([]string)
	if len(classes) != 7 || classes[0] != "2seater" || classes[6] != "suv" {
		t.Errorf("got classes %v", classes)
	}
	if tr.ErrorY == nil || len(tr.ErrorY.Array) != 7 {
		t.Fatalf("want 7 error magnitudes, got %+v", tr.ErrorY)
	}
	for i, e := range tr.ErrorY.Array {
		if e < 0 {
			t.Errorf("error %d is negative: %v", i, e)
		}
	}
}

func TestFigSegments(t *testing.T) {
	fig := figSegments(42)
	if len(fig.Data) != 3 {
		t.Fatalf("got %d traces, want segments+city+highway", len(fig.Data))
	}
	seg := fig.Data[0]
	xs := seg.X.([]interface{})
	if len(xs)%3 != 0 {
		t.Fatalf("segment coordinates not in x0,x1,gap triples: len %d", len(xs))
	}
	if xs[2] != nil {
		t.Errorf("want nil gap after each segment, got %v", xs[2])
	}
}

func TestFigRibbons(t *testing.T) {
	fig := figRibbons(42)
	if len(fig.Data) != 2 {
		t.Fatalf("got %d traces, want band+line", len(fig.Data))
	}
	band := fig.Data[0]
	if band.Fill != "toself" || band.Mode != "none" {
		t.Errorf("band should be a fill-only trace, got mode %q fill %q", band.Mode, band.Fill)
	}
	n := 16 * 12
	if xs := band.X.([]string); len(xs) != 2*n {
		t.Errorf("band walks out and back: got %d coordinates, want %d", len(xs), 2*n)
	}
}

func TestModelEconomy(t *testing.T) {
	tab := modelEconomy()
	if want := 36; tab.Len() != want {
		t.Errorf("got %d models, want %d", tab.Len(), want)
	}
	cty := tab.MustColumn("cty").([]float64)
	for i := 1; i < len(cty); i++ {
		if cty[i] < cty[i-1] {
			t.Fatalf("models not sorted by city economy at %d: %v > %v", i, cty[i-1], cty[i])
		}
	}
	hwy := tab.MustColumn("hwy").([]float64)
	for i := range hwy {
		if hwy[i] < cty[i] {
			t.Errorf("model %d: highway economy %v below city %v", i, hwy[i], cty[i])
		}
	}
}

func TestTopCities(t *testing.T) {
	h := dataset.Housing(42)
	top := topCities(h, 5)
	if len(top) != 5 {
		t.Fatalf("got %d cities, want 5", len(top))
	}
	seen := make(map[string]bool)
	for _, c := range top {
		if seen[c] {
			t.Fatalf("duplicate city %q", c)
		}
		seen[c] = true
	}
	if all := topCities(h, 100); len(all) != 20 {
		t.Errorf("got %d cities, want all 20", len(all))
	}
}

func TestFilterCities(t *testing.T) {
	h := dataset.Housing(42)
	f := filterCities(h, []string{"Austin", "Waco"})
	if want := 2 * 16 * 12; f.Len() != want {
		t.Errorf("got %d rows, want %d", f.Len(), want)
	}
	for _, c := range f.MustColumn("city").([]string) {
		if c != "Austin" && c != "Waco" {
			t.Fatalf("unexpected city %q", c)
		}
	}
}

func TestCityEndpoint(t *testing.T) {
	h := dataset.Housing(42)
	e := cityEndpoint(h, "Austin")
	if e.Len() != 1 {
		t.Fatalf("got %d rows, want 1", e.Len())
	}
	if d := e.MustColumn("date").([]string)[0]; d != "2015-12-01" {
		t.Errorf("got endpoint date %q, want 2015-12-01", d)
	}
}

func TestStderr(t *testing.T) {
	se := stderr([]float64{1, 2, 3}, 2)
	if want := 1 / math.Sqrt(3); math.Abs(se-want) > 1e-12 {
		t.Errorf("got stderr %v, want %v", se, want)
	}
	if se := stderr([]float64{5}, 5); se != 0 {
		t.Errorf("got stderr %v for a single sample, want 0", se)
	}
}
