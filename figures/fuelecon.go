// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image/color"
	"math"
	"sort"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"

	"github.com/jbixon13/plotly-book/dataset"
	"github.com/jbixon13/plotly-book/palettes"
	"github.com/jbixon13/plotly-book/plotly"
)

// The fuel-economy figures ignore the seed; their data is the
// embedded table.

func figAlpha(seed int64) *plotly.Figure {
	p := plotly.New(dataset.FuelEconomy())
	p.Add(
		plotly.Title{Text: "City vs. highway fuel economy"},
		plotly.LayerMarkers{X: "cty", Y: "hwy", Name: "alpha 1"},
		plotly.LayerMarkers{X: "cty", Y: "hwy", Opacity: 0.2, Name: "alpha 0.2"},
	)
	return p.Figure()
}

func figColorNumeric(seed int64) *plotly.Figure {
	p := plotly.New(dataset.FuelEconomy())
	p.Add(
		plotly.Title{Text: "Highway economy, colored by cylinders"},
		plotly.LayerMarkers{X: "displ", Y: "hwy", Color: "cyl"},
	)
	return p.Figure()
}

func figColorDiscrete(seed int64) *plotly.Figure {
	p := plotly.New(dataset.FuelEconomy())
	p.Add(
		plotly.Title{Text: "Highway economy by vehicle class"},
		plotly.LayerMarkers{X: "displ", Y: "hwy", Color: "class"},
	)
	return p.Figure()
}

func figColorBrewer(seed int64) *plotly.Figure {
	p := plotly.New(dataset.FuelEconomy())
	p.SetColors("Set1")
	p.Add(
		plotly.Title{Text: "Vehicle classes on the Set1 palette"},
		plotly.LayerMarkers{X: "displ", Y: "hwy", Color: "class"},
	)
	return p.Figure()
}

func figColorRamp(seed int64) *plotly.Figure {
	p := plotly.New(dataset.FuelEconomy())
	// Three cylinder levels from a two-color ramp: the middle level
	// gets the interpolated color.
	p.Stat(plotly.Factor("cyl"))
	p.SetColors([]color.RGBA{
		palettes.MustParseHex("#132b43"),
		palettes.MustParseHex("#56b1f7"),
	})
	p.Add(
		plotly.Title{Text: "Cylinder count on a custom ramp"},
		plotly.LayerMarkers{X: "displ", Y: "hwy", Color: "cyl"},
	)
	return p.Figure()
}

func figStrokeSpan(seed int64) *plotly.Figure {
	p := plotly.New(dataset.FuelEconomy())
	p.Add(
		plotly.Title{Text: "Marker outlines"},
		plotly.LayerMarkers{
			X: "displ", Y: "hwy",
			MarkerColor: palettes.MustParseHex("#aec7e8"),
			Stroke:      palettes.MustParseHex("#1f77b4"),
			StrokeWidth: 2,
			SizePx:      12,
		},
	)
	return p.Figure()
}

func figSymbols(seed int64) *plotly.Figure {
	p := plotly.New(dataset.FuelEconomy())
	p.Stat(plotly.Factor("cyl"))
	p.SetSymbols("triangle-up", "diamond", "circle")
	p.Add(
		plotly.Title{Text: "Cylinder count as marker symbol"},
		plotly.LayerMarkers{
			X: "displ", Y: "hwy",
			Symbol:      "cyl",
			MarkerColor: palettes.Default[0],
			SizePx:      10,
		},
	)
	return p.Figure()
}

func figSizes(seed int64) *plotly.Figure {
	p := plotly.New(dataset.FuelEconomy())
	p.SizeRange(5, 60)
	p.Add(
		plotly.Title{Text: "City economy as marker area"},
		plotly.LayerMarkers{
			X: "displ", Y: "hwy",
			Size:        "cty",
			MarkerColor: palettes.Default[0],
			Opacity:     0.6,
			Name:        "cty",
		},
	)
	return p.Figure()
}

func figDotplot(seed int64) *plotly.Figure {
	p := plotly.New(modelEconomy())
	p.Add(
		plotly.Title{Text: "Mean fuel economy by model"},
		plotly.AxisLabel("x", "miles per gallon"),
		plotly.AxisLabel("y", ""),
		plotly.LayerMarkers{X: "cty", Y: "model", Name: "city", MarkerColor: palettes.Default[0]},
		plotly.LayerMarkers{X: "hwy", Y: "model", Name: "highway", MarkerColor: palettes.Default[1]},
	)
	fig := p.Figure()
	fig.Layout.Height = 900
	fig.Layout.Margin = &plotly.Margin{L: 140}
	return fig
}

func figErrorBars(seed int64) *plotly.Figure {
	p := plotly.New(classEconomy())
	p.Add(
		plotly.Title{Text: "Highway economy by class, ±2 standard errors"},
		plotly.AxisLabel("y", "highway mpg"),
		plotly.LayerErrorBars{
			X: "class", Y: "hwy", ErrorY: "err",
			MarkerColor: palettes.Default[0],
		},
	)
	return p.Figure()
}

func figDensity(seed int64) *plotly.Figure {
	fuel := dataset.FuelEconomy()
	// Density emits its sample grid in the X column's own type, so
	// an int column would collapse the grid to a handful of integer
	// points. Rebuild hwy as float64 first.
	var hwy []float64
	slice.Convert(&hwy, fuel.MustColumn("hwy"))
	fuel = table.NewBuilder(fuel).Add("hwy", hwy).Done()
	p := plotly.New(fuel)
	p.Add(
		plotly.Title{Text: "Highway economy by drive train"},
		plotly.AxisLabel("x", "highway mpg"),
		plotly.AxisLabel("y", "density"),
	)
	drives := []struct{ level, name string }{
		{"4", "4-wheel"}, {"f", "front"}, {"r", "rear"},
	}
	for i, d := range drives {
		p.Save()
		p.SetData(table.FilterEq(fuel, "drv", d.level))
		p.Stat(ggstat.Density{X: "hwy"})
		p.Add(plotly.LayerLines{
			X: "hwy", Y: "probability density",
			LineColor: palettes.Default[i],
			Name:      d.name,
		})
		p.Restore()
	}
	return p.Figure()
}

func figSegments(seed int64) *plotly.Figure {
	p := plotly.New(modelEconomy())
	p.Add(
		plotly.Title{Text: "City to highway economy by model"},
		plotly.AxisLabel("x", "miles per gallon"),
		plotly.AxisLabel("y", ""),
		plotly.LayerSegments{
			X: "cty", XEnd: "hwy", Y: "model", YEnd: "model",
			LineColor:  palettes.MustParseHex("#bbbbbb"),
			HideLegend: true,
		},
		plotly.LayerMarkers{X: "cty", Y: "model", Name: "city", MarkerColor: palettes.Default[0]},
		plotly.LayerMarkers{X: "hwy", Y: "model", Name: "highway", MarkerColor: palettes.Default[1]},
	)
	fig := p.Figure()
	fig.Layout.Height = 900
	fig.Layout.Margin = &plotly.Margin{L: 140}
	return fig
}

// modelEconomy returns mean city and highway economy per model,
// sorted so the least economical model comes first. With a category
// y axis that sort order becomes the axis order.
func modelEconomy() *table.Table {
	fuel := dataset.FuelEconomy()
	models := fuel.MustColumn("model").([]string)
	var cty, hwy []float64
	slice.Convert(&cty, fuel.MustColumn("cty"))
	slice.Convert(&hwy, fuel.MustColumn("hwy"))

	byModel := make(map[string][]int)
	var order []string
	for i, m := range models {
		if _, ok := byModel[m]; !ok {
			order = append(order, m)
		}
		byModel[m] = append(byModel[m], i)
	}

	meanC := make([]float64, len(order))
	meanH := make([]float64, len(order))
	for j, m := range order {
		var cs, hs []float64
		for _, i := range byModel[m] {
			cs = append(cs, cty[i])
			hs = append(hs, hwy[i])
		}
		meanC[j] = stats.Mean(cs)
		meanH[j] = stats.Mean(hs)
	}

	tab := new(table.Builder).Add("model", order).
		Add("cty", meanC).Add("hwy", meanH).Done()
	return table.Flatten(table.SortBy(tab, "cty"))
}

// classEconomy returns mean highway economy per vehicle class with a
// ±2 standard error column.
func classEconomy() *table.Table {
	fuel := dataset.FuelEconomy()
	classes := fuel.MustColumn("class").([]string)
	var hwy []float64
	slice.Convert(&hwy, fuel.MustColumn("hwy"))

	byClass := make(map[string][]float64)
	for i, c := range classes {
		byClass[c] = append(byClass[c], hwy[i])
	}
	var names []string
	for c := range byClass {
		names = append(names, c)
	}
	sort.Strings(names)

	means := make([]float64, len(names))
	errs := make([]float64, len(names))
	for j, c := range names {
		xs := byClass[c]
		means[j] = stats.Mean(xs)
		errs[j] = 2 * stderr(xs, means[j])
	}
	return new(table.Builder).Add("class", names).
		Add("hwy", means).Add("err", errs).Done()
}

// stderr returns the standard error of the mean.
func stderr(xs []float64, mean float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	var ss float64
	for _, x := range xs {
		d := x - mean
		ss += d * d
	}
	sd := math.Sqrt(ss / float64(len(xs)-1))
	return sd / math.Sqrt(float64(len(xs)))
}
