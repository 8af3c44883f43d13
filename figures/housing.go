// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/aclements/go-gg/table"

	"github.com/jbixon13/plotly-book/dataset"
	"github.com/jbixon13/plotly-book/palettes"
	"github.com/jbixon13/plotly-book/plotly"
)

func figLines(seed int64) *plotly.Figure {
	h := dataset.Housing(seed)
	p := plotly.New(filterCities(h, topCities(h, 5)))
	p.Add(
		plotly.Title{Text: "Median price in the five busiest markets"},
		plotly.AxisLabel("y", "median price ($)"),
		plotly.LayerLines{X: "date", Y: "median", Color: "city"},
	)
	return p.Figure()
}

func figLinetypes(seed int64) *plotly.Figure {
	s := dataset.Savings(seed)
	long := table.Unpivot(s, "series", "value", "psavert", "uempmed")
	p := plotly.New(long)
	p.SetDashes("solid", "dot")
	p.Add(
		plotly.Title{Text: "Saving rate and unemployment duration"},
		plotly.LayerLines{X: "date", Y: "value", Color: "series", LineType: "series"},
	)
	return p.Figure()
}

func figAllCities(seed int64) *plotly.Figure {
	h := dataset.Housing(seed)
	const hero = "Austin"

	p := plotly.New(table.GroupBy(h, "city"))
	p.Add(
		plotly.Title{Text: "Median house price, 20 Texas cities"},
		plotly.AxisLabel("y", "median price ($)"),
		plotly.LayerLines{
			X: "date", Y: "median",
			LineColor:  color.RGBA{0xcc, 0xcc, 0xcc, 0xff},
			HideLegend: true,
		},
	)

	p.Save()
	p.SetData(table.FilterEq(h, "city", hero))
	p.Add(plotly.LayerLines{
		X: "date", Y: "median",
		LineColor: palettes.Default[0],
		Width:     2.5,
	})
	p.Restore()

	p.Save()
	p.SetData(cityEndpoint(h, hero))
	p.Add(plotly.LayerText{X: "date", Y: "median", Label: "city", Position: "middle right"})
	p.Restore()

	p.HideLegend()
	return p.Figure()
}

func figPolygons(seed int64) *plotly.Figure {
	s := dataset.HousingSummary(seed)
	dates := s.MustColumn("date").([]string)
	lo := s.MustColumn("lo").([]float64)
	hi := s.MustColumn("hi").([]float64)

	// Close the band by hand: out along the highs, back along the
	// lows. LayerRibbons does this walk itself; here it is explicit.
	n := len(dates)
	xs := make([]string, 0, 2*n)
	ys := make([]float64, 0, 2*n)
	xs = append(xs, dates...)
	ys = append(ys, hi...)
	for i := n - 1; i >= 0; i-- {
		xs = append(xs, dates[i])
		ys = append(ys, lo[i])
	}
	tab := new(table.Builder).Add("month", xs).Add("price", ys).Done()

	p := plotly.New(tab)
	p.Add(
		plotly.Title{Text: "Price range as an explicit polygon"},
		plotly.AxisLabel("y", "median price ($)"),
		plotly.LayerPolygons{
			X: "month", Y: "price",
			FillColor: color.NRGBA{0x1f, 0x77, 0xb4, 0x33},
			Stroke:    palettes.Default[0],
			Name:      "city range",
		},
	)
	return p.Figure()
}

func figRibbons(seed int64) *plotly.Figure {
	p := plotly.New(dataset.HousingSummary(seed))
	p.Add(
		plotly.Title{Text: "Range of city median prices"},
		plotly.AxisLabel("y", "median price ($)"),
		plotly.LayerRibbons{
			X: "date", YMin: "lo", YMax: "hi",
			FillColor: color.NRGBA{0x1f, 0x77, 0xb4, 0x33},
			Name:      "city range",
		},
		plotly.LayerLines{
			X: "date", Y: "mid",
			LineColor: palettes.Default[0],
			Name:      "mean of cities",
		},
	)
	return p.Figure()
}

// topCities returns the n cities with the highest total sales, by
// descending volume.
func topCities(h *table.Table, n int) []string {
	cities := h.MustColumn("city").([]string)
	sales := h.MustColumn("sales").([]float64)
	totals := make(map[string]float64)
	for i, c := range cities {
		totals[c] += sales[i]
	}

	names := make([]string, 0, len(totals))
	for c := range totals {
		names = append(names, c)
	}
	sort.Slice(names, func(i, j int) bool {
		if totals[names[i]] != totals[names[j]] {
			return totals[names[i]] > totals[names[j]]
		}
		return names[i] < names[j]
	})
	if len(names) > n {
		names = names[:n]
	}
	return names
}

// filterCities returns the rows of h whose city is in keep.
func filterCities(h *table.Table, keep []string) *table.Table {
	set := make(map[string]bool)
	for _, c := range keep {
		set[c] = true
	}

	cities := h.MustColumn("city").([]string)
	dates := h.MustColumn("date").([]string)
	sales := h.MustColumn("sales").([]float64)
	medians := h.MustColumn("median").([]float64)

	var city, date []string
	var sale, median []float64
	for i := range cities {
		if !set[cities[i]] {
			continue
		}
		city = append(city, cities[i])
		date = append(date, dates[i])
		sale = append(sale, sales[i])
		median = append(median, medians[i])
	}
	return new(table.Builder).Add("city", city).Add("date", date).
		Add("sales", sale).Add("median", median).Done()
}

// cityEndpoint returns a one-row table holding city's last
// observation, for anchoring an inline label.
func cityEndpoint(h *table.Table, city string) *table.Table {
	cities := h.MustColumn("city").([]string)
	dates := h.MustColumn("date").([]string)
	medians := h.MustColumn("median").([]float64)

	last := -1
	for i, c := range cities {
		if c == city {
			last = i
		}
	}
	if last < 0 {
		panic(fmt.Sprintf("no city %q in housing data", city))
	}
	return new(table.Builder).Add("city", []string{city}).
		Add("date", []string{dates[last]}).
		Add("median", []float64{medians[last]}).Done()
}
