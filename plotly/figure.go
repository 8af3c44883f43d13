// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plotly builds plotly.js figures from tabular data.
//
// A plotly.js figure is a JSON document with two parts: "data", an
// ordered list of traces, where each trace describes one visual
// series (its coordinate arrays plus styling attributes), and
// "layout", which describes everything outside the traces (title,
// axes, reference shapes, annotations). This package does no drawing
// of its own: it emits the JSON document, and rendering, hovering,
// zooming, and click events are all plotly.js's job.
//
// The declarative types in this file mirror the subset of the
// plotly.js figure schema that the rest of the package targets. They
// can be populated directly, but the usual entry point is Plot, which
// derives traces from a table.Grouping by mapping columns to visual
// properties. See the Plot documentation.
package plotly

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"strconv"
)

// Figure is a complete plotly.js figure: an ordered set of traces
// plus an optional layout and config.
type Figure struct {
	Data   []*Trace `json:"data"`
	Layout *Layout  `json:"layout,omitempty"`
	Config *Config  `json:"config,omitempty"`

	// OnClick is a JavaScript statement list run when the user
	// clicks a point on the rendered figure. It is not part of
	// the figure JSON; WriteHTML binds it to the plotly_click
	// event. Within the statements, "data" is the plotly.js event
	// object, so data.points[0] is the clicked point and
	// data.points[0].customdata is that point's customdata value,
	// if the trace has any.
	OnClick string `json:"-"`
}

// AddTraces appends traces to f's data in order and returns f.
func (f *Figure) AddTraces(traces ...*Trace) *Figure {
	f.Data = append(f.Data, traces...)
	return f
}

// WriteJSON writes f as indented JSON to w.
func (f *Figure) WriteJSON(w io.Writer) error {
	b, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

// Trace is a single plotly.js trace. All of the traces built by this
// package are "scatter" traces; the Mode field selects points,
// lines, text, or fill-only rendering.
type Trace struct {
	Type string `json:"type"`
	Mode string `json:"mode,omitempty"`
	Name string `json:"name,omitempty"`

	// X and Y hold the coordinate arrays. Each is a Floats, a
	// []string (for category or date axes), or nil.
	X interface{} `json:"x,omitempty"`
	Y interface{} `json:"y,omitempty"`

	// Text holds per-point hover or label text.
	Text []string `json:"text,omitempty"`
	// TextPosition places label text relative to its point for
	// mode "text", e.g. "top center".
	TextPosition string `json:"textposition,omitempty"`

	// CustomData holds per-point values that plotly.js carries
	// through to event payloads but does not display. Click
	// handlers read it as data.points[i].customdata.
	CustomData []string `json:"customdata,omitempty"`

	// HoverInfo restricts what the hover tooltip shows, e.g.
	// "text" or "x+y". Empty means the plotly.js default.
	HoverInfo string `json:"hoverinfo,omitempty"`

	// Fill enables area fill: "toself" closes and fills this
	// trace's own path, "tonexty" fills to the previous trace.
	Fill      string `json:"fill,omitempty"`
	FillColor string `json:"fillcolor,omitempty"`

	Opacity    float64 `json:"opacity,omitempty"`
	ShowLegend *bool   `json:"showlegend,omitempty"`
	// LegendGroup ties traces together so that one legend click
	// toggles all of them.
	LegendGroup string `json:"legendgroup,omitempty"`

	Marker *Marker   `json:"marker,omitempty"`
	Line   *Line     `json:"line,omitempty"`
	ErrorY *ErrorBar `json:"error_y,omitempty"`
	ErrorX *ErrorBar `json:"error_x,omitempty"`
}

// Marker styles the points of a scatter trace.
type Marker struct {
	// Color is a single CSS color string, or a Floats of data
	// values to be mapped through Colorscale.
	Color interface{} `json:"color,omitempty"`

	// Colorscale, CMin, and CMax define the mapping from the
	// values in Color to colors. Colorscale entries are
	// [position, CSS color] pairs with positions in [0, 1].
	Colorscale [][2]interface{} `json:"colorscale,omitempty"`
	CMin       *float64         `json:"cmin,omitempty"`
	CMax       *float64         `json:"cmax,omitempty"`
	ShowScale  bool             `json:"showscale,omitempty"`
	ColorBar   *ColorBar        `json:"colorbar,omitempty"`

	Symbol string `json:"symbol,omitempty"`

	// Size is a single diameter in pixels, or a Floats of
	// per-point sizes.
	Size     interface{} `json:"size,omitempty"`
	SizeMode string      `json:"sizemode,omitempty"`
	SizeRef  float64     `json:"sizeref,omitempty"`
	SizeMin  float64     `json:"sizemin,omitempty"`

	Opacity float64 `json:"opacity,omitempty"`

	// Line outlines each marker. Only its Color and Width apply.
	Line *Line `json:"line,omitempty"`
}

// Line styles the connecting line of a scatter trace, or the outline
// of a marker or shape.
type Line struct {
	Color string  `json:"color,omitempty"`
	Width float64 `json:"width,omitempty"`
	// Dash is a named dash style: "solid", "dash", "dot",
	// "dashdot", "longdash", or "longdashdot".
	Dash  string `json:"dash,omitempty"`
	Shape string `json:"shape,omitempty"`
}

// ErrorBar describes symmetric or asymmetric error bars on one axis.
type ErrorBar struct {
	// Type is "data" when Array supplies per-point magnitudes,
	// "constant" or "percent" when Value applies to every point.
	Type       string  `json:"type,omitempty"`
	Array      Floats  `json:"array,omitempty"`
	ArrayMinus Floats  `json:"arrayminus,omitempty"`
	Value      float64 `json:"value,omitempty"`
	Symmetric  *bool   `json:"symmetric,omitempty"`
	Visible    *bool   `json:"visible,omitempty"`
	Color      string  `json:"color,omitempty"`
	Thickness  float64 `json:"thickness,omitempty"`
	Width      float64 `json:"width,omitempty"`
}

// ColorBar configures the gradient legend drawn for traces with a
// continuous color mapping.
type ColorBar struct {
	Title     *Title  `json:"title,omitempty"`
	Thickness float64 `json:"thickness,omitempty"`
}

// Layout describes figure-level presentation.
type Layout struct {
	Title       *Title       `json:"title,omitempty"`
	XAxis       *Axis        `json:"xaxis,omitempty"`
	YAxis       *Axis        `json:"yaxis,omitempty"`
	ShowLegend  *bool        `json:"showlegend,omitempty"`
	Legend      *Legend      `json:"legend,omitempty"`
	HoverMode   string       `json:"hovermode,omitempty"`
	Shapes      []Shape      `json:"shapes,omitempty"`
	Annotations []Annotation `json:"annotations,omitempty"`
	Margin      *Margin      `json:"margin,omitempty"`
	Width       int          `json:"width,omitempty"`
	Height      int          `json:"height,omitempty"`
}

// Title is a figure, axis, or colorbar title.
type Title struct {
	Text string `json:"text,omitempty"`
}

// Legend positions and orients the legend box.
type Legend struct {
	// Orientation is "v" (default) or "h".
	Orientation string   `json:"orientation,omitempty"`
	X           *float64 `json:"x,omitempty"`
	Y           *float64 `json:"y,omitempty"`
}

// Margin sets the plot margins in pixels.
type Margin struct {
	L   int `json:"l,omitempty"`
	R   int `json:"r,omitempty"`
	T   int `json:"t,omitempty"`
	B   int `json:"b,omitempty"`
	Pad int `json:"pad,omitempty"`
}

// Axis configures one cartesian axis.
type Axis struct {
	Title *Title `json:"title,omitempty"`
	// Type forces the axis type: "linear", "log", "date", or
	// "category". Empty lets plotly.js infer it from the data.
	Type       string    `json:"type,omitempty"`
	Range      []float64 `json:"range,omitempty"`
	ZeroLine   *bool     `json:"zeroline,omitempty"`
	ShowGrid   *bool     `json:"showgrid,omitempty"`
	TickFormat string    `json:"tickformat,omitempty"`
}

// Shape is a reference mark drawn behind or above the traces, such
// as a horizontal threshold line. Coordinates are data values
// (float64 or string) unless the matching ref field is "paper", in
// which case they are fractions of the plot area.
type Shape struct {
	Type string `json:"type"`
	XRef string `json:"xref,omitempty"`
	YRef string `json:"yref,omitempty"`

	X0 interface{} `json:"x0"`
	X1 interface{} `json:"x1"`
	Y0 interface{} `json:"y0"`
	Y1 interface{} `json:"y1"`

	Line      *Line   `json:"line,omitempty"`
	FillColor string  `json:"fillcolor,omitempty"`
	Opacity   float64 `json:"opacity,omitempty"`
	Layer     string  `json:"layer,omitempty"`
}

// Annotation is a text callout anchored to a data point or to the
// plot area.
type Annotation struct {
	X    interface{} `json:"x,omitempty"`
	Y    interface{} `json:"y,omitempty"`
	XRef string      `json:"xref,omitempty"`
	YRef string      `json:"yref,omitempty"`

	Text      string `json:"text,omitempty"`
	ShowArrow *bool  `json:"showarrow,omitempty"`
	ArrowHead int    `json:"arrowhead,omitempty"`

	// AX and AY offset the text from the anchor point, in pixels.
	AX float64 `json:"ax,omitempty"`
	AY float64 `json:"ay,omitempty"`
}

// Config holds plotly.js render options. Unlike Layout, these are
// not part of the figure proper, but plotly.js accepts them in the
// same document.
type Config struct {
	Responsive     bool  `json:"responsive,omitempty"`
	DisplayModeBar *bool `json:"displayModeBar,omitempty"`
}

// Bool returns a pointer to b, for optional schema fields that
// distinguish false from unset.
func Bool(b bool) *bool {
	return &b
}

// Float returns a pointer to v, for optional schema fields that
// distinguish zero from unset.
func Float(v float64) *float64 {
	return &v
}

// Floats is a numeric coordinate or attribute array. It marshals
// NaN and infinities as JSON null, which plotly.js treats as a
// missing point and, for line traces, a gap in the line.
type Floats []float64

// MarshalJSON implements json.Marshaler.
func (f Floats) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, v := range f {
		if i > 0 {
			buf.WriteByte(',')
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			buf.WriteString("null")
		} else {
			buf.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}
