// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotly

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"strings"

	"github.com/aclements/go-gg/table"

	"github.com/jbixon13/plotly-book/palettes"
)

// Warning is a logger for reporting conditions that don't prevent
// the production of a figure, but may lead to unexpected results.
var Warning = log.New(os.Stderr, "[plotly] ", log.Lshortfile)

// Plot builds a Figure from tabular data.
//
// A Plot starts with a table.Grouping and zero layers. Layers map
// columns of the data to visual properties ("aesthetics"): X, Y,
// color, marker symbol, line style, marker size. Adding a layer does
// not fix the mapping immediately; when Figure is called, each
// discrete aesthetic gets a stable assignment of palette entries to
// the distinct values observed across all layers, and each
// continuous aesthetic gets a range covering all layers. This means
// two layers that color by the same column always agree on which
// level gets which color, and the assignment can be overridden with
// SetColors and friends at any point before Figure.
//
// A layer with a discrete binding becomes one trace per value level,
// in level order. A layer with no discrete bindings becomes one
// trace per group of the data, in group order.
type Plot struct {
	env   *plotEnv
	marks []plotMark

	colorList  []color.RGBA
	colorRamp  palettes.Scale
	symbolList []string
	dashList   []string

	sizeMin, sizeMax float64

	title          string
	axisLabels     map[string]string
	autoAxisLabels map[string][]string
	xAxis, yAxis   *Axis

	shapes      []Shape
	annotations []Annotation
	onClick     string
	showLegend  *bool

	constNonce int
}

// New returns a new Plot backed by data. It has no layers and
// default scales.
func New(data table.Grouping) *Plot {
	return &Plot{
		env:            &plotEnv{data: data},
		axisLabels:     make(map[string]string),
		autoAxisLabels: make(map[string][]string),
	}
}

type plotEnv struct {
	parent *plotEnv
	data   table.Grouping
}

// SetData sets p's current data table. The caller must not modify
// data in this table after this point.
func (p *Plot) SetData(data table.Grouping) *Plot {
	p.env.data = data
	return p
}

// Data returns p's current data table.
func (p *Plot) Data() table.Grouping {
	return p.env.data
}

// Save saves the current data table of p to a stack.
func (p *Plot) Save() *Plot {
	p.env = &plotEnv{parent: p.env, data: p.env.data}
	return p
}

// Restore restores the data table of p from the save stack.
func (p *Plot) Restore() *Plot {
	if p.env.parent == nil {
		panic("unbalanced Save/Restore")
	}
	p.env = p.env.parent
	return p
}

// Const creates a new constant column bound to val in all groups and
// returns the generated column name. This is a convenient way to
// pass constant values to layers as columns.
func (p *Plot) Const(val interface{}) string {
	tab := p.Data()

retry:
	col := fmt.Sprintf("[const-%d]", p.constNonce)
	p.constNonce++
	for _, col2 := range tab.Columns() {
		if col == col2 {
			goto retry
		}
	}

	p.SetData(table.MapTables(tab, func(_ table.GroupID, t *table.Table) *table.Table {
		return table.NewBuilder(t).AddConst(col, val).Done()
	}))

	return col
}

// A Plotter is an operation that can modify a Plot.
type Plotter interface {
	Apply(*Plot)
}

// Add applies each of plotters to Plot in order.
func (p *Plot) Add(plotters ...Plotter) *Plot {
	for _, plotter := range plotters {
		plotter.Apply(p)
	}
	return p
}

// A Stat transforms a table.Grouping.
type Stat interface {
	F(table.Grouping) table.Grouping
}

// Stat applies each of stats in order to p's data.
func (p *Plot) Stat(stats ...Stat) *Plot {
	for _, stat := range stats {
		p.SetData(stat.F(p.Data()))
	}
	return p
}

// GroupBy groups p's data table by the given columns. Layers added
// after this emit one trace per group, unless a discrete aesthetic
// binding splits the data further.
func (p *Plot) GroupBy(cols ...string) *Plot {
	return p.SetData(table.GroupBy(p.Data(), cols...))
}

// SortBy sorts each group of p's data table by the given columns.
func (p *Plot) SortBy(cols ...string) *Plot {
	return p.SetData(table.SortBy(p.Data(), cols...))
}

// SetColors overrides automatic color assignment. The argument may
// be a palette name known to package palettes (qualitative or
// continuous), a []color.RGBA, or a palettes.Scale.
//
// For discrete color mappings, a color list is interpolated to
// exactly as many colors as there are levels, and a continuous
// palette is sampled evenly. For continuous mappings, a color list
// becomes an evenly spaced gradient.
func (p *Plot) SetColors(colors interface{}) *Plot {
	p.colorList, p.colorRamp = nil, nil
	switch c := colors.(type) {
	case string:
		switch {
		case palettes.IsQualitative(c):
			p.colorList = palettes.Qualitative(c)
		case palettes.IsContinuous(c):
			p.colorRamp = palettes.Continuous(c)
		default:
			panic(fmt.Sprintf("unknown palette %q; qualitative palettes are %v and continuous palettes are %v",
				c, palettes.QualitativeNames(), palettes.ContinuousNames()))
		}
	case []color.RGBA:
		if len(c) == 0 {
			panic("SetColors: empty color list")
		}
		p.colorList = c
	case palettes.Scale:
		p.colorRamp = c
	default:
		panic(fmt.Sprintf("SetColors: cannot use %T as a palette; want string, []color.RGBA, or palettes.Scale", colors))
	}
	return p
}

// SetSymbols overrides the marker symbol cycle for discrete symbol
// mappings. Symbols are plotly.js symbol names such as "circle" or
// "triangle-up".
func (p *Plot) SetSymbols(symbols ...string) *Plot {
	if len(symbols) == 0 {
		panic("SetSymbols: no symbols given")
	}
	p.symbolList = symbols
	return p
}

// SetDashes overrides the line dash cycle for discrete line style
// mappings. Dashes are plotly.js dash names such as "solid" or
// "dot".
func (p *Plot) SetDashes(dashes ...string) *Plot {
	if len(dashes) == 0 {
		panic("SetDashes: no dashes given")
	}
	p.dashList = dashes
	return p
}

// SizeRange sets the range of marker sizes that continuous size
// mappings map into. The default is 10 to 100. Sizes are plotly.js
// "area" sizes, so perceived marker area is proportional to the
// data value.
func (p *Plot) SizeRange(min, max float64) *Plot {
	if min <= 0 || max < min {
		panic(fmt.Sprintf("SizeRange: bad range [%g, %g]", min, max))
	}
	p.sizeMin, p.sizeMax = min, max
	return p
}

// OnClick attaches JavaScript to run when the user clicks a point on
// the rendered figure. See Figure.OnClick for the statement
// environment.
func (p *Plot) OnClick(js string) *Plot {
	p.onClick = js
	return p
}

// HideLegend suppresses the figure legend.
func (p *Plot) HideLegend() *Plot {
	v := false
	p.showLegend = &v
	return p
}

// XAxis returns the figure's x axis configuration, creating it if
// necessary. Mutations apply to figures built afterwards.
func (p *Plot) XAxis() *Axis {
	if p.xAxis == nil {
		p.xAxis = new(Axis)
	}
	return p.xAxis
}

// YAxis returns the figure's y axis configuration, creating it if
// necessary.
func (p *Plot) YAxis() *Axis {
	if p.yAxis == nil {
		p.yAxis = new(Axis)
	}
	return p.yAxis
}

// Figure builds the figure: it trains the scales over every layer,
// then emits each layer's traces in the order the layers were
// added. Figure can be called more than once; later data or scale
// changes produce a fresh figure.
func (p *Plot) Figure() *Figure {
	s := new(scaleSet)
	for _, m := range p.marks {
		m.train(s)
	}

	if s.color.bound && !s.color.continuous && p.colorList == nil && p.colorRamp == nil {
		if n := len(s.color.levels.levels()); n > len(palettes.Default) {
			Warning.Printf("%d color levels but only %d palette colors; colors will repeat", n, len(palettes.Default))
		}
	}

	fig := &Figure{
		Config:  &Config{Responsive: true},
		OnClick: p.onClick,
	}
	for _, m := range p.marks {
		fig.Data = append(fig.Data, m.traces(p, s)...)
	}
	fig.Layout = p.layout()
	return fig
}

func (p *Plot) layout() *Layout {
	l := &Layout{
		ShowLegend:  p.showLegend,
		Shapes:      p.shapes,
		Annotations: p.annotations,
	}
	if p.title != "" {
		l.Title = &Title{Text: p.title}
	}
	l.XAxis = p.finishAxis(p.xAxis, "x")
	l.YAxis = p.finishAxis(p.yAxis, "y")
	return l
}

// finishAxis resolves the axis title: an explicit AxisLabel wins,
// otherwise the axis is labeled with the column names bound to it.
func (p *Plot) finishAxis(a *Axis, aes string) *Axis {
	label, explicit := p.axisLabels[aes]
	if !explicit {
		label = strings.Join(p.autoAxisLabels[aes], ", ")
	}
	if label == "" {
		return a
	}
	if a == nil {
		a = new(Axis)
	}
	if a.Title == nil {
		a.Title = &Title{Text: label}
	}
	return a
}

// autoLabel records that column col was bound to axis aes, for
// automatic axis labeling.
func (p *Plot) autoLabel(aes, col string) {
	for _, c := range p.autoAxisLabels[aes] {
		if c == col {
			return
		}
	}
	p.autoAxisLabels[aes] = append(p.autoAxisLabels[aes], col)
}

// WriteJSON builds the figure and writes it as JSON to w.
func (p *Plot) WriteJSON(w io.Writer) error {
	return p.Figure().WriteJSON(w)
}

// AxisLabel returns a Plotter that sets the label of an axis on a
// Plot. By default, Plot constructs automatic axis labels from
// column names, but AxisLabel lets callers override these. An empty
// label suppresses the automatic label. The axis is "x" or "y".
func AxisLabel(axis, label string) Plotter {
	return axisLabel{axis, label}
}

type axisLabel struct {
	axis, label string
}

func (a axisLabel) Apply(p *Plot) {
	p.axisLabels[a.axis] = a.label
}

// Apply makes Title a Plotter, so p.Add(Title{Text: "..."}) sets
// the figure title.
func (t Title) Apply(p *Plot) {
	p.title = t.Text
}

// HLine is a Plotter that draws a horizontal reference line across
// the full width of the plot at a y data value.
type HLine struct {
	Y float64

	// Color is the line color. Nil means dark gray.
	Color color.Color
	// Width is the line width in pixels. Zero means 1.
	Width float64
	// Dash is a plotly.js dash style name. Empty means solid.
	Dash string
}

func (h HLine) Apply(p *Plot) {
	p.shapes = append(p.shapes, refLine(h.Color, h.Width, h.Dash, "x", h.Y))
}

// VLine is a Plotter that draws a vertical reference line across the
// full height of the plot at an x data value.
type VLine struct {
	X     float64
	Color color.Color
	Width float64
	Dash  string
}

func (v VLine) Apply(p *Plot) {
	p.shapes = append(p.shapes, refLine(v.Color, v.Width, v.Dash, "y", v.X))
}

// refLine builds a full-width or full-height line shape. crossAxis
// is the axis the line crosses: "x" for a horizontal line at value
// v on the y axis, "y" for a vertical line at value v on the x
// axis.
func refLine(c color.Color, width float64, dash, crossAxis string, v float64) Shape {
	css := "#444"
	if c != nil {
		css = palettes.CSS(c)
	}
	if width == 0 {
		width = 1
	}
	sh := Shape{
		Type:  "line",
		Line:  &Line{Color: css, Width: width, Dash: dash},
		Layer: "below",
	}
	if crossAxis == "x" {
		sh.XRef = "paper"
		sh.X0, sh.X1 = 0.0, 1.0
		sh.Y0, sh.Y1 = v, v
	} else {
		sh.YRef = "paper"
		sh.Y0, sh.Y1 = 0.0, 1.0
		sh.X0, sh.X1 = v, v
	}
	return sh
}

// Annotate returns a Plotter that adds a text callout with an arrow
// at the given data coordinates.
func Annotate(x, y interface{}, text string) Plotter {
	return annotate{Annotation{
		X: x, Y: y,
		Text:      text,
		ShowArrow: Bool(true),
		ArrowHead: 2,
		AY:        -30,
	}}
}

type annotate struct {
	a Annotation
}

func (a annotate) Apply(p *Plot) {
	p.annotations = append(p.annotations, a.a)
}
