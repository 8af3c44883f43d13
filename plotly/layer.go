// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotly

import (
	"fmt"
	"image/color"
	"reflect"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"

	"github.com/jbixon13/plotly-book/palettes"
)

// A plotMark is a layer bound to the data that was current when the
// layer was added.
type plotMark interface {
	train(s *scaleSet)
	traces(p *Plot, s *scaleSet) []*Trace
}

func defaultCols(p *Plot, cols ...*string) {
	dcols := p.Data().Columns()
	for i, colp := range cols {
		if *colp == "" {
			if i >= len(dcols) {
				panic(fmt.Sprintf("cannot get default column %d; table has only %d columns", i, len(dcols)))
			}
			*colp = dcols[i]
		}
	}
}

// checkCols panics if any non-empty name in cols is not a column of
// g.
func checkCols(g table.Grouping, cols ...string) {
	if len(g.Tables()) == 0 {
		return
	}
	have := g.Columns()
loop:
	for _, col := range cols {
		if col == "" {
			continue
		}
		for _, h := range have {
			if h == col {
				continue loop
			}
		}
		panic(fmt.Sprintf("unknown column %q; have %v", col, have))
	}
}

func requireDiscrete(g table.Grouping, col, aes string) {
	if isCardinal(colKind(g, col).Kind()) {
		panic(fmt.Sprintf("%s column %q is numeric; %s requires discrete values (see Factor)", aes, col, aes))
	}
}

func requireContinuous(g table.Grouping, col, aes string) {
	if !isCardinal(colKind(g, col).Kind()) {
		panic(fmt.Sprintf("%s column %q is not numeric; %s requires continuous values", aes, col, aes))
	}
}

// eachColumn calls f with column col of every group in g.
func eachColumn(g table.Grouping, col string, f func(seq slice.T)) {
	for _, gid := range g.Tables() {
		f(g.Table(gid).MustColumn(col))
	}
}

// A subtable is the data behind a single trace.
type subtable struct {
	t    *table.Table
	name string
}

// subtables splits a layer's data into per-trace tables. cols names
// the layer's discrete aesthetic columns and levelSets gives the
// trained levels of each. With discrete bindings the data is
// flattened and split by level combination, in level order, so
// trace order and legend order follow the scales. With no discrete
// bindings, each group of the data becomes one trace, in group
// order. Either way, empty tables are dropped.
func subtables(g table.Grouping, cols []string, levelSets [][]interface{}) []subtable {
	if len(g.Tables()) == 0 {
		return nil
	}
	if len(cols) == 0 {
		var out []subtable
		for _, gid := range g.Tables() {
			if t := g.Table(gid); t.Len() > 0 {
				out = append(out, subtable{t, ""})
			}
		}
		return out
	}

	cur := []subtable{{table.Flatten(g), ""}}
	for i, col := range cols {
		var next []subtable
		for _, st := range cur {
			for _, level := range levelSets[i] {
				ft := table.Flatten(table.FilterEq(st.t, col, level))
				if ft.Len() == 0 {
					continue
				}
				name := levelString(level)
				if st.name != "" {
					name = st.name + " / " + name
				}
				next = append(next, subtable{ft, name})
			}
		}
		cur = next
	}
	return cur
}

// levelOf returns the value of col in t. The subtable split
// guarantees the column is constant within t.
func levelOf(t *table.Table, col string) interface{} {
	return reflect.ValueOf(t.MustColumn(col)).Index(0).Interface()
}

// traceName resolves a trace's legend name: a level name from a
// discrete binding wins over the layer's fixed Name.
func traceName(layerName, levelName string) string {
	if levelName != "" {
		return levelName
	}
	return layerName
}

// levelColorCSS returns the palette color, as CSS, for the color
// level of col in subtable t.
func levelColorCSS(p *Plot, s *scaleSet, t *table.Table, col string) string {
	n := len(s.color.levels.levels())
	i := s.color.levels.indexOf(levelOf(t, col))
	return palettes.CSS(p.levelColor(i, n))
}

// Factor returns a Stat that converts column col to strings in
// place. Numeric columns otherwise map to continuous scales;
// converting them to strings makes layers treat each distinct value
// as a discrete level.
func Factor(col string) Stat {
	return factorStat{col}
}

type factorStat struct {
	col string
}

func (f factorStat) F(g table.Grouping) table.Grouping {
	return table.MapTables(g, func(_ table.GroupID, t *table.Table) *table.Table {
		return table.NewBuilder(t).Add(f.col, stringSlice(t.MustColumn(f.col))).Done()
	})
}

// LayerMarkers scatters one marker per row of the data.
type LayerMarkers struct {
	// X and Y name the coordinate columns. If they are empty,
	// they default to the first and second columns, respectively.
	X, Y string

	// Color names a column that colors the markers. A discrete
	// column yields one trace and one palette color per level. A
	// numeric column colors each marker individually through a
	// continuous colorscale and adds a colorbar to the figure.
	Color string
	// MarkerColor colors every marker the same. It is mutually
	// exclusive with Color.
	MarkerColor color.Color

	// Symbol names a discrete column mapped to marker symbols,
	// one trace and symbol per level.
	Symbol string
	// MarkerSymbol is a fixed plotly.js symbol name, such as
	// "diamond". It is mutually exclusive with Symbol.
	MarkerSymbol string

	// Size names a numeric column mapped to marker sizes. See
	// Plot.SizeRange.
	Size string
	// SizePx is a fixed marker diameter in pixels. It is
	// mutually exclusive with Size.
	SizePx float64

	// Opacity is the marker opacity. Zero means opaque.
	Opacity float64

	// Stroke outlines each marker. StrokeWidth defaults to 1
	// when Stroke is set.
	Stroke      color.Color
	StrokeWidth float64

	// Text names a column of per-marker hover text.
	Text string
	// HoverInfo restricts what the hover tooltip shows, e.g.
	// "text" to show only Text.
	HoverInfo string

	// CustomData names a column whose values ride along with
	// each point into plotly.js event payloads. Click handlers
	// read them as data.points[0].customdata.
	CustomData string

	// Name is the trace name shown in the legend when no
	// discrete binding splits this layer into level traces.
	Name string

	// HideLegend keeps this layer's traces out of the legend.
	HideLegend bool
}

func (l LayerMarkers) Apply(p *Plot) {
	defaultCols(p, &l.X, &l.Y)
	checkCols(p.Data(), l.X, l.Y, l.Color, l.Symbol, l.Size, l.Text, l.CustomData)
	if l.Color != "" && l.MarkerColor != nil {
		panic("LayerMarkers: Color and MarkerColor are mutually exclusive")
	}
	if l.Symbol != "" && l.MarkerSymbol != "" {
		panic("LayerMarkers: Symbol and MarkerSymbol are mutually exclusive")
	}
	if l.Size != "" && l.SizePx != 0 {
		panic("LayerMarkers: Size and SizePx are mutually exclusive")
	}
	p.autoLabel("x", l.X)
	p.autoLabel("y", l.Y)
	p.marks = append(p.marks, &markPoints{l, p.Data()})
}

type markPoints struct {
	l    LayerMarkers
	data table.Grouping
}

func (m *markPoints) train(s *scaleSet) {
	g := m.data
	if len(g.Tables()) == 0 {
		return
	}
	if col := m.l.Color; col != "" {
		cont := isCardinal(colKind(g, col).Kind())
		eachColumn(g, col, func(seq slice.T) { s.color.expand(seq, cont, col) })
	}
	if col := m.l.Symbol; col != "" {
		requireDiscrete(g, col, "Symbol")
		eachColumn(g, col, s.symbol.expand)
	}
	if col := m.l.Size; col != "" {
		requireContinuous(g, col, "Size")
		eachColumn(g, col, s.size.expand)
	}
}

func (m *markPoints) traces(p *Plot, s *scaleSet) []*Trace {
	l := m.l
	var cols []string
	var levelSets [][]interface{}
	if l.Color != "" && !s.color.continuous {
		cols = append(cols, l.Color)
		levelSets = append(levelSets, s.color.levels.levels())
	}
	if l.Symbol != "" && l.Symbol != l.Color {
		cols = append(cols, l.Symbol)
		levelSets = append(levelSets, s.symbol.levels())
	}

	var out []*Trace
	for _, st := range subtables(m.data, cols, levelSets) {
		t := st.t
		tr := &Trace{
			Type:      "scatter",
			Mode:      "markers",
			Name:      traceName(l.Name, st.name),
			X:         axisSlice(t.MustColumn(l.X)),
			Y:         axisSlice(t.MustColumn(l.Y)),
			HoverInfo: l.HoverInfo,
		}
		if l.Text != "" {
			tr.Text = stringSlice(t.MustColumn(l.Text))
		}
		if l.CustomData != "" {
			tr.CustomData = stringSlice(t.MustColumn(l.CustomData))
		}
		if l.HideLegend {
			tr.ShowLegend = Bool(false)
		}
		tr.Marker = m.marker(p, s, t, len(out) == 0)
		out = append(out, tr)
	}
	return out
}

// marker builds the marker styling for the trace backed by t. Only
// the layer's first trace gets the colorbar, so figures with both a
// continuous color and a discrete symbol binding don't stack one
// colorbar per trace.
func (m *markPoints) marker(p *Plot, s *scaleSet, t *table.Table, first bool) *Marker {
	l := m.l
	mk := new(Marker)
	used := false

	switch {
	case l.Color != "" && s.color.continuous:
		mk.Color = floatSlice(t.MustColumn(l.Color))
		mk.Colorscale = p.colorscale()
		mk.CMin = Float(s.color.span.min)
		mk.CMax = Float(s.color.span.max)
		if first {
			mk.ShowScale = true
			mk.ColorBar = &ColorBar{Title: &Title{Text: s.color.title}}
		}
		used = true
	case l.Color != "":
		mk.Color = levelColorCSS(p, s, t, l.Color)
		used = true
	case l.MarkerColor != nil:
		mk.Color = palettes.CSS(l.MarkerColor)
		used = true
	}

	switch {
	case l.Symbol != "":
		mk.Symbol = p.levelSymbol(s.symbol.indexOf(levelOf(t, l.Symbol)))
		used = true
	case l.MarkerSymbol != "":
		mk.Symbol = l.MarkerSymbol
		used = true
	}

	switch {
	case l.Size != "":
		vals := floatSlice(t.MustColumn(l.Size))
		px := make(Floats, len(vals))
		for i, v := range vals {
			px[i] = p.sizePx(s, v)
		}
		mk.Size = px
		mk.SizeMode = "area"
		used = true
	case l.SizePx != 0:
		mk.Size = l.SizePx
		used = true
	}

	if l.Opacity != 0 {
		mk.Opacity = l.Opacity
		used = true
	}
	if l.Stroke != nil || l.StrokeWidth != 0 {
		w := l.StrokeWidth
		if w == 0 {
			w = 1
		}
		ol := &Line{Width: w}
		if l.Stroke != nil {
			ol.Color = palettes.CSS(l.Stroke)
		}
		mk.Line = ol
		used = true
	}

	if !used {
		return nil
	}
	return mk
}

// LayerLines connects the rows of each trace's data with a line, in
// x order.
type LayerLines struct {
	// X and Y name the coordinate columns. If they are empty,
	// they default to the first and second columns, respectively.
	X, Y string

	// Color names a discrete column; each level becomes one
	// trace with its own line color.
	Color string
	// LineColor colors every line the same. It is mutually
	// exclusive with Color.
	LineColor color.Color

	// LineType names a discrete column mapped to dash styles,
	// one trace and dash style per level.
	LineType string
	// LineDash is a fixed dash style name such as "dot". It is
	// mutually exclusive with LineType.
	LineDash string

	// Width is the line width in pixels. Zero means the
	// plotly.js default.
	Width float64

	// Text names a column of per-point hover text.
	Text      string
	HoverInfo string

	Name       string
	HideLegend bool
}

func (l LayerLines) Apply(p *Plot) {
	defaultCols(p, &l.X, &l.Y)
	checkCols(p.Data(), l.X, l.Y, l.Color, l.LineType, l.Text)
	if l.Color != "" && l.LineColor != nil {
		panic("LayerLines: Color and LineColor are mutually exclusive")
	}
	if l.LineType != "" && l.LineDash != "" {
		panic("LayerLines: LineType and LineDash are mutually exclusive")
	}
	p.autoLabel("x", l.X)
	p.autoLabel("y", l.Y)
	p.marks = append(p.marks, &markLines{l, p.Data()})
}

type markLines struct {
	l    LayerLines
	data table.Grouping
}

func (m *markLines) train(s *scaleSet) {
	g := m.data
	if len(g.Tables()) == 0 {
		return
	}
	if col := m.l.Color; col != "" {
		requireDiscrete(g, col, "Color")
		eachColumn(g, col, func(seq slice.T) { s.color.expand(seq, false, col) })
	}
	if col := m.l.LineType; col != "" {
		requireDiscrete(g, col, "LineType")
		eachColumn(g, col, s.dash.expand)
	}
}

func (m *markLines) traces(p *Plot, s *scaleSet) []*Trace {
	l := m.l
	var cols []string
	var levelSets [][]interface{}
	if l.Color != "" {
		cols = append(cols, l.Color)
		levelSets = append(levelSets, s.color.levels.levels())
	}
	if l.LineType != "" && l.LineType != l.Color {
		cols = append(cols, l.LineType)
		levelSets = append(levelSets, s.dash.levels())
	}

	var out []*Trace
	for _, st := range subtables(m.data, cols, levelSets) {
		t := sortedTable(st.t, l.X)
		tr := &Trace{
			Type:      "scatter",
			Mode:      "lines",
			Name:      traceName(l.Name, st.name),
			X:         axisSlice(t.MustColumn(l.X)),
			Y:         axisSlice(t.MustColumn(l.Y)),
			HoverInfo: l.HoverInfo,
		}
		if l.Text != "" {
			tr.Text = stringSlice(t.MustColumn(l.Text))
		}
		if l.HideLegend {
			tr.ShowLegend = Bool(false)
		}
		tr.Line = m.line(p, s, t)
		out = append(out, tr)
	}
	return out
}

func (m *markLines) line(p *Plot, s *scaleSet, t *table.Table) *Line {
	l := m.l
	ln := new(Line)
	used := false

	switch {
	case l.Color != "":
		ln.Color = levelColorCSS(p, s, t, l.Color)
		used = true
	case l.LineColor != nil:
		ln.Color = palettes.CSS(l.LineColor)
		used = true
	}
	switch {
	case l.LineType != "":
		ln.Dash = p.levelDash(s.dash.indexOf(levelOf(t, l.LineType)))
		used = true
	case l.LineDash != "":
		ln.Dash = l.LineDash
		used = true
	}
	if l.Width != 0 {
		ln.Width = l.Width
		used = true
	}

	if !used {
		return nil
	}
	return ln
}

// sortedTable returns t sorted by col when col's type is orderable,
// and t unchanged otherwise (category axes keep data order).
func sortedTable(t *table.Table, col string) *table.Table {
	if !slice.CanSort(t.Column(col)) {
		return t
	}
	return table.Flatten(table.SortBy(t, col))
}

// LayerSegments draws one line segment per row, from (X, Y) to
// (XEnd, YEnd). The segments of each trace are emitted as a single
// scatter trace with null gaps between them.
type LayerSegments struct {
	X, XEnd, Y, YEnd string

	// Color names a discrete column; each level becomes one
	// trace of segments with its own color.
	Color     string
	LineColor color.Color

	Width float64

	Name       string
	HideLegend bool
}

func (l LayerSegments) Apply(p *Plot) {
	if l.X == "" || l.XEnd == "" || l.Y == "" || l.YEnd == "" {
		panic("LayerSegments requires X, XEnd, Y, and YEnd")
	}
	checkCols(p.Data(), l.X, l.XEnd, l.Y, l.YEnd, l.Color)
	if l.Color != "" && l.LineColor != nil {
		panic("LayerSegments: Color and LineColor are mutually exclusive")
	}
	p.autoLabel("x", l.X)
	p.autoLabel("y", l.Y)
	p.marks = append(p.marks, &markSegments{l, p.Data()})
}

type markSegments struct {
	l    LayerSegments
	data table.Grouping
}

func (m *markSegments) train(s *scaleSet) {
	g := m.data
	if len(g.Tables()) == 0 {
		return
	}
	if col := m.l.Color; col != "" {
		requireDiscrete(g, col, "Color")
		eachColumn(g, col, func(seq slice.T) { s.color.expand(seq, false, col) })
	}
}

func (m *markSegments) traces(p *Plot, s *scaleSet) []*Trace {
	l := m.l
	var cols []string
	var levelSets [][]interface{}
	if l.Color != "" {
		cols = append(cols, l.Color)
		levelSets = append(levelSets, s.color.levels.levels())
	}

	var out []*Trace
	for _, st := range subtables(m.data, cols, levelSets) {
		t := st.t
		x0, x1 := t.MustColumn(l.X), t.MustColumn(l.XEnd)
		y0, y1 := t.MustColumn(l.Y), t.MustColumn(l.YEnd)
		xs := make([]interface{}, 0, 3*t.Len())
		ys := make([]interface{}, 0, 3*t.Len())
		for i := 0; i < t.Len(); i++ {
			xs = append(xs, coordValue(x0, i), coordValue(x1, i), nil)
			ys = append(ys, coordValue(y0, i), coordValue(y1, i), nil)
		}

		tr := &Trace{
			Type: "scatter",
			Mode: "lines",
			Name: traceName(l.Name, st.name),
			X:    xs,
			Y:    ys,
		}
		ln := new(Line)
		used := false
		switch {
		case l.Color != "":
			ln.Color = levelColorCSS(p, s, t, l.Color)
			used = true
		case l.LineColor != nil:
			ln.Color = palettes.CSS(l.LineColor)
			used = true
		}
		if l.Width != 0 {
			ln.Width = l.Width
			used = true
		}
		if used {
			tr.Line = ln
		}
		if l.HideLegend {
			tr.ShowLegend = Bool(false)
		}
		out = append(out, tr)
	}
	return out
}

// LayerRibbons fills the vertical band between YMin and YMax along
// X. Each group of the data becomes one filled band.
type LayerRibbons struct {
	X, YMin, YMax string

	// FillColor is the band fill. Nil means a translucent gray.
	FillColor color.Color

	// Name is the legend name. Unnamed ribbons are left out of
	// the legend.
	Name       string
	HideLegend bool
}

func (l LayerRibbons) Apply(p *Plot) {
	if l.X == "" || l.YMin == "" || l.YMax == "" {
		panic("LayerRibbons requires X, YMin, and YMax")
	}
	checkCols(p.Data(), l.X, l.YMin, l.YMax)
	p.autoLabel("x", l.X)
	p.marks = append(p.marks, &markRibbons{l, p.Data()})
}

type markRibbons struct {
	l    LayerRibbons
	data table.Grouping
}

func (m *markRibbons) train(*scaleSet) {}

func (m *markRibbons) traces(p *Plot, s *scaleSet) []*Trace {
	l := m.l
	var out []*Trace
	for _, st := range subtables(m.data, nil, nil) {
		t := sortedTable(st.t, l.X)
		ymax := floatSlice(t.MustColumn(l.YMax))
		ymin := floatSlice(t.MustColumn(l.YMin))

		// Walk forward along YMax, then backward along YMin, so
		// the "toself" fill closes into a band.
		ys := make(Floats, 0, 2*t.Len())
		ys = append(ys, ymax...)
		for i := t.Len() - 1; i >= 0; i-- {
			ys = append(ys, ymin[i])
		}

		fill := l.FillColor
		if fill == nil {
			fill = color.NRGBA{0x44, 0x44, 0x44, 0x40}
		}
		tr := &Trace{
			Type:      "scatter",
			Mode:      "none",
			Name:      traceName(l.Name, st.name),
			X:         roundTrip(axisSlice(t.MustColumn(l.X))),
			Y:         ys,
			Fill:      "toself",
			FillColor: palettes.CSS(fill),
		}
		if l.HideLegend || tr.Name == "" {
			tr.ShowLegend = Bool(false)
		}
		out = append(out, tr)
	}
	return out
}

// roundTrip appends a reversed copy of xs to itself, forming the
// out-and-back x coordinates of a band fill.
func roundTrip(xs interface{}) interface{} {
	switch v := xs.(type) {
	case Floats:
		out := make(Floats, 0, 2*len(v))
		out = append(out, v...)
		for i := len(v) - 1; i >= 0; i-- {
			out = append(out, v[i])
		}
		return out
	case []string:
		out := make([]string, 0, 2*len(v))
		out = append(out, v...)
		for i := len(v) - 1; i >= 0; i-- {
			out = append(out, v[i])
		}
		return out
	}
	panic(fmt.Sprintf("cannot reverse coordinates of type %T", xs))
}

// LayerPolygons fills one closed polygon per trace, connecting rows
// in data order.
type LayerPolygons struct {
	// X and Y name the coordinate columns. If they are empty,
	// they default to the first and second columns, respectively.
	X, Y string

	// Fill names a discrete column; each level becomes one
	// polygon trace with its own fill color.
	Fill string
	// FillColor fills every polygon the same. It is mutually
	// exclusive with Fill.
	FillColor color.Color

	// Opacity is the fill opacity. Zero means opaque.
	Opacity float64

	// Stroke outlines the polygons. StrokeWidth defaults to 1
	// when Stroke is set.
	Stroke      color.Color
	StrokeWidth float64

	Name       string
	HideLegend bool
}

func (l LayerPolygons) Apply(p *Plot) {
	defaultCols(p, &l.X, &l.Y)
	checkCols(p.Data(), l.X, l.Y, l.Fill)
	if l.Fill != "" && l.FillColor != nil {
		panic("LayerPolygons: Fill and FillColor are mutually exclusive")
	}
	p.autoLabel("x", l.X)
	p.autoLabel("y", l.Y)
	p.marks = append(p.marks, &markPolygons{l, p.Data()})
}

type markPolygons struct {
	l    LayerPolygons
	data table.Grouping
}

func (m *markPolygons) train(s *scaleSet) {
	g := m.data
	if len(g.Tables()) == 0 {
		return
	}
	if col := m.l.Fill; col != "" {
		requireDiscrete(g, col, "Fill")
		eachColumn(g, col, func(seq slice.T) { s.color.expand(seq, false, col) })
	}
}

func (m *markPolygons) traces(p *Plot, s *scaleSet) []*Trace {
	l := m.l
	var cols []string
	var levelSets [][]interface{}
	if l.Fill != "" {
		cols = append(cols, l.Fill)
		levelSets = append(levelSets, s.color.levels.levels())
	}

	var out []*Trace
	for _, st := range subtables(m.data, cols, levelSets) {
		t := st.t
		tr := &Trace{
			Type:    "scatter",
			Mode:    "none",
			Name:    traceName(l.Name, st.name),
			X:       axisSlice(t.MustColumn(l.X)),
			Y:       axisSlice(t.MustColumn(l.Y)),
			Fill:    "toself",
			Opacity: l.Opacity,
		}
		switch {
		case l.Fill != "":
			tr.FillColor = levelColorCSS(p, s, t, l.Fill)
		case l.FillColor != nil:
			tr.FillColor = palettes.CSS(l.FillColor)
		}
		if l.Stroke != nil {
			w := l.StrokeWidth
			if w == 0 {
				w = 1
			}
			tr.Mode = "lines"
			tr.Line = &Line{Color: palettes.CSS(l.Stroke), Width: w}
		}
		if l.HideLegend {
			tr.ShowLegend = Bool(false)
		}
		out = append(out, tr)
	}
	return out
}

// LayerText draws a text label per row.
type LayerText struct {
	X, Y string

	// Label names the column holding the label text.
	Label string

	// Position places the text relative to its point, e.g. "top
	// center" or "middle right". Empty means the plotly.js
	// default.
	Position string

	// Name is the legend name. Unnamed text layers are left out
	// of the legend.
	Name       string
	HideLegend bool
}

func (l LayerText) Apply(p *Plot) {
	defaultCols(p, &l.X, &l.Y)
	if l.Label == "" {
		panic("LayerText requires Label")
	}
	checkCols(p.Data(), l.X, l.Y, l.Label)
	p.autoLabel("x", l.X)
	p.autoLabel("y", l.Y)
	p.marks = append(p.marks, &markText{l, p.Data()})
}

type markText struct {
	l    LayerText
	data table.Grouping
}

func (m *markText) train(*scaleSet) {}

func (m *markText) traces(p *Plot, s *scaleSet) []*Trace {
	l := m.l
	var out []*Trace
	for _, st := range subtables(m.data, nil, nil) {
		t := st.t
		tr := &Trace{
			Type:         "scatter",
			Mode:         "text",
			Name:         traceName(l.Name, st.name),
			X:            axisSlice(t.MustColumn(l.X)),
			Y:            axisSlice(t.MustColumn(l.Y)),
			Text:         stringSlice(t.MustColumn(l.Label)),
			TextPosition: l.Position,
		}
		if l.HideLegend || tr.Name == "" {
			tr.ShowLegend = Bool(false)
		}
		out = append(out, tr)
	}
	return out
}

// LayerErrorBars draws markers with vertical error bars.
type LayerErrorBars struct {
	// X and Y name the coordinate columns. If they are empty,
	// they default to the first and second columns, respectively.
	X, Y string

	// ErrorY names a column of error magnitudes. Bars span
	// Y±ErrorY unless ErrorYMinus is also set, in which case
	// they span from Y-ErrorYMinus to Y+ErrorY.
	ErrorY      string
	ErrorYMinus string

	MarkerColor color.Color

	Name       string
	HideLegend bool
}

func (l LayerErrorBars) Apply(p *Plot) {
	defaultCols(p, &l.X, &l.Y)
	if l.ErrorY == "" {
		panic("LayerErrorBars requires ErrorY")
	}
	checkCols(p.Data(), l.X, l.Y, l.ErrorY, l.ErrorYMinus)
	p.autoLabel("x", l.X)
	p.autoLabel("y", l.Y)
	p.marks = append(p.marks, &markErrorBars{l, p.Data()})
}

type markErrorBars struct {
	l    LayerErrorBars
	data table.Grouping
}

func (m *markErrorBars) train(*scaleSet) {}

func (m *markErrorBars) traces(p *Plot, s *scaleSet) []*Trace {
	l := m.l
	var out []*Trace
	for _, st := range subtables(m.data, nil, nil) {
		t := st.t
		eb := &ErrorBar{Type: "data", Array: floatSlice(t.MustColumn(l.ErrorY))}
		if l.ErrorYMinus != "" {
			eb.ArrayMinus = floatSlice(t.MustColumn(l.ErrorYMinus))
			eb.Symmetric = Bool(false)
		}
		tr := &Trace{
			Type:   "scatter",
			Mode:   "markers",
			Name:   traceName(l.Name, st.name),
			X:      axisSlice(t.MustColumn(l.X)),
			Y:      axisSlice(t.MustColumn(l.Y)),
			ErrorY: eb,
		}
		if l.MarkerColor != nil {
			tr.Marker = &Marker{Color: palettes.CSS(l.MarkerColor)}
		}
		if l.HideLegend {
			tr.ShowLegend = Bool(false)
		}
		out = append(out, tr)
	}
	return out
}
