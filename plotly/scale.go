// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotly

import (
	"fmt"
	"image/color"
	"math"
	"reflect"
	"strconv"
	"time"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"

	"github.com/jbixon13/plotly-book/palettes"
)

// defaultSymbols is the marker symbol cycle for discrete symbol
// mappings. Levels beyond its length wrap around.
var defaultSymbols = []string{
	"circle", "square", "diamond", "cross", "x",
	"triangle-up", "triangle-down", "star",
}

// defaultDashes is the line dash cycle for discrete line style
// mappings.
var defaultDashes = []string{
	"solid", "dash", "dot", "dashdot", "longdash", "longdashdot",
}

// cardinalKinds are the reflect Kinds whose columns are treated as
// continuous. Columns of any other kind are treated as discrete.
var cardinalKinds = map[reflect.Kind]bool{
	reflect.Int: true, reflect.Int8: true, reflect.Int16: true,
	reflect.Int32: true, reflect.Int64: true,
	reflect.Uint: true, reflect.Uint8: true, reflect.Uint16: true,
	reflect.Uint32: true, reflect.Uint64: true, reflect.Uintptr: true,
	reflect.Float32: true, reflect.Float64: true,
}

func isCardinal(k reflect.Kind) bool {
	return cardinalKinds[k]
}

// colKind returns the element type of column col in g. The column
// must exist; layers validate bindings before calling this.
func colKind(g table.Grouping, col string) reflect.Type {
	return table.ColType(g, col).Elem()
}

// A levelScale accumulates the values of discrete columns bound to
// an aesthetic and assigns each distinct value a stable index. The
// levels are sorted when the value type is orderable, so index
// assignment does not depend on row order.
type levelScale struct {
	allData []slice.T
	cache   []interface{}
	index   map[interface{}]int
}

func (s *levelScale) expand(seq slice.T) {
	s.allData = append(s.allData, seq)
	s.cache, s.index = nil, nil
}

// levels returns the distinct values in index order.
func (s *levelScale) levels() []interface{} {
	if s.cache == nil && len(s.allData) > 0 {
		var nub slice.T = slice.NubAppend(s.allData...)
		if slice.CanSort(nub) {
			slice.Sort(nub)
		}
		rv := reflect.ValueOf(nub)
		s.cache = make([]interface{}, rv.Len())
		s.index = make(map[interface{}]int, rv.Len())
		for i := range s.cache {
			v := rv.Index(i).Interface()
			s.cache[i] = v
			s.index[v] = i
		}
	}
	return s.cache
}

func (s *levelScale) indexOf(v interface{}) int {
	s.levels()
	i, ok := s.index[v]
	if !ok {
		panic(fmt.Sprintf("value %v was not seen during scale training", v))
	}
	return i
}

// A spanScale tracks the extent of continuous columns bound to an
// aesthetic. NaN and infinite values do not affect the extent.
type spanScale struct {
	min, max float64
	ok       bool
}

func (s *spanScale) expand(seq slice.T) {
	var xs []float64
	slice.Convert(&xs, seq)
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}
		if !s.ok {
			s.min, s.max, s.ok = x, x, true
			continue
		}
		if x < s.min {
			s.min = x
		}
		if x > s.max {
			s.max = x
		}
	}
}

// lerp maps x from s's extent to [lo, hi]. A degenerate extent maps
// everything to the midpoint.
func (s *spanScale) lerp(x, lo, hi float64) float64 {
	if math.IsNaN(x) {
		return math.NaN()
	}
	if !s.ok || s.min == s.max {
		return (lo + hi) / 2
	}
	return lo + (x-s.min)/(s.max-s.min)*(hi-lo)
}

// A colorScale is either discrete or continuous, decided by the
// type of the first column bound to the color aesthetic.
type colorScale struct {
	levels levelScale
	span   spanScale

	continuous bool
	bound      bool
	title      string
}

func (s *colorScale) expand(seq slice.T, continuous bool, col string) {
	if !s.bound {
		s.continuous = continuous
		s.bound = true
		s.title = col
	} else if s.continuous != continuous {
		panic(fmt.Sprintf("column %q mixes discrete and continuous color mappings in one plot", col))
	}
	if continuous {
		s.span.expand(seq)
	} else {
		s.levels.expand(seq)
	}
}

// scaleSet holds the trained scale state for one Figure build.
type scaleSet struct {
	color  colorScale
	symbol levelScale
	dash   levelScale
	size   spanScale
}

// levelColor returns the color for discrete level i of n. With no
// override the default palette repeats when there are more levels
// than colors, matching how plotly.js cycles trace colors. A custom
// palette is interpolated to exactly n colors instead.
func (p *Plot) levelColor(i, n int) color.RGBA {
	switch {
	case p.colorList != nil:
		if len(p.colorList) == n {
			return p.colorList[i]
		}
		return palettes.Ramp(p.colorList, n)[i]
	case p.colorRamp != nil:
		return sampleScale(p.colorRamp, i, n)
	}
	return palettes.Default[i%len(palettes.Default)]
}

// sampleScale picks n evenly spaced colors from a continuous scale
// and returns the i'th.
func sampleScale(s palettes.Scale, i, n int) color.RGBA {
	if n <= 1 {
		return toRGBA(s.Map(0))
	}
	return toRGBA(s.Map(float64(i) / float64(n-1)))
}

func toRGBA(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// colorscale returns the continuous color scale as plotly.js
// colorscale stops.
func (p *Plot) colorscale() [][2]interface{} {
	s := p.colorRamp
	if s == nil && p.colorList != nil {
		// A discrete palette used for a continuous mapping
		// becomes a gradient through its colors.
		s = make(palettes.Scale, len(p.colorList))
		for i, c := range p.colorList {
			pos := 0.0
			if len(p.colorList) > 1 {
				pos = float64(i) / float64(len(p.colorList)-1)
			}
			s[i] = palettes.Stop{Pos: pos, Color: c}
		}
	}
	if s == nil {
		s = palettes.Continuous("Viridis")
	}
	out := make([][2]interface{}, len(s))
	for i, stop := range s {
		out[i] = [2]interface{}{stop.Pos, palettes.CSS(stop.Color)}
	}
	return out
}

// levelSymbol returns the marker symbol for discrete level i.
func (p *Plot) levelSymbol(i int) string {
	syms := p.symbolList
	if syms == nil {
		syms = defaultSymbols
	}
	return syms[i%len(syms)]
}

// levelDash returns the line dash style for discrete level i.
func (p *Plot) levelDash(i int) string {
	dashes := p.dashList
	if dashes == nil {
		dashes = defaultDashes
	}
	return dashes[i%len(dashes)]
}

// sizePx maps a data value into the plot's marker size range. The
// values feed marker.size with sizemode "area", so perceived marker
// area, not diameter, is proportional to the data.
func (p *Plot) sizePx(s *scaleSet, v float64) float64 {
	lo, hi := p.sizeMin, p.sizeMax
	if lo == 0 && hi == 0 {
		lo, hi = 10, 100
	}
	return s.size.lerp(v, lo, hi)
}

// levelString formats a level value for trace names and category
// axes.
func levelString(v interface{}) string {
	switch v := v.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case time.Time:
		return formatTime(v)
	}
	return fmt.Sprint(v)
}

func formatTime(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format("2006-01-02")
	}
	return t.Format("2006-01-02 15:04:05")
}

// axisSlice converts a column to a trace coordinate array: Floats
// for numeric columns, strings for everything else. plotly.js
// infers category and date axes from string values.
func axisSlice(seq slice.T) interface{} {
	switch s := seq.(type) {
	case []float64:
		return Floats(s)
	case []string:
		return s
	case []time.Time:
		out := make([]string, len(s))
		for i, t := range s {
			out[i] = formatTime(t)
		}
		return out
	}
	if isCardinal(reflect.TypeOf(seq).Elem().Kind()) {
		return floatSlice(seq)
	}
	return stringSlice(seq)
}

// floatSlice converts a numeric column to Floats.
func floatSlice(seq slice.T) Floats {
	var xs []float64
	slice.Convert(&xs, seq)
	return Floats(xs)
}

// stringSlice formats any column as strings.
func stringSlice(seq slice.T) []string {
	if s, ok := seq.([]string); ok {
		return s
	}
	rv := reflect.ValueOf(seq)
	out := make([]string, rv.Len())
	for i := range out {
		out[i] = levelString(rv.Index(i).Interface())
	}
	return out
}

// coordValue returns row i of a column as a JSON-ready coordinate:
// float64 for numeric values (nil for NaN), a formatted string
// otherwise.
func coordValue(seq slice.T, i int) interface{} {
	switch s := seq.(type) {
	case []float64:
		if math.IsNaN(s[i]) || math.IsInf(s[i], 0) {
			return nil
		}
		return s[i]
	case []string:
		return s[i]
	case []time.Time:
		return formatTime(s[i])
	}
	rv := reflect.ValueOf(seq)
	if isCardinal(rv.Type().Elem().Kind()) {
		return rv.Index(i).Convert(reflect.TypeOf(float64(0))).Float()
	}
	return levelString(rv.Index(i).Interface())
}
