// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palettes provides the named color palettes and continuous
// colorscales used by package plotly.
//
// Qualitative palettes are ordered color lists for encoding discrete
// levels; continuous scales are color gradients for encoding numeric
// ranges. Both kinds are addressed by the names the original plotly
// examples pass as overrides ("Accent", "Set1", "Viridis", ...).
package palettes

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/aclements/go-gg/palette"
)

// Default is the automatic qualitative cycle assigned to discrete
// encodings when no override is given. It is the D3 "category10"
// cycle that plotly assigns by default.
var Default = []color.RGBA{
	{0x1f, 0x77, 0xb4, 0xff},
	{0xff, 0x7f, 0x0e, 0xff},
	{0x2c, 0xa0, 0x2c, 0xff},
	{0xd6, 0x27, 0x28, 0xff},
	{0x94, 0x67, 0xbd, 0xff},
	{0x8c, 0x56, 0x4b, 0xff},
	{0xe3, 0x77, 0xc2, 0xff},
	{0x7f, 0x7f, 0x7f, 0xff},
	{0xbc, 0xbd, 0x22, 0xff},
	{0x17, 0xbe, 0xcf, 0xff},
}

// A Stop is one color stop of a continuous scale, at position Pos in
// [0, 1].
type Stop struct {
	Pos   float64
	Color color.RGBA
}

// A Scale is a continuous colorscale: an ordered sequence of color
// stops on [0, 1]. Scale implements palette.Continuous.
type Scale []Stop

// Map returns the color at position x in [0, 1], interpolating
// between the surrounding stops.
func (s Scale) Map(x float64) color.Color {
	colors := make([]color.RGBA, len(s))
	stops := make([]float64, len(s))
	for i, st := range s {
		colors[i], stops[i] = st.Color, st.Pos
	}
	return palette.RGBGradient{Colors: colors, Stops: stops}.Map(x)
}

var _ palette.Continuous = Scale(nil)

// Qualitative returns the named qualitative palette. Names are
// matched case-insensitively. Qualitative panics if name is not a
// known palette; use QualitativeNames for the known set.
func Qualitative(name string) []color.RGBA {
	p, ok := qualitative[strings.ToLower(name)]
	if !ok {
		panic(fmt.Sprintf("unknown qualitative palette %q; known palettes are %s", name, strings.Join(QualitativeNames(), ", ")))
	}
	return p
}

// QualitativeNames returns the names accepted by Qualitative, sorted.
func QualitativeNames() []string {
	names := make([]string, 0, len(qualitativeNames))
	for _, name := range qualitativeNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsQualitative reports whether name names a known qualitative
// palette.
func IsQualitative(name string) bool {
	_, ok := qualitative[strings.ToLower(name)]
	return ok
}

// Continuous returns the named continuous colorscale. Names are
// matched case-insensitively. Continuous panics if name is not a
// known scale; use ContinuousNames for the known set.
func Continuous(name string) Scale {
	s, ok := continuous[strings.ToLower(name)]
	if !ok {
		panic(fmt.Sprintf("unknown colorscale %q; known colorscales are %s", name, strings.Join(ContinuousNames(), ", ")))
	}
	return s
}

// ContinuousNames returns the names accepted by Continuous, sorted.
func ContinuousNames() []string {
	names := make([]string, 0, len(continuousNames))
	for _, name := range continuousNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsContinuous reports whether name names a known continuous
// colorscale.
func IsContinuous(name string) bool {
	_, ok := continuous[strings.ToLower(name)]
	return ok
}

// Ramp interpolates colors into a palette of exactly n entries. If
// colors already has n entries it is returned unchanged; otherwise
// the result samples an RGB gradient through colors at n evenly
// spaced positions. This is how a user-supplied ramp with fewer
// colors than levels is widened rather than rejected.
func Ramp(colors []color.RGBA, n int) []color.RGBA {
	if len(colors) == 0 {
		panic("empty color ramp")
	}
	if len(colors) == n {
		return colors
	}
	g := palette.RGBGradient{Colors: colors}
	out := make([]color.RGBA, n)
	if n == 1 {
		out[0] = toRGBA(g.Map(0))
		return out
	}
	for i := range out {
		out[i] = toRGBA(g.Map(float64(i) / float64(n-1)))
	}
	return out
}

func toRGBA(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// CSS renders c as a CSS color string: "#rrggbb" for opaque colors,
// "rgba(r,g,b,a)" otherwise. This is the form plotly.js accepts in
// figure JSON.
func CSS(c color.Color) string {
	// Convert through NRGBA so translucent colors come out with
	// straight (non-premultiplied) channel values, which is what
	// CSS rgba() expects.
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%.3g)", n.R, n.G, n.B, float64(n.A)/255)
}

// ParseHex parses a "#rrggbb" or "#rgb" color string.
func ParseHex(s string) (color.RGBA, error) {
	c := color.RGBA{A: 0xff}
	var err error
	switch len(s) {
	case 7:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B)
	case 4:
		_, err = fmt.Sscanf(s, "#%1x%1x%1x", &c.R, &c.G, &c.B)
		c.R *= 0x11
		c.G *= 0x11
		c.B *= 0x11
	default:
		err = fmt.Errorf("bad length %d", len(s))
	}
	if err != nil {
		return color.RGBA{}, fmt.Errorf("malformed hex color %q", s)
	}
	return c, nil
}

// MustParseHex is like ParseHex but panics on malformed input. It is
// intended for color literals in example code.
func MustParseHex(s string) color.RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}
