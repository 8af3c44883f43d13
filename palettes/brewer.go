// Copyright (c) 2002 Cynthia Brewer, Mark Harrower, and The
// Pennsylvania State University.
// Please see license at http://colorbrewer.org/export/LICENSE.txt.

package palettes

import "image/color"

// The qualitative palettes are the ColorBrewer qualitative sets at
// their maximum level counts, plus the Default cycle. Keys are
// lower-cased; qualitativeNames preserves the documented spelling.

var qualitativeNames = []string{
	"Accent", "Dark2", "Default", "Paired", "Pastel1", "Pastel2",
	"Set1", "Set2", "Set3",
}

var qualitative = map[string][]color.RGBA{
	"default": Default,
	"accent": {
		{0x7f, 0xc9, 0x7f, 0xff}, {0xbe, 0xae, 0xd4, 0xff},
		{0xfd, 0xc0, 0x86, 0xff}, {0xff, 0xff, 0x99, 0xff},
		{0x38, 0x6c, 0xb0, 0xff}, {0xf0, 0x02, 0x7f, 0xff},
		{0xbf, 0x5b, 0x17, 0xff}, {0x66, 0x66, 0x66, 0xff},
	},
	"dark2": {
		{0x1b, 0x9e, 0x77, 0xff}, {0xd9, 0x5f, 0x02, 0xff},
		{0x75, 0x70, 0xb3, 0xff}, {0xe7, 0x29, 0x8a, 0xff},
		{0x66, 0xa6, 0x1e, 0xff}, {0xe6, 0xab, 0x02, 0xff},
		{0xa6, 0x76, 0x1d, 0xff}, {0x66, 0x66, 0x66, 0xff},
	},
	"paired": {
		{0xa6, 0xce, 0xe3, 0xff}, {0x1f, 0x78, 0xb4, 0xff},
		{0xb2, 0xdf, 0x8a, 0xff}, {0x33, 0xa0, 0x2c, 0xff},
		{0xfb, 0x9a, 0x99, 0xff}, {0xe3, 0x1a, 0x1c, 0xff},
		{0xfd, 0xbf, 0x6f, 0xff}, {0xff, 0x7f, 0x00, 0xff},
		{0xca, 0xb2, 0xd6, 0xff}, {0x6a, 0x3d, 0x9a, 0xff},
		{0xff, 0xff, 0x99, 0xff}, {0xb1, 0x59, 0x28, 0xff},
	},
	"pastel1": {
		{0xfb, 0xb4, 0xae, 0xff}, {0xb3, 0xcd, 0xe3, 0xff},
		{0xcc, 0xeb, 0xc5, 0xff}, {0xde, 0xcb, 0xe4, 0xff},
		{0xfe, 0xd9, 0xa6, 0xff}, {0xff, 0xff, 0xcc, 0xff},
		{0xe5, 0xd8, 0xbd, 0xff}, {0xfd, 0xda, 0xec, 0xff},
		{0xf2, 0xf2, 0xf2, 0xff},
	},
	"pastel2": {
		{0xb3, 0xe2, 0xcd, 0xff}, {0xfd, 0xcd, 0xac, 0xff},
		{0xcb, 0xd5, 0xe8, 0xff}, {0xf4, 0xca, 0xe4, 0xff},
		{0xe6, 0xf5, 0xc9, 0xff}, {0xff, 0xf2, 0xae, 0xff},
		{0xf1, 0xe2, 0xcc, 0xff}, {0xcc, 0xcc, 0xcc, 0xff},
	},
	"set1": {
		{0xe4, 0x1a, 0x1c, 0xff}, {0x37, 0x7e, 0xb8, 0xff},
		{0x4d, 0xaf, 0x4a, 0xff}, {0x98, 0x4e, 0xa3, 0xff},
		{0xff, 0x7f, 0x00, 0xff}, {0xff, 0xff, 0x33, 0xff},
		{0xa6, 0x56, 0x28, 0xff}, {0xf7, 0x81, 0xbf, 0xff},
		{0x99, 0x99, 0x99, 0xff},
	},
	"set2": {
		{0x66, 0xc2, 0xa5, 0xff}, {0xfc, 0x8d, 0x62, 0xff},
		{0x8d, 0xa0, 0xcb, 0xff}, {0xe7, 0x8a, 0xc3, 0xff},
		{0xa6, 0xd8, 0x54, 0xff}, {0xff, 0xd9, 0x2f, 0xff},
		{0xe5, 0xc4, 0x94, 0xff}, {0xb3, 0xb3, 0xb3, 0xff},
	},
	"set3": {
		{0x8d, 0xd3, 0xc7, 0xff}, {0xff, 0xff, 0xb3, 0xff},
		{0xbe, 0xba, 0xda, 0xff}, {0xfb, 0x80, 0x72, 0xff},
		{0x80, 0xb1, 0xd3, 0xff}, {0xfd, 0xb4, 0x62, 0xff},
		{0xb3, 0xde, 0x69, 0xff}, {0xfc, 0xcd, 0xe5, 0xff},
		{0xd9, 0xd9, 0xd9, 0xff}, {0xbc, 0x80, 0xbd, 0xff},
		{0xcc, 0xeb, 0xc5, 0xff}, {0xff, 0xed, 0x6f, 0xff},
	},
}

var continuousNames = []string{
	"Blues", "Greys", "Hot", "RdBu", "Viridis",
}

var continuous = map[string]Scale{
	// Viridis at the stop positions plotly.js uses.
	"viridis": {
		{0, color.RGBA{0x44, 0x01, 0x54, 0xff}},
		{0.111111, color.RGBA{0x48, 0x28, 0x78, 0xff}},
		{0.222222, color.RGBA{0x3e, 0x49, 0x89, 0xff}},
		{0.333333, color.RGBA{0x31, 0x68, 0x8e, 0xff}},
		{0.444444, color.RGBA{0x26, 0x82, 0x8e, 0xff}},
		{0.555556, color.RGBA{0x1f, 0x9e, 0x89, 0xff}},
		{0.666667, color.RGBA{0x35, 0xb7, 0x79, 0xff}},
		{0.777778, color.RGBA{0x6e, 0xce, 0x58, 0xff}},
		{0.888889, color.RGBA{0xb5, 0xde, 0x2b, 0xff}},
		{1, color.RGBA{0xfd, 0xe7, 0x25, 0xff}},
	},
	// ColorBrewer diverging RdBu, 11 classes, evenly spaced.
	"rdbu": {
		{0, color.RGBA{0x67, 0x00, 0x1f, 0xff}},
		{0.1, color.RGBA{0xb2, 0x18, 0x2b, 0xff}},
		{0.2, color.RGBA{0xd6, 0x60, 0x4d, 0xff}},
		{0.3, color.RGBA{0xf4, 0xa5, 0x82, 0xff}},
		{0.4, color.RGBA{0xfd, 0xdb, 0xc7, 0xff}},
		{0.5, color.RGBA{0xf7, 0xf7, 0xf7, 0xff}},
		{0.6, color.RGBA{0xd1, 0xe5, 0xf0, 0xff}},
		{0.7, color.RGBA{0x92, 0xc5, 0xde, 0xff}},
		{0.8, color.RGBA{0x43, 0x93, 0xc3, 0xff}},
		{0.9, color.RGBA{0x21, 0x66, 0xac, 0xff}},
		{1, color.RGBA{0x05, 0x30, 0x61, 0xff}},
	},
	// ColorBrewer sequential Blues, 9 classes.
	"blues": {
		{0, color.RGBA{0xf7, 0xfb, 0xff, 0xff}},
		{0.125, color.RGBA{0xde, 0xeb, 0xf7, 0xff}},
		{0.25, color.RGBA{0xc6, 0xdb, 0xef, 0xff}},
		{0.375, color.RGBA{0x9e, 0xca, 0xe1, 0xff}},
		{0.5, color.RGBA{0x6b, 0xae, 0xd6, 0xff}},
		{0.625, color.RGBA{0x42, 0x92, 0xc6, 0xff}},
		{0.75, color.RGBA{0x21, 0x71, 0xb5, 0xff}},
		{0.875, color.RGBA{0x08, 0x51, 0x9c, 0xff}},
		{1, color.RGBA{0x08, 0x30, 0x6b, 0xff}},
	},
	// ColorBrewer sequential Greys, 9 classes.
	"greys": {
		{0, color.RGBA{0xff, 0xff, 0xff, 0xff}},
		{0.125, color.RGBA{0xf0, 0xf0, 0xf0, 0xff}},
		{0.25, color.RGBA{0xd9, 0xd9, 0xd9, 0xff}},
		{0.375, color.RGBA{0xbd, 0xbd, 0xbd, 0xff}},
		{0.5, color.RGBA{0x96, 0x96, 0x96, 0xff}},
		{0.625, color.RGBA{0x73, 0x73, 0x73, 0xff}},
		{0.75, color.RGBA{0x52, 0x52, 0x52, 0xff}},
		{0.875, color.RGBA{0x25, 0x25, 0x25, 0xff}},
		{1, color.RGBA{0x00, 0x00, 0x00, 0xff}},
	},
	// The plotly.js "Hot" scale.
	"hot": {
		{0, color.RGBA{0x00, 0x00, 0x00, 0xff}},
		{0.3, color.RGBA{0xe6, 0x00, 0x00, 0xff}},
		{0.6, color.RGBA{0xff, 0xd2, 0x00, 0xff}},
		{1, color.RGBA{0xff, 0xff, 0xff, 0xff}},
	},
}
