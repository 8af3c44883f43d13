// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotly

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
)

func TestFloatsJSON(t *testing.T) {
	tests := []struct {
		in   Floats
		want string
	}{
		{Floats{}, "[]"},
		{Floats{1, 2.5, -3}, "[1,2.5,-3]"},
		{Floats{math.NaN()}, "[null]"},
		{Floats{1, math.Inf(1), math.Inf(-1), 4}, "[1,null,null,4]"},
		{Floats{1e-8, 2e6}, "[1e-08,2e+06]"},
	}
	for _, test := range tests {
		b, err := json.Marshal(test.in)
		if err != nil {
			t.Fatalf("marshal %v: %s", test.in, err)
		}
		if string(b) != test.want {
			t.Errorf("marshal %v = %s; want %s", test.in, b, test.want)
		}
	}
}

func TestTraceOmitsEmpty(t *testing.T) {
	b, err := json.Marshal(&Trace{Type: "scatter"})
	if err != nil {
		t.Fatal(err)
	}
	if want := `{"type":"scatter"}`; string(b) != want {
		t.Errorf("marshal = %s; want %s", b, want)
	}
}

func TestMarkerZeroBounds(t *testing.T) {
	// cmin/cmax must survive even when the bound is 0, which
	// omitempty would drop from a plain float64.
	b, err := json.Marshal(&Marker{CMin: Float(0), CMax: Float(8)})
	if err != nil {
		t.Fatal(err)
	}
	s := string(b)
	if !strings.Contains(s, `"cmin":0`) || !strings.Contains(s, `"cmax":8`) {
		t.Errorf("marshal = %s; want cmin and cmax", s)
	}
}

func TestFigureJSON(t *testing.T) {
	fig := &Figure{
		Data: []*Trace{{
			Type: "scatter",
			Mode: "markers",
			X:    Floats{1, 2},
			Y:    Floats{3, math.NaN()},
		}},
		Layout: &Layout{Title: &Title{Text: "t"}},
		Config: &Config{Responsive: true},
	}

	var buf strings.Builder
	if err := fig.WriteJSON(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	// The document must be valid JSON even with NaN coordinates.
	var doc map[string]interface{}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %s\n%s", err, out)
	}
	if !strings.Contains(out, "null") {
		t.Error("NaN did not marshal as null")
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("missing trailing newline")
	}
}

func TestShapeKeepsZeroCoords(t *testing.T) {
	b, err := json.Marshal(Shape{Type: "line", XRef: "paper", X0: 0.0, X1: 1.0, Y0: 25.0, Y1: 25.0})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), `"x0":0`) {
		t.Errorf("marshal = %s; want x0 present", b)
	}
}
