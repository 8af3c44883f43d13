// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"testing"
)

func de(x, y interface{}) bool {
	return reflect.DeepEqual(x, y)
}

func TestFuelEconomy(t *testing.T) {
	tab := FuelEconomy()
	if want := 100; tab.Len() != want {
		t.Errorf("got %d rows, want %d", tab.Len(), want)
	}
	want := []string{"manufacturer", "model", "class", "displ", "cyl", "drv", "cty", "hwy"}
	if !de(tab.Columns(), want) {
		t.Errorf("got columns %v, want %v", tab.Columns(), want)
	}

	displ := tab.MustColumn("displ").([]float64)
	if displ[0] != 1.8 {
		t.Errorf("got displ[0] = %v, want 1.8", displ[0])
	}
	cyl := tab.MustColumn("cyl").([]int)
	for _, c := range cyl {
		if c != 4 && c != 6 && c != 8 {
			t.Errorf("unexpected cylinder count %d", c)
		}
	}
	if class := tab.MustColumn("class").([]string); class[0] != "compact" {
		t.Errorf("got class[0] = %q, want compact", class[0])
	}
}

func TestReadCSV(t *testing.T) {
	tab, err := ReadCSV(strings.NewReader("name,count,frac\na,1,0.5\nb,2,1.5\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !de(tab.MustColumn("name"), []string{"a", "b"}) {
		t.Errorf("got name %v", tab.MustColumn("name"))
	}
	if !de(tab.MustColumn("count"), []int{1, 2}) {
		t.Errorf("got count %v, want []int{1, 2}", tab.MustColumn("count"))
	}
	if !de(tab.MustColumn("frac"), []float64{0.5, 1.5}) {
		t.Errorf("got frac %v, want []float64{0.5, 1.5}", tab.MustColumn("frac"))
	}

	// A single unparseable value keeps the whole column as strings.
	tab, err = ReadCSV(strings.NewReader("count\n1\nn/a\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !de(tab.MustColumn("count"), []string{"1", "n/a"}) {
		t.Errorf("got count %v, want strings", tab.MustColumn("count"))
	}

	// Ragged rows are an error, not a short table.
	if _, err = ReadCSV(strings.NewReader("a,b\n1\n")); err == nil {
		t.Error("expected error for ragged CSV")
	}
	if _, err = ReadCSV(strings.NewReader("")); err == nil {
		t.Error("expected error for empty input")
	}
}

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.csv")
	if err := os.WriteFile(path, []byte("x,y\n1,2\n3,4\n"), 0666); err != nil {
		t.Fatal(err)
	}
	tab, err := LoadCSV(path)
	if err != nil {
		t.Fatal(err)
	}
	if !de(tab.MustColumn("x"), []int{1, 3}) {
		t.Errorf("got x %v", tab.MustColumn("x"))
	}

	if _, err = LoadCSV(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestHousing(t *testing.T) {
	h := Housing(42)
	if want := len(texasCities) * housingMonths; h.Len() != want {
		t.Errorf("got %d rows, want %d", h.Len(), want)
	}

	// Same seed, same table; different seed, different table.
	if !de(h.MustColumn("median"), Housing(42).MustColumn("median")) {
		t.Error("Housing(42) is not deterministic")
	}
	if de(h.MustColumn("median"), Housing(43).MustColumn("median")) {
		t.Error("Housing(42) and Housing(43) agree")
	}

	cities := h.MustColumn("city").([]string)
	seen := make(map[string]bool)
	for _, c := range cities {
		seen[c] = true
	}
	if len(seen) != len(texasCities) {
		t.Errorf("got %d cities, want %d", len(seen), len(texasCities))
	}

	// Dates are ISO strings, so each city's block is in date order.
	dates := h.MustColumn("date").([]string)
	if dates[0] != "2000-01-01" {
		t.Errorf("got first date %q, want 2000-01-01", dates[0])
	}
	for i := 1; i < housingMonths; i++ {
		if dates[i] <= dates[i-1] {
			t.Fatalf("dates out of order at %d: %q !< %q", i, dates[i-1], dates[i])
		}
	}

	for _, s := range h.MustColumn("sales").([]float64) {
		if s < 1 {
			t.Fatalf("sales %v < 1", s)
		}
	}
}

func TestHousingSummary(t *testing.T) {
	s := HousingSummary(42)
	if s.Len() != housingMonths {
		t.Errorf("got %d rows, want %d", s.Len(), housingMonths)
	}
	lo := s.MustColumn("lo").([]float64)
	mid := s.MustColumn("mid").([]float64)
	hi := s.MustColumn("hi").([]float64)
	for i := range lo {
		if !(lo[i] <= mid[i] && mid[i] <= hi[i]) {
			t.Fatalf("row %d: want lo <= mid <= hi, got %v %v %v", i, lo[i], mid[i], hi[i])
		}
	}
	dates := s.MustColumn("date").([]string)
	for i := 1; i < len(dates); i++ {
		if dates[i] <= dates[i-1] {
			t.Fatalf("dates out of order at %d", i)
		}
	}
}

func TestSavings(t *testing.T) {
	s := Savings(7)
	if want := 48 * 12; s.Len() != want {
		t.Errorf("got %d rows, want %d", s.Len(), want)
	}
	if !de(s.MustColumn("psavert"), Savings(7).MustColumn("psavert")) {
		t.Error("Savings(7) is not deterministic")
	}
	if dates := s.MustColumn("date").([]string); dates[0] != "1967-07-01" {
		t.Errorf("got first date %q, want 1967-07-01", dates[0])
	}
	for _, v := range s.MustColumn("psavert").([]float64) {
		if v < 1 {
			t.Fatalf("psavert %v < 1", v)
		}
	}
	for _, v := range s.MustColumn("uempmed").([]float64) {
		if v < 3 {
			t.Fatalf("uempmed %v < 3", v)
		}
	}
}

func TestGWAS(t *testing.T) {
	const n = 2000
	g := GWAS(1, n)
	if g.Len() != n {
		t.Errorf("got %d rows, want %d", g.Len(), n)
	}
	if !de(g.MustColumn("pvalue"), GWAS(1, n).MustColumn("pvalue")) {
		t.Error("GWAS(1, n) is not deterministic")
	}

	rsid := g.MustColumn("rsid").([]string)
	seen := make(map[string]bool)
	for _, id := range rsid {
		if !strings.HasPrefix(id, "rs") {
			t.Fatalf("bad rsid %q", id)
		}
		if seen[id] {
			t.Fatalf("duplicate rsid %q", id)
		}
		seen[id] = true
	}

	for _, c := range g.MustColumn("chrom").([]string) {
		i, err := strconv.Atoi(c)
		if err != nil || i < 1 || i > 22 {
			t.Fatalf("bad chromosome %q", c)
		}
	}

	beta := g.MustColumn("beta").([]float64)
	pvalue := g.MustColumn("pvalue").([]float64)
	hits := n / 400
	for i, p := range pvalue {
		if !(p > 0 && p <= 1) {
			t.Fatalf("pvalue[%d] = %v out of range", i, p)
		}
		switch {
		case i < hits:
			// The planted hits come first and clear genome-wide
			// significance by construction.
			if p >= 5e-8 {
				t.Errorf("hit %d has p = %v, want < 5e-8", i, p)
			}
			if b := beta[i]; b > -0.04 && b < 0.04 {
				t.Errorf("hit %d has beta = %v, want |beta| >= 0.04", i, b)
			}
		case i < 2*hits:
			// Then the near-threshold associations.
			if p <= 5e-8 || p >= 1e-5 {
				t.Errorf("near hit %d has p = %v, want in (5e-8, 1e-5)", i, p)
			}
		}
	}
}
