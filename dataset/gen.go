// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strconv"
	"time"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
)

var texasCities = []string{
	"Abilene", "Amarillo", "Arlington", "Austin", "Beaumont",
	"Brownsville", "College Station", "Corpus Christi", "Dallas",
	"El Paso", "Fort Worth", "Galveston", "Houston", "Laredo",
	"Lubbock", "McAllen", "Midland", "San Antonio", "Tyler", "Waco",
}

const housingMonths = 16 * 12 // 2000-01 through 2015-12

// monthSeries returns n consecutive first-of-month dates starting at
// start, formatted as ISO dates. Dates are kept as strings so that
// lexicographic order is chronological order and plotly renders the
// axis as a date axis.
func monthSeries(start time.Time, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = start.AddDate(0, i, 0).Format("2006-01-02")
	}
	return out
}

// Housing returns a synthetic monthly housing-market table for 20
// Texas cities from 2000 through 2015, one row per city and month.
// Columns:
//
//	city    string   city name
//	date    string   first of the month, ISO format
//	sales   float64  number of sales that month
//	median  float64  median sale price in dollars
//
// Each city gets its own price level, trend, and seasonal cycle
// drawn from seed, so the same seed always produces the same table.
func Housing(seed int64) *table.Table {
	rng := rand.New(rand.NewSource(seed))
	dates := monthSeries(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), housingMonths)

	var city, date []string
	var sales, median []float64
	for _, c := range texasCities {
		base := 80000 + 140000*rng.Float64()
		trend := (0.01 + 0.04*rng.Float64()) * base // dollars per year
		amp := 0.03 + 0.05*rng.Float64()
		phase := 2 * math.Pi * rng.Float64()
		volume := math.Exp(3.5 + 3.5*rng.Float64())
		for m := 0; m < housingMonths; m++ {
			season := 1 + amp*math.Sin(2*math.Pi*float64(m%12)/12+phase)
			price := (base + trend*float64(m)/12) * season * (1 + 0.02*rng.NormFloat64())
			n := volume * season * (1 + 0.1*rng.NormFloat64())
			if n < 1 {
				n = 1
			}
			city = append(city, c)
			date = append(date, dates[m])
			sales = append(sales, math.Round(n))
			median = append(median, 100*math.Round(price/100))
		}
	}
	return new(table.Builder).Add("city", city).Add("date", date).
		Add("sales", sales).Add("median", median).Done()
}

// HousingSummary collapses Housing(seed) across cities, one row per
// month. Columns:
//
//	date  string   first of the month, ISO format
//	lo    float64  lowest median sale price across cities
//	mid   float64  mean of the city medians
//	hi    float64  highest median sale price across cities
func HousingSummary(seed int64) *table.Table {
	h := Housing(seed)
	dates := h.MustColumn("date").([]string)
	medians := h.MustColumn("median").([]float64)

	byDate := make(map[string][]float64)
	for i, d := range dates {
		byDate[d] = append(byDate[d], medians[i])
	}
	var date []string
	for d := range byDate {
		date = append(date, d)
	}
	sort.Strings(date)

	var lo, mid, hi []float64
	for _, d := range date {
		xs := byDate[d]
		min, max := xs[0], xs[0]
		for _, x := range xs {
			if x < min {
				min = x
			}
			if x > max {
				max = x
			}
		}
		lo = append(lo, min)
		mid = append(mid, stats.Mean(xs))
		hi = append(hi, max)
	}
	return new(table.Builder).Add("date", date).Add("lo", lo).
		Add("mid", mid).Add("hi", hi).Done()
}

// Savings returns a synthetic monthly macroeconomic series starting
// in July 1967, one row per month. Columns:
//
//	date     string   first of the month, ISO format
//	psavert  float64  personal saving rate, percent
//	uempmed  float64  median duration of unemployment, weeks
func Savings(seed int64) *table.Table {
	rng := rand.New(rand.NewSource(seed))
	const months = 48 * 12
	dates := monthSeries(time.Date(1967, 7, 1, 0, 0, 0, 0, time.UTC), months)

	psavert := make([]float64, months)
	uempmed := make([]float64, months)
	for m := range dates {
		u := float64(m) / float64(months-1)
		save := 12.6 - 7.5*u + 1.1*math.Sin(2*math.Pi*9*u+1.3) + 0.25*rng.NormFloat64()
		if save < 1 {
			save = 1
		}
		weeks := 7.2 + 2.5*u + 3.4*math.Sin(2*math.Pi*5.5*u+4.0) + 0.4*rng.NormFloat64()
		if weeks < 3 {
			weeks = 3
		}
		psavert[m] = math.Round(save*10) / 10
		uempmed[m] = math.Round(weeks*10) / 10
	}
	return new(table.Builder).Add("date", dates).
		Add("psavert", psavert).Add("uempmed", uempmed).Done()
}

// Approximate human chromosome lengths in bases, chromosomes 1-22.
var chromSizes = [...]int{
	249e6, 242e6, 198e6, 190e6, 182e6, 171e6, 159e6, 145e6,
	138e6, 134e6, 135e6, 133e6, 114e6, 107e6, 102e6, 90e6,
	83e6, 80e6, 59e6, 64e6, 47e6, 51e6,
}

// GWAS returns n synthetic genome-wide association test results, one
// row per variant. Columns:
//
//	rsid    string   variant identifier ("rs" number, unique)
//	chrom   string   chromosome, "1" through "22"
//	pos     int      position on the chromosome in bases
//	beta    float64  estimated effect size
//	pvalue  float64  two-sided association p-value
//
// Most variants are null: their z-scores are standard normal, so
// their p-values are uniform. A handful of planted hits get effects
// large enough to clear the conventional genome-wide significance
// threshold of 5e-8, and an equal handful sit in the suggestive band
// between 5e-8 and 1e-5. P-values come from the usual Wald test:
// p = erfc(|beta/se| / sqrt(2)).
func GWAS(seed int64, n int) *table.Table {
	rng := rand.New(rand.NewSource(seed))
	hits := n / 400
	if hits < 3 {
		hits = 3
	}

	seen := make(map[string]bool)
	rsid := make([]string, n)
	chrom := make([]string, n)
	pos := make([]int, n)
	beta := make([]float64, n)
	pvalue := make([]float64, n)
	for i := 0; i < n; i++ {
		se := 0.008 + 0.004*rng.Float64()
		var z float64
		switch {
		case i < hits:
			// Planted hit, safely past genome-wide significance.
			z = 6 + 3*rng.Float64()
		case i < 2*hits:
			// Near-threshold association in the suggestive band.
			z = 4.6 + 0.7*rng.Float64()
		default:
			z = math.Abs(rng.NormFloat64())
		}
		b := z * se
		if rng.Intn(2) == 0 {
			b = -b
		}
		p := math.Erfc(z / math.Sqrt2)

		var id string
		for {
			id = fmt.Sprintf("rs%d", 1000000+rng.Intn(998999999))
			if !seen[id] {
				seen[id] = true
				break
			}
		}
		c := rng.Intn(len(chromSizes))

		rsid[i] = id
		chrom[i] = strconv.Itoa(c + 1)
		pos[i] = 1 + rng.Intn(chromSizes[c])
		beta[i] = b
		pvalue[i] = p
	}
	return new(table.Builder).Add("rsid", rsid).Add("chrom", chrom).
		Add("pos", pos).Add("beta", beta).Add("pvalue", pvalue).Done()
}
