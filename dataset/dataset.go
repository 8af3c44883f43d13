// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset provides the example data behind the figure
// gallery and the volcano notebook.
//
// FuelEconomy is a real table embedded as CSV. The remaining tables
// are generated from a seed, so every byte of the repository's
// output can be reproduced without network access: the same seed
// always yields the same table.
package dataset

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"

	"github.com/aclements/go-gg/table"
	"github.com/pkg/errors"

	_ "embed"
)

//go:embed fuelecon.csv
var fueleconCSV []byte

// FuelEconomy returns city and highway fuel economy figures for a
// range of vehicles, one row per vehicle configuration. Columns:
//
//	manufacturer  string   maker name
//	model         string   model name
//	class         string   vehicle class ("compact", "suv", ...)
//	displ         float64  engine displacement in liters
//	cyl           int      number of cylinders
//	drv           string   drive train: "f", "r", or "4"
//	cty           int      city miles per gallon
//	hwy           int      highway miles per gallon
func FuelEconomy() *table.Table {
	tab, err := ReadCSV(bytes.NewReader(fueleconCSV))
	if err != nil {
		panic("dataset: corrupt embedded fuelecon.csv: " + err.Error())
	}
	return tab
}

// ReadCSV parses CSV data with a header row into a table. Columns
// whose values all parse as integers become []int, columns whose
// values all parse as numbers become []float64, and all other
// columns stay []string.
func ReadCSV(r io.Reader) (*table.Table, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "reading CSV")
	}
	if len(rows) == 0 {
		return nil, errors.New("CSV input has no header row")
	}
	return table.TableFromStrings(rows[0], rows[1:], true), nil
}

// LoadCSV reads the CSV file at path into a table.
func LoadCSV(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tab, err := ReadCSV(f)
	return tab, errors.Wrapf(err, "%s", path)
}
