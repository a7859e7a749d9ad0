// Copyright ©2025 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats reads per-assembly statistics tables and renders the
// distribution of each statistic as a boxplot.
package stats

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/biogo/asmmeta/table"
)

// ErrEmptyColumn is returned when a statistic has no values to plot.
var ErrEmptyColumn = errors.New("stats: no values in column")

// Column describes a plotted statistic.
type Column struct {
	Name  string
	Title string
	Color color.RGBA
}

// Columns are the statistics read and plotted, in figure order.
var Columns = []Column{
	{Name: "assembly_length", Title: "Assembly size (bp.)", Color: color.RGBA{R: 0xff, G: 0x57, B: 0x33, A: 0xff}},
	{Name: "number_of_sequences", Title: "Scaffold count", Color: color.RGBA{R: 0x33, G: 0xff, B: 0x57, A: 0xff}},
	{Name: "N50", Title: "N50 (bp.)", Color: color.RGBA{R: 0x57, G: 0x33, B: 0xff, A: 0xff}},
	{Name: "GC_percentage", Title: "GC ratio (%)", Color: color.RGBA{R: 0xff, G: 0xc3, B: 0x00, A: 0xff}},
	{Name: "N_percentage", Title: "N's ratio (%)", Color: color.RGBA{R: 0xc7, G: 0x00, B: 0x39, A: 0xff}},
}

// Table holds the values of each statistic in Columns.
type Table struct {
	// Rows is the number of records read.
	Rows   int
	values map[string][]float64
}

// Read reads a semicolon-separated statistics table from r. Every
// column in Columns must be present; other columns are ignored. Empty
// fields are treated as missing values.
func Read(r io.Reader) (*Table, error) {
	cr := table.NewReader(r, ';')
	h, err := table.ReadHeader(cr)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}
	names := make([]string, len(Columns))
	for i, col := range Columns {
		names[i] = col.Name
	}
	idx, err := h.Indices(names...)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}

	t := &Table{values: make(map[string][]float64, len(Columns))}
	for {
		f, err := cr.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("stats: %w", err)
		}
		line, _ := cr.FieldPos(0)
		t.Rows++
		for i, col := range Columns {
			v, err := table.ParseFloat(col.Name, line, f[idx[i]])
			if err != nil {
				return nil, fmt.Errorf("stats: %w", err)
			}
			if v.Valid {
				t.values[col.Name] = append(t.values[col.Name], v.V)
			}
		}
	}
	return t, nil
}

// Values returns the non-missing values of the named statistic in
// table order.
func (t *Table) Values(name string) []float64 { return t.values[name] }
