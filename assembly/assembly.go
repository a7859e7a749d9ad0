// Copyright ©2025 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assembly reads genome assembly metadata tables, derives a genus
// for each assembly from its organism name and writes per-genus subtables.
package assembly

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/biogo/asmmeta/table"
)

// Column names of the assembly metadata table.
const (
	AccessionColumn = "Assembly Accession"
	OrganismColumn  = "Organism Name"
	StrainColumn    = "Organism Infraspecific Names Strain"
	LengthColumn    = "Assembly Stats Total Sequence Length"
	ContigsColumn   = "Assembly Stats Number of Contigs"
	ContigN50Column = "Assembly Stats Contig N50"
	GCCountColumn   = "Assembly Stats GC Count"
	GCPercentColumn = "Assembly Stats GC Percent"
)

// Columns is the projection written for each genus, in output order.
var Columns = []string{
	AccessionColumn,
	OrganismColumn,
	StrainColumn,
	LengthColumn,
	ContigsColumn,
	ContigN50Column,
	GCCountColumn,
	GCPercentColumn,
}

// Record is a single assembly.
type Record struct {
	Accession string
	Organism  string
	Strain    string
	Length    table.Int
	Contigs   table.Int
	ContigN50 table.Int
	GCCount   table.Int
	GCPercent table.Float

	// Genus is derived from Organism by Annotate.
	Genus string
}

// Fields returns the projected fields of r in Columns order.
func (r Record) Fields() []string {
	return []string{
		r.Accession,
		r.Organism,
		r.Strain,
		r.Length.String(),
		r.Contigs.String(),
		r.ContigN50.String(),
		r.GCCount.String(),
		r.GCPercent.String(),
	}
}

// Reader reads Records from a tab-separated assembly metadata table.
type Reader struct {
	r   *csv.Reader
	idx []int
}

// NewReader returns a Reader after reading the table header from r.
// It is an error for any of Columns to be missing from the header;
// other columns are ignored.
func NewReader(r io.Reader) (*Reader, error) {
	cr := table.NewReader(r, '\t')
	h, err := table.ReadHeader(cr)
	if err != nil {
		return nil, err
	}
	idx, err := h.Indices(Columns...)
	if err != nil {
		return nil, err
	}
	return &Reader{r: cr, idx: idx}, nil
}

// Read returns the next Record. At the end of the table Read returns
// io.EOF.
func (r *Reader) Read() (Record, error) {
	f, err := r.r.Read()
	if err != nil {
		return Record{}, err
	}
	line, _ := r.r.FieldPos(0)

	rec := Record{
		Accession: f[r.idx[0]],
		Organism:  f[r.idx[1]],
		Strain:    f[r.idx[2]],
	}
	ints := []struct {
		dst *table.Int
		col int
	}{
		{&rec.Length, 3},
		{&rec.Contigs, 4},
		{&rec.ContigN50, 5},
		{&rec.GCCount, 6},
	}
	for _, v := range ints {
		*v.dst, err = table.ParseInt(Columns[v.col], line, f[r.idx[v.col]])
		if err != nil {
			return Record{}, err
		}
	}
	rec.GCPercent, err = table.ParseFloat(Columns[7], line, f[r.idx[7]])
	if err != nil {
		return Record{}, err
	}
	return rec, nil
}

// ReadAll reads every Record from a tab-separated table.
func ReadAll(r io.Reader) ([]Record, error) {
	ar, err := NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("assembly: %w", err)
	}
	var recs []Record
	for {
		rec, err := ar.Read()
		if err != nil {
			if err == io.EOF {
				return recs, nil
			}
			return nil, fmt.Errorf("assembly: %w", err)
		}
		recs = append(recs, rec)
	}
}

// Write writes recs to w as a tab-separated table of Columns with a
// header line. Fields are quoted only when they hold a tab, a double
// quote or a line break.
func Write(w io.Writer, recs []Record) error {
	cw := table.NewWriter(w, '\t')
	err := cw.Write(Columns)
	if err != nil {
		return err
	}
	for _, r := range recs {
		err = cw.Write(r.Fields())
		if err != nil {
			return err
		}
	}
	return cw.Flush()
}
