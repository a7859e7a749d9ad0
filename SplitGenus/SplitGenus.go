// Copyright ©2025 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Split a tab-separated genome assembly metadata table (for example an
// NCBI datasets summary) into one table per genus. The genus is the first
// word of the organism name once taxonomic qualifiers are removed, and
// Salmonella assemblies are omitted. Each table is written to
// <outdir>/<genus>/<genus>_<date>.tsv where date is the DD-MM-YYYY
// token of the input file name, or None.
//
// Usage:
//
//	SplitGenus <input.tsv> <outdir>
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/biogo/asmmeta/assembly"
)

func main() {
	help := flag.Bool("help", false, "help prints this message.")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s <input_tsv_path> <output_directory>\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}

	inf, err := filepath.Abs(flag.Arg(0))
	if err != nil {
		log.Fatalf("failed to resolve %q: %v", flag.Arg(0), err)
	}
	outd, err := filepath.Abs(flag.Arg(1))
	if err != nil {
		log.Fatalf("failed to resolve %q: %v", flag.Arg(1), err)
	}

	groups, err := split(inf, outd)
	if err != nil {
		log.Fatal(err)
	}
	report(os.Stdout, groups)
}

// split writes the per-genus tables for the metadata table at inf below
// outd and returns the groups written.
func split(inf, outd string) ([]assembly.Group, error) {
	date := assembly.DateOrPlaceholder(inf)

	f, err := os.Open(inf)
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %v", inf, err)
	}
	defer f.Close()
	recs, err := assembly.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %v", inf, err)
	}

	recs = assembly.Filter(recs)
	assembly.Annotate(recs)
	groups := assembly.GroupByGenus(recs)

	fmt.Printf("Beginning to separate %d genera, this will take a while\n", len(groups))
	err = assembly.WriteGroups(outd, date, groups)
	if err != nil {
		return nil, fmt.Errorf("failed to write genus tables: %v", err)
	}
	return groups, nil
}

// report prints the number of assemblies written for each genus.
func report(w io.Writer, groups []assembly.Group) {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	defer tw.Flush()
	fmt.Fprintln(tw, "genus\tassemblies")
	var total int
	for _, g := range groups {
		fmt.Fprintf(tw, "%s\t%d\n", g.Genus, len(g.Records))
		total += len(g.Records)
	}
	fmt.Fprintf(tw, "total\t%d\n", total)
}
