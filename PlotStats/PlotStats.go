// Copyright ©2025 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Plot the distributions of assembly statistics from a semicolon-separated
// table of per-assembly metrics as five horizontal boxplots: assembly
// size, scaffold count, N50, GC ratio and N ratio. The figure is written
// next to the input, named after it with the requested image extension.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/biogo/asmmeta/stats"
)

const usage = `Usage:
    %[1]s <input_stats_file> [output_extension] [transparent]
    input_stats_file    file path, output from count-fasta-rs
    output_extension    resulting image will end up with an extension of 'png', 'pdf', 'svg' [Default: 'png']
    transparent         'transparent' results in a transparent figure

    Example:
    %[1]s ./Aphelenchoides_19-02-2025_stats1.csv
    %[1]s ./Aphelenchoides_19-02-2025_stats1.csv pdf
    %[1]s ./Aphelenchoides_19-02-2025_stats1.csv svg
    %[1]s ./Aphelenchoides_19-02-2025_stats1.csv png transparent
`

// options are the positional arguments of the command.
type options struct {
	in          string
	format      string
	transparent bool
}

// parseArgs returns the options given by args. It returns false if the
// input file is not given.
func parseArgs(args []string) (opts options, ok bool) {
	if len(args) < 1 {
		return opts, false
	}
	opts.in = args[0]
	opts.format = stats.DefaultFormat
	if len(args) > 1 {
		opts.format = args[1]
	}
	if len(args) > 2 {
		opts.transparent = args[2] == "transparent"
	}
	return opts, true
}

// stem returns path without its extension. Leading dots of the base
// name do not start an extension, so ".stats" has none.
func stem(path string) string {
	base := strings.TrimLeft(filepath.Base(path), ".")
	return strings.TrimSuffix(path, filepath.Ext(base))
}

func main() {
	help := flag.Bool("help", false, "help prints this message.")
	flag.Usage = func() { printUsage(os.Stderr) }
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}

	path, err := plotStats(flag.Args(), os.Stderr)
	if err != nil {
		log.Fatal(err)
	}
	if path != "" {
		fmt.Fprintf(os.Stderr, "Wrote `%s'.\n", path)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, usage, os.Args[0])
}

// plotStats plots the statistics table named by args, reporting to w,
// and returns the path of the figure. If no table is named it prints
// the usage message and returns an empty path.
func plotStats(args []string, w io.Writer) (string, error) {
	opts, ok := parseArgs(args)
	if !ok {
		printUsage(w)
		return "", nil
	}
	return run(opts, w)
}

// run reads the statistics table named in opts, writes its summary to
// w and saves the figure, returning the path written.
func run(opts options, w io.Writer) (string, error) {
	f, err := os.Open(opts.in)
	if err != nil {
		return "", fmt.Errorf("failed to open %q: %v", opts.in, err)
	}
	defer f.Close()
	fmt.Fprintf(w, "Reading statistics from `%s'.\n", opts.in)
	t, err := stats.Read(f)
	if err != nil {
		return "", fmt.Errorf("failed to read %q: %v", opts.in, err)
	}

	err = stats.WriteSummary(w, stats.Summarize(t))
	if err != nil {
		return "", err
	}

	path, err := stats.Save(t, stem(opts.in), opts.format, opts.transparent)
	if err != nil {
		return "", fmt.Errorf("failed to plot %q: %v", opts.in, err)
	}
	return path, nil
}
