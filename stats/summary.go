// Copyright ©2025 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"gonum.org/v1/gonum/stat"
)

// Summary is the five-number summary and mean of a statistic.
type Summary struct {
	Column
	N                        int
	Min, Q1, Median, Q3, Max float64
	Mean                     float64
}

// Summarize returns a Summary for each of Columns. Statistics with no
// values have a zero N and are otherwise zero.
func Summarize(t *Table) []Summary {
	sums := make([]Summary, len(Columns))
	for i, col := range Columns {
		sums[i].Column = col
		v := append([]float64(nil), t.Values(col.Name)...)
		if len(v) == 0 {
			continue
		}
		sort.Float64s(v)
		sums[i].N = len(v)
		sums[i].Min = v[0]
		sums[i].Max = v[len(v)-1]
		sums[i].Q1 = stat.Quantile(0.25, stat.LinInterp, v, nil)
		sums[i].Median = stat.Quantile(0.5, stat.LinInterp, v, nil)
		sums[i].Q3 = stat.Quantile(0.75, stat.LinInterp, v, nil)
		sums[i].Mean = stat.Mean(v, nil)
	}
	return sums
}

// WriteSummary writes sums to w as an aligned table.
func WriteSummary(w io.Writer, sums []Summary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "statistic\tn\tmin\tQ1\tmedian\tQ3\tmax\tmean\t")
	for _, s := range sums {
		fmt.Fprintf(tw, "%s\t%d\t%g\t%g\t%g\t%g\t%g\t%.4g\t\n",
			s.Name, s.N, s.Min, s.Q1, s.Median, s.Q3, s.Max, s.Mean)
	}
	return tw.Flush()
}
