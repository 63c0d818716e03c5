// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"io"
	"math"
	"sort"
	"strconv"

	"github.com/aclements/go-moremath/stats"

	"golang.org/x/perfplot/internal/texttab"
)

// A Summary describes the distribution of a series' y values.
type Summary struct {
	Label string
	N     int

	Mean, StdDev     float64
	Min, Median, Max float64
}

// Summarize computes summary statistics over the values of s. For an
// empty series, every statistic is NaN. StdDev is NaN for a series of
// one value.
func Summarize(s *Series) Summary {
	sum := Summary{Label: s.Label, N: len(s.Values)}
	if sum.N == 0 {
		nan := math.NaN()
		sum.Mean, sum.StdDev, sum.Min, sum.Median, sum.Max = nan, nan, nan, nan, nan
		return sum
	}

	xs := append([]float64(nil), s.Values...)
	sort.Float64s(xs)
	sample := stats.Sample{Xs: xs, Sorted: true}

	sum.Mean = sample.Mean()
	sum.StdDev = math.NaN()
	if sum.N > 1 {
		sum.StdDev = sample.StdDev()
	}
	sum.Min, sum.Max = sample.Bounds()
	sum.Median = sample.Quantile(0.5)
	return sum
}

// WriteSummaries writes a table of summaries to w, one row per
// summary. Undefined statistics are shown as "-".
func WriteSummaries(w io.Writer, sums []Summary) error {
	var tab texttab.Table
	tab.Row().Cell("series")
	for _, h := range []string{"n", "mean", "stddev", "min", "median", "max"} {
		tab.Cell(h, texttab.Right)
	}
	for _, s := range sums {
		tab.Row().Cell(s.Label).Cell(strconv.Itoa(s.N), texttab.Right)
		for _, v := range []float64{s.Mean, s.StdDev, s.Min, s.Median, s.Max} {
			tab.Cell(formatStat(v), texttab.Right)
		}
	}
	return tab.Format(w)
}

func formatStat(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
