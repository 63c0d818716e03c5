// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"math"
	"strings"
	"testing"
)

func TestSummarize(t *testing.T) {
	sum := Summarize(New("scores", 30, 10, 20))
	if sum.Label != "scores" || sum.N != 3 {
		t.Errorf("want scores/3, got %s/%d", sum.Label, sum.N)
	}
	check := func(name string, got, want float64) {
		t.Helper()
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("%s: want %v, got %v", name, want, got)
		}
	}
	check("mean", sum.Mean, 20)
	check("stddev", sum.StdDev, 10)
	check("min", sum.Min, 10)
	check("median", sum.Median, 20)
	check("max", sum.Max, 30)
}

func TestSummarizeEmpty(t *testing.T) {
	sum := Summarize(New("none"))
	if sum.N != 0 {
		t.Errorf("want N=0, got %d", sum.N)
	}
	for _, v := range []float64{sum.Mean, sum.StdDev, sum.Min, sum.Median, sum.Max} {
		if !math.IsNaN(v) {
			t.Errorf("want NaN statistics for an empty series, got %+v", sum)
			break
		}
	}
}

func TestWriteSummaries(t *testing.T) {
	var buf strings.Builder
	sums := []Summary{
		Summarize(New("scores", 10, 20, 30)),
		Summarize(New("one", 5)),
		Summarize(New("none")),
	}
	if err := WriteSummaries(&buf, sums); err != nil {
		t.Fatal(err)
	}
	want := `series n  mean stddev   min median   max
scores 3 20.00  10.00 10.00  20.00 30.00
one    1  5.00      -  5.00   5.00  5.00
none   0     -      -     -      -     -
`
	if got := buf.String(); got != want {
		t.Errorf("want:\n%sgot:\n%s", want, got)
	}
}
