// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Speedupchart draws a grouped bar chart of the speedup of each
// parallel expectimax search strategy over the sequential search, at
// search depths 3 and 5.
//
// Usage:
//
//	speedupchart [flags]
//
// The chart is written to speedup.png unless -o names another file.
// The image format follows the extension of the output file: .png,
// .svg or .pdf.
package main

import (
	"flag"
	"fmt"
	"io"

	"golang.org/x/perfplot/chart"
	"golang.org/x/perfplot/internal/plotcmd"
	"golang.org/x/perfplot/series"
)

var strategies = []string{
	"Sequential",
	"Strategy 1",
	"Strategy 2 w. 4 threads",
	"Strategy 2 w. 11 threads",
}

// speedups returns the measured speedups, one series per search depth,
// each with one value per strategy.
func speedups() []*series.Series {
	return []*series.Series{
		series.New("Depth = 3", 1, 1.831720135, 2.1278, 2.701581343),
		series.New("Depth = 5", 1, 2.659, 2.82627, 4.1124),
	}
}

func main() {
	plotcmd.Main("speedupchart", speedupchart)
}

func speedupchart(stdout, stderr io.Writer, args []string) error {
	fs := flag.NewFlagSet("speedupchart", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: speedupchart [flags]\n")
		fs.PrintDefaults()
	}
	flags := plotcmd.Register(fs, "speedup.png")
	noAnnotate := fs.Bool("noannotate", false, "do not label bars with their values")
	if err := plotcmd.Parse(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return plotcmd.ErrUsage
	}

	return flags.Plot(stdout, &chart.Spec{
		Title:      "Speedup Comparison under Different Depths",
		YLabel:     "Speedup",
		Kind:       chart.Bar,
		Series:     speedups(),
		Categories: strategies,
		Annotate:   !*noAnnotate,
	})
}
