// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Scoreplot draws the game scores recorded during training as a line
// chart.
//
// Usage:
//
//	scoreplot [flags] [scores.txt]
//
// The input holds one integer score per line, in episode order. It
// defaults to 2048_scores.txt, the file the training program appends
// to; "-" reads standard input.
//
// With -window N, scoreplot also draws the moving average of the last
// N scores, which is usually easier to read than the raw scores.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/perfplot/chart"
	"golang.org/x/perfplot/internal/plotcmd"
	"golang.org/x/perfplot/series"
)

func main() {
	plotcmd.Main("scoreplot", scoreplot)
}

func scoreplot(stdout, stderr io.Writer, args []string) error {
	fs := flag.NewFlagSet("scoreplot", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: scoreplot [flags] [scores.txt]\n")
		fs.PrintDefaults()
	}
	flags := plotcmd.Register(fs, "scores.png")
	window := fs.Int("window", 0, "also plot the moving average over `n` episodes")
	if err := plotcmd.Parse(fs, args); err != nil {
		return err
	}
	if fs.NArg() > 1 || *window < 0 {
		fs.Usage()
		return plotcmd.ErrUsage
	}

	path := "2048_scores.txt"
	if fs.NArg() == 1 {
		path = fs.Arg(0)
	}
	var scores *series.Series
	var err error
	if path == "-" {
		scores, err = series.ReadInts(os.Stdin, path)
	} else {
		scores, err = series.LoadInts(path)
	}
	if err != nil {
		return err
	}

	ss := []*series.Series{scores}
	if *window > 1 {
		ss = append(ss, scores.Smooth(*window))
	}
	return flags.Plot(stdout, &chart.Spec{
		Title:  "Training Scores",
		XLabel: "Episode",
		YLabel: "Score",
		Kind:   chart.Line,
		Series: ss,
	})
}
