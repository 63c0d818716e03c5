// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Curveplot draws learning curves from the logs of distributed
// training runs, one curve per log.
//
// Usage:
//
//	curveplot [flags] [label=]run.log...
//
// Each log is scanned for the periodic evaluation lines printed by the
// training program,
//
//	[LOG] time=12.5s, world_size=4, ..., eval_avg_score=5321.7
//
// and the evaluation score is plotted against elapsed time. Other
// lines are ignored. A curve is labeled with the log's file name, or
// with label if the argument has the form label=path, for example
//
//	curveplot "1 proc=np1.log" "4 procs=np4.log" "8 procs=np8.log"
//
// The -pattern flag replaces the default pattern with a regular
// expression whose two capture groups match x and y.
package main

import (
	"flag"
	"fmt"
	"io"

	"golang.org/x/perfplot/chart"
	"golang.org/x/perfplot/internal/plotcmd"
	"golang.org/x/perfplot/series"
)

func main() {
	plotcmd.Main("curveplot", curveplot)
}

func curveplot(stdout, stderr io.Writer, args []string) error {
	fs := flag.NewFlagSet("curveplot", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: curveplot [flags] [label=]run.log...\n")
		fs.PrintDefaults()
	}
	flags := plotcmd.Register(fs, "curves.png")
	expr := fs.String("pattern", series.LogPattern.String(), "extract (x, y) from lines matching `regexp`")
	if err := plotcmd.Parse(fs, args); err != nil {
		return err
	}

	pattern, err := series.CompilePattern(*expr)
	if err != nil {
		return err
	}
	files := &series.Files{
		Paths:       fs.Args(),
		AllowStdin:  true,
		AllowLabels: true,
		Read: func(r io.Reader, name string) (*series.Series, error) {
			return series.ReadMatches(r, name, pattern)
		},
	}
	curves, err := files.All()
	if err != nil {
		return err
	}

	return flags.Plot(stdout, &chart.Spec{
		Title:  "Learning Curves",
		XLabel: "Time (s)",
		YLabel: "Eval Avg Score",
		Kind:   chart.Line,
		Series: curves,
	})
}
