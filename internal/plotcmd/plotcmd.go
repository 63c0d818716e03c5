// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plotcmd holds the flags and output handling shared by the
// plotting commands.
package plotcmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"gonum.org/v1/plot/vg"

	"golang.org/x/perfplot/chart"
	"golang.org/x/perfplot/series"
)

// ErrUsage is returned by a command when its arguments are invalid.
// The usage message has already been printed.
var ErrUsage = errors.New("invalid usage")

// Flags are the output flags common to all plotting commands.
type Flags struct {
	Out    string
	Title  string
	Width  float64
	Height float64
	Stats  bool
}

// Register defines the common flags on fs. out is the default output
// file.
func Register(fs *flag.FlagSet, out string) *Flags {
	f := &Flags{}
	def := chart.DefaultStyle()
	fs.StringVar(&f.Out, "o", out, "write the chart to `file` (.png, .svg or .pdf)")
	fs.StringVar(&f.Title, "title", "", "override the chart title")
	fs.Float64Var(&f.Width, "width", float64(def.Width/vg.Inch), "chart width in `inches`")
	fs.Float64Var(&f.Height, "height", float64(def.Height/vg.Inch), "chart height in `inches`")
	fs.BoolVar(&f.Stats, "stats", false, "print summary statistics of each series")
	return f
}

// Parse parses args with fs, mapping any parse failure to ErrUsage.
func Parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	return nil
}

// Plot renders spec with the options in f, writes the chart to f.Out,
// and, if requested, writes summary statistics to stdout. The size
// and title options apply to spec; the Style it points to is not
// modified.
//
// Nothing is written if spec cannot be rendered.
func (f *Flags) Plot(stdout io.Writer, spec *chart.Spec) error {
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("chart size %gx%g must be positive", f.Width, f.Height)
	}
	style := chart.DefaultStyle()
	if spec.Style != nil {
		s := *spec.Style
		style = &s
	}
	style.Width = vg.Length(f.Width) * vg.Inch
	style.Height = vg.Length(f.Height) * vg.Inch
	spec.Style = style
	if f.Title != "" {
		spec.Title = f.Title
	}

	r, err := chart.Render(spec)
	if err != nil {
		return err
	}
	if err := r.Save(f.Out); err != nil {
		return err
	}

	if f.Stats {
		sums := make([]series.Summary, len(spec.Series))
		for i, s := range spec.Series {
			sums[i] = series.Summarize(s)
		}
		return series.WriteSummaries(stdout, sums)
	}
	return nil
}

// Main runs a command's entry point with the process's arguments and
// exits on error. Usage errors exit with status 2; others are logged
// with the command name and exit with status 1.
func Main(name string, run func(stdout, stderr io.Writer, args []string) error) {
	log.SetPrefix(name + ": ")
	log.SetFlags(0)
	err := run(os.Stdout, os.Stderr, os.Args[1:])
	if errors.Is(err, ErrUsage) {
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}
