// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotcmd

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/plot/vg"

	"golang.org/x/perfplot/chart"
	"golang.org/x/perfplot/series"
)

func parse(t *testing.T, args ...string) *Flags {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := Register(fs, filepath.Join(t.TempDir(), "out.png"))
	if err := Parse(fs, args); err != nil {
		t.Fatal(err)
	}
	return f
}

func lineSpec() *chart.Spec {
	return &chart.Spec{
		Title:  "Scores",
		Kind:   chart.Line,
		Series: []*series.Series{series.New("scores", 1, 3, 2)},
	}
}

func TestParseUsage(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	Register(fs, "out.png")
	if err := Parse(fs, []string{"-width", "wide"}); !errors.Is(err, ErrUsage) {
		t.Errorf("want ErrUsage, got %v", err)
	}
}

func TestPlotSize(t *testing.T) {
	for _, args := range [][]string{
		{"-width", "0"},
		{"-height", "-1"},
	} {
		f := parse(t, args...)
		if err := f.Plot(io.Discard, lineSpec()); err == nil {
			t.Errorf("%q: want error for non-positive size", args)
		}
		if _, err := os.Stat(f.Out); !os.IsNotExist(err) {
			t.Errorf("%q: chart written despite an error", args)
		}
	}
}

func TestPlotTitle(t *testing.T) {
	f := parse(t, "-title", "Run 7")
	spec := lineSpec()
	if err := f.Plot(io.Discard, spec); err != nil {
		t.Fatal(err)
	}
	if spec.Title != "Run 7" {
		t.Errorf("title is %q, want %q", spec.Title, "Run 7")
	}

	f = parse(t)
	spec = lineSpec()
	if err := f.Plot(io.Discard, spec); err != nil {
		t.Fatal(err)
	}
	if spec.Title != "Scores" {
		t.Errorf("title is %q, want the default %q", spec.Title, "Scores")
	}
}

func TestPlotKeepsStyle(t *testing.T) {
	style := chart.DefaultStyle()
	f := parse(t, "-width", "3", "-height", "2")
	spec := lineSpec()
	spec.Style = style
	if err := f.Plot(io.Discard, spec); err != nil {
		t.Fatal(err)
	}
	if style.Width != 8*vg.Inch || style.Height != 4*vg.Inch {
		t.Errorf("caller's style changed to %vx%v", style.Width, style.Height)
	}
	if spec.Style.Width != 3*vg.Inch || spec.Style.Height != 2*vg.Inch {
		t.Errorf("chart size is %vx%v, want 3x2 inches", spec.Style.Width, spec.Style.Height)
	}
}

func TestPlotStats(t *testing.T) {
	f := parse(t, "-stats")
	var stdout bytes.Buffer
	if err := f.Plot(&stdout, lineSpec()); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[1], "scores 3") {
		t.Errorf("unexpected stats:\n%s", stdout.String())
	}
}
