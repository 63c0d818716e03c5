// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart renders series as labeled bar and line charts.
//
// A Spec describes one chart independently of how it is displayed.
// Render turns a Spec into a gonum plot, which can then be written as
// PNG, SVG or PDF.
package chart

import (
	"fmt"
	"image/color"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"golang.org/x/perfplot/series"
)

// Kind is the type of chart to draw.
type Kind int

const (
	// Bar draws one bar per value, grouping the i'th value of
	// every series into category i.
	Bar Kind = iota
	// Line draws each series as a polyline with point markers.
	Line
)

func (k Kind) String() string {
	switch k {
	case Bar:
		return "bar"
	case Line:
		return "line"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// A Spec describes a chart to render.
type Spec struct {
	Title  string
	XLabel string
	YLabel string

	Kind   Kind
	Series []*series.Series

	// Annotate labels every bar or point with its value.
	Annotate bool

	// Categories names the categories of a bar chart. If set, it
	// must have one entry per value of each series. If nil,
	// categories are numbered from 1.
	Categories []string

	// Style configures the appearance of the chart. If nil,
	// DefaultStyle is used.
	Style *Style
}

// Style holds the presentation settings of a chart.
type Style struct {
	// Colors are assigned to series in order, cycling if there are
	// more series than colors.
	Colors []color.Color

	// BarWidth is the width of a single bar and BarGap the space
	// between bars of the same category, both as fractions of the
	// distance between categories. If the bars of a category do not
	// fit, both are scaled down.
	BarWidth, BarGap float64

	// Width and Height give the size of the written image. DPI
	// applies to PNG output only.
	Width, Height vg.Length
	DPI           int

	// AnnotateFormat is the fmt verb used for value labels.
	AnnotateFormat string

	// Headroom grows the top of the Y axis by this fraction of its
	// maximum, making room for the legend and value labels.
	Headroom float64
}

// DefaultStyle returns the style used when a Spec has none.
func DefaultStyle() *Style {
	colors := []color.Color{
		color.NRGBA{0x4C, 0x72, 0xB0, 0xFF},
		color.NRGBA{0xC4, 0x4E, 0x52, 0xFF},
	}
	return &Style{
		Colors:         append(colors, plotutil.SoftColors...),
		BarWidth:       0.35,
		Width:          8 * vg.Inch,
		Height:         4 * vg.Inch,
		DPI:            150,
		AnnotateFormat: "%.2f",
		Headroom:       0.15,
	}
}

func (s *Style) color(i int) color.Color {
	if len(s.Colors) == 0 {
		return color.Black
	}
	return s.Colors[i%len(s.Colors)]
}

// A ShapeError reports series that cannot be drawn together.
type ShapeError struct {
	Reason string
}

func (e *ShapeError) Error() string {
	return "chart: " + e.Reason
}

// A Result is a rendered chart.
type Result struct {
	// Plot is the fully configured plot.
	Plot *plot.Plot

	// Bars and Lines count the bars and polylines drawn.
	Bars, Lines int

	// Annotations are the value labels drawn, in series order.
	Annotations []string

	// Legend reports whether the chart has a legend.
	Legend bool

	style  *Style
	groups []*barGroup
}

// Render builds the chart described by spec.
//
// Render returns a *ShapeError if spec has no series, if a series'
// x and y values differ in length, or if the series of a bar chart
// differ in length.
//
// Line charts always have a legend naming each series. Bar charts
// have one when they compare more than one series.
func Render(spec *Spec) (*Result, error) {
	if len(spec.Series) == 0 {
		return nil, &ShapeError{"no series to plot"}
	}
	for i, s := range spec.Series {
		if s == nil {
			return nil, &ShapeError{fmt.Sprintf("series %d is nil", i)}
		}
		if err := s.Validate(); err != nil {
			return nil, &ShapeError{err.Error()}
		}
	}

	style := spec.Style
	if style == nil {
		style = DefaultStyle()
	}

	pl := plot.New()
	pl.Title.Text = spec.Title
	pl.X.Label.Text = spec.XLabel
	pl.Y.Label.Text = spec.YLabel

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	grid.Horizontal.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	pl.Add(grid)

	r := &Result{Plot: pl, Legend: spec.Kind == Line || len(spec.Series) > 1, style: style}
	if r.Legend {
		pl.Legend.Top = true
		pl.Legend.Left = true
	}

	var err error
	switch spec.Kind {
	case Bar:
		err = r.bars(spec)
	case Line:
		err = r.lines(spec)
	default:
		err = fmt.Errorf("chart: unknown kind %v", spec.Kind)
	}
	if err != nil {
		return nil, err
	}

	if style.Headroom > 0 && pl.Y.Max > 0 {
		pl.Y.Max *= 1 + style.Headroom
	}
	return r, nil
}

// bars draws a grouped bar chart. The bars of each category are laid
// out side by side, centered on the category's tick.
func (r *Result) bars(spec *Spec) error {
	n := spec.Series[0].Len()
	for _, s := range spec.Series[1:] {
		if s.Len() != n {
			return &ShapeError{fmt.Sprintf("bar series %q has %d values, %q has %d",
				s.Label, s.Len(), spec.Series[0].Label, n)}
		}
	}
	categories := spec.Categories
	if categories == nil {
		for i := 0; i < n; i++ {
			categories = append(categories, strconv.Itoa(i+1))
		}
	} else if len(categories) != n {
		return &ShapeError{fmt.Sprintf("%d categories for %d values per series", len(categories), n)}
	}

	width, step := barLayout(len(spec.Series), r.style.BarWidth, r.style.BarGap)
	for i, s := range spec.Series {
		c := r.style.color(i)
		if n == 0 {
			// NewBarChart rejects empty data.
			if r.Legend {
				r.Plot.Legend.Add(s.Label, &plotter.BarChart{Color: c})
			}
			continue
		}
		bc, err := plotter.NewBarChart(s, 1)
		if err != nil {
			return fmt.Errorf("series %q: %w", s.Label, err)
		}
		bc.XMin = barOffset(i, len(spec.Series), step)
		bc.Color = c
		bc.LineStyle.Width = 0

		g := &barGroup{BarChart: bc, width: width}
		if r.Legend {
			r.Plot.Legend.Add(s.Label, g)
		}
		r.Plot.Add(g)
		r.groups = append(r.groups, g)
		r.Bars += n

		if spec.Annotate {
			xys := make(plotter.XYs, n)
			for j, v := range s.Values {
				xys[j].X, xys[j].Y = bc.XMin+float64(j), v
			}
			r.annotate(xys)
		}
	}
	if n > 0 {
		r.Plot.NominalX(categories...)
		r.Plot.X.Min, r.Plot.X.Max = -0.5, float64(n)-0.5
	}
	return nil
}

// barLayout returns the width of each of n bars in a category and the
// distance between their centers, as fractions of a category. The
// bars of one category never extend past half the distance to the
// next.
func barLayout(n int, width, gap float64) (w, step float64) {
	w, step = width, width+gap
	if total := float64(n) * step; total > 1 {
		w, step = w/total, step/total
	}
	return w, step
}

// barOffset returns the shift from its category of the i'th of n bars
// whose centers are step apart.
func barOffset(i, n int, step float64) float64 {
	return (float64(i) - float64(n-1)/2) * step
}

// barGroup draws the bars of one series in a grouped bar chart. The
// bar width is a fraction of the distance between categories, so it
// is only known once the plot is laid out on a canvas.
type barGroup struct {
	*plotter.BarChart
	width float64

	// span is the distance between categories when last drawn.
	span vg.Length
}

// Plot implements the plot.Plotter interface.
func (b *barGroup) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, _ := plt.Transforms(&c)
	b.span = trX(1) - trX(0)
	b.Width = vg.Length(b.width) * b.span
	b.BarChart.Plot(c, plt)
}

// GlyphBoxes implements the plot.GlyphBoxer interface. The X range
// of a bar chart leaves half a category on either side, which holds
// the outermost bars, so they need no padding.
func (b *barGroup) GlyphBoxes(*plot.Plot) []plot.GlyphBox {
	return nil
}

// lines draws one polyline with point markers per series.
func (r *Result) lines(spec *Spec) error {
	for i, s := range spec.Series {
		xys := plotter.XYs(nil)
		if s.Len() > 0 {
			var err error
			if xys, err = plotter.CopyXYs(s); err != nil {
				return fmt.Errorf("series %q: %w", s.Label, err)
			}
		}
		l, pts, err := plotter.NewLinePoints(xys)
		if err != nil {
			return fmt.Errorf("series %q: %w", s.Label, err)
		}
		l.Color = r.style.color(i)
		pts.Color = r.style.color(i)
		pts.Shape = draw.CircleGlyph{}

		if r.Legend {
			r.Plot.Legend.Add(s.Label, l, pts)
		}
		if s.Len() == 0 {
			continue
		}
		r.Plot.Add(l, pts)
		r.Lines++

		if spec.Annotate {
			r.annotate(xys)
		}
	}
	return nil
}

func (r *Result) annotate(xys plotter.XYs) {
	vl := &valueLabels{
		XYs:    xys,
		Labels: make([]string, len(xys)),
		Offset: vg.Point{Y: vg.Points(2)},
		Style:  r.Plot.X.Tick.Label,
	}
	vl.Style.XAlign = draw.XCenter
	vl.Style.YAlign = draw.YBottom
	for i, xy := range xys {
		vl.Labels[i] = fmt.Sprintf(r.style.AnnotateFormat, xy.Y)
	}
	r.Plot.Add(vl)
	r.Annotations = append(r.Annotations, vl.Labels...)
}
