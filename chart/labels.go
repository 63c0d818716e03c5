// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// valueLabels draws a text label at each point, shifted by Offset in
// canvas coordinates. Labels whose point falls outside the canvas are
// not drawn.
type valueLabels struct {
	XYs    plotter.XYs
	Labels []string
	Offset vg.Point
	Style  draw.TextStyle
}

// Plot implements the plot.Plotter interface.
func (l *valueLabels) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for i, xy := range l.XYs {
		pt := vg.Point{X: trX(xy.X) + l.Offset.X, Y: trY(xy.Y) + l.Offset.Y}
		if !c.Contains(pt) {
			continue
		}
		c.FillText(l.Style, pt, l.Labels[i])
	}
}
