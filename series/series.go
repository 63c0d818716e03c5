// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package series loads named numeric series for plotting.
//
// A Series is an ordered sequence of y values with an optional parallel
// sequence of x values. Series come from three kinds of sources:
// literal values (New, NewXY), files of newline-delimited integers
// (LoadInts), and semi-structured text such as training logs, from
// which (x, y) pairs are extracted with a regular expression
// (LoadMatches).
//
// Series are not modified after construction. Derived series, such as
// the result of Smooth, are always new values.
package series

import (
	"errors"
	"fmt"
)

// ErrLength is returned when a series' x and y values differ in length.
var ErrLength = errors.New("x and y values differ in length")

// A Series is a named, ordered sequence of numeric values.
//
// Series implements gonum's plotter.Valuer and plotter.XYer, so it can
// be passed directly to bar and line plotters.
type Series struct {
	// Label names the series in legends and summaries.
	Label string

	// Values are the y values, in plotting order.
	Values []float64

	// X gives the x value of each point. If nil, point i is
	// plotted at x=i.
	X []float64
}

// New returns a Series with the given label and a copy of values.
func New(label string, values ...float64) *Series {
	return &Series{Label: label, Values: append([]float64(nil), values...)}
}

// NewXY returns a Series with explicit x values. It copies x and y and
// returns ErrLength if they differ in length.
func NewXY(label string, x, y []float64) (*Series, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("series %q: %w (%d x, %d y)", label, ErrLength, len(x), len(y))
	}
	return &Series{
		Label:  label,
		Values: append([]float64(nil), y...),
		X:      append([]float64(nil), x...),
	}, nil
}

// Validate checks the invariants of s.
func (s *Series) Validate() error {
	if s.X != nil && len(s.X) != len(s.Values) {
		return fmt.Errorf("series %q: %w (%d x, %d y)", s.Label, ErrLength, len(s.X), len(s.Values))
	}
	return nil
}

// Len returns the number of points in s.
func (s *Series) Len() int {
	return len(s.Values)
}

// Value returns the i'th y value.
func (s *Series) Value(i int) float64 {
	return s.Values[i]
}

// XY returns the i'th point. If s has no x values, x is i.
func (s *Series) XY(i int) (x, y float64) {
	if s.X == nil {
		return float64(i), s.Values[i]
	}
	return s.X[i], s.Values[i]
}

// Smooth returns a new series whose i'th value is the mean of the
// window values of s ending at i. Near the start of the series, where
// fewer than window values are available, it averages what there is.
// A window of 1 or less returns a copy of s.
//
// The label of the result is s's label with " (avg N)" appended.
func (s *Series) Smooth(window int) *Series {
	out := &Series{Label: s.Label, Values: make([]float64, len(s.Values))}
	if s.X != nil {
		out.X = append([]float64(nil), s.X...)
	}
	if window <= 1 {
		copy(out.Values, s.Values)
		return out
	}
	out.Label = fmt.Sprintf("%s (avg %d)", s.Label, window)

	var sum float64
	for i, v := range s.Values {
		sum += v
		n := i + 1
		if i >= window {
			sum -= s.Values[i-window]
			n = window
		}
		out.Values[i] = sum / float64(n)
	}
	return out
}
