// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNew(t *testing.T) {
	vals := []float64{1, 1.83, 2.13, 2.70}
	s := New("Depth=3", vals...)
	vals[0] = 100
	if s.Value(0) != 1 {
		t.Errorf("New did not copy values: got %v", s.Values)
	}
	if s.Len() != 4 {
		t.Errorf("want len 4, got %d", s.Len())
	}
	if x, y := s.XY(3); x != 3 || y != 2.70 {
		t.Errorf("XY(3) = %v, %v; want 3, 2.70", x, y)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestNewXY(t *testing.T) {
	s, err := NewXY("curve", []float64{0.5, 1.5}, []float64{10, 20})
	if err != nil {
		t.Fatal(err)
	}
	if x, y := s.XY(1); x != 1.5 || y != 20 {
		t.Errorf("XY(1) = %v, %v; want 1.5, 20", x, y)
	}

	_, err = NewXY("bad", []float64{1}, []float64{1, 2})
	if !errors.Is(err, ErrLength) {
		t.Errorf("want ErrLength, got %v", err)
	}

	bad := &Series{Label: "bad", Values: []float64{1, 2}, X: []float64{1}}
	if err := bad.Validate(); !errors.Is(err, ErrLength) {
		t.Errorf("Validate: want ErrLength, got %v", err)
	}
}

func TestSmooth(t *testing.T) {
	s := New("scores", 1, 2, 3, 4)
	for _, test := range []struct {
		window int
		label  string
		want   []float64
	}{
		{0, "scores", []float64{1, 2, 3, 4}},
		{1, "scores", []float64{1, 2, 3, 4}},
		{2, "scores (avg 2)", []float64{1, 1.5, 2.5, 3.5}},
		{3, "scores (avg 3)", []float64{1, 1.5, 2, 3}},
		{10, "scores (avg 10)", []float64{1, 1.5, 2, 2.5}},
	} {
		got := s.Smooth(test.window)
		if got.Label != test.label {
			t.Errorf("Smooth(%d): want label %q, got %q", test.window, test.label, got.Label)
		}
		if diff := cmp.Diff(test.want, got.Values); diff != "" {
			t.Errorf("Smooth(%d): values mismatch (-want +got):\n%s", test.window, diff)
		}
	}
	if diff := cmp.Diff([]float64{1, 2, 3, 4}, s.Values); diff != "" {
		t.Errorf("Smooth modified its receiver (-want +got):\n%s", diff)
	}
}
