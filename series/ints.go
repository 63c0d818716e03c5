// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
)

// LoadInts reads a file containing one integer per line, such as a
// score log written by a training run, and returns its values in file
// order. Blank lines are ignored.
//
// The series is labeled with the base name of path, minus its
// extension. LoadInts returns a *NotFoundError if path does not exist
// and a *FormatError for the first non-blank line that is not an
// integer. An empty file yields an empty series.
func LoadInts(path string) (*Series, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadInts(f, path)
}

// ReadInts is like LoadInts, but reads from r. name is used for the
// series label and in error messages.
func ReadInts(r io.Reader, name string) (*Series, error) {
	s := &Series{Label: labelFor(name), Values: []float64{}}
	scan := bufio.NewScanner(r)
	line := 0
	for scan.Scan() {
		line++
		text := strings.TrimSpace(scan.Text())
		if text == "" {
			continue
		}
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, &FormatError{Path: name, Line: line, Text: text, Err: err}
		}
		s.Values = append(s.Values, float64(v))
	}
	if err := scan.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return s, nil
}

// labelFor derives a series label from a file name.
func labelFor(name string) string {
	if name == "-" {
		return "stdin"
	}
	base := filepath.Base(name)
	if label := strings.TrimSuffix(base, filepath.Ext(base)); label != "" {
		return label
	}
	return base
}
