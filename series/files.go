// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// A ReadFunc reads one series from r. name is the input's file name,
// or "-" for stdin.
type ReadFunc func(r io.Reader, name string) (*Series, error)

// Files loads one series from each of a sequence of input files.
//
// By default each series is labeled by its loader, which derives the
// label from the file name. Duplicate file names are disambiguated by
// appending "#N". If AllowLabels is true, entries in Paths may be of
// the form label=path, and label is used as-is.
type Files struct {
	// Paths is the list of file names to read in.
	Paths []string

	// Read parses a single input.
	Read ReadFunc

	// AllowStdin indicates that the path "-" should be treated as
	// stdin and if the file list is empty, it should be treated
	// as consisting of stdin.
	AllowStdin bool

	// AllowLabels indicates that custom labels are allowed in
	// Paths.
	AllowLabels bool

	// inputs is the sequence of remaining inputs, or nil if this
	// Files has not started yet.
	inputs []input

	cur *Series
	err error
}

type input struct {
	path    string
	label   string // overrides the loader's label if non-empty
	isStdin bool
}

func (f *Files) init() {
	f.inputs = []input{}

	pathCount := make(map[string]int)
	if f.AllowStdin && len(f.Paths) == 0 {
		f.inputs = append(f.inputs, input{"-", "", true})
	}
	for _, path := range f.Paths {
		label := ""
		if i := strings.Index(path, "="); f.AllowLabels && i >= 0 {
			label, path = path[:i], path[i+1:]
		} else {
			pathCount[path]++
		}
		f.inputs = append(f.inputs, input{path, label, f.AllowStdin && path == "-"})
	}

	// Reading the same file twice gives series with the same label,
	// which makes for an unreadable legend.
	pathI := make(map[string]int)
	for i := range f.inputs {
		inp := &f.inputs[i]
		if inp.label != "" || pathCount[inp.path] <= 1 {
			continue
		}
		inp.label = fmt.Sprintf("%s#%d", labelFor(inp.path), pathI[inp.path])
		pathI[inp.path]++
	}
}

// Scan loads the next input and reports whether it succeeded. The
// caller should use the Series method to get the result. If Scan
// reaches the end of the inputs, or if an error occurs, it returns
// false. In this case, the caller should use the Err method to check
// for errors.
func (f *Files) Scan() bool {
	if f.err != nil {
		return false
	}
	if f.inputs == nil {
		f.init()
	}
	if len(f.inputs) == 0 {
		f.cur = nil
		return false
	}
	inp := f.inputs[0]
	f.inputs = f.inputs[1:]

	var s *Series
	if inp.isStdin {
		s, f.err = f.Read(os.Stdin, inp.path)
	} else {
		s, f.err = f.readFile(inp.path)
	}
	if f.err != nil {
		f.cur = nil
		return false
	}
	if inp.label != "" {
		s.Label = inp.label
	}
	f.cur = s
	return true
}

func (f *Files) readFile(path string) (*Series, error) {
	file, err := open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return f.Read(file, path)
}

// Series returns the series loaded by the last call to Scan.
func (f *Files) Series() *Series {
	return f.cur
}

// Err returns the error that stopped Scan, if any.
func (f *Files) Err() error {
	return f.err
}

// All loads every input and returns the series in input order.
func (f *Files) All() ([]*Series, error) {
	var all []*Series
	for f.Scan() {
		all = append(all, f.Series())
	}
	return all, f.Err()
}
