// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// A NotFoundError reports that an input file does not exist.
//
// NotFoundError matches fs.ErrNotExist with errors.Is.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: no such file", e.Path)
}

func (e *NotFoundError) Unwrap() error {
	return fs.ErrNotExist
}

// A FormatError reports a line of an input file that could not be
// parsed.
type FormatError struct {
	Path string
	Line int    // 1-based
	Text string // the offending line
	Err  error  // underlying parse error, if any
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s:%d: cannot parse %q as an integer", e.Path, e.Line, e.Text)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// open opens path for reading, converting a missing file into a
// *NotFoundError.
func open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &NotFoundError{path}
	}
	return f, err
}
