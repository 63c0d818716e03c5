// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
)

// A Pattern extracts an (x, y) point from a line of text.
//
// The underlying regular expression has exactly two capture groups.
// The first captures x and the second captures y.
type Pattern struct {
	re *regexp.Regexp
}

const number = `[-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?`

// LogPattern matches the periodic evaluation lines printed by a
// training run, such as
//
//	[LOG] time=12.5s, world_size=4, ep_per_proc=1000, epsilon=0.1, eval_avg_score=5321.7
//
// It extracts the elapsed time in seconds as x and the average
// evaluation score as y.
var LogPattern = MustCompilePattern(`time=(` + number + `)s.*eval_avg_score=(` + number + `)`)

// CompilePattern parses a regular expression for use as a Pattern. It
// returns an error if expr does not have exactly two capture groups.
func CompilePattern(expr string) (*Pattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}
	if n := re.NumSubexp(); n != 2 {
		return nil, fmt.Errorf("pattern %q has %d capture groups, want 2", expr, n)
	}
	return &Pattern{re}, nil
}

// MustCompilePattern is like CompilePattern but panics on error.
func MustCompilePattern(expr string) *Pattern {
	p, err := CompilePattern(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the source text of the pattern.
func (p *Pattern) String() string {
	return p.re.String()
}

// Match extracts a point from line. It reports false if line does not
// match p or if either capture is not a number.
func (p *Pattern) Match(line string) (x, y float64, ok bool) {
	m := p.re.FindStringSubmatch(line)
	if m == nil {
		return 0, 0, false
	}
	x, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, 0, false
	}
	y, err = strconv.ParseFloat(m[2], 64)
	if err != nil {
		return 0, 0, false
	}
	return x, y, true
}

// LoadMatches scans the file at path and returns a series of the
// points p extracts from it, in the order they appear. Lines that do
// not match p are skipped: log files routinely interleave unrelated
// output. Points are neither sorted nor deduplicated.
//
// The series is labeled with the base name of path, minus its
// extension. LoadMatches returns a *NotFoundError if path does not
// exist. A file with no matching lines yields an empty series.
func LoadMatches(path string, p *Pattern) (*Series, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadMatches(f, path, p)
}

// ReadMatches is like LoadMatches, but reads from r. name is used for
// the series label.
func ReadMatches(r io.Reader, name string, p *Pattern) (*Series, error) {
	s := &Series{Label: labelFor(name), Values: []float64{}, X: []float64{}}
	scan := bufio.NewScanner(r)
	for scan.Scan() {
		x, y, ok := p.Match(scan.Text())
		if !ok {
			continue
		}
		s.X = append(s.X, x)
		s.Values = append(s.Values, y)
	}
	if err := scan.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return s, nil
}
