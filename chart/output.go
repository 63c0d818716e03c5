// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// Formats lists the image formats WriteTo accepts.
var Formats = []string{"png", "svg", "pdf"}

func (r *Result) canvas(format string) (vg.CanvasWriterTo, error) {
	w, h := r.style.Width, r.style.Height
	switch format {
	case "png":
		return vgimg.PngCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(w, h),
			vgimg.UseDPI(r.style.DPI), vgimg.UseBackgroundColor(color.White))}, nil
	case "svg":
		return vgsvg.New(w, h), nil
	case "pdf":
		return vgpdf.New(w, h), nil
	}
	return nil, fmt.Errorf("unknown image format %q (want one of %s)", format, strings.Join(Formats, ", "))
}

// WriteTo draws the chart and writes it to w as an image in the given
// format, one of Formats.
func (r *Result) WriteTo(w io.Writer, format string) (int64, error) {
	c, err := r.canvas(format)
	if err != nil {
		return 0, err
	}
	r.Plot.Draw(draw.New(c))
	return c.WriteTo(w)
}

// Save writes the chart to the file at path. The image format is
// chosen by the file's extension.
//
// The format is checked before path is created, so an unknown
// extension leaves no file behind.
func (r *Result) Save(path string) (err error) {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if !slices.Contains(Formats, format) {
		return fmt.Errorf("%s: unknown image format %q (want one of %s)", path, format, strings.Join(Formats, ", "))
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	_, err = r.WriteTo(f, format)
	return err
}
