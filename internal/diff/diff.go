// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diff describes differences between expected and actual
// command output in tests.
package diff

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// Diff returns a human-readable description of the differences between
// want and got, or "" if they are equal. If the "diff" command is
// available, the description is a unified diff.
func Diff(want, got string) string {
	if want == got {
		return ""
	}
	if _, err := exec.LookPath("diff"); err != nil {
		return fmt.Sprintf("want:\n%sgot:\n%s", want, got)
	}
	dir, err := os.MkdirTemp("", "perfplot-diff")
	if err != nil {
		return err.Error()
	}
	defer os.RemoveAll(dir)

	for name, data := range map[string]string{"want": want, "got": got} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0666); err != nil {
			return err.Error()
		}
	}

	cmd := exec.Command("diff", "-u", "want", "got")
	cmd.Dir = dir
	data, err := cmd.CombinedOutput()
	if len(data) > 0 {
		// diff exits with a non-zero status when the files
		// differ. That's expected as long as there is output.
		return string(data)
	}
	if err != nil {
		return err.Error()
	}
	return fmt.Sprintf("want:\n%sgot:\n%s", want, got)
}
