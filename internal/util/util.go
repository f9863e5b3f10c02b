// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package util

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"unicode"

	"golang.org/x/mod/modfile"
)

func Warn(f string, args ...any) {
	fmt.Fprintf(os.Stderr, f+"\n", args...)
}

func Fatal(f string, args ...any) {
	fmt.Fprintf(os.Stderr, f+"\n", args...)
	os.Exit(1)
}

// FatalErr prints an error description and exits the program if the
// err != nil.
func FatalErr(what string, err error) {
	if err == nil {
		return
	}
	s := err.Error() + "\n"
	if what != "" {
		s = what + ": " + s
	}
	os.Stderr.WriteString(s)
	os.Exit(1)
}

// Module returns the path of the main module, the one containing the current
// working directory.
func Module() (string, error) {
	out, err := exec.Command("go", "env", "GOMOD").Output()
	if err != nil {
		return "", err
	}
	gomod := filepath.Clean(string(bytes.TrimRightFunc(out, unicode.IsSpace)))
	if gomod == "" || gomod == "." || gomod == os.DevNull {
		return "", fmt.Errorf("go.mod file not found in current directory or any parent directory")
	}
	data, err := os.ReadFile(gomod)
	if err != nil {
		return "", err
	}
	return ModulePath(gomod, data)
}

// ModulePath returns the module path declared in the go.mod file content.
func ModulePath(name string, data []byte) (string, error) {
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("there is no module directive in %s", name)
	}
	return path, nil
}
