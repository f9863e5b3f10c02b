// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package util

import "testing"

func TestModulePath(t *testing.T) {
	gomod := []byte("// comment\nmodule github.com/embeddedgo/max7800x\n\ngo 1.23.0\n")
	path, err := ModulePath("go.mod", gomod)
	if err != nil {
		t.Fatal(err)
	}
	if path != "github.com/embeddedgo/max7800x" {
		t.Errorf("got %q", path)
	}
	if _, err := ModulePath("go.mod", []byte("go 1.23.0\n")); err == nil {
		t.Error("no error for go.mod without module directive")
	}
}
