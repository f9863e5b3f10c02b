// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux && !noos

package devmem

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/embeddedgo/max7800x/mmio"
)

// memFile creates a file that stands in for physical memory: page 0 and page 1
// of the "address space".
func memFile(t *testing.T) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "mem")
	if err := os.WriteFile(name, make([]byte, 2*os.Getpagesize()), 0o600); err != nil {
		t.Fatal(err)
	}
	return name
}

func TestWindow(t *testing.T) {
	name := memFile(t)
	base := uintptr(os.Getpagesize()) + 0x400 // not page aligned
	w, err := Open(name, base, 0x40)
	if err != nil {
		t.Fatal(err)
	}
	prev := mmio.Use(w)
	defer mmio.Use(prev)

	r := mmio.U32(base + 0x10)
	r.Store(0xCAFE_F00D)
	if v := r.Load(); v != 0xCAFE_F00D {
		t.Errorf("got %#x, want 0xcafef00d", v)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if v := binary.LittleEndian.Uint32(data[base+0x10:]); v != 0xCAFE_F00D {
		t.Errorf("file content: got %#x, want 0xcafef00d", v)
	}
}

func TestOutsideWindow(t *testing.T) {
	w, err := Open(memFile(t), 0x100, 0x10)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()
	defer func() {
		if recover() == nil {
			t.Error("no panic for access outside the window")
		}
	}()
	w.Load32(0x110)
}
