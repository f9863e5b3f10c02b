// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !noos

package catalog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/embeddedgo/max7800x/mmap"
	"github.com/embeddedgo/max7800x/mmio"
	"github.com/embeddedgo/max7800x/mmio/sim"
)

func TestLookup(t *testing.T) {
	p, in, err := Lookup("UART", "uart1")
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "UART" || in.Base != mmap.UART1_BASE {
		t.Errorf("got %s %+v", p.Name, in)
	}
	if _, _, err := Lookup("uart", "UART7"); err == nil {
		t.Error("UART7: no error")
	}
	if _, _, err := Lookup("spi", ""); err == nil {
		t.Error("spi: no error")
	}
}

func TestList(t *testing.T) {
	p, _, _ := Lookup("uart", "")
	var buf bytes.Buffer
	if err := List(&buf, p); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"LPUART0", "INT_FL", "rw1c", "RX_FLUSH"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("listing lacks %s", want)
		}
	}
}

func TestDecodeAndSnapshot(t *testing.T) {
	s := sim.New()
	prev := mmio.Use(s)
	defer mmio.Use(prev)
	base := mmap.UART0_BASE
	s.Poke(base+0x00, 3<<10|5)
	s.Poke(base+0x20, 0x41)
	p, _, _ := Lookup("uart", "")

	var buf bytes.Buffer
	if err := Decode(&buf, p, base, []string{"FIFO"}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"CHAR_SIZE", "0x3", "RX_THD_VAL", "0x5", "TX_FLUSH", "FIFO"} {
		if !strings.Contains(out, want) {
			t.Errorf("dump lacks %s:\n%s", want, out)
		}
	}
	if strings.Contains(out, "0x41") {
		t.Error("FIFO was read")
	}

	snap := Snapshot(p, base, []string{"FIFO"})
	if v := snap.Peek(base); v != 3<<10|5 {
		t.Errorf("snapshot CTRL %#x", v)
	}
	if v := snap.Peek(base + 0x20); v != 0 {
		t.Errorf("snapshot FIFO %#x, want 0", v)
	}
	var hex bytes.Buffer
	if err := snap.DumpHex(&hex, base, p.Size()); err != nil {
		t.Fatal(err)
	}
	back := sim.New()
	if err := back.LoadHex(&hex); err != nil {
		t.Fatal(err)
	}
	if v := back.Peek(base); v != 3<<10|5 {
		t.Errorf("replayed CTRL %#x", v)
	}
}
