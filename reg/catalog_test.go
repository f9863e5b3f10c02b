// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reg

import (
	"errors"
	"testing"
)

func testPeriph() *Periph {
	return &Periph{
		Name: "UART",
		Insts: []Inst{
			{Name: "UART0", Base: 0x4004_2000},
			{Name: "UART1", Base: 0x4004_3000},
		},
		Regs: []Reg{
			{Name: "CTRL", Offset: 0x00, Fields: []Field{
				{Name: "RX_THD_VAL", Lo: 0, Hi: 3, Policy: ReadWrite},
				{Name: "RX_FLUSH", Lo: 9, Hi: 9, Policy: WriteOneToPulse},
				{Name: "BCLKRDY", Lo: 19, Hi: 19, Policy: ReadOnly},
			}},
			{Name: "INT_FL", Offset: 0x0C, Fields: []Field{
				{Name: "RX_FERR", Lo: 0, Hi: 0, Policy: WriteOneToClear},
				{Name: "RX_PAR", Lo: 1, Hi: 1, Policy: WriteOneToClear},
			}},
			{Name: "CLKDIV", Offset: 0x10, Fields: []Field{
				{Name: "CLKDIV", Lo: 0, Hi: 19, Policy: ReadWrite},
			}},
		},
	}
}

func TestValidateOK(t *testing.T) {
	if err := testPeriph().Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestValidateDefects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Periph)
		want   error
	}{
		{"overlap", func(p *Periph) {
			p.Regs[0].Fields = append(p.Regs[0].Fields, Field{Name: "X", Lo: 2, Hi: 5, Policy: ReadWrite})
		}, ErrOverlap},
		{"nested overlap", func(p *Periph) {
			p.Regs[2].Fields = append(p.Regs[2].Fields, Field{Name: "X", Lo: 7, Hi: 7, Policy: ReadOnly})
		}, ErrOverlap},
		{"hi above 31", func(p *Periph) { p.Regs[2].Fields[0].Hi = 32 }, ErrRange},
		{"lo above hi", func(p *Periph) { p.Regs[2].Fields[0].Lo = 20 }, ErrRange},
		{"wide w1c", func(p *Periph) { p.Regs[1].Fields[1].Hi = 2 }, ErrPolicy},
		{"wide pulse", func(p *Periph) { p.Regs[0].Fields[1].Hi = 10 }, ErrPolicy},
		{"no policy", func(p *Periph) { p.Regs[0].Fields[0].Policy = 0 }, ErrPolicy},
		{"unaligned offset", func(p *Periph) { p.Regs[1].Offset = 0x0E }, ErrOffset},
		{"shared offset", func(p *Periph) { p.Regs[2].Offset = 0x0C }, ErrOffset},
		{"shared base", func(p *Periph) { p.Insts[1].Base = p.Insts[0].Base }, ErrBase},
		{"unaligned base", func(p *Periph) { p.Insts[1].Base++ }, ErrBase},
		{"duplicate field", func(p *Periph) { p.Regs[1].Fields[1].Name = "RX_FERR" }, ErrName},
		{"duplicate register", func(p *Periph) { p.Regs[2].Name = "CTRL" }, ErrName},
		{"bad instance name", func(p *Periph) { p.Insts[0].Name = "0UART" }, ErrName},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := testPeriph()
			tc.mutate(p)
			err := p.Validate()
			if !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestValidateReportsAll(t *testing.T) {
	p := testPeriph()
	p.Regs[2].Fields[0].Hi = 40
	p.Insts[1].Base = p.Insts[0].Base
	err := p.Validate()
	if !errors.Is(err, ErrRange) || !errors.Is(err, ErrBase) {
		t.Errorf("got %v, want both range and base defects", err)
	}
}

func TestMustPeriph(t *testing.T) {
	p := testPeriph()
	if MustPeriph(p) != p {
		t.Error("MustPeriph did not return its argument")
	}
	p.Regs[0].Fields[0].Hi = 12
	defer func() {
		if recover() == nil {
			t.Error("no panic on overlapping fields")
		}
	}()
	MustPeriph(p)
}

func TestRegHelpers(t *testing.T) {
	p := testPeriph()
	ctrl := p.Reg("CTRL")
	if ctrl == nil || p.Reg("NONE") != nil {
		t.Fatal("Reg lookup")
	}
	if m := ctrl.Mask(WriteOneToPulse, WriteOneToClear); m != 1<<9 {
		t.Errorf("CTRL action mask %#x, want 0x200", m)
	}
	if !ctrl.Readable() || ctrl.Storable() {
		t.Error("CTRL: want readable, not storable")
	}
	if !p.Reg("CLKDIV").Storable() {
		t.Error("CLKDIV: want storable")
	}
	fifo := Reg{Name: "FIFO", Fields: []Field{
		{Name: "DATA", Lo: 0, Hi: 7, Policy: ReadWrite},
		{Name: "RX_PAR", Lo: 8, Hi: 8, Policy: ReadOnly},
	}}
	if !fifo.Storable() {
		t.Error("FIFO with an RO field: want storable")
	}
	fifo.Fields[0].Policy = ReadOnly
	if fifo.Storable() {
		t.Error("all-RO FIFO: want not storable")
	}
	f := ctrl.Field("RX_THD_VAL")
	if f.Width() != 4 || f.Mask() != 0xF || f.Extract(0xFFF5) != 5 {
		t.Errorf("RX_THD_VAL: width %d mask %#x", f.Width(), f.Mask())
	}
	if p.Size() != 0x14 {
		t.Errorf("Size: got %#x, want 0x14", p.Size())
	}
	if in := p.Inst("UART1"); in == nil || in.Base != 0x4004_3000 {
		t.Errorf("Inst: got %+v", in)
	}
}

func TestParsePolicy(t *testing.T) {
	for s, want := range map[string]Policy{
		"ro": ReadOnly, "R": ReadOnly, "wo": WriteOnly, "rw": ReadWrite,
		"rw1c": WriteOneToClear, "w1c": WriteOneToClear,
		"reset": WriteOneToPulse, "pulse": WriteOneToPulse,
	} {
		p, err := ParsePolicy(s)
		if err != nil || p != want {
			t.Errorf("ParsePolicy(%q): got %v, %v, want %v", s, p, err, want)
		}
	}
	if _, err := ParsePolicy("0"); !errors.Is(err, ErrPolicy) {
		t.Errorf("ParsePolicy(\"0\"): got %v", err)
	}
	if s := WriteOneToClear.String(); s != "rw1c" {
		t.Errorf("String: got %q", s)
	}
}
