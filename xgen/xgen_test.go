// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/embeddedgo/max7800x/reg"
)

const testDecl = `//go:build max78000

// Package tmr is a test peripheral.
//
// Peripheral: Periph  Timer.
// Instances:
//  TMR0  0x40010000  Timer 0
//  TMR1  0x40011000
// Registers:
//  0x00 32  CNT   Counter.
//  0x04 32  CTRL  Control.
//  0x08 32  INTFL Interrupt flags.
// Fields CNT:
//  0:15   ro     VAL   Count.
// Fields CTRL:
//  0:3    rw     MODE  Mode.
//  4      wo     CLR   Counter clear. ! documented as reserved
//  8      reset  RST   Reset.
// Fields INTFL:
//  0      rw1c   IRQ   Interrupt.
package tmr
`

func parse(t *testing.T, src string) *decl {
	t.Helper()
	d, err := parseFile("tmr/tmr.go", src)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestParse(t *testing.T) {
	d := parse(t, testDecl)
	if d.Pkg != "tmr" || d.Type != "Periph" || d.Descr != "Timer." {
		t.Errorf("got pkg %q type %q descr %q", d.Pkg, d.Type, d.Descr)
	}
	if len(d.Constraints) != 1 || d.Constraints[0] != "go:build max78000" {
		t.Errorf("constraints: %q", d.Constraints)
	}
	if len(d.Insts) != 2 || d.Insts[1].Base != "0x40011000" || d.Insts[1].Descr != "" {
		t.Errorf("instances: %+v", d.Insts)
	}
	if len(d.Regs) != 3 {
		t.Fatalf("got %d registers", len(d.Regs))
	}
	clr := d.Regs[1].Field("CLR")
	if clr == nil || clr.Policy != reg.WriteOnly || clr.Descr != "Counter clear." ||
		clr.Errata != "documented as reserved" {
		t.Errorf("CTRL.CLR: %+v", clr)
	}
	if f := d.Regs[1].Field("RST"); f == nil || f.Policy != reg.WriteOneToPulse || f.Lo != 8 {
		t.Errorf("CTRL.RST: %+v", f)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name, from, to, want string
	}{
		{"policy", "rw1c   IRQ", "rx     IRQ", "unknown access policy"},
		{"size", "0x04 32  CTRL", "0x04 16  CTRL", "only 32-bit"},
		{"order", "0x08 32  INTFL", "0x04 32  INTFL", "not above"},
		{"fields", "Fields INTFL:", "Fields NONE:", "undeclared register"},
		{"bits", "0:15   ro", "0-15   ro", "bad bit"},
		{"method", "VAL   Count", "Load  Count", "collides"},
		{"peripheral", "Peripheral:", "Device:", "no Peripheral"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			src := strings.Replace(testDecl, tc.from, tc.to, 1)
			_, err := parseFile("tmr/tmr.go", src)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("got %v, want error containing %q", err, tc.want)
			}
		})
	}
}

func gen(t *testing.T, src string) (string, error) {
	t.Helper()
	d := parse(t, src)
	bases, err := resolveBases(d)
	if err != nil {
		t.Fatal(err)
	}
	out, err := generate(d, bases, "github.com/embeddedgo/max7800x/reg")
	return string(out), err
}

func TestGenerate(t *testing.T) {
	out, err := gen(t, testDecl)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"//go:build max78000",
		"type Port interface {\n\tTMR0 | TMR1\n",
		"func (TMR1) Base() uintptr { return 0x40011000 }",
		"func (Periph[P]) CNT() RCNT[P] { return RCNT[P]{reg.At[P](0x00)} }",
		"reg.At[P](0x04).WithActions(0x100)",
		"reg.At[P](0x08).WithActions(0x1)",
		"func (r RCNT[P]) VAL() reg.RO[P, uint16] { return reg.NewRO[P, uint16](r.r, 0, 15) }",
		"func (r RCTRL[P]) MODE() reg.RW[P, uint8] { return reg.NewRW[P, uint8](r.r, 0, 3) }",
		"func (r RCTRL[P]) CLR() reg.WOBit[P] { return reg.NewWOBit(r.r, 4) }",
		"// Errata: documented as reserved",
		"func (r RCTRL[P]) RST() reg.Pulse[P] { return reg.NewPulse(r.r, 8) }",
		"func (r RINTFL[P]) IRQ() reg.W1C[P] { return reg.NewW1C(r.r, 0) }",
		"func (r RINTFL[P]) Load() uint32",
		"Policy: reg.WriteOneToClear",
		`"TMR",`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q", want)
		}
	}
	for _, bad := range []string{
		"func (r RCNT[P]) Store(",
		"func (r RCTRL[P]) Store(",
		"func (r RINTFL[P]) Store(",
	} {
		if strings.Contains(out, bad) {
			t.Errorf("output contains %q", bad)
		}
	}
}

func TestGenerateRejects(t *testing.T) {
	tests := []struct {
		name, from, to string
		want           error
	}{
		{"overlap", "8      reset  RST", "3      reset  RST", reg.ErrOverlap},
		{"range", "0:15   ro", "0:32   ro", reg.ErrRange},
		{"wide w1c", "0      rw1c", "0:1    rw1c", reg.ErrPolicy},
		{"base", "TMR1  0x40011000", "TMR1  0x40010000", reg.ErrBase},
		{"offset", "0x08 32  INTFL", "0x09 32  INTFL", reg.ErrOffset},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gen(t, strings.Replace(testDecl, tc.from, tc.to, 1))
			if !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestOutName(t *testing.T) {
	if got := outName("uart/uart.go"); got != "uart/xgen_uart.go" {
		t.Errorf("got %q", got)
	}
}
