// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/embeddedgo/max7800x/reg"
	"github.com/embeddedgo/max7800x/svd"
)

func TestPolicy(t *testing.T) {
	tests := []struct {
		access, mwv string
		width       uint
		want        reg.Policy
	}{
		{svd.ReadOnly, "", 4, reg.ReadOnly},
		{svd.ReadOnly, svd.OneToClear, 1, reg.ReadOnly},
		{svd.WriteOnly, "", 8, reg.WriteOnly},
		{svd.WriteOnly, svd.OneToSet, 1, reg.WriteOneToPulse},
		{svd.WriteOnly, svd.OneToToggle, 1, reg.WriteOneToPulse},
		{svd.WriteOnly, svd.OneToSet, 2, reg.WriteOnly},
		{svd.WriteOnce, "", 1, reg.WriteOnly},
		{svd.ReadWrite, "", 20, reg.ReadWrite},
		{svd.ReadWrite, svd.Modify, 1, reg.ReadWrite},
		{svd.ReadWrite, svd.OneToClear, 1, reg.WriteOneToClear},
		{svd.ReadWriteOnce, "", 3, reg.ReadWrite},
	}
	for _, tc := range tests {
		got, err := policy(tc.access, tc.mwv, tc.width)
		if err != nil || got != tc.want {
			t.Errorf("policy(%q, %q, %d): got %v, %v, want %v",
				tc.access, tc.mwv, tc.width, got, err, tc.want)
		}
	}
	if _, err := policy(svd.ReadWrite, svd.OneToClear, 2); !errors.Is(err, reg.ErrPolicy) {
		t.Errorf("2-bit oneToClear: got %v", err)
	}
	if _, err := policy("0", "", 1); !errors.Is(err, reg.ErrPolicy) {
		t.Errorf("access 0: got %v", err)
	}
}

const testSVD = `<?xml version="1.0" encoding="utf-8"?>
<device>
  <name>max78000</name>
  <width>32</width>
  <size>32</size>
  <access>read-write</access>
  <peripherals>
    <peripheral>
      <name>UART0</name>
      <description>UART Low Power Registers</description>
      <groupName>UART</groupName>
      <baseAddress>0x40042000</baseAddress>
      <registers>
        <register>
          <name>CTRL</name>
          <description>Control register.</description>
          <addressOffset>0x00</addressOffset>
          <fields>
            <field><name>RX_THD_VAL</name><bitOffset>0</bitOffset><bitWidth>4</bitWidth></field>
            <field><name>RX_FLUSH</name><bitRange>[9:9]</bitRange><access>write-only</access><modifiedWriteValues>oneToSet</modifiedWriteValues></field>
            <field><name>BCLKRDY</name><lsb>19</lsb><msb>19</msb><access>read-only</access></field>
          </fields>
        </register>
        <register>
          <name>INT_FL</name>
          <addressOffset>0x0C</addressOffset>
          <modifiedWriteValues>oneToClear</modifiedWriteValues>
          <fields>
            <field><name>RX_FERR</name><bitOffset>0</bitOffset><bitWidth>1</bitWidth></field>
            <field><name>RX_PAR</name><bitOffset>1</bitOffset><bitWidth>1</bitWidth></field>
          </fields>
        </register>
        <register>
          <name>DMA</name>
          <addressOffset>0x30</addressOffset>
          <fields>
            <field><name>TX_EN</name><bitOffset>4</bitOffset><bitWidth>1</bitWidth></field>
          </fields>
        </register>
        <register>
          <name>HALF</name>
          <addressOffset>0x40</addressOffset>
          <size>16</size>
        </register>
      </registers>
    </peripheral>
    <peripheral derivedFrom="UART0">
      <name>UART1</name>
      <baseAddress>0x40043000</baseAddress>
    </peripheral>
  </peripherals>
</device>
`

func testPeriphs(t *testing.T) []*Periph {
	t.Helper()
	dev, err := svd.Parse(strings.NewReader(testSVD))
	if err != nil {
		t.Fatal(err)
	}
	return periphs(dev)
}

func TestPeriphs(t *testing.T) {
	ps := testPeriphs(t)
	if len(ps) != 1 {
		t.Fatalf("got %d layouts, want 1", len(ps))
	}
	p := ps[0]
	if p.Pkg != "uart" || p.Name != "UART" {
		t.Errorf("got pkg %q name %q", p.Pkg, p.Name)
	}
	if len(p.Insts) != 2 || p.Insts[1].Name != "UART1" || p.Insts[1].Base != 0x40043000 {
		t.Errorf("instances: %+v", p.Insts)
	}
	if len(p.Regs) != 3 {
		t.Fatalf("got %d registers, want 3 (16-bit register skipped)", len(p.Regs))
	}
	ctrl := p.Reg("CTRL")
	want := map[string]reg.Policy{
		"RX_THD_VAL": reg.ReadWrite,
		"RX_FLUSH":   reg.WriteOneToPulse,
		"BCLKRDY":    reg.ReadOnly,
	}
	for name, pol := range want {
		f := ctrl.Field(name)
		if f == nil || f.Policy != pol {
			t.Errorf("CTRL.%s: got %+v, want policy %v", name, f, pol)
		}
	}
	if f := ctrl.Field("RX_THD_VAL"); f.Lo != 0 || f.Hi != 3 {
		t.Errorf("RX_THD_VAL: bits %d:%d", f.Lo, f.Hi)
	}
	if f := p.Reg("INT_FL").Field("RX_PAR"); f.Policy != reg.WriteOneToClear {
		t.Errorf("INT_FL.RX_PAR: got %v, want rw1c", f.Policy)
	}
	if err := p.Validate(); err != nil {
		t.Error(err)
	}
}

func TestMaxTweaks(t *testing.T) {
	ps := testPeriphs(t)
	maxtweaks(ps)
	dma := ps[0].Reg("DMA")
	for _, name := range []string{"RX_THD_VAL", "RX_EN"} {
		f := dma.Field(name)
		if f == nil || f.Policy != reg.ReadWrite || f.Errata == "" {
			t.Errorf("DMA.%s: %+v", name, f)
		}
	}
	if dma.Fields[0].Name != "TX_EN" || dma.Fields[2].Name != "RX_EN" {
		t.Errorf("fields not sorted: %+v", dma.Fields)
	}
	if err := ps[0].Validate(); err != nil {
		t.Error(err)
	}
}

func TestDeclSource(t *testing.T) {
	ps := testPeriphs(t)
	maxtweaks(ps)
	src := string(declSource(ps[0], "example.com/max"))
	for _, want := range []string{
		"// Package uart provides access to the registers of the UART peripheral.",
		"// Peripheral: Periph  UART Low Power Registers",
		"//\tUART1  mmap.UART1_BASE  UART Low Power Registers",
		"//\t0x0C 32  INT_FL",
		"// Fields CTRL:",
		"//\t9    reset  RX_FLUSH",
		"//\t0  rw1c  RX_FERR",
		`! UG lists the access as "0"; hardware is R/W.`,
		"//\texample.com/max/mmap\npackage uart\n",
		"//go:generate go run example.com/max/xgen uart.go",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("declaration lacks %q", want)
		}
	}
}

func TestMmapSource(t *testing.T) {
	src := string(mmapSource(testPeriphs(t)))
	for _, want := range []string{
		"package mmap",
		"// UART\nconst (",
		"UART0_BASE uintptr = 0x40042000 // UART Low Power Registers",
		"UART1_BASE uintptr = 0x40043000",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("mmap lacks %q", want)
		}
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	c := &ctx{mcu: "max78000", outdir: dir, importRoot: "example.com/max"}
	ps := testPeriphs(t)
	if err := saveMmap(c, ps); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "mmap", "max78000.go"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "// Code generated by svdxgen. DO NOT EDIT.") ||
		!strings.Contains(string(data), "\tUART0_BASE uintptr = 0x40042000 //") {
		t.Errorf("unexpected mmap source:\n%s", data)
	}
}
