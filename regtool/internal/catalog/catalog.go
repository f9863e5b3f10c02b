// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !noos

// Package catalog gives the regtool commands access to the register catalogs
// and decodes register blocks read through mmio.
package catalog

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/embeddedgo/max7800x/mmio"
	"github.com/embeddedgo/max7800x/mmio/sim"
	"github.com/embeddedgo/max7800x/reg"
	"github.com/embeddedgo/max7800x/uart"
)

var catalogs = map[string]*reg.Periph{
	"uart": uart.Catalog,
}

// Names returns the sorted names of the known peripherals.
func Names() []string {
	return slices.Sorted(maps.Keys(catalogs))
}

// Lookup returns the peripheral named periph and, if inst is not empty, its
// instance named inst. Names are case insensitive.
func Lookup(periph, inst string) (*reg.Periph, *reg.Inst, error) {
	p := catalogs[strings.ToLower(periph)]
	if p == nil {
		return nil, nil, fmt.Errorf("unknown peripheral %s (known: %s)", periph, strings.Join(Names(), ", "))
	}
	if inst == "" {
		return p, nil, nil
	}
	for i := range p.Insts {
		if strings.EqualFold(p.Insts[i].Name, inst) {
			return p, &p.Insts[i], nil
		}
	}
	return nil, nil, fmt.Errorf("%s has no instance %s", p.Name, inst)
}

// List writes the instances, registers and fields of p.
func List(w io.Writer, p *reg.Periph) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\n", p.Name, p.Descr)
	for _, in := range p.Insts {
		fmt.Fprintf(tw, "  %s\t%#08x\t%s\n", in.Name, in.Base, in.Descr)
	}
	for _, r := range p.Regs {
		fmt.Fprintf(tw, "%#03x\t%s\t%s\n", r.Offset, r.Name, r.Descr)
		for _, f := range r.Fields {
			bits := fmt.Sprint(f.Lo)
			if f.Hi != f.Lo {
				bits = fmt.Sprintf("%d:%d", f.Lo, f.Hi)
			}
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", bits, f.Policy, f.Name, f.Descr)
		}
	}
	return tw.Flush()
}

func skipped(r *reg.Reg, skip []string) bool {
	return !r.Readable() || slices.Contains(skip, r.Name)
}

// Decode loads every readable register of the instance of p at base, except
// the registers named in skip, and writes the values of their fields. Fields
// without a readable value are shown as -.
func Decode(w io.Writer, p *reg.Periph, base uintptr, skip []string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i := range p.Regs {
		r := &p.Regs[i]
		if skipped(r, skip) {
			fmt.Fprintf(tw, "%s\t%#03x\tnot read\n", r.Name, r.Offset)
			continue
		}
		v := mmio.U32(base + r.Offset).Load()
		fmt.Fprintf(tw, "%s\t%#03x\t%#08x\n", r.Name, r.Offset, v)
		for k := range r.Fields {
			f := &r.Fields[k]
			val := "-"
			if f.Policy.Readable() {
				val = fmt.Sprintf("%#x", f.Extract(v))
			}
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", f.Name, f.Policy, val)
		}
	}
	return tw.Flush()
}

// Snapshot copies the readable registers of the instance of p at base, except
// the registers named in skip, into a new simulated address space.
func Snapshot(p *reg.Periph, base uintptr, skip []string) *sim.Space {
	s := sim.New()
	for i := range p.Regs {
		r := &p.Regs[i]
		if !skipped(r, skip) {
			s.Poke(base+r.Offset, mmio.U32(base+r.Offset).Load())
		}
	}
	return s
}
