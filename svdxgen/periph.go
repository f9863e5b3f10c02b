// Copyright 2019 Michal Derkacz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"

	"golang.org/x/tools/imports"

	"github.com/embeddedgo/max7800x/internal/util"
	"github.com/embeddedgo/max7800x/reg"
	"github.com/embeddedgo/max7800x/svd"
)

// Periph is a register layout shared by one or more peripheral instances.
type Periph struct {
	reg.Periph
	Pkg      string
	OrigName string // name of the SVD peripheral that defines the layout
}

func fixSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func dropDigits(s string) string {
	return strings.TrimRight(s, "0123456789")
}

func descr(s *string) string {
	if s == nil {
		return ""
	}
	return fixSpaces(*s)
}

// periphs builds the register layouts described by dev. Derived peripherals
// become additional instances of the layout they derive from.
func periphs(dev *svd.Device) []*Periph {
	pmap := make(map[string]*Periph)
	var psli []*Periph
	for _, sp := range dev.Peripherals {
		if sp.DerivedFrom != nil {
			continue
		}
		p := &Periph{OrigName: sp.Name}
		p.Name = dropDigits(sp.Name)
		if sp.GroupName != nil {
			p.Name = strings.TrimSpace(*sp.GroupName)
		}
		p.Descr = descr(sp.Description)
		handleRegs(dev, sp, p)
		pmap[sp.Name] = p
		psli = append(psli, p)
	}
	for _, sp := range dev.Peripherals {
		owner := sp.Name
		if sp.DerivedFrom != nil {
			owner = *sp.DerivedFrom
		}
		p := pmap[owner]
		if p == nil {
			util.Warn("%s: derived from unknown peripheral %s", sp.Name, owner)
			continue
		}
		in := reg.Inst{Name: sp.Name, Base: uintptr(sp.BaseAddress), Descr: descr(sp.Description)}
		if in.Descr == "" {
			in.Descr = p.Descr
		}
		p.Insts = append(p.Insts, in)
	}

	// Layouts sharing a group get distinct names.
	groups := make(map[string][]*Periph)
	for _, p := range psli {
		groups[p.Name] = append(groups[p.Name], p)
	}
	for _, g := range groups {
		if len(g) > 1 {
			for _, p := range g {
				p.Name = p.OrigName
			}
		}
	}
	for _, p := range psli {
		p.Pkg = strings.ToLower(p.Name)
		sort.Slice(p.Insts, func(i, j int) bool { return p.Insts[i].Name < p.Insts[j].Name })
	}
	sort.Slice(psli, func(i, j int) bool { return psli[i].Name < psli[j].Name })
	return psli
}

func handleRegs(dev *svd.Device, sp *svd.Peripheral, p *Periph) {
	clusters := append([]*svd.Cluster{{Registers: sp.Registers}}, sp.Clusters...)
	for _, sc := range clusters {
		if len(sc.Clusters) > 0 {
			util.Warn("%s.%s: cluster in cluster not supported", sp.Name, sc.Name)
		}
		for _, sr := range sc.Registers {
			if sr.DerivedFrom != nil {
				util.Warn("%s.%s: derived registers not supported", sp.Name, sr.Name)
				continue
			}
			if siz := dev.RegSize(sp, sr); siz != 32 {
				util.Warn("%s.%s: %d-bit register skipped", sp.Name, sr.Name, siz)
				continue
			}
			name := strings.Replace(sr.Name, "[%s]", "%s", 1)
			if sc.Name != "" {
				name = sc.Name + "_" + name
			}
			n := 1
			if strings.Contains(name, "%s") {
				n = int(sr.Dim)
			}
			for i := 0; i < n; i++ {
				r := reg.Reg{
					Name:   strings.ReplaceAll(name, "%s", fmt.Sprint(i)),
					Offset: uintptr(sc.AddressOffset+sr.AddressOffset) + uintptr(i)*uintptr(sr.DimIncrement),
					Descr:  descr(sr.Description),
				}
				handleFields(dev, sp, sr, &r)
				p.Regs = append(p.Regs, r)
			}
		}
	}
	sort.Slice(p.Regs, func(i, k int) bool { return p.Regs[i].Offset < p.Regs[k].Offset })
}

func handleFields(dev *svd.Device, sp *svd.Peripheral, sr *svd.Register, r *reg.Reg) {
	for _, sf := range sr.Fields {
		if sf.DerivedFrom != nil {
			util.Warn("%s.%s: derived fields not supported", r.Name, sf.Name)
			continue
		}
		lo, hi, err := sf.Bits()
		if err != nil {
			util.Warn("%s.%v", r.Name, err)
			continue
		}
		mwv := sf.ModifiedWriteValues
		if mwv == nil {
			mwv = sr.ModifiedWriteValues
		}
		var m string
		if mwv != nil {
			m = *mwv
		}
		pol, err := policy(dev.FieldAccess(sp, sr, sf), m, hi-lo+1)
		if err != nil {
			util.Warn("%s.%s: %v", r.Name, sf.Name, err)
			continue
		}
		r.Fields = append(r.Fields, reg.Field{
			Name:   sf.Name,
			Lo:     lo,
			Hi:     hi,
			Policy: pol,
			Descr:  descr(sf.Description),
		})
	}
	sort.Slice(r.Fields, func(i, k int) bool { return r.Fields[i].Lo < r.Fields[k].Lo })
}

func donotedit(w io.Writer) {
	fmt.Fprintln(w, "// Code generated by svdxgen. DO NOT EDIT.")
	fmt.Fprintln(w)
}

// table writes rows as an aligned code block of a doc comment.
func table(w io.Writer, rows [][]string) {
	tb := new(bytes.Buffer)
	tw := tabwriter.NewWriter(tb, 0, 0, 2, ' ', 0)
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	tw.Flush()
	for _, line := range strings.SplitAfter(tb.String(), "\n") {
		if line = strings.TrimRight(line, " \n"); line != "" {
			fmt.Fprintf(w, "//\t%s\n", line)
		}
	}
}

// declSource returns the xgen declaration of p.
func declSource(p *Periph, importRoot string) []byte {
	buf := new(bytes.Buffer)
	donotedit(buf)
	fmt.Fprintf(
		buf, "// Package %s provides access to the registers of the %s peripheral.\n",
		p.Pkg, p.Name,
	)
	fmt.Fprintln(buf, "//")
	fmt.Fprintln(buf, strings.TrimSpace("// Peripheral: Periph  "+p.Descr))
	section := func(title string) {
		fmt.Fprintf(buf, "//\n// %s\n//\n", title)
	}
	section("Instances:")
	var rows [][]string
	for _, in := range p.Insts {
		rows = append(rows, []string{in.Name, "mmap." + in.Name + "_BASE", in.Descr})
	}
	table(buf, rows)
	section("Registers:")
	rows = rows[:0]
	for _, r := range p.Regs {
		rows = append(rows, []string{fmt.Sprintf("0x%02X 32", r.Offset), r.Name, r.Descr})
	}
	table(buf, rows)
	for _, r := range p.Regs {
		if len(r.Fields) == 0 {
			continue
		}
		section("Fields " + r.Name + ":")
		rows = rows[:0]
		for _, f := range r.Fields {
			bits := fmt.Sprint(f.Lo)
			if f.Hi != f.Lo {
				bits += fmt.Sprintf(":%d", f.Hi)
			}
			d := f.Descr
			if f.Errata != "" {
				d += " ! " + f.Errata
			}
			rows = append(rows, []string{bits, policyName(f.Policy), f.Name, d})
		}
		table(buf, rows)
	}
	section("Import:")
	fmt.Fprintf(buf, "//\t%s/mmap\n", importRoot)
	fmt.Fprintf(buf, "package %s\n\n", p.Pkg)
	fmt.Fprintf(buf, "//go:generate go run %s/xgen %s.go\n", importRoot, p.Pkg)
	return buf.Bytes()
}

func savePeriph(ctx *ctx, p *Periph) error {
	return save(filepath.Join(ctx.outdir, p.Pkg, p.Pkg+".go"), declSource(p, ctx.importRoot))
}

// save formats src and writes it to path.
func save(path string, src []byte) error {
	src, err := imports.Process(path, src, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, src, 0o644)
}
