// Copyright 2019 Michal Derkacz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"sort"
)

type MemGroup struct {
	Descr string
	Bases []*MemBase
}

func (g *MemGroup) WriteTo(w io.Writer) {
	if g.Descr != "" {
		fmt.Fprintln(w, "//", g.Descr)
	}
	fmt.Fprintln(w, "const (")
	for _, b := range g.Bases {
		fmt.Fprintf(w, "\t%s_BASE uintptr = 0x%08X", b.Name, b.Addr)
		if b.Descr != "" {
			fmt.Fprintln(w, " //", b.Descr)
		} else {
			fmt.Fprintln(w)
		}
	}
	fmt.Fprintln(w, ")")
}

type MemBase struct {
	Name  string
	Addr  uint64
	Descr string
}

// mmapSource returns the source of the mmap package: the base addresses of
// all instances grouped by peripheral.
func mmapSource(ps []*Periph) []byte {
	var gsli []*MemGroup
	for _, p := range ps {
		g := &MemGroup{Descr: p.Name}
		for _, in := range p.Insts {
			g.Bases = append(g.Bases, &MemBase{in.Name, uint64(in.Base), in.Descr})
		}
		sort.Slice(g.Bases, func(i, j int) bool { return g.Bases[i].Addr < g.Bases[j].Addr })
		gsli = append(gsli, g)
	}
	sort.Slice(gsli, func(i, j int) bool { return gsli[i].Descr < gsli[j].Descr })

	buf := new(bytes.Buffer)
	donotedit(buf)
	fmt.Fprintln(buf, "// Package mmap provides base memory addresses for all peripherals.")
	fmt.Fprintln(buf, "package mmap")
	for _, g := range gsli {
		fmt.Fprintln(buf)
		g.WriteTo(buf)
	}
	return buf.Bytes()
}

func saveMmap(ctx *ctx, ps []*Periph) error {
	return save(filepath.Join(ctx.outdir, "mmap", ctx.mcu+".go"), mmapSource(ps))
}
