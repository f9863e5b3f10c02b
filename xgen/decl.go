// Copyright 2019 Michal Derkacz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"
	"strings"

	"github.com/embeddedgo/max7800x/reg"
)

type inst struct {
	Name  string
	Base  string // Go expression
	Descr string
}

type decl struct {
	File        string
	Pkg         string
	Type        string // peripheral type name
	Descr       string
	Insts       []*inst
	Regs        []reg.Reg
	Imports     []string
	Constraints []string
}

func split(s string) (first, rest string) {
	s = strings.TrimSpace(s)
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i+1:])
}

func parseFile(f string, src any) (*decl, error) {
	fset := token.NewFileSet()
	a, err := parser.ParseFile(fset, f, src, parser.ParseComments)
	if err != nil {
		return nil, err
	}
	d := &decl{File: f, Pkg: a.Name.Name}
	for _, cg := range a.Comments {
		if cg.End() >= a.Package {
			break
		}
		for _, c := range cg.List {
			s := strings.TrimSpace(strings.TrimLeft(c.Text, "/*"))
			if strings.HasPrefix(s, "go:build") {
				d.Constraints = append(d.Constraints, s)
			}
		}
	}
	if a.Doc == nil {
		return nil, fmt.Errorf("%s: no package comment", f)
	}
	if err := d.parse(a.Doc); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *decl) errorf(f string, args ...any) error {
	return fmt.Errorf("%s: "+f, append([]any{d.File}, args...)...)
}

// parse parses the declaration tables found in the package comment.
func (d *decl) parse(doc *ast.CommentGroup) error {
	lines := strings.Split(doc.Text(), "\n")
	for len(lines) > 0 {
		line := strings.TrimSpace(lines[0])
		if strings.HasPrefix(line, "Peripheral:") {
			break
		}
		lines = lines[1:]
	}
	if len(lines) == 0 {
		return d.errorf("no Peripheral: section")
	}
	d.Type, d.Descr = split(strings.TrimPrefix(strings.TrimSpace(lines[0]), "Peripheral:"))
	if d.Type == "" {
		return d.errorf("no peripheral type name")
	}
	lines = lines[1:]
	var (
		section string
		cur     *reg.Reg
	)
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch {
		case line == "Instances:", line == "Registers:", line == "Import:":
			section = line
			continue
		case strings.HasPrefix(line, "Fields ") && strings.HasSuffix(line, ":"):
			section = "Fields:"
			name := strings.TrimSpace(line[len("Fields ") : len(line)-1])
			cur = d.reg(name)
			if cur == nil {
				return d.errorf("fields of undeclared register %s", name)
			}
			continue
		}
		var err error
		switch section {
		case "Instances:":
			err = d.parseInst(line)
		case "Registers:":
			err = d.parseReg(line)
		case "Fields:":
			err = d.parseField(cur, line)
		case "Import:":
			d.Imports = append(d.Imports, line)
		default:
			err = d.errorf("unexpected line: %s", line)
		}
		if err != nil {
			return err
		}
	}
	if len(d.Insts) == 0 {
		return d.errorf("no instances")
	}
	if len(d.Regs) == 0 {
		return d.errorf("no registers")
	}
	return nil
}

func (d *decl) reg(name string) *reg.Reg {
	for i := range d.Regs {
		if d.Regs[i].Name == name {
			return &d.Regs[i]
		}
	}
	return nil
}

func (d *decl) parseInst(line string) error {
	name, line := split(line)
	base, descr := split(line)
	if base == "" {
		return d.errorf("%s: no base address", name)
	}
	d.Insts = append(d.Insts, &inst{Name: name, Base: base, Descr: descr})
	return nil
}

func (d *decl) parseReg(line string) error {
	offstr, line := split(line)
	sizstr, line := split(line)
	name, descr := split(line)
	switch "" {
	case sizstr:
		return d.errorf("no register bit size")
	case name:
		return d.errorf("no register name")
	}
	if sizstr != "32" {
		return d.errorf("%s: bad register size %s: only 32-bit registers supported", name, sizstr)
	}
	offset, err := strconv.ParseUint(offstr, 0, 32)
	if err != nil {
		return d.errorf("%s: bad offset %s: %v", name, offstr, err)
	}
	if n := len(d.Regs); n > 0 && uintptr(offset) <= d.Regs[n-1].Offset {
		return d.errorf("%s: offset %s not above %s", name, offstr, d.Regs[n-1].Name)
	}
	d.Regs = append(d.Regs, reg.Reg{Name: name, Offset: uintptr(offset), Descr: descr})
	return nil
}

func (d *decl) parseField(r *reg.Reg, line string) error {
	bits, line := split(line)
	polstr, line := split(line)
	name, descr := split(line)
	if name == "" {
		return d.errorf("%s: no field name", r.Name)
	}
	pol, err := reg.ParsePolicy(polstr)
	if err != nil {
		return d.errorf("%s.%s: %v", r.Name, name, err)
	}
	lostr, histr, isRange := strings.Cut(bits, ":")
	lo, err := strconv.ParseUint(lostr, 0, 8)
	if err != nil {
		return d.errorf("%s.%s: bad bit %s", r.Name, name, bits)
	}
	hi := lo
	if isRange {
		if hi, err = strconv.ParseUint(histr, 0, 8); err != nil {
			return d.errorf("%s.%s: bad bit range %s", r.Name, name, bits)
		}
	}
	switch name {
	case "Load", "Store":
		return d.errorf("%s.%s: field name collides with register method", r.Name, name)
	}
	f := reg.Field{Name: name, Lo: uint(lo), Hi: uint(hi), Policy: pol}
	f.Descr, f.Errata, _ = strings.Cut(descr, " ! ")
	f.Descr = strings.TrimSpace(f.Descr)
	f.Errata = strings.TrimSpace(f.Errata)
	r.Fields = append(r.Fields, f)
	return nil
}
