// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"

	"github.com/embeddedgo/max7800x/reg"
)

type tmplField struct {
	reg.Field
	Type        string // accessor type
	Ctor        string // accessor constructor call
	PolicyIdent string
}

type tmplReg struct {
	Name    string
	Offset  string
	Descr   string
	Actions string // W1C and pulse bits, empty if none
	Load    bool
	Store   bool
	Fields  []*tmplField
}

type tmplData struct {
	Pkg         string
	Name        string
	Type        string
	Descr       string
	RegImport   string
	Imports     []string
	Constraints []string
	Insts       []*inst
	Regs        []*tmplReg
}

var policyIdent = map[reg.Policy]string{
	reg.ReadOnly:        "reg.ReadOnly",
	reg.WriteOnly:       "reg.WriteOnly",
	reg.ReadWrite:       "reg.ReadWrite",
	reg.WriteOneToClear: "reg.WriteOneToClear",
	reg.WriteOneToPulse: "reg.WriteOneToPulse",
}

var tmpl = template.Must(template.New("xgen").Funcs(template.FuncMap{
	"quote": strconv.Quote,
}).Parse(tmplText))

// valueType returns the smallest unsigned type that holds a width-bit value.
func valueType(width uint) string {
	switch {
	case width <= 8:
		return "uint8"
	case width <= 16:
		return "uint16"
	}
	return "uint32"
}

// accessor returns the accessor type licensed by the field policy and the
// expression that constructs it from the register r.r.
func accessor(f *reg.Field) (typ, ctor string) {
	if f.Lo == f.Hi {
		var name string
		switch f.Policy {
		case reg.ReadOnly:
			name = "ROBit"
		case reg.WriteOnly:
			name = "WOBit"
		case reg.ReadWrite:
			name = "RWBit"
		case reg.WriteOneToClear:
			name = "W1C"
		case reg.WriteOneToPulse:
			name = "Pulse"
		}
		return "reg." + name + "[P]", fmt.Sprintf("reg.New%s(r.r, %d)", name, f.Lo)
	}
	name := strings.ToUpper(f.Policy.String())
	targs := "[P, " + valueType(f.Width()) + "]"
	return "reg." + name + targs, fmt.Sprintf("reg.New%s%s(r.r, %d, %d)", name, targs, f.Lo, f.Hi)
}

// catalog builds the peripheral description used to validate the
// declaration.
func catalog(d *decl, bases map[string]uintptr) *reg.Periph {
	p := &reg.Periph{Name: strings.ToUpper(d.Pkg), Descr: d.Descr, Regs: d.Regs}
	for _, in := range d.Insts {
		p.Insts = append(p.Insts, reg.Inst{Name: in.Name, Base: bases[in.Name], Descr: in.Descr})
	}
	return p
}

func generate(d *decl, bases map[string]uintptr, regImport string) ([]byte, error) {
	p := catalog(d, bases)
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", d.File, err)
	}
	data := &tmplData{
		Pkg:         d.Pkg,
		Name:        p.Name,
		Type:        d.Type,
		Descr:       d.Descr,
		RegImport:   regImport,
		Imports:     d.Imports,
		Constraints: d.Constraints,
		Insts:       d.Insts,
	}
	for i := range d.Regs {
		r := &d.Regs[i]
		tr := &tmplReg{
			Name:   r.Name,
			Offset: fmt.Sprintf("0x%02X", r.Offset),
			Descr:  r.Descr,
			Load:   r.Readable(),
			Store:  r.Storable(),
		}
		if m := r.Mask(reg.WriteOneToClear, reg.WriteOneToPulse); m != 0 {
			tr.Actions = fmt.Sprintf("%#x", m)
		}
		for k := range r.Fields {
			tf := &tmplField{Field: r.Fields[k], PolicyIdent: policyIdent[r.Fields[k].Policy]}
			tf.Type, tf.Ctor = accessor(&r.Fields[k])
			tr.Fields = append(tr.Fields, tf)
		}
		data.Regs = append(data.Regs, tr)
	}
	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, data); err != nil {
		return nil, err
	}
	out := outName(d.File)
	src, err := imports.Process(out, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("%s: formatting generated code: %w", out, err)
	}
	return src, nil
}

func outName(f string) string {
	return filepath.Join(filepath.Dir(f), "xgen_"+filepath.Base(f))
}

func xgen(f, regImport string) error {
	d, err := parseFile(f, nil)
	if err != nil {
		return err
	}
	bases, err := resolveBases(d)
	if err != nil {
		return err
	}
	src, err := generate(d, bases, regImport)
	if err != nil {
		return err
	}
	return os.WriteFile(outName(f), src, 0o644)
}
