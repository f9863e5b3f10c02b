// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reg

import (
	"errors"
	"fmt"
	"sort"
)

// Configuration defects reported by Periph.Validate.
var (
	ErrRange   = errors.New("bit range out of register")
	ErrOverlap = errors.New("overlapping bitfields")
	ErrOffset  = errors.New("bad register offset")
	ErrName    = errors.New("bad or duplicate name")
	ErrBase    = errors.New("bad instance base address")
	ErrPolicy  = errors.New("bad access policy")
)

// Field describes a bitfield.
type Field struct {
	Name   string
	Lo, Hi uint
	Policy Policy
	Descr  string

	// Errata records a difference between the documented and the
	// implemented access, e.g. a field documented as reserved that the
	// hardware implements as read-write. Policy is the implemented one.
	Errata string
}

// Width returns the number of bits in the field.
func (f *Field) Width() uint { return f.Hi - f.Lo + 1 }

// Mask returns the field bits in their register position.
func (f *Field) Mask() uint32 {
	return ^uint32(0) >> (31 - (f.Hi - f.Lo)) << f.Lo
}

// Extract returns the value of the field in the register value v.
func (f *Field) Extract(v uint32) uint32 {
	return v & f.Mask() >> f.Lo
}

// Reg describes a 32-bit register.
type Reg struct {
	Name   string
	Offset uintptr
	Descr  string
	Fields []Field
}

// Field returns the field with the given name.
func (r *Reg) Field(name string) *Field {
	for i := range r.Fields {
		if r.Fields[i].Name == name {
			return &r.Fields[i]
		}
	}
	return nil
}

// Mask returns the union of the masks of the fields with one of the
// policies ps.
func (r *Reg) Mask(ps ...Policy) uint32 {
	var m uint32
	for i := range r.Fields {
		f := &r.Fields[i]
		for _, p := range ps {
			if f.Policy == p {
				m |= f.Mask()
				break
			}
		}
	}
	return m
}

// Readable reports whether any field of r can be read.
func (r *Reg) Readable() bool {
	for i := range r.Fields {
		if r.Fields[i].Policy.Readable() {
			return true
		}
	}
	return false
}

// Storable reports whether the whole register may be written with an
// arbitrary value without a load: at least one field is RW or WO and there
// are no W1C or pulse fields. Stores to RO bits are ignored by hardware.
func (r *Reg) Storable() bool {
	w := false
	for i := range r.Fields {
		switch p := r.Fields[i].Policy; {
		case p.SingleBit():
			return false
		case p.Writable():
			w = true
		}
	}
	return w
}

// Inst describes a peripheral instance.
type Inst struct {
	Name  string
	Base  uintptr
	Descr string
}

// Periph describes a peripheral: its instances and its register layout.
type Periph struct {
	Name  string
	Descr string
	Insts []Inst
	Regs  []Reg
}

// Reg returns the register with the given name.
func (p *Periph) Reg(name string) *Reg {
	for i := range p.Regs {
		if p.Regs[i].Name == name {
			return &p.Regs[i]
		}
	}
	return nil
}

// Inst returns the instance with the given name.
func (p *Periph) Inst(name string) *Inst {
	for i := range p.Insts {
		if p.Insts[i].Name == name {
			return &p.Insts[i]
		}
	}
	return nil
}

// Size returns the number of bytes spanned by the registers of p.
func (p *Periph) Size() uintptr {
	var n uintptr
	for i := range p.Regs {
		if end := p.Regs[i].Offset + 4; end > n {
			n = end
		}
	}
	return n
}

// Validate checks p for declaration defects and returns all of them joined
// into one error. Each defect wraps one of the Err* variables.
func (p *Periph) Validate() error {
	var errs []error
	fail := func(base error, f string, args ...any) {
		errs = append(errs, fmt.Errorf("%s: %w: %s", p.Name, base, fmt.Sprintf(f, args...)))
	}
	if !isIdent(p.Name) {
		fail(ErrName, "peripheral name %q", p.Name)
	}
	inames := make(map[string]bool)
	bases := make(map[uintptr]string)
	for _, in := range p.Insts {
		if !isIdent(in.Name) || inames[in.Name] {
			fail(ErrName, "instance %q", in.Name)
		}
		inames[in.Name] = true
		if in.Base&3 != 0 {
			fail(ErrBase, "%s: unaligned base %#x", in.Name, in.Base)
		}
		if other, ok := bases[in.Base]; ok {
			fail(ErrBase, "%s and %s share base %#x", other, in.Name, in.Base)
		}
		bases[in.Base] = in.Name
	}
	rnames := make(map[string]bool)
	offs := make(map[uintptr]string)
	for i := range p.Regs {
		r := &p.Regs[i]
		if !isIdent(r.Name) || rnames[r.Name] {
			fail(ErrName, "register %q", r.Name)
		}
		rnames[r.Name] = true
		if r.Offset&3 != 0 {
			fail(ErrOffset, "%s: unaligned offset %#x", r.Name, r.Offset)
		}
		if other, ok := offs[r.Offset]; ok {
			fail(ErrOffset, "%s and %s share offset %#x", other, r.Name, r.Offset)
		}
		offs[r.Offset] = r.Name
		validateFields(r, fail)
	}
	return errors.Join(errs...)
}

func validateFields(r *Reg, fail func(error, string, ...any)) {
	fnames := make(map[string]bool)
	var ok []*Field
	for i := range r.Fields {
		f := &r.Fields[i]
		if !isIdent(f.Name) || fnames[f.Name] {
			fail(ErrName, "%s: field %q", r.Name, f.Name)
		}
		fnames[f.Name] = true
		if f.Policy < ReadOnly || f.Policy > WriteOneToPulse {
			fail(ErrPolicy, "%s.%s: %v", r.Name, f.Name, f.Policy)
			continue
		}
		if f.Hi > 31 || f.Lo > f.Hi {
			fail(ErrRange, "%s.%s: bits %d:%d", r.Name, f.Name, f.Lo, f.Hi)
			continue
		}
		if f.Policy.SingleBit() && f.Lo != f.Hi {
			fail(ErrPolicy, "%s.%s: %v field must be a single bit", r.Name, f.Name, f.Policy)
		}
		ok = append(ok, f)
	}
	sort.Slice(ok, func(i, k int) bool { return ok[i].Lo < ok[k].Lo })
	var last *Field // field reaching the highest bit so far
	for _, f := range ok {
		if last != nil && f.Lo <= last.Hi {
			fail(ErrOverlap, "%s: %s (%d:%d) and %s (%d:%d)",
				r.Name, last.Name, last.Lo, last.Hi, f.Name, f.Lo, f.Hi)
		}
		if last == nil || f.Hi > last.Hi {
			last = f
		}
	}
}

// MustPeriph validates p and returns it. It panics if p has any defect.
func MustPeriph(p *Periph) *Periph {
	if err := p.Validate(); err != nil {
		panic(err)
	}
	return p
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		switch {
		case c == '_', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case i > 0 && '0' <= c && c <= '9':
		default:
			return false
		}
	}
	return true
}
