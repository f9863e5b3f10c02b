// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reg

import (
	"fmt"
	"unsafe"
)

// Uint is the set of value types of multi-bit fields.
type Uint interface {
	~uint8 | ~uint16 | ~uint32
}

// field is the bit range [shift, shift+width) of a register. mask is
// right-aligned.
type field[P Instance] struct {
	r     R32[P]
	shift uint8
	mask  uint32
}

func mkfield[P Instance](r R32[P], lo, hi, maxWidth uint) field[P] {
	if hi > 31 || lo > hi {
		panic(fmt.Sprintf("reg: bad bit range %d:%d", lo, hi))
	}
	if hi-lo+1 > maxWidth {
		panic(fmt.Sprintf(
			"reg: %d-bit field %d:%d does not fit %d-bit value",
			hi-lo+1, lo, hi, maxWidth,
		))
	}
	return field[P]{r: r, shift: uint8(lo), mask: ^uint32(0) >> (31 - (hi - lo))}
}

func bitsOf[T Uint]() uint {
	var v T
	return uint(unsafe.Sizeof(v)) * 8
}

func (f field[P]) load() uint32 {
	return f.r.Load() >> f.shift & f.mask
}

// store replaces the field bits, leaving the other bits as read except the
// action bits which are written as 0. Excess bits of v are dropped. A W1C flag
// that is not declared as an action bit is written back as read, so it is
// cleared if it was set.
func (f field[P]) store(v uint32) {
	m := f.mask << f.shift
	f.r.Store(f.r.Load()&^(m|f.r.act) | v<<f.shift&m)
}

// strobe writes 1 to the field bit. If the bit is declared as an action bit
// the other action bits are written as 0 and the remaining bits as read.
// Otherwise strobe writes the field bit alone, with no load.
func (f field[P]) strobe() {
	m := uint32(1) << f.shift
	if f.r.act&m == 0 {
		f.r.Store(m)
		return
	}
	f.r.Store(f.r.Load()&^(m|f.r.act) | m)
}

// mkaction is mkfield for a W1C or pulse bit. It panics if r declares action
// bits but not this one.
func mkaction[P Instance](r R32[P], bit uint) field[P] {
	f := mkfield(r, bit, bit, 1)
	if r.act != 0 && r.act&f.Mask() == 0 {
		panic(fmt.Sprintf(
			"reg: bit %d is not among the action bits %#x", bit, r.act,
		))
	}
	return f
}

// Shift returns the position of the least significant bit of the field.
func (f field[P]) Shift() uint { return uint(f.shift) }

// Mask returns the field bits in their register position.
func (f field[P]) Mask() uint32 { return f.mask << f.shift }

// RO is a read-only multi-bit field, typically hardware status.
type RO[P Instance, T Uint] struct{ field[P] }

// NewRO returns the read-only field occupying bits lo to hi of r.
func NewRO[P Instance, T Uint](r R32[P], lo, hi uint) RO[P, T] {
	return RO[P, T]{mkfield(r, lo, hi, bitsOf[T]())}
}

// Load reads the field.
func (f RO[P, T]) Load() T { return T(f.load()) }

// WO is a write-only multi-bit field.
type WO[P Instance, T Uint] struct{ field[P] }

// NewWO returns the write-only field occupying bits lo to hi of r.
func NewWO[P Instance, T Uint](r R32[P], lo, hi uint) WO[P, T] {
	return WO[P, T]{mkfield(r, lo, hi, bitsOf[T]())}
}

// Store writes v to the field preserving the other bits of the register. v is
// truncated to the field width.
func (f WO[P, T]) Store(v T) { f.store(uint32(v)) }

// RW is a read-write multi-bit field.
type RW[P Instance, T Uint] struct{ field[P] }

// NewRW returns the read-write field occupying bits lo to hi of r.
func NewRW[P Instance, T Uint](r R32[P], lo, hi uint) RW[P, T] {
	return RW[P, T]{mkfield(r, lo, hi, bitsOf[T]())}
}

// Load reads the field.
func (f RW[P, T]) Load() T { return T(f.load()) }

// Store writes v to the field preserving the other bits of the register. v is
// truncated to the field width.
func (f RW[P, T]) Store(v T) { f.store(uint32(v)) }

// ROBit is a read-only single-bit field.
type ROBit[P Instance] struct{ field[P] }

// NewROBit returns the read-only bit of r at position bit.
func NewROBit[P Instance](r R32[P], bit uint) ROBit[P] {
	return ROBit[P]{mkfield(r, bit, bit, 1)}
}

// Load reports whether the bit is set.
func (b ROBit[P]) Load() bool { return b.load() != 0 }

// WOBit is a write-only single-bit field.
type WOBit[P Instance] struct{ field[P] }

// NewWOBit returns the write-only bit of r at position bit.
func NewWOBit[P Instance](r R32[P], bit uint) WOBit[P] {
	return WOBit[P]{mkfield(r, bit, bit, 1)}
}

// Store sets the bit to v preserving the other bits of the register.
func (b WOBit[P]) Store(v bool) { b.store(b2u(v)) }

// RWBit is a read-write single-bit field.
type RWBit[P Instance] struct{ field[P] }

// NewRWBit returns the read-write bit of r at position bit.
func NewRWBit[P Instance](r R32[P], bit uint) RWBit[P] {
	return RWBit[P]{mkfield(r, bit, bit, 1)}
}

// Load reports whether the bit is set.
func (b RWBit[P]) Load() bool { return b.load() != 0 }

// Store sets the bit to v preserving the other bits of the register.
func (b RWBit[P]) Store(v bool) { b.store(b2u(v)) }

// W1C is a latched flag that hardware sets and software clears by writing 1.
// Writing 0 to a W1C bit has no effect.
type W1C[P Instance] struct{ field[P] }

// NewW1C returns the flag of r at position bit. If r declares action bits
// they must include bit.
func NewW1C[P Instance](r R32[P], bit uint) W1C[P] {
	return W1C[P]{mkaction(r, bit)}
}

// Load reports whether the flag is set.
func (b W1C[P]) Load() bool { return b.load() != 0 }

// Clear clears the flag and no other. If r has no declared action bits Clear
// stores the flag bit alone, which writes 0 to the other fields of r.
func (b W1C[P]) Clear() { b.strobe() }

// Pulse is a self-clearing command bit, e.g. a FIFO flush. It has no
// readable state.
type Pulse[P Instance] struct{ field[P] }

// NewPulse returns the command bit of r at position bit. If r declares action
// bits they must include bit.
func NewPulse[P Instance](r R32[P], bit uint) Pulse[P] {
	return Pulse[P]{mkaction(r, bit)}
}

// Trigger writes 1 to the command bit. If r declares its action bits the
// other fields of r keep their values. Otherwise Trigger stores the command
// bit alone.
func (b Pulse[P]) Trigger() { b.strobe() }

func b2u(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
