// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reg provides typed access to the bitfields of memory mapped
// registers.
//
// A register is described by its offset from the base address of a
// peripheral instance. The instance is a type parameter, so one register
// description yields an independent accessor set for every instance with no
// runtime indirection:
//
//	type UART1 struct{}
//
//	func (UART1) Base() uintptr { return mmap.UART1_BASE }
//
//	ctrl := reg.At[UART1](0x000).WithActions(0x300)
//	size := reg.NewRW[UART1, uint8](ctrl, 10, 11)
//	size.Store(3)
//	reg.NewPulse(ctrl, 9).Trigger()
//
// A register that holds W1C flags or pulse bits next to other fields must
// declare them with WithActions. Setters that read-modify-write an undeclared
// register write back latched flags as read, clearing them. W1C and Pulse
// accessors on a register with no declared action bits store their bit alone.
//
// The operations available on a bitfield are determined by its access policy
// and enforced by the type system: a WOBit has no Load method, a W1C flag has
// Load and Clear but no Store, a Pulse has only Trigger.
//
// Every accessor call performs at most one load and one store. Nothing in this
// package synchronizes accesses. Callers that share a register between an
// interrupt handler and thread code, or that need several accessor calls to
// appear atomic, must provide their own exclusion.
package reg

import (
	"fmt"

	"github.com/embeddedgo/max7800x/mmio"
)

// Instance is a peripheral instance. Implementations are zero-size types
// whose Base method returns a constant.
type Instance interface {
	Base() uintptr
}

// R32 is the 32-bit register at a fixed offset from the base of instance P.
type R32[P Instance] struct {
	off uintptr
	act uint32 // W1C and pulse bits
}

// At returns the register at offset off from the base of instance P, with no
// action bits declared. It panics if off is not 4-byte aligned.
func At[P Instance](off uintptr) R32[P] {
	if off&3 != 0 {
		panic(fmt.Sprintf("reg: unaligned register offset %#x", off))
	}
	return R32[P]{off: off}
}

// WithActions returns r with the bits in m declared as action bits: latched
// flags cleared by writing 1 and self-clearing command bits. Field setters
// that read-modify-write r always write 0 to the action bits, so they never
// clear a flag or start a command as a side effect.
func (r R32[P]) WithActions(m uint32) R32[P] {
	r.act = m
	return r
}

// Actions returns the action bits of r.
func (r R32[P]) Actions() uint32 { return r.act }

// Offset returns the offset of r from the base of its instance.
func (r R32[P]) Offset() uintptr { return r.off }

// U32 returns the register overlay at the resolved address.
func (r R32[P]) U32() mmio.U32 {
	var p P
	return mmio.U32(p.Base() + r.off)
}

// Load reads the whole register.
func (r R32[P]) Load() uint32 { return r.U32().Load() }

// Store writes the whole register.
func (r R32[P]) Store(v uint32) { r.U32().Store(v) }
