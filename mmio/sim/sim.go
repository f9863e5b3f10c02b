// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !noos

// Package sim provides a simulated peripheral address space for hosted
// programs and tests.
//
// Memory is a sparse set of 32-bit words that read as zero until written.
// Per-word rules model the store side effects of real registers: read-only
// bits ignore stores, write-one-to-clear bits are cleared by storing 1 and
// pulse bits trigger an action and always read as 0. Poke and Peek act as
// the hardware side and bypass the rules.
package sim

import (
	"fmt"
	"sync"

	"github.com/embeddedgo/max7800x/reg"
)

// Rule describes how stores affect the bits of one register.
type Rule struct {
	RO    uint32 // bits ignored by stores
	W1C   uint32 // bits cleared by storing 1, unchanged by storing 0
	Pulse uint32 // self-clearing command bits, read as 0

	// OnPulse, if not nil, is called with the pulse bits set in a store.
	OnPulse func(addr uintptr, bits uint32)
}

// Space is a simulated address space. It implements mmio.Space and is safe
// for concurrent use.
type Space struct {
	mu     sync.Mutex
	mem    map[uintptr]uint32
	rules  map[uintptr]*Rule
	pulses map[uintptr]uint32
	loads  int
	stores int
}

// New returns an empty address space.
func New() *Space {
	return &Space{
		mem:    make(map[uintptr]uint32),
		rules:  make(map[uintptr]*Rule),
		pulses: make(map[uintptr]uint32),
	}
}

func checkAlign(addr uintptr) {
	if addr&3 != 0 {
		panic(fmt.Sprintf("sim: unaligned access to %#x", addr))
	}
}

// SetRule sets the store rule of the register at addr.
func (s *Space) SetRule(addr uintptr, r Rule) {
	checkAlign(addr)
	s.mu.Lock()
	s.rules[addr] = &r
	s.mu.Unlock()
}

// Load32 implements mmio.Space.
func (s *Space) Load32(addr uintptr) uint32 {
	checkAlign(addr)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loads++
	return s.mem[addr]
}

// Store32 implements mmio.Space.
func (s *Space) Store32(addr uintptr, v uint32) {
	checkAlign(addr)
	s.mu.Lock()
	s.stores++
	r := s.rules[addr]
	if r == nil {
		s.mem[addr] = v
		s.mu.Unlock()
		return
	}
	cur := s.mem[addr]
	keep := r.RO | r.W1C
	cur = cur&keep&^(v&r.W1C) | v&^(keep|r.Pulse)
	s.mem[addr] = cur
	p := v & r.Pulse
	if p != 0 {
		s.pulses[addr] |= p
	}
	onPulse := r.OnPulse
	s.mu.Unlock()
	if p != 0 && onPulse != nil {
		onPulse(addr, p)
	}
}

// Poke sets the register at addr to v as the hardware would, ignoring rules.
func (s *Space) Poke(addr uintptr, v uint32) {
	checkAlign(addr)
	s.mu.Lock()
	s.mem[addr] = v
	s.mu.Unlock()
}

// Peek returns the register at addr without counting a bus access.
func (s *Space) Peek(addr uintptr) uint32 {
	checkAlign(addr)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mem[addr]
}

// Pulses returns the pulse bits triggered at addr since the previous call and
// resets them.
func (s *Space) Pulses(addr uintptr) uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.pulses[addr]
	delete(s.pulses, addr)
	return p
}

// Accesses returns the number of loads and stores served so far.
func (s *Space) Accesses() (loads, stores int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loads, s.stores
}

// Attach sets the store rules of all registers of the peripheral instance at
// base according to the field policies in p.
func (s *Space) Attach(base uintptr, p *reg.Periph) {
	for i := range p.Regs {
		r := &p.Regs[i]
		s.SetRule(base+r.Offset, Rule{
			RO:    r.Mask(reg.ReadOnly),
			W1C:   r.Mask(reg.WriteOneToClear),
			Pulse: r.Mask(reg.WriteOneToPulse),
		})
	}
}
