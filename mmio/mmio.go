// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mmio provides access to memory mapped 32-bit registers.
//
// Every Load is one 32-bit read and every Store is one 32-bit write of the
// register. Nothing is cached: the hardware is the only source of truth.
//
// The package provides no mutual exclusion. A read-modify-write sequence made
// of separate Load and Store calls is not atomic with respect to interrupt
// handlers or other goroutines touching the same register. Serializing such
// accesses is the caller's responsibility.
//
// Programs built with the noos tag access the physical address directly.
// Hosted programs access registers through the Space installed by Use (see
// mmio/sim and mmio/devmem).
package mmio

// U32 is the address of a 32-bit memory mapped register.
type U32 uintptr

// Addr returns the address of the register.
func (r U32) Addr() uintptr { return uintptr(r) }

// Load reads the register.
func (r U32) Load() uint32 { return load32(uintptr(r)) }

// Store writes v to the register.
func (r U32) Store(v uint32) { store32(uintptr(r), v) }
