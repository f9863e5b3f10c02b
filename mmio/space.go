// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !noos

package mmio

import "fmt"

// Space is an address space that serves register accesses in hosted
// programs. Load32 and Store32 are called with 4-byte aligned addresses.
type Space interface {
	Load32(addr uintptr) uint32
	Store32(addr uintptr, v uint32)
}

var space Space = unmapped{}

// Use installs s as the address space used by all registers and returns the
// previously installed one. Use(nil) restores the initial state in which
// every access panics.
func Use(s Space) Space {
	prev := space
	if s == nil {
		s = unmapped{}
	}
	space = s
	if _, ok := prev.(unmapped); ok {
		return nil
	}
	return prev
}

type unmapped struct{}

func (unmapped) Load32(addr uintptr) uint32 {
	panic(fmt.Sprintf("mmio: bus fault: load from unmapped address %#x", addr))
}

func (unmapped) Store32(addr uintptr, v uint32) {
	panic(fmt.Sprintf("mmio: bus fault: store to unmapped address %#x", addr))
}

func load32(addr uintptr) uint32 {
	if addr&3 != 0 {
		panic(fmt.Sprintf("mmio: bus fault: unaligned load from %#x", addr))
	}
	return space.Load32(addr)
}

func store32(addr uintptr, v uint32) {
	if addr&3 != 0 {
		panic(fmt.Sprintf("mmio: bus fault: unaligned store to %#x", addr))
	}
	space.Store32(addr, v)
}
