// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux && !noos

// Package devmem maps physical memory into a hosted Linux process and serves
// register accesses from the mapping.
package devmem

import (
	"fmt"
	"os"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/unix"
)

// DefaultPath is the physical memory device.
const DefaultPath = "/dev/mem"

// Window is a mapping of the physical address range [Base, Base+Size). It
// implements mmio.Space.
type Window struct {
	base uintptr
	size uintptr
	data []byte // page aligned mapping
	skew uintptr
}

// Open maps size bytes of the file at path starting at the physical address
// base. The mapping is shared, so stores reach the device.
func Open(path string, base, size uintptr) (*Window, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_SYNC, 0)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	page := uintptr(unix.Getpagesize())
	start := base &^ (page - 1)
	skew := base - start
	data, err := unix.Mmap(
		int(f.Fd()), int64(start), int(skew+size),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED,
	)
	if err != nil {
		return nil, fmt.Errorf("devmem: mmap %#x+%#x: %w", base, size, err)
	}
	return &Window{base: base, size: size, data: data, skew: skew}, nil
}

// Close unmaps the window.
func (w *Window) Close() error {
	if w.data == nil {
		return nil
	}
	err := unix.Munmap(w.data)
	w.data = nil
	return err
}

// Base returns the first physical address covered by w.
func (w *Window) Base() uintptr { return w.base }

// Size returns the number of bytes covered by w.
func (w *Window) Size() uintptr { return w.size }

func (w *Window) word(addr uintptr) *uint32 {
	if addr < w.base || addr+4 > w.base+w.size || w.data == nil {
		panic(fmt.Sprintf("devmem: bus fault: %#x outside window %#x+%#x", addr, w.base, w.size))
	}
	return (*uint32)(unsafe.Pointer(&w.data[w.skew+addr-w.base]))
}

// Load32 implements mmio.Space.
func (w *Window) Load32(addr uintptr) uint32 {
	return atomic.LoadUint32(w.word(addr))
}

// Store32 implements mmio.Space.
func (w *Window) Store32(addr uintptr, v uint32) {
	atomic.StoreUint32(w.word(addr), v)
}
