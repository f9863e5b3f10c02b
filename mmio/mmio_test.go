// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !noos

package mmio

import (
	"strings"
	"testing"
)

type access struct {
	store bool
	addr  uintptr
	v     uint32
}

// recorder is a flat word memory that logs every bus transaction.
type recorder struct {
	mem map[uintptr]uint32
	log []access
}

func (r *recorder) Load32(addr uintptr) uint32 {
	r.log = append(r.log, access{false, addr, r.mem[addr]})
	return r.mem[addr]
}

func (r *recorder) Store32(addr uintptr, v uint32) {
	r.log = append(r.log, access{true, addr, v})
	r.mem[addr] = v
}

func useRecorder(t *testing.T) *recorder {
	t.Helper()
	r := &recorder{mem: make(map[uintptr]uint32)}
	prev := Use(r)
	t.Cleanup(func() { Use(prev) })
	return r
}

func TestLoadStore(t *testing.T) {
	rec := useRecorder(t)
	r := U32(0x4004_2000)
	r.Store(0xDEAD_BEEF)
	if v := r.Load(); v != 0xDEAD_BEEF {
		t.Errorf("Load: got %#x, want 0xdeadbeef", v)
	}
	if r.Addr() != 0x4004_2000 {
		t.Errorf("Addr: got %#x", r.Addr())
	}
	want := []access{{true, 0x4004_2000, 0xDEAD_BEEF}, {false, 0x4004_2000, 0xDEAD_BEEF}}
	if len(rec.log) != len(want) {
		t.Fatalf("got %d bus transactions, want %d", len(rec.log), len(want))
	}
	for i, a := range want {
		if rec.log[i] != a {
			t.Errorf("transaction %d: got %+v, want %+v", i, rec.log[i], a)
		}
	}
}

func TestLoadIsNotCached(t *testing.T) {
	rec := useRecorder(t)
	r := U32(0x4004_2004)
	rec.mem[0x4004_2004] = 1
	a := r.Load()
	rec.mem[0x4004_2004] = 2 // hardware changed the register
	b := r.Load()
	if a != 1 || b != 2 {
		t.Errorf("got %d then %d, want 1 then 2", a, b)
	}
	if len(rec.log) != 2 {
		t.Errorf("got %d loads, want 2", len(rec.log))
	}
}

func expectFault(t *testing.T, what string, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Errorf("%s: no panic", what)
			return
		}
		if s, _ := r.(string); !strings.Contains(s, "bus fault") {
			t.Errorf("%s: unexpected panic: %v", what, r)
		}
	}()
	f()
}

func TestUnmapped(t *testing.T) {
	prev := Use(nil)
	defer Use(prev)
	expectFault(t, "load", func() { U32(0x4000_0000).Load() })
	expectFault(t, "store", func() { U32(0x4000_0000).Store(1) })
}

func TestUnaligned(t *testing.T) {
	useRecorder(t)
	expectFault(t, "load", func() { U32(0x4000_0002).Load() })
	expectFault(t, "store", func() { U32(0x4000_0001).Store(1) })
}

func TestUseReturnsPrevious(t *testing.T) {
	prev := Use(nil)
	defer Use(prev)
	a := &recorder{mem: make(map[uintptr]uint32)}
	if p := Use(a); p != nil {
		t.Errorf("Use after Use(nil): got %v, want nil", p)
	}
	if p := Use(nil); p != a {
		t.Errorf("Use: got %v, want the installed recorder", p)
	}
}
