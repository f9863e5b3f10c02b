// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !noos

package sim

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/marcinbor85/gohex"
)

// DumpHex writes the registers in [base, base+size) as little-endian Intel
// HEX records.
func (s *Space) DumpHex(w io.Writer, base, size uintptr) error {
	checkAlign(base)
	data := make([]byte, (size+3)&^3)
	s.mu.Lock()
	for off := uintptr(0); off < uintptr(len(data)); off += 4 {
		binary.LittleEndian.PutUint32(data[off:], s.mem[base+off])
	}
	s.mu.Unlock()
	mem := gohex.NewMemory()
	if err := mem.AddBinary(uint32(base), data); err != nil {
		return fmt.Errorf("sim: dump %#x: %w", base, err)
	}
	return mem.DumpIntelHex(w, 16)
}

// LoadHex pokes every word found in the Intel HEX records read from r. Data
// segments must be word aligned.
func (s *Space) LoadHex(r io.Reader) error {
	mem := gohex.NewMemory()
	if err := mem.ParseIntelHex(r); err != nil {
		return fmt.Errorf("sim: %w", err)
	}
	for _, seg := range mem.GetDataSegments() {
		if seg.Address&3 != 0 || len(seg.Data)&3 != 0 {
			return fmt.Errorf(
				"sim: segment %#x+%d is not word aligned",
				seg.Address, len(seg.Data),
			)
		}
		for off := 0; off < len(seg.Data); off += 4 {
			s.Poke(
				uintptr(seg.Address)+uintptr(off),
				binary.LittleEndian.Uint32(seg.Data[off:]),
			)
		}
	}
	return nil
}
