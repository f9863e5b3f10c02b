// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mmap provides base memory addresses of the MAX78000 peripherals
// described in this module. The layout follows the output of svdxgen.
package mmap

// UART
const (
	UART0_BASE   uintptr = 0x40042000 // UART0 controller
	UART1_BASE   uintptr = 0x40043000 // UART1 controller
	UART2_BASE   uintptr = 0x40044000 // UART2 controller
	LPUART0_BASE uintptr = 0x40081400 // Low power UART (UART3)
)
