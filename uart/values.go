// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uart

// CTRL.CHAR_SIZE values.
const (
	Char5 uint8 = 0
	Char6 uint8 = 1
	Char7 uint8 = 2
	Char8 uint8 = 3
)

// CTRL.BCLKSRC values.
const (
	PCLK   uint8 = 0 // peripheral clock
	ExtClk uint8 = 1 // external clock
	IBRO   uint8 = 2 // 7.3728 MHz internal baud rate oscillator
	ERTCO  uint8 = 3 // 32.768 kHz external RTC oscillator, LPUART only
)

// CTRL.PAR_EO values.
const (
	ParityEven = false
	ParityOdd  = true
)

// CTRL.STOPBITS values. Stop2 gives 1.5 stop bits for 5-bit characters.
const (
	Stop1 = false
	Stop2 = true
)

// FIFODepth is the depth of the transmit and receive FIFOs, the upper limit
// of CTRL.RX_THD_VAL and the DMA thresholds.
const FIFODepth = 8
