// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package uart provides access to the registers of the MAX7800x UART
// controllers. See MAX78000 User Guide, section 12.
//
// Peripheral: Periph  Universal asynchronous receiver/transmitter.
// Instances:
//
//	UART0    mmap.UART0_BASE    UART0 controller
//	UART1    mmap.UART1_BASE    UART1 controller
//	UART2    mmap.UART2_BASE    UART2 controller
//	LPUART0  mmap.LPUART0_BASE  Low power UART (UART3)
//
// Registers:
//
//	0x00 32  CTRL    Control register. UG p.180, table 12-8.
//	0x04 32  STATUS  Status register. UG p.182, table 12-9.
//	0x08 32  INT_EN  Interrupt enable register. UG p.182, table 12-10.
//	0x0C 32  INT_FL  Interrupt flag register. UG p.183, table 12-11.
//	0x10 32  CLKDIV  Clock divisor register. UG p.183, table 12-12.
//	0x14 32  OSR     Oversampling control register. UG p.184, table 12-13.
//	0x18 32  TXPEEK  Transmit FIFO peek register. UG p.184, table 12-14.
//	0x1C 32  PNR     Pin control register. UG p.184, table 12-15.
//	0x20 32  FIFO    FIFO data register. UG p.185, table 12-16.
//	0x30 32  DMA     DMA control register. UG p.185, table 12-17.
//	0x34 32  WKEN    Wakeup interrupt enable register. UG p.185, table 12-18.
//	0x38 32  WKFL    Wakeup interrupt flag register. UG p.186, table 12-19.
//
// Fields CTRL:
//
//	0:3    rw     RX_THD_VAL  Receive FIFO threshold in bytes (1-8) that raises the RX_THD interrupt.
//	4      rw     PAR_EN      Transmit parity generation enable.
//	5      rw     PAR_EO      Parity odd/even select: 0 even, 1 odd.
//	6      rw     PAR_MD      Parity calculation uses 1s (0) or 0s (1).
//	7      rw     CTS_DIS     CTS sampling disable.
//	8      reset  TX_FLUSH    Flush the transmit FIFO.
//	9      reset  RX_FLUSH    Flush the receive FIFO.
//	10:11  rw     CHAR_SIZE   Character length: 0 5 bits, 1 6 bits, 2 7 bits, 3 8 bits.
//	12     rw     STOPBITS    Number of stop bits: 0 one, 1 1.5 (5-bit characters) or 2.
//	13     rw     HFC_EN      Hardware flow control enable.
//	14     wo     RTSDC       RTS deassert condition: 0 FIFO full, 1 FIFO level >= RX_THD_VAL.
//	15     rw     BCLKEN      Baud clock enable.
//	16:17  rw     BCLKSRC     Baud clock source (UG table 12-1).
//	18     rw     DPFE_EN     Bit frame error detection enable (LPUART only).
//	19     ro     BCLKRDY     Baud clock ready.
//	20     rw     UCAGM       Clock auto gating: pause the UART clock when idle. Software should set 1.
//	21     rw     FDM         Fractional baud rate divisor, 0.5 resolution (LPUART only).
//	22     rw     DESM        Receive dual edge sampling (LPUART only).
//
// Fields STATUS:
//
//	0      ro     TX_BUSY     Transmit busy.
//	1      ro     RX_BUSY     Receive busy.
//	4      ro     RX_EM       Receive FIFO empty.
//	5      ro     RX_FULL     Receive FIFO full.
//	6      ro     TX_EM       Transmit FIFO empty.
//	7      ro     TX_FULL     Transmit FIFO full.
//	8:11   ro     RX_LVL      Number of bytes in the receive FIFO (0-8).
//	12:15  ro     TX_LVL      Number of bytes in the transmit FIFO (0-8).
//
// Fields INT_EN:
//
//	0      rw     RX_FERR     Receive frame error interrupt enable.
//	1      rw     RX_PAR      Receive parity error interrupt enable.
//	2      rw     CTS_EV      CTS signal change interrupt enable.
//	3      rw     RX_OV       Receive FIFO overrun interrupt enable.
//	4      rw     RX_THD      Receive FIFO threshold interrupt enable.
//	6      rw     TX_HE       Transmit FIFO half-empty interrupt enable.
//
// Fields INT_FL:
//
//	0      rw1c   RX_FERR     Receive frame error.
//	1      rw1c   RX_PAR      Receive parity error.
//	2      rw1c   CTS_EV      CTS signal changed.
//	3      rw1c   RX_OV       Receive FIFO overrun.
//	4      rw1c   RX_THD      Receive FIFO reached RX_THD_VAL.
//	6      rw1c   TX_HE       Transmit FIFO half-empty.
//
// Fields CLKDIV:
//
//	0:19   rw     CLKDIV      Baud rate divisor.
//
// Fields OSR:
//
//	0:2    rw     OSR         LPUART oversampling rate.
//
// Fields TXPEEK:
//
//	0:7    ro     DATA        Byte at the read end of the transmit FIFO.
//
// Fields PNR:
//
//	0      ro     CTS         CTS pin state.
//	1      rw     RTS         RTS output state.
//
// Fields FIFO:
//
//	0:7    rw     DATA        Write: push to the transmit FIFO. Read: pop from the receive FIFO. Store loads first, so it pops; push with FIFO().Store.
//	8      ro     RX_PAR      Parity bit of the byte at the read end of the receive FIFO.
//
// Fields DMA:
//
//	0:3    rw     TX_THD_VAL  Transmit FIFO level DMA threshold.
//	4      rw     TX_EN       Transmit DMA channel enable.
//	5:8    rw     RX_THD_VAL  Receive FIFO level DMA threshold. ! UG lists the access as "0"; hardware is R/W.
//	9      rw     RX_EN       Receive DMA channel enable. ! UG lists the access as "0"; hardware is R/W.
//
// Fields WKEN:
//
//	0      rw     RX_NE       Receive FIFO not empty wakeup enable.
//	1      rw     RX_FULL     Receive FIFO full wakeup enable.
//	2      rw     RX_THD      Receive FIFO threshold wakeup enable.
//
// Fields WKFL:
//
//	0      rw     RX_NE       Receive FIFO not empty wakeup event.
//	1      rw     RX_FULL     Receive FIFO full wakeup event.
//	2      rw     RX_THD      Receive FIFO threshold wakeup event.
//
// Import:
//
//	github.com/embeddedgo/max7800x/mmap
package uart

//go:generate go run ../xgen uart.go
