// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"sort"

	"github.com/embeddedgo/max7800x/reg"
)

const dmaErrata = `UG lists the access as "0"; hardware is R/W.`

func maxtweaks(ps []*Periph) {
	for _, p := range ps {
		switch p.Pkg {
		case "uart":
			maxuart(p)
		}
	}
}

func maxuart(p *Periph) {
	r := p.Reg("DMA")
	if r == nil {
		return
	}
	// The SVD follows the User Guide which documents RX_EN and RX_THD_VAL
	// as reserved. Both are implemented as read-write.
	// A reserved field may be missing from the SVD.
	for _, e := range []reg.Field{
		{Name: "RX_THD_VAL", Lo: 5, Hi: 8, Descr: "Receive FIFO level DMA threshold."},
		{Name: "RX_EN", Lo: 9, Hi: 9, Descr: "Receive DMA channel enable."},
	} {
		f := r.Field(e.Name)
		if f == nil {
			r.Fields = append(r.Fields, e)
			f = &r.Fields[len(r.Fields)-1]
		}
		f.Policy = reg.ReadWrite
		f.Errata = dmaErrata
	}
	sort.Slice(r.Fields, func(i, k int) bool { return r.Fields[i].Lo < r.Fields[k].Lo })
}
