// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !noos

package regs

import (
	"flag"
	"fmt"
	"os"

	"github.com/embeddedgo/max7800x/internal/util"
	"github.com/embeddedgo/max7800x/regtool/internal/catalog"
)

const Descr = "list the instances, registers and fields of peripherals"

func Main(cmd string, args []string) {
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage:\n  %s [PERIPH...]\n", cmd)
		fs.PrintDefaults()
	}
	fs.Parse(args)
	names := fs.Args()
	if len(names) == 0 {
		names = catalog.Names()
	}
	for _, name := range names {
		p, _, err := catalog.Lookup(name, "")
		util.FatalErr(cmd, err)
		util.FatalErr(cmd, catalog.List(os.Stdout, p))
	}
}
