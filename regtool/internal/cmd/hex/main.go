// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux && !noos

package hex

import (
	"flag"
	"fmt"
	"os"

	"github.com/embeddedgo/max7800x/internal/util"
	"github.com/embeddedgo/max7800x/regtool/internal/catalog"
	"github.com/embeddedgo/max7800x/regtool/internal/cmd/dump"
)

const Descr = "save the registers of a peripheral instance in the Intel HEX format"

func Main(cmd string, args []string) {
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(
			os.Stderr,
			"Usage:\n  %s [OPTIONS] PERIPH INSTANCE HEX\nOptions:\n", cmd,
		)
		fs.PrintDefaults()
	}
	flags := dump.AddFlags(fs)
	fs.Parse(args)
	if fs.NArg() != 3 {
		fs.Usage()
		os.Exit(1)
	}
	p, in, unmap, err := flags.Map(fs.Arg(0), fs.Arg(1))
	util.FatalErr(cmd, err)
	snap := catalog.Snapshot(p, in.Base, flags.SkipList())
	unmap()
	of, err := os.Create(fs.Arg(2))
	util.FatalErr("", err)
	defer of.Close()
	err = snap.DumpHex(of, in.Base, p.Size())
	util.FatalErr("dumpintelhex", err)
}
