// Copyright 2019 Michal Derkacz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Xgen generates typed register accessors from a peripheral declaration.
//
// The declaration is the package comment of a Go file:
//
//	Peripheral: TYPE  description
//	Instances:
//	 NAME  BASE  description
//	Registers:
//	 OFFSET 32  NAME  description
//	Fields NAME:
//	 BIT|LO:HI  POLICY  FIELD  description [! errata]
//	Import:
//	 IMPORT/PATH
//
// POLICY is one of ro, wo, rw, rw1c, reset. The generated accessors are
// written to xgen_FILE.go next to the input file. Malformed declarations
// (overlapping fields, bits beyond 31, duplicate offsets or bases, multi-bit
// rw1c or reset fields) are rejected.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/embeddedgo/max7800x/internal/util"
)

func main() {
	regImport := flag.String(
		"reg", "",
		"import `path` of the reg package (default MODULE/reg)",
	)
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "xgen [options] FILE1.go FILE2.go ...")
		flag.PrintDefaults()
		os.Exit(1)
	}
	flag.Parse()

	if len(flag.Args()) == 0 {
		flag.Usage()
	}
	if *regImport == "" {
		mod, err := util.Module()
		util.FatalErr("xgen", err)
		*regImport = mod + "/reg"
	}

	var g errgroup.Group
	for _, f := range flag.Args() {
		if !strings.HasSuffix(f, ".go") {
			util.Warn("ignoring: %s", f)
			continue
		}
		g.Go(func() error { return xgen(f, *regImport) })
	}
	util.FatalErr("xgen", g.Wait())
}
