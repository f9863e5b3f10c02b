// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux && !noos

package dump

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/embeddedgo/max7800x/internal/util"
	"github.com/embeddedgo/max7800x/mmio"
	"github.com/embeddedgo/max7800x/mmio/devmem"
	"github.com/embeddedgo/max7800x/reg"
	"github.com/embeddedgo/max7800x/regtool/internal/catalog"
)

const Descr = "decode the registers of a peripheral instance"

// Flags are the options shared by the commands that read a register block.
type Flags struct {
	Mem  *string
	Skip *string
}

func AddFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		Mem: fs.String("mem", devmem.DefaultPath, "memory device or image `file`"),
		Skip: fs.String(
			"skip", "FIFO",
			"comma separated `registers` not to read (reads with side effects)",
		),
	}
}

// Map looks up the instance and maps its register block through the memory
// file. It returns the function that unmaps it.
func (f *Flags) Map(periph, inst string) (*reg.Periph, *reg.Inst, func(), error) {
	p, in, err := catalog.Lookup(periph, inst)
	if err != nil {
		return nil, nil, nil, err
	}
	w, err := devmem.Open(*f.Mem, in.Base, p.Size())
	if err != nil {
		return nil, nil, nil, err
	}
	prev := mmio.Use(w)
	return p, in, func() {
		mmio.Use(prev)
		w.Close()
	}, nil
}

func (f *Flags) SkipList() []string {
	if *f.Skip == "" {
		return nil
	}
	return strings.Split(strings.ToUpper(*f.Skip), ",")
}

func Main(cmd string, args []string) {
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage:\n  %s [OPTIONS] PERIPH INSTANCE\nOptions:\n", cmd)
		fs.PrintDefaults()
	}
	flags := AddFlags(fs)
	fs.Parse(args)
	if fs.NArg() != 2 {
		fs.Usage()
		os.Exit(1)
	}
	p, in, unmap, err := flags.Map(fs.Arg(0), fs.Arg(1))
	util.FatalErr(cmd, err)
	defer unmap()
	fmt.Printf("%s %#08x\n", in.Name, in.Base)
	util.FatalErr(cmd, catalog.Decode(os.Stdout, p, in.Base, flags.SkipList()))
}
