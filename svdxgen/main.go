// Copyright 2019 Michal Derkacz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Svdxgen generates xgen peripheral declarations and the mmap package from
// CMSIS-SVD files.
//
// For every SVD_FILE it writes OUTDIR/mmap/MCU.go with the base addresses of
// all peripheral instances and OUTDIR/PKG/PKG.go with the declaration of every
// register layout, where MCU is the SVD file name without extension. SVD
// access attributes map onto the access policies as follows:
//
//	read-only                                ro
//	write-only                               wo
//	write-only, 1 bit, oneToSet|oneToToggle  reset
//	read-write                               rw
//	read-write, 1 bit, oneToClear            rw1c
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/embeddedgo/max7800x/internal/util"
	"github.com/embeddedgo/max7800x/svd"
)

type ctx struct {
	mcu        string
	outdir     string
	importRoot string
}

func svdxgen(ctx *ctx, file string) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	dev, err := svd.Parse(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	ps := periphs(dev)
	if strings.HasPrefix(ctx.mcu, "max7800") {
		maxtweaks(ps)
	}
	if err := saveMmap(ctx, ps); err != nil {
		return err
	}
	var g errgroup.Group
	for _, p := range ps {
		if len(p.Regs) == 0 {
			continue
		}
		if err := p.Validate(); err != nil {
			util.Warn("%s: skipping %s: %v", file, p.Name, err)
			continue
		}
		g.Go(func() error { return savePeriph(ctx, p) })
	}
	return g.Wait()
}

func main() {
	outdir := flag.String("o", ".", "output `dir`ectory")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: svdxgen [-o DIR] IMPORT_ROOT SVD_FILE...")
		flag.PrintDefaults()
		os.Exit(1)
	}
	flag.Parse()
	if flag.NArg() < 2 {
		flag.Usage()
	}
	importRoot := flag.Arg(0)
	var g errgroup.Group
	for _, file := range flag.Args()[1:] {
		mcu := strings.ToLower(strings.TrimSuffix(filepath.Base(file), filepath.Ext(file)))
		c := &ctx{mcu: mcu, outdir: *outdir, importRoot: importRoot}
		g.Go(func() error { return svdxgen(c, file) })
	}
	util.FatalErr("svdxgen", g.Wait())
}
