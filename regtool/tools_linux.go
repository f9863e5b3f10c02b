// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux && !noos

package main

import (
	"github.com/embeddedgo/max7800x/regtool/internal/cmd/dump"
	"github.com/embeddedgo/max7800x/regtool/internal/cmd/hex"
)

func init() {
	tools["dump"] = tool{dump.Descr, dump.Main}
	tools["hex"] = tool{hex.Descr, hex.Main}
}
