// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"go/constant"
	"go/types"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/tools/go/packages"
)

// resolveBases evaluates the base address expressions of the instances. An
// expression is either an integer literal or PKG.CONST where PKG is the last
// element of one of the imported paths.
func resolveBases(d *decl) (map[string]uintptr, error) {
	bases := make(map[string]uintptr, len(d.Insts))
	var consts []*inst
	for _, in := range d.Insts {
		if u, err := strconv.ParseUint(in.Base, 0, 32); err == nil {
			bases[in.Name] = uintptr(u)
			continue
		}
		consts = append(consts, in)
	}
	if len(consts) == 0 {
		return bases, nil
	}
	if len(d.Imports) == 0 {
		return nil, d.errorf("instance bases refer to constants but there is no Import: section")
	}
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes,
		Dir:  filepath.Dir(d.File),
	}
	pkgs, err := packages.Load(cfg, d.Imports...)
	if err != nil {
		return nil, d.errorf("%v", err)
	}
	scopes := make(map[string]*types.Scope, len(pkgs))
	for _, p := range pkgs {
		if len(p.Errors) != 0 {
			return nil, d.errorf("%s: %v", p.PkgPath, p.Errors[0])
		}
		scopes[path.Base(p.PkgPath)] = p.Types.Scope()
	}
	for _, in := range consts {
		pkg, name, ok := strings.Cut(in.Base, ".")
		if !ok {
			return nil, d.errorf("%s: bad base address %s", in.Name, in.Base)
		}
		scope := scopes[pkg]
		if scope == nil {
			return nil, d.errorf("%s: package %s not imported", in.Name, pkg)
		}
		c, ok := scope.Lookup(name).(*types.Const)
		if !ok {
			return nil, d.errorf("%s: %s is not a constant", in.Name, in.Base)
		}
		u, exact := constant.Uint64Val(constant.ToInt(c.Val()))
		if !exact || u > 1<<32-1 {
			return nil, d.errorf("%s: %s is not a 32-bit address", in.Name, in.Base)
		}
		bases[in.Name] = uintptr(u)
	}
	return bases, nil
}
