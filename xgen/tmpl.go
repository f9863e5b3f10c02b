// Copyright 2019 Michal Derkacz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

const tmplText = `// Code generated by xgen. DO NOT EDIT.

{{range .Constraints}}//{{.}}
{{end}}
package {{.Pkg}}

import (
	"{{.RegImport}}"
{{range .Imports}}	"{{.}}"
{{end}})

// Port is the set of {{.Type}} instances.
type Port interface {
	{{range $i, $in := .Insts}}{{if $i}} | {{end}}{{$in.Name}}{{end}}
	Base() uintptr
}
{{range .Insts}}
// {{.Name}}{{if .Descr}}: {{.Descr}}{{end}}
type {{.Name}} struct{}

func ({{.Name}}) Base() uintptr { return {{.Base}} }
{{end}}
// {{.Type}} provides the registers of the instance P.
type {{.Type}}[P Port] struct{}
{{range .Regs}}
// {{.Name}}{{if .Descr}}: {{.Descr}}{{end}}
func ({{$.Type}}[P]) {{.Name}}() R{{.Name}}[P] { return R{{.Name}}[P]{reg.At[P]({{.Offset}}){{if .Actions}}.WithActions({{.Actions}}){{end}}} }
{{end}}
{{- range $r := .Regs}}
type R{{$r.Name}}[P Port] struct{ r reg.R32[P] }
{{if $r.Load}}
func (r R{{$r.Name}}[P]) Load() uint32 { return r.r.Load() }
{{end}}
{{- if $r.Store}}
func (r R{{$r.Name}}[P]) Store(v uint32) { r.r.Store(v) }
{{end}}
{{- range $r.Fields}}
// {{.Name}}: {{.Descr}}
{{- if .Errata}}
//
// Errata: {{.Errata}}
{{- end}}
func (r R{{$r.Name}}[P]) {{.Name}}() {{.Type}} { return {{.Ctor}} }
{{end}}
{{- end}}
// Catalog describes the {{.Type}} instances and registers.
var Catalog = reg.MustPeriph(&reg.Periph{
	Name:  {{quote .Name}},
	Descr: {{quote .Descr}},
	Insts: []reg.Inst{
{{- range .Insts}}
		{Name: {{quote .Name}}, Base: {{.Base}}, Descr: {{quote .Descr}}},
{{- end}}
	},
	Regs: []reg.Reg{
{{- range .Regs}}
		{
			Name:   {{quote .Name}},
			Offset: {{.Offset}},
			Descr:  {{quote .Descr}},
			Fields: []reg.Field{
{{- range .Fields}}
				{Name: {{quote .Name}}, Lo: {{.Lo}}, Hi: {{.Hi}}, Policy: {{.PolicyIdent}}, Descr: {{quote .Descr}}{{if .Errata}}, Errata: {{quote .Errata}}{{end}}},
{{- end}}
			},
		},
{{- end}}
	},
})
`
