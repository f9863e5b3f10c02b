// Copyright 2019 Michal Derkacz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package svd describes the subset of the CMSIS-SVD format needed to generate
// register declarations.
package svd

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

type Uint uint

func (u *Uint) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var s string
	if err := d.DecodeElement(&s, &start); err != nil {
		return err
	}
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 0)
	*u = Uint(v)
	return err
}

type Uint64 uint64

func (u *Uint64) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var s string
	if err := d.DecodeElement(&s, &start); err != nil {
		return err
	}
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 64)
	*u = Uint64(v)
	return err
}

// Access values.
const (
	ReadOnly      = "read-only"
	WriteOnly     = "write-only"
	ReadWrite     = "read-write"
	WriteOnce     = "writeOnce"
	ReadWriteOnce = "read-writeOnce"
)

// ModifiedWriteValues values.
const (
	OneToClear  = "oneToClear"
	OneToSet    = "oneToSet"
	OneToToggle = "oneToToggle"
	ZeroToClear = "zeroToClear"
	ZeroToSet   = "zeroToSet"
	Clear       = "clear"
	Set         = "set"
	Modify      = "modify"
)

type Device struct {
	Vendor      *string `xml:"vendor"`
	Name        string  `xml:"name"`
	Series      *string `xml:"series"`
	Version     string  `xml:"version"`
	Description string  `xml:"description"`
	Width       Uint    `xml:"width"`
	*RegisterPropertiesGroup
	Peripherals []*Peripheral `xml:"peripherals>peripheral"`
}

// RegisterPropertiesGroup holds the properties inherited by the registers of
// a device, peripheral or cluster.
type RegisterPropertiesGroup struct {
	Size       *Uint   `xml:"size"`
	Access     *string `xml:"access"`
	ResetValue *Uint64 `xml:"resetValue"`
	ResetMask  *Uint64 `xml:"resetMask"`
}

func (g *RegisterPropertiesGroup) access() *string {
	if g == nil {
		return nil
	}
	return g.Access
}

func (g *RegisterPropertiesGroup) size() *Uint {
	if g == nil {
		return nil
	}
	return g.Size
}

type Peripheral struct {
	DerivedFrom *string `xml:"derivedFrom,attr"`
	Name        string  `xml:"name"`
	Description *string `xml:"description"`
	GroupName   *string `xml:"groupName"`
	BaseAddress Uint64  `xml:"baseAddress"`
	*RegisterPropertiesGroup
	Interrupts []*Interrupt `xml:"interrupt"`
	Registers  []*Register  `xml:"registers>register"`
	Clusters   []*Cluster   `xml:"registers>cluster"`
}

type Interrupt struct {
	Name        string  `xml:"name"`
	Description *string `xml:"description"`
	Value       Uint    `xml:"value"`
}

type DimElementGroup struct {
	Dim          Uint    `xml:"dim"`
	DimIncrement Uint    `xml:"dimIncrement"`
	DimIndex     *string `xml:"dimIndex"`
}

type Cluster struct {
	DerivedFrom *string `xml:"derivedFrom,attr"`
	DimElementGroup
	Name          string  `xml:"name"`
	Description   *string `xml:"description"`
	AddressOffset Uint64  `xml:"addressOffset"`
	*RegisterPropertiesGroup
	Registers []*Register `xml:"register"`
	Clusters  []*Cluster  `xml:"cluster"`
}

type Register struct {
	DerivedFrom *string `xml:"derivedFrom,attr"`
	DimElementGroup
	Name          string  `xml:"name"`
	Description   *string `xml:"description"`
	AddressOffset Uint64  `xml:"addressOffset"`
	*RegisterPropertiesGroup
	ModifiedWriteValues *string  `xml:"modifiedWriteValues"`
	ReadAction          *string  `xml:"readAction"`
	Fields              []*Field `xml:"fields>field"`
}

type Field struct {
	DerivedFrom *string `xml:"derivedFrom,attr"`
	Name        string  `xml:"name"`
	Description *string `xml:"description"`
	*BitRangeOffsetWidth
	*BitRangeLSBMSB
	BitRangePattern     *string `xml:"bitRange"`
	Access              *string `xml:"access"`
	ModifiedWriteValues *string `xml:"modifiedWriteValues"`
	ReadAction          *string `xml:"readAction"`
}

type BitRangeOffsetWidth struct {
	BitOffset Uint  `xml:"bitOffset"`
	BitWidth  *Uint `xml:"bitWidth"`
}

type BitRangeLSBMSB struct {
	LSB Uint `xml:"lsb"`
	MSB Uint `xml:"msb"`
}

var ErrNoBitRange = errors.New("bit range not specified")

// Bits returns the bit range of the field in any of the three SVD forms.
func (f *Field) Bits() (lo, hi uint, err error) {
	switch {
	case f.BitRangeOffsetWidth != nil:
		lo = uint(f.BitOffset)
		hi = lo
		if w := f.BitWidth; w != nil {
			if *w == 0 {
				return 0, 0, fmt.Errorf("%s: zero bit width", f.Name)
			}
			hi = lo + uint(*w) - 1
		}
		return lo, hi, nil
	case f.BitRangeLSBMSB != nil:
		return uint(f.LSB), uint(f.MSB), nil
	case f.BitRangePattern != nil:
		// [msb:lsb]
		s := strings.TrimSpace(*f.BitRangePattern)
		msb, lsb, ok := strings.Cut(strings.Trim(s, "[]"), ":")
		if !ok || len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
			return 0, 0, fmt.Errorf("%s: bad bit range %q", f.Name, s)
		}
		h, err1 := strconv.ParseUint(msb, 10, 8)
		l, err2 := strconv.ParseUint(lsb, 10, 8)
		if err1 != nil || err2 != nil {
			return 0, 0, fmt.Errorf("%s: bad bit range %q", f.Name, s)
		}
		return uint(l), uint(h), nil
	}
	return 0, 0, fmt.Errorf("%s: %w", f.Name, ErrNoBitRange)
}

// Parse decodes an SVD document.
func Parse(r io.Reader) (*Device, error) {
	dev := new(Device)
	if err := xml.NewDecoder(r).Decode(dev); err != nil {
		return nil, err
	}
	return dev, nil
}

// Periph returns the peripheral with the given name.
func (d *Device) Periph(name string) *Peripheral {
	for _, p := range d.Peripherals {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// FieldAccess returns the access of the field f of the register r in the
// peripheral p, following the SVD inheritance rules: an unspecified field
// access is inherited from the register, then the peripheral, then the
// device. The result is ReadWrite if nothing specifies it.
func (d *Device) FieldAccess(p *Peripheral, r *Register, f *Field) string {
	for _, a := range []*string{
		f.Access,
		r.RegisterPropertiesGroup.access(),
		p.RegisterPropertiesGroup.access(),
		d.RegisterPropertiesGroup.access(),
	} {
		if a != nil {
			return strings.TrimSpace(*a)
		}
	}
	return ReadWrite
}

// RegSize returns the bit size of the register r in the peripheral p.
func (d *Device) RegSize(p *Peripheral, r *Register) uint {
	for _, s := range []*Uint{
		r.RegisterPropertiesGroup.size(),
		p.RegisterPropertiesGroup.size(),
		d.RegisterPropertiesGroup.size(),
	} {
		if s != nil {
			return uint(*s)
		}
	}
	return uint(d.Width)
}
