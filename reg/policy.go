// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reg

import (
	"fmt"
	"strings"
)

// Policy is the access policy of a bitfield.
type Policy uint8

const (
	ReadOnly        Policy = iota + 1 // RO: status, getter only
	WriteOnly                         // WO: setter only
	ReadWrite                         // RW: getter and setter
	WriteOneToClear                   // RW1C: getter and clear
	WriteOneToPulse                   // RESET: trigger only
)

var policyNames = [...]string{
	ReadOnly:        "ro",
	WriteOnly:       "wo",
	ReadWrite:       "rw",
	WriteOneToClear: "rw1c",
	WriteOneToPulse: "pulse",
}

func (p Policy) String() string {
	if p == 0 || int(p) >= len(policyNames) {
		return fmt.Sprintf("Policy(%d)", p)
	}
	return policyNames[p]
}

// ParsePolicy parses the textual form of a policy. Besides the names returned
// by String it accepts r, w, w1c and reset.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(s) {
	case "ro", "r":
		return ReadOnly, nil
	case "wo", "w":
		return WriteOnly, nil
	case "rw":
		return ReadWrite, nil
	case "rw1c", "w1c":
		return WriteOneToClear, nil
	case "pulse", "reset":
		return WriteOneToPulse, nil
	}
	return 0, fmt.Errorf("%w: unknown access policy %q", ErrPolicy, s)
}

// Readable reports whether fields with policy p have a getter.
func (p Policy) Readable() bool {
	return p == ReadOnly || p == ReadWrite || p == WriteOneToClear
}

// Writable reports whether fields with policy p have a value setter.
func (p Policy) Writable() bool {
	return p == WriteOnly || p == ReadWrite
}

// SingleBit reports whether p is only valid for single-bit fields.
func (p Policy) SingleBit() bool {
	return p == WriteOneToClear || p == WriteOneToPulse
}
