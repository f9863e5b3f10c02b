// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/embeddedgo/max7800x/reg"
	"github.com/embeddedgo/max7800x/svd"
)

// policy maps the SVD access attributes of a field onto an access policy.
// width is the number of bits in the field. mwv is the effective
// modifiedWriteValues (field, else register), empty if not specified.
func policy(access, mwv string, width uint) (reg.Policy, error) {
	mwv = strings.TrimSpace(mwv)
	switch access {
	case svd.ReadOnly:
		return reg.ReadOnly, nil
	case svd.WriteOnly, svd.WriteOnce:
		if width == 1 && (mwv == svd.OneToSet || mwv == svd.OneToToggle) {
			return reg.WriteOneToPulse, nil
		}
		return reg.WriteOnly, nil
	case svd.ReadWrite, svd.ReadWriteOnce:
		if mwv == svd.OneToClear {
			if width != 1 {
				return 0, fmt.Errorf("%w: %d-bit %s field", reg.ErrPolicy, width, mwv)
			}
			return reg.WriteOneToClear, nil
		}
		return reg.ReadWrite, nil
	}
	return 0, fmt.Errorf("%w: unknown access %q", reg.ErrPolicy, access)
}

func policyName(p reg.Policy) string {
	if p == reg.WriteOneToPulse {
		return "reset"
	}
	return p.String()
}
