// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package jlazy

import (
	"bytes"
	"fmt"

	"github.com/tailscale/hujson"
)

// ParseJWCC returns a Value viewing the JWCC ("JSON With Commas and
// Comments") text in src. Comments and trailing commas are blanked out of a
// copy of src, which preserves the offset of every other byte, so that error
// positions reported for the Value refer to src.
//
// ParseJWCC checks the syntax of the whole input, and reports an error if it
// is not valid JWCC. It does not modify src.
func ParseJWCC(src []byte) (Value, error) {
	std, err := hujson.Standardize(bytes.Clone(src))
	if err != nil {
		return Value{}, fmt.Errorf("standardize: %w", err)
	}
	return ParseBytes(std), nil
}
