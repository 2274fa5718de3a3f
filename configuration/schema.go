// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"strings"
	"unicode"

	"github.com/bitmark-inc/optparse/fault"
	"github.com/bitmark-inc/optparse/registry"
)

// Schema - the registered options a file is checked against
type Schema interface {
	Lookup(name string) (registry.Option, bool)
	Options() []registry.Option
}

// add one name/value pair read from a file
func accept(values map[string]string, schema Schema, key string, value string) error {
	if _, ok := schema.Lookup(key); !ok {
		return fault.WithDetail(fault.ErrUnknownOption, key)
	}
	if _, ok := values[key]; ok {
		return fault.WithDetail(fault.ErrDuplicateOption, key)
	}
	values[key] = value
	return nil
}

// remove every white space character, not just leading and trailing
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
