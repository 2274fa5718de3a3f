// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package optparse

import (
	"github.com/bitmark-inc/optparse/convert"
	"github.com/bitmark-inc/optparse/fault"
)

// Field - the text of one field of an option's value
//
// the value comes from the last successful parse, or failing that from
// the option's default.  A boolean option yields "1" or "0" whatever
// the index.
func (p *Parser) Field(name string, index int) (string, error) {
	o, registered := p.registry.Lookup(name)

	raw, ok := p.values[name]
	if !ok {
		if !registered || "" == o.Default {
			return "", fault.WithDetail(fault.ErrMissingArgument, name)
		}
		raw = o.Default
	}

	if o.IsBoolean() {
		if "0" == raw {
			return "0", nil
		}
		return "1", nil
	}

	return convert.Field(raw, index)
}

// Retrieve - one field of an option converted to T
func Retrieve[T convert.Scalar](p *Parser, name string, index int) (T, error) {
	field, err := p.Field(name, index)
	if nil != err {
		var zero T
		return zero, err
	}
	return convert.Parse[T](field)
}

// RetrievePair - the first two fields of an option
func RetrievePair[T convert.Scalar, U convert.Scalar](p *Parser, name string) (T, U, error) {
	var second U

	first, err := Retrieve[T](p, name, 0)
	if nil != err {
		return first, second, err
	}

	second, err = Retrieve[U](p, name, 1)
	return first, second, err
}
