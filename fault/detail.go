// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
)

// DetailError - one of the error instances plus the item that caused it
type DetailError struct {
	Err    error  // one of the ErrXxx instances
	Detail string // option name, file name or offending text
	Cause  error  // optional underlying error, e.g. from the os package
}

// Wrap - attach the offending item and an optional cause to an error instance
func Wrap(err error, detail string, cause error) error {
	return &DetailError{
		Err:    err,
		Detail: detail,
		Cause:  cause,
	}
}

// WithDetail - attach the offending item to an error instance
func WithDetail(err error, detail string) error {
	return Wrap(err, detail, nil)
}

func (e *DetailError) Error() string {
	if nil == e.Cause {
		return fmt.Sprintf("%s: %s", e.Err, e.Detail)
	}
	return fmt.Sprintf("%s: %s: %s", e.Err, e.Detail, e.Cause)
}

// Unwrap - expose the error instance to errors.Is and errors.As
func (e *DetailError) Unwrap() error {
	return e.Err
}

// ConversionError - a value could not be converted to the requested type
type ConversionError struct {
	Text string // the text that failed to convert
	Type string // name of the requested type
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%s of the argument %q to type %s", ErrConversion, e.Text, e.Type)
}

// Unwrap - a conversion error is always an ErrConversion
func (e *ConversionError) Unwrap() error {
	return ErrConversion
}
