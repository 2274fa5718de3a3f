// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/optparse/fault"
)

var (
	ErrExistsOne   = fault.ExistsError("exists one ")
	ErrExistsTwo   = fault.ExistsError("exists two")
	ErrInvalidOne  = fault.InvalidError("invalid one")
	ErrInvalidTwo  = fault.InvalidError("invalid two")
	ErrLengthOne   = fault.LengthError("length one")
	ErrLengthTwo   = fault.LengthError("length two")
	ErrNotFoundOne = fault.NotFoundError("not found one")
	ErrNotFoundTwo = fault.NotFoundError("not found two")
	ErrProcessOne  = fault.ProcessError("process one")
	ErrProcessTwo  = fault.ProcessError("process two")
)

// test that various errors can be subclassed
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		exists   bool
		invalid  bool
		length   bool
		notFound bool
		process  bool
	}{
		{ErrExistsOne, true, false, false, false, false},
		{ErrExistsTwo, true, false, false, false, false},
		{ErrInvalidOne, false, true, false, false, false},
		{ErrInvalidTwo, false, true, false, false, false},
		{ErrLengthOne, false, false, true, false, false},
		{ErrLengthTwo, false, false, true, false, false},
		{ErrNotFoundOne, false, false, false, true, false},
		{ErrNotFoundTwo, false, false, false, true, false},
		{ErrProcessOne, false, false, false, false, true},
		{ErrProcessTwo, false, false, false, false, true},
		{fault.ErrDuplicateOption, true, false, false, false, false},
		{fault.ErrUnknownOption, false, false, false, true, false},
		{fault.ErrMalformedArgument, false, true, false, false, false},
		{fault.ErrInsufficientArguments, false, false, true, false, false},
		{fault.ErrMissingArgument, false, false, false, true, false},
		{fault.ErrConversion, false, true, false, false, false},
		{fault.ErrIO, false, false, false, false, true},
		{fault.ErrFileAccess, false, false, false, false, true},
		{fault.ErrLuaExecution, false, false, false, false, true},
		{fault.ErrInvalidLuaConfiguration, false, true, false, false, false},
		{fault.WithDetail(fault.ErrDuplicateOption, "count"), true, false, false, false, false},
		{fault.Wrap(fault.ErrIO, "x.conf", os.ErrNotExist), false, false, false, false, true},
		{&fault.ConversionError{Text: "abc", Type: "int"}, false, true, false, false, false},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrLength(err) != e.length {
			t.Errorf("%d: expected 'length' == %v for err = %v", i, e.length, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
	}
}

func TestDetailError(t *testing.T) {
	err := fault.WithDetail(fault.ErrUnknownOption, "bogus")
	assert.Equal(t, "unknown option: bogus", err.Error(), "wrong message")
	assert.True(t, errors.Is(err, fault.ErrUnknownOption), "wrong instance")
	assert.False(t, errors.Is(err, fault.ErrMissingArgument), "matched other instance")

	err = fault.Wrap(fault.ErrIO, "missing.conf", os.ErrNotExist)
	assert.True(t, errors.Is(err, fault.ErrIO), "wrong instance")
	assert.Contains(t, err.Error(), "missing.conf", "no file name")
	assert.Contains(t, err.Error(), os.ErrNotExist.Error(), "no cause")
}

func TestConversionError(t *testing.T) {
	var err error = &fault.ConversionError{Text: "five", Type: "int"}
	assert.Equal(t, `invalid conversion of the argument "five" to type int`, err.Error(), "wrong message")
	assert.True(t, errors.Is(err, fault.ErrConversion), "not a conversion error")

	var ce *fault.ConversionError
	if assert.True(t, errors.As(err, &ce), "not extracted") {
		assert.Equal(t, "five", ce.Text, "wrong text")
		assert.Equal(t, "int", ce.Type, "wrong type")
	}
}
