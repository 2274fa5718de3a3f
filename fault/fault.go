// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrConversion              = InvalidError("invalid conversion")
	ErrDuplicateOption         = ExistsError("duplicate option")
	ErrFileAccess              = ProcessError("reading or writing file failed")
	ErrInsufficientArguments   = LengthError("insufficient number of argument values")
	ErrInvalidArity            = InvalidError("option arity must not be negative")
	ErrInvalidLuaConfiguration = InvalidError("lua configuration must return a table of option values")
	ErrInvalidOptionName       = InvalidError("invalid option name")
	ErrIO                      = ProcessError("opening file failed, it either does not exist or is not accessible")
	ErrLuaExecution            = ProcessError("lua configuration failed to run")
	ErrMalformedArgument       = InvalidError("argument options must start with a dash")
	ErrMalformedLine           = InvalidError("configuration line is not of the form key:value")
	ErrMissingArgument         = NotFoundError("missing argument")
	ErrUnknownOption           = NotFoundError("unknown option")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { var t ExistsError; return errors.As(e, &t) }
func IsErrInvalid(e error) bool  { var t InvalidError; return errors.As(e, &t) }
func IsErrLength(e error) bool   { var t LengthError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool { var t NotFoundError; return errors.As(e, &t) }
func IsErrProcess(e error) bool  { var t ProcessError; return errors.As(e, &t) }
