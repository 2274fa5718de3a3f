// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// command-line options processing
//
// Scans options of the form:
//
//	--option value1 value2 ... valueN
//
// where N is the arity of the option, supplied by the caller.  Any run
// of leading dashes is accepted, so -option, --option and ---option are
// the same option "option".  The values are taken positionally and may
// themselves start with a dash.
//
// There are no positional arguments: every item that is not consumed
// as a value must be an option.  Combined single letter options and
// option=value are not supported.
//
// Returns, one at a time:
//
//	Item{Name: "option", Values: []string{"value1", ..., "valueN"}}
package getoptions
