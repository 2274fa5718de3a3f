// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package optparse - command-line option and configuration file parsing
//
// A program declares its options, parses the command line and then
// retrieves typed values:
//
//	p := optparse.New(logger.New("options"))
//	p.InsertOption("count", 1, "number of items", "1")
//	p.InsertOption("range", 2, "lower and upper bound", "1,10")
//	p.InsertOptionBoolean("verbose", optparse.StoreTrue, "more output")
//
//	if status := p.Parse(os.Args); optparse.StatusOK != status {
//		exitwithstatus.Exit(int(status))
//	}
//
//	count, err := optparse.Retrieve[int](p, "count", 0)
//	low, high, err := optparse.RetrievePair[int, int](p, "range")
//
// Command line items are "--name value..." where the number of values
// is the arity the option was declared with.  Boolean options (arity
// zero) take no value; their presence flips the declared default.
//
// Two options are always present: "--help" prints the usage listing
// and "--load file" reads further values from a configuration file.
// Values given on the command line take precedence over values from
// the file.  Every user option without a default must receive a value
// from one or the other.
//
// Parse never returns an error directly: any failure is reported on
// the error output together with the usage listing and Parse returns
// StatusError; Err gives the underlying error.
package optparse
