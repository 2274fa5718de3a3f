// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - the declared option schema
//
// Holds every option a program accepts: its arity (number of values
// following the option on the command line, zero for a boolean flag),
// its string encoded default and its description.
//
// Options are kept in insertion order; the two built-in options
// "help" and "load" are always first.  Both the usage listing and the
// configuration dump rely on this order.
package registry
