// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - read and write option configuration files
//
// The native format is line oriented:
//
//	# comment
//	count: 5
//	range: 1,10
//
// All white space is removed from a line before it is examined, so
// values cannot contain spaces.  Blank lines and lines starting with
// '#' are ignored; every other line is split at its first ':' into the
// option name and its value.
//
// A file whose name ends in ".lua" is instead executed as a Lua chunk
// that must return a table of option name to value; most of base Lua
// is available, e.g. os.getenv to extract environment supplied items.
//
// Every name read must be a registered option and may only appear once.
package configuration
