// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package getoptions

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/optparse/fault"
)

// ArityFunc - number of values an option takes
//
// returns an error for an option that is not known
type ArityFunc func(name string) (int, error)

// Item - one option found on the command line
type Item struct {
	Name   string
	Values []string
}

// Scanner - yields the options of a command line in order
type Scanner struct {
	inputs []string
	arity  ArityFunc
	n      int
	item   Item
	err    error
}

// Program - base name of the running program
func Program() string {
	return filepath.Base(os.Args[0])
}

// NewScanner - scan inputs, which must not include the program name
func NewScanner(inputs []string, arity ArityFunc) *Scanner {
	return &Scanner{
		inputs: inputs,
		arity:  arity,
	}
}

// Scan - advance to the next option
//
// returns false at the end of the inputs or on the first error
func (s *Scanner) Scan() bool {
	if nil != s.err || s.n >= len(s.inputs) {
		return false
	}

	item := s.inputs[s.n]
	s.n += 1

	name := strings.TrimLeft(item, "-")
	if len(name) == len(item) {
		s.err = fault.WithDetail(fault.ErrMalformedArgument, item)
		return false
	}

	arity, err := s.arity(name)
	if nil != err {
		s.err = err
		return false
	}

	if len(s.inputs)-s.n < arity {
		s.err = fault.WithDetail(fault.ErrInsufficientArguments, name)
		return false
	}

	values := make([]string, arity)
	copy(values, s.inputs[s.n:s.n+arity])
	s.n += arity

	s.item = Item{
		Name:   name,
		Values: values,
	}
	return true
}

// Item - the option found by the last successful Scan
func (s *Scanner) Item() Item {
	return s.item
}

// Err - the error that stopped scanning, nil at end of inputs
func (s *Scanner) Err() error {
	return s.err
}

// Remaining - inputs not yet scanned
func (s *Scanner) Remaining() []string {
	return s.inputs[s.n:]
}
