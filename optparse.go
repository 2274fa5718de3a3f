// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package optparse

import (
	"io"
	"os"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/optparse/registry"
	"github.com/bitmark-inc/optparse/usage"
)

// Status - outcome of Parse, usable as a process exit code
type Status int

// possible outcomes
const (
	StatusError Status = usage.ExitError // message already written to the error output
	StatusOK    Status = 0
	StatusHelp  Status = usage.ExitHelp
)

// Action - polarity of a boolean option
type Action = registry.Action

// polarity of boolean options
const (
	StoreTrue  = registry.StoreTrue
	StoreFalse = registry.StoreFalse
)

// Parser - the declared options and the values of the last successful parse
type Parser struct {
	log         *logger.L
	registry    *registry.Registry
	program     string
	values      map[string]string
	err         error
	output      io.Writer
	errorOutput io.Writer
	colour      bool
}

// New - create a parser holding only the built-in options
//
// log may be nil to disable logging
func New(log *logger.L) *Parser {
	return &Parser{
		log:         log,
		registry:    registry.New(),
		values:      make(map[string]string),
		output:      os.Stderr,
		errorOutput: os.Stderr,
	}
}

// InsertOption - declare an option taking arity values
//
// an empty default makes the option mandatory; multiple default
// values are separated by commas
func (p *Parser) InsertOption(name string, arity int, description string, defaultValue string) error {
	return p.registry.Insert(name, arity, description, defaultValue)
}

// InsertOptionBoolean - declare a flag
func (p *Parser) InsertOptionBoolean(name string, action Action, description string) error {
	return p.registry.InsertBoolean(name, action, description)
}

// SetOutput - streams for the usage listing and the error report
func (p *Parser) SetOutput(output io.Writer, errorOutput io.Writer) {
	p.output = output
	p.errorOutput = errorOutput
}

// SetColour - enable ANSI colour in usage and error output
func (p *Parser) SetColour(colour bool) {
	p.colour = colour
}

// Program - the program name from the last parse
func (p *Parser) Program() string {
	return p.program
}

// Err - the error that made the last parse return StatusError
func (p *Parser) Err() error {
	return p.err
}

// IsSet - true if the option was given on the command line or in a loaded file
func (p *Parser) IsSet(name string) bool {
	_, ok := p.values[name]
	return ok
}

// Options - the declared options, built-in first, in declaration order
func (p *Parser) Options() []registry.Option {
	return p.registry.Options()
}

// Usage - print the option listing; a non-empty message is reported as an error
func (p *Parser) Usage(message string) Status {
	r := usage.New(p.program, p.output, p.errorOutput, p.colour)
	return Status(r.Usage(p.registry.Options(), message))
}

func (p *Parser) debugf(format string, arguments ...interface{}) {
	if nil != p.log {
		p.log.Debugf(format, arguments...)
	}
}

func (p *Parser) infof(format string, arguments ...interface{}) {
	if nil != p.log {
		p.log.Infof(format, arguments...)
	}
}

func (p *Parser) warnf(format string, arguments ...interface{}) {
	if nil != p.log {
		p.log.Warnf(format, arguments...)
	}
}
