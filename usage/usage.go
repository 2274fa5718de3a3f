// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package usage - render the option listing and error report
package usage

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"

	"github.com/bitmark-inc/optparse/registry"
)

// exit codes returned by Usage
const (
	ExitHelp  = 1
	ExitError = -1
)

const (
	argPlaceholder     = "<arg>"
	missingDescription = "*** description unavailable ***"
)

// Renderer - writes usage to one stream and errors to another
type Renderer struct {
	program     string
	output      io.Writer
	errorOutput io.Writer
	colour      bool
}

// New - create a renderer; colour adds ANSI escapes to the header and error
func New(program string, output io.Writer, errorOutput io.Writer, colour bool) *Renderer {
	return &Renderer{
		program:     program,
		output:      output,
		errorOutput: errorOutput,
		colour:      colour,
	}
}

// Usage - list the options, built-in first, then report message if any
//
// returns ExitError when a message was reported, otherwise ExitHelp
func (r *Renderer) Usage(options []registry.Option, message string) int {
	header := "Usage:"
	if r.colour {
		header = color.Bold.Sprint(header)
	}
	fmt.Fprintf(r.output, "%s %s [OPTIONS]\n\nWhere OPTIONS are:\n", header, r.program)

	groups := [][]registry.Option{
		filter(options, registry.BuiltIn),
		filter(options, registry.UserDefined),
	}

	width := 0
	for _, group := range groups {
		for _, o := range group {
			if n := len(synopsis(o)); n > width {
				width = n
			}
		}
	}

	for _, group := range groups {
		for _, o := range group {
			description := o.Description
			if "" == description {
				description = missingDescription
			}
			fmt.Fprintf(r.output, "  %-*s   %s\n", width, synopsis(o), description)
		}
	}
	fmt.Fprintln(r.output)

	if "" == message {
		return ExitHelp
	}

	report := fmt.Sprintf("%s: error: %s", r.program, message)
	if r.colour {
		report = color.Red.Sprint(report)
	}
	fmt.Fprintln(r.errorOutput, report)
	return ExitError
}

// e.g. "--range <arg> <arg>"
func synopsis(o registry.Option) string {
	s := make([]string, 0, 1+o.Arity)
	s = append(s, "--"+o.Name)
	for i := 0; i < o.Arity; i += 1 {
		s = append(s, argPlaceholder)
	}
	return strings.Join(s, " ")
}

func filter(options []registry.Option, provenance registry.Provenance) []registry.Option {
	list := make([]registry.Option, 0, len(options))
	for _, o := range options {
		if provenance == o.Provenance {
			list = append(list, o)
		}
	}
	return list
}
