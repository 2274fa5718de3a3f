// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"golang.org/x/term"

	"github.com/bitmark-inc/optparse"
	"github.com/bitmark-inc/optparse/getoptions"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	program := getoptions.Program()

	logConfiguration := logger.Configuration{
		Directory: os.TempDir(),
		File:      program + ".log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "info",
		},
	}
	if err := logger.Initialise(logConfiguration); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	log := logger.New("main")
	log.Infof("version: %s", version)

	p := optparse.New(logger.New("optparse"))
	p.SetColour(term.IsTerminal(int(os.Stderr.Fd())))

	options := []struct {
		name         string
		arity        int
		description  string
		defaultValue string
	}{
		{"count", 1, "number of repetitions", "1"},
		{"range", 2, "lower and upper bound", "1,10"},
		{"name", 1, "name to greet", "world"},
		{"interval", 1, "delay between repetitions", "0s"},
		{"output", 1, "file written by --dump", program + ".conf"},
	}
	for _, o := range options {
		if err := p.InsertOption(o.name, o.arity, o.description, o.defaultValue); nil != err {
			exitwithstatus.Message("%s: option %q: %s", program, o.name, err)
		}
	}

	flags := []struct {
		name        string
		action      optparse.Action
		description string
	}{
		{"verbose", optparse.StoreTrue, "print every value"},
		{"quiet", optparse.StoreTrue, "print nothing"},
		{"dump", optparse.StoreTrue, "append the settings to the output file"},
	}
	for _, f := range flags {
		if err := p.InsertOptionBoolean(f.name, f.action, f.description); nil != err {
			exitwithstatus.Message("%s: option %q: %s", program, f.name, err)
		}
	}

	switch p.Parse(os.Args) {
	case optparse.StatusOK:
	case optparse.StatusHelp:
		exitwithstatus.Exit(0)
	default:
		exitwithstatus.Exit(1)
	}

	count, err := optparse.Retrieve[int](p, "count", 0)
	if nil != err {
		exitwithstatus.Message("%s: count: %s", program, err)
	}
	low, high, err := optparse.RetrievePair[int, int](p, "range")
	if nil != err {
		exitwithstatus.Message("%s: range: %s", program, err)
	}
	name, err := optparse.Retrieve[string](p, "name", 0)
	if nil != err {
		exitwithstatus.Message("%s: name: %s", program, err)
	}
	interval, err := optparse.Retrieve[time.Duration](p, "interval", 0)
	if nil != err {
		exitwithstatus.Message("%s: interval: %s", program, err)
	}
	verbose, err := optparse.Retrieve[bool](p, "verbose", 0)
	if nil != err {
		exitwithstatus.Message("%s: verbose: %s", program, err)
	}
	quiet, err := optparse.Retrieve[bool](p, "quiet", 0)
	if nil != err {
		exitwithstatus.Message("%s: quiet: %s", program, err)
	}

	if verbose && !quiet {
		for _, o := range p.Options() {
			field, err := p.Field(o.Name, 0)
			if nil != err {
				continue
			}
			fmt.Printf("%s: %s\n", o.Name, field)
		}
	}

	for i := 0; i < count; i += 1 {
		if i > 0 {
			time.Sleep(interval)
		}
		if !quiet {
			fmt.Printf("hello %s: %d..%d\n", name, low, high)
		}
	}

	dump, err := optparse.Retrieve[bool](p, "dump", 0)
	if nil != err {
		exitwithstatus.Message("%s: dump: %s", program, err)
	}
	if dump {
		output, err := optparse.Retrieve[string](p, "output", 0)
		if nil != err {
			exitwithstatus.Message("%s: output: %s", program, err)
		}
		if err := p.Dump(output); nil != err {
			exitwithstatus.Message("%s: dump: %s", program, err)
		}
		log.Infof("settings appended to: %q", output)
	}
}
