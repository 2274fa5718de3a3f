// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package optparse

import (
	"github.com/bitmark-inc/optparse/configuration"
	"github.com/bitmark-inc/optparse/convert"
	"github.com/bitmark-inc/optparse/fault"
	"github.com/bitmark-inc/optparse/getoptions"
	"github.com/bitmark-inc/optparse/registry"
)

// Parse - process a command line, argv[0] being the program name
//
// on StatusOK the values are replaced by those of this command line;
// on StatusHelp or StatusError they are left as they were
func (p *Parser) Parse(argv []string) Status {
	p.err = nil

	var inputs []string
	if len(argv) > 0 {
		p.program = argv[0]
		inputs = argv[1:]
	}

	values, help, err := p.parse(inputs)
	switch {
	case nil != err:
		p.err = err
		p.warnf("parse: %s", err)
		return p.Usage(err.Error())
	case help:
		return p.Usage("")
	}

	p.values = values
	p.infof("parse: %d option values", len(values))
	return StatusOK
}

func (p *Parser) parse(inputs []string) (map[string]string, bool, error) {
	values := make(map[string]string)

	scanner := getoptions.NewScanner(inputs, p.arity)
	for scanner.Scan() {
		item := scanner.Item()

		// ignore everything after help
		if registry.HelpOption == item.Name {
			if ignored := scanner.Remaining(); len(ignored) > 0 {
				p.debugf("parse: help: ignored: %q", ignored)
			}
			return nil, true, nil
		}

		o, _ := p.registry.Lookup(item.Name)

		value := convert.Join(item.Values)
		if o.IsBoolean() {
			value = invert(o.Default)
		}

		if _, ok := values[item.Name]; ok {
			return nil, false, fault.WithDetail(fault.ErrDuplicateOption, item.Name)
		}
		values[item.Name] = value
		p.debugf("parse: %s = %q", item.Name, value)
	}
	if err := scanner.Err(); nil != err {
		return nil, false, err
	}

	if fileName, ok := values[registry.LoadOption]; ok {
		loaded, err := configuration.Load(fileName, p.registry)
		if nil != err {
			return nil, false, err
		}
		n := merge(values, loaded)
		delete(values, registry.LoadOption)
		p.debugf("parse: merged %d of %d values from: %q", n, len(loaded), fileName)
	}

	for _, o := range p.registry.Filter(registry.UserDefined) {
		if _, ok := values[o.Name]; !ok && "" == o.Default {
			return nil, false, fault.WithDetail(fault.ErrMissingArgument, o.Name)
		}
	}

	return values, false, nil
}

func (p *Parser) arity(name string) (int, error) {
	o, ok := p.registry.Lookup(name)
	if !ok {
		return 0, fault.WithDetail(fault.ErrUnknownOption, name)
	}
	return o.Arity, nil
}

// presence of a flag always moves away from its default
func invert(defaultValue string) string {
	if "0" == defaultValue {
		return "1"
	}
	return "0"
}

// add file values for options not already set on the command line;
// built-in options in a file are ignored
func merge(values map[string]string, loaded map[string]string) int {
	n := 0
	for key, value := range loaded {
		if registry.HelpOption == key || registry.LoadOption == key {
			continue
		}
		if _, ok := values[key]; ok {
			continue
		}
		values[key] = value
		n += 1
	}
	return n
}
