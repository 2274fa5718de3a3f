// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"strings"
	"unicode"

	"github.com/bitmark-inc/optparse/fault"
)

// names of the built-in options
const (
	HelpOption = "help"
	LoadOption = "load"
)

// Provenance - who declared an option
type Provenance int

// provenance values
const (
	BuiltIn Provenance = iota
	UserDefined
)

// Action - polarity of a boolean option
type Action int

// polarity values
const (
	StoreTrue  Action = iota // absent => false, present => true
	StoreFalse               // absent => true, present => false
)

// Option - one registry entry
type Option struct {
	Name        string
	Arity       int
	Default     string
	Description string
	Provenance  Provenance
}

// IsUserDefined - true for anything the host program registered
func (o Option) IsUserDefined() bool {
	return UserDefined == o.Provenance
}

// IsBoolean - true for options taking no value
func (o Option) IsBoolean() bool {
	return 0 == o.Arity
}

// Registry - insertion ordered set of options
type Registry struct {
	index   map[string]int
	options []Option
}

// New - create a registry holding only the built-in options
func New() *Registry {
	r := &Registry{
		index:   make(map[string]int),
		options: make([]Option, 0, 8),
	}

	builtIn := []Option{
		{Name: HelpOption, Arity: 0, Description: "Print this message", Provenance: BuiltIn},
		{Name: LoadOption, Arity: 1, Description: "Load settings from configuration file", Provenance: BuiltIn},
	}
	for _, o := range builtIn {
		if err := r.add(o); nil != err {
			panic(err) // unreachable: built-in names are distinct and valid
		}
	}
	return r
}

// Insert - register a user option taking arity values
//
// fails with fault.ErrDuplicateOption if the name is already present
func (r *Registry) Insert(name string, arity int, description string, defaultValue string) error {
	return r.add(Option{
		Name:        name,
		Arity:       arity,
		Default:     defaultValue,
		Description: description,
		Provenance:  UserDefined,
	})
}

// InsertBoolean - register a user flag
//
// StoreTrue gives a default of "0", StoreFalse a default of "1"
func (r *Registry) InsertBoolean(name string, action Action, description string) error {
	defaultValue := "0"
	if StoreFalse == action {
		defaultValue = "1"
	}
	return r.Insert(name, 0, description, defaultValue)
}

// Lookup - find an option by name
func (r *Registry) Lookup(name string) (Option, bool) {
	i, ok := r.index[name]
	if !ok {
		return Option{}, false
	}
	return r.options[i], true
}

// Options - all options in insertion order
func (r *Registry) Options() []Option {
	list := make([]Option, len(r.options))
	copy(list, r.options)
	return list
}

// Filter - options of one provenance, in insertion order
func (r *Registry) Filter(provenance Provenance) []Option {
	list := make([]Option, 0, len(r.options))
	for _, o := range r.options {
		if provenance == o.Provenance {
			list = append(list, o)
		}
	}
	return list
}

func (r *Registry) add(o Option) error {
	if !validName(o.Name) {
		return fault.WithDetail(fault.ErrInvalidOptionName, o.Name)
	}
	if o.Arity < 0 {
		return fault.WithDetail(fault.ErrInvalidArity, o.Name)
	}
	if _, ok := r.index[o.Name]; ok {
		return fault.WithDetail(fault.ErrDuplicateOption, o.Name)
	}
	r.index[o.Name] = len(r.options)
	r.options = append(r.options, o)
	return nil
}

// a name must be reachable both as --name and as name:value
func validName(name string) bool {
	if "" == name || strings.HasPrefix(name, "-") {
		return false
	}
	return -1 == strings.IndexFunc(name, func(c rune) bool {
		return ':' == c || unicode.IsSpace(c)
	})
}
