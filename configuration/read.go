// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/optparse/fault"
)

const (
	luaExtension      = ".lua"
	initialLineBuffer = 64 * 1024
)

// Load - read a configuration file into a map of option name to value
//
// the result is not merged with anything; that is the caller's job
func Load(fileName string, schema Schema) (map[string]string, error) {
	if luaExtension == strings.ToLower(filepath.Ext(fileName)) {
		return readLuaFile(fileName, schema)
	}

	f, err := os.Open(fileName)
	if nil != err {
		return nil, fault.Wrap(fault.ErrIO, fileName, err)
	}
	defer f.Close()

	return Read(f, schema)
}

// Read - parse key:value lines
func Read(r io.Reader, schema Schema) (map[string]string, error) {
	values := make(map[string]string)

	// lines have no length limit
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, initialLineBuffer), math.MaxInt)
	for n := 1; scanner.Scan(); n += 1 {
		line := stripSpace(scanner.Text())
		if "" == line || '#' == line[0] {
			continue
		}

		key, value, found := strings.Cut(line, ":")
		if !found {
			return nil, fault.WithDetail(fault.ErrMalformedLine, fmt.Sprintf("line %d: %q", n, line))
		}

		if err := accept(values, schema, key, value); nil != err {
			return nil, err
		}
	}
	if err := scanner.Err(); nil != err {
		return nil, fault.Wrap(fault.ErrFileAccess, "read", err)
	}

	return values, nil
}
