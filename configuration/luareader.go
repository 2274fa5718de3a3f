// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/bitmark-inc/optparse/convert"
	"github.com/bitmark-inc/optparse/fault"
)

// read and execute a Lua file and convert the returned table
func readLuaFile(fileName string, schema Schema) (map[string]string, error) {
	if _, err := os.Stat(fileName); nil != err {
		return nil, fault.Wrap(fault.ErrIO, fileName, err)
	}

	L := lua.NewState()
	defer L.Close()

	L.OpenLibs()

	// create the global "arg" table
	// arg[0] = config file
	arg := L.NewTable()
	arg.Insert(0, lua.LString(fileName))
	L.SetGlobal("arg", arg)

	// execute configuration
	if err := L.DoFile(fileName); err != nil {
		return nil, fault.Wrap(fault.ErrLuaExecution, fileName, err)
	}

	table, ok := L.Get(L.GetTop()).(*lua.LTable)
	if !ok {
		return nil, fault.WithDetail(fault.ErrInvalidLuaConfiguration, fileName)
	}

	mapperOption := gluamapper.Option{
		NameFunc: func(s string) string {
			return s
		},
		TagName: "gluamapper",
	}
	items, ok := gluamapper.ToGoValue(table, mapperOption).(map[interface{}]interface{})
	if !ok {
		return nil, fault.WithDetail(fault.ErrInvalidLuaConfiguration, fileName)
	}

	// sorted so that the first error reported does not vary
	keys := make([]string, 0, len(items))
	texts := make(map[string]string, len(items))
	for k, v := range items {
		key := fmt.Sprint(k)
		text, err := luaText(v)
		if nil != err {
			return nil, fault.WithDetail(err, key)
		}
		keys = append(keys, key)
		texts[key] = text
	}
	sort.Strings(keys)

	values := make(map[string]string, len(keys))
	for _, key := range keys {
		if err := accept(values, schema, stripSpace(key), stripSpace(texts[key])); nil != err {
			return nil, err
		}
	}
	return values, nil
}

// the stored text form of a Lua value
func luaText(v interface{}) (string, error) {
	switch value := v.(type) {
	case nil:
		return "", nil
	case string:
		return value, nil
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64), nil
	case bool:
		if value {
			return "1", nil
		}
		return "0", nil
	case []interface{}:
		fields := make([]string, 0, len(value))
		for _, item := range value {
			if _, nested := item.([]interface{}); nested {
				return "", fault.ErrInvalidLuaConfiguration
			}
			text, err := luaText(item)
			if nil != err {
				return "", err
			}
			fields = append(fields, text)
		}
		return strings.Join(fields, convert.Separator), nil
	default:
		return "", fault.ErrInvalidLuaConfiguration
	}
}
