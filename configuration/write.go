// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ncruces/go-strftime"

	"github.com/bitmark-inc/optparse/fault"
)

const generatedBy = "# Created automatically by optparse"

// Dump - append the values to a configuration file, creating it if necessary
//
// existing content is never truncated; the native format is always
// written, whatever the file name
func Dump(fileName string, schema Schema, values map[string]string, now time.Time) (err error) {
	f, err := os.OpenFile(fileName, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
	if nil != err {
		return fault.Wrap(fault.ErrIO, fileName, err)
	}
	defer func() {
		if e := f.Close(); nil == err && nil != e {
			err = fault.Wrap(fault.ErrFileAccess, fileName, e)
		}
	}()

	return Write(f, schema, values, now)
}

// Write - output a comment header followed by one name: value line per option
//
// an option with no value is written with its default, but only if
// it is user defined and the default is not empty
func Write(w io.Writer, schema Schema, values map[string]string, now time.Time) error {
	b := bufio.NewWriter(w)

	fmt.Fprintf(b, "\n%s\n\n", header(now))

	for _, o := range schema.Options() {
		if value, ok := values[o.Name]; ok {
			fmt.Fprintf(b, "%s: %s\n", o.Name, value)
		} else if o.IsUserDefined() && "" != o.Default {
			fmt.Fprintf(b, "%s: %s\n", o.Name, o.Default)
		}
	}
	fmt.Fprintln(b)

	if err := b.Flush(); nil != err {
		return fault.Wrap(fault.ErrFileAccess, "write", err)
	}
	return nil
}

// e.g. "# Created automatically by optparse on Sun Oct 17 04:41:13 2010"
func header(now time.Time) string {
	if now.IsZero() {
		return generatedBy
	}
	stamp := strftime.Format("%c", now)
	if "" == stamp {
		return generatedBy
	}
	return generatedBy + " on " + stamp
}
