// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package convert - turn stored option values into Go values
package convert

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bitmark-inc/optparse/fault"
)

// Separator - divides the fields of a multi-value option
const Separator = ","

// Scalar - the types an option field can be converted to
type Scalar interface {
	string | bool |
		int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64 |
		time.Duration
}

// Field - select one field of an encoded value
//
// fields are separated by commas and trimmed of surrounding white space
func Field(encoded string, index int) (string, error) {
	fields := strings.Split(encoded, Separator)
	if index < 0 || index >= len(fields) {
		return "", &fault.ConversionError{
			Text: encoded,
			Type: fmt.Sprintf("field[%d]", index),
		}
	}
	return strings.TrimSpace(fields[index]), nil
}

// Join - encode a list of values as stored from the command line
func Join(values []string) string {
	return strings.Join(values, Separator+" ")
}

// Parse - convert the whole of text to a T
func Parse[T Scalar](text string) (T, error) {
	var value T
	var err error

	switch p := any(&value).(type) {
	case *string:
		*p = text
	case *bool:
		*p, err = strconv.ParseBool(text)
	case *int:
		*p, err = strconv.Atoi(text)
	case *int8:
		*p, err = parseInt[int8](text, 8)
	case *int16:
		*p, err = parseInt[int16](text, 16)
	case *int32:
		*p, err = parseInt[int32](text, 32)
	case *int64:
		*p, err = strconv.ParseInt(text, 10, 64)
	case *uint:
		*p, err = parseUint[uint](text, strconv.IntSize)
	case *uint8:
		*p, err = parseUint[uint8](text, 8)
	case *uint16:
		*p, err = parseUint[uint16](text, 16)
	case *uint32:
		*p, err = parseUint[uint32](text, 32)
	case *uint64:
		*p, err = strconv.ParseUint(text, 10, 64)
	case *float32:
		var f float64
		f, err = strconv.ParseFloat(text, 32)
		*p = float32(f)
	case *float64:
		*p, err = strconv.ParseFloat(text, 64)
	case *time.Duration:
		*p, err = time.ParseDuration(text)
	}

	if nil != err {
		var zero T
		return zero, &fault.ConversionError{
			Text: text,
			Type: fmt.Sprintf("%T", value),
		}
	}
	return value, nil
}

func parseInt[T int8 | int16 | int32](text string, bits int) (T, error) {
	n, err := strconv.ParseInt(text, 10, bits)
	return T(n), err
}

func parseUint[T uint | uint8 | uint16 | uint32](text string, bits int) (T, error) {
	n, err := strconv.ParseUint(text, 10, bits)
	return T(n), err
}
