// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package optparse_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/optparse"
	"github.com/bitmark-inc/optparse/fault"
)

func TestRetrieveDefault(t *testing.T) {
	p := newTestParser(t)

	// no parse yet, defaults still apply
	low, high, err := optparse.RetrievePair[int, float64](p.Parser, "range")
	assert.Nil(t, err, "range")
	assert.Equal(t, 1, low, "wrong low")
	assert.Equal(t, 10.0, high, "wrong high")

	field, err := p.Field("range", 1)
	assert.Nil(t, err, "field")
	assert.Equal(t, "10", field, "wrong field")
}

func TestRetrieveTypes(t *testing.T) {
	p := optparse.New(nil)
	p.SetOutput(&discard{}, &discard{})
	assert.Nil(t, p.InsertOption("size", 1, "", "-42"), "insert size")
	assert.Nil(t, p.InsertOption("ratio", 1, "", "0.25"), "insert ratio")
	assert.Nil(t, p.InsertOption("timeout", 1, "", "1m30s"), "insert timeout")
	assert.Nil(t, p.InsertOption("label", 1, "", "x"), "insert label")

	status := p.Parse([]string{"prog", "--label", "hello world"})
	assert.Equal(t, optparse.StatusOK, status, "wrong status: %v", p.Err())

	size, err := optparse.Retrieve[int64](p, "size", 0)
	assert.Nil(t, err, "size")
	assert.Equal(t, int64(-42), size, "wrong size")

	ratio, err := optparse.Retrieve[float32](p, "ratio", 0)
	assert.Nil(t, err, "ratio")
	assert.Equal(t, float32(0.25), ratio, "wrong ratio")

	timeout, err := optparse.Retrieve[time.Duration](p, "timeout", 0)
	assert.Nil(t, err, "timeout")
	assert.Equal(t, 90*time.Second, timeout, "wrong timeout")

	label, err := optparse.Retrieve[string](p, "label", 0)
	assert.Nil(t, err, "label")
	assert.Equal(t, "hello world", label, "wrong label")
}

func TestRetrieveConversionError(t *testing.T) {
	p := newTestParser(t)

	status := p.Parse([]string{"prog", "--count", "many"})
	assert.Equal(t, optparse.StatusOK, status, "values are not converted while parsing")

	_, err := optparse.Retrieve[int](p.Parser, "count", 0)
	assert.True(t, errors.Is(err, fault.ErrConversion), "wrong error: %v", err)

	var ce *fault.ConversionError
	assert.True(t, errors.As(err, &ce), "not a conversion error: %v", err)
	assert.Equal(t, "many", ce.Text, "wrong text")
	assert.Equal(t, "int", ce.Type, "wrong type")

	_, err = optparse.Retrieve[uint8](p.Parser, "range", 1)
	assert.Nil(t, err, "range fits uint8")
}

func TestRetrieveIndexOutOfRange(t *testing.T) {
	p := newTestParser(t)

	_, err := optparse.Retrieve[int](p.Parser, "count", 1)
	assert.True(t, errors.Is(err, fault.ErrConversion), "wrong error: %v", err)

	_, _, err = optparse.RetrievePair[int, int](p.Parser, "count")
	assert.True(t, errors.Is(err, fault.ErrConversion), "wrong pair error: %v", err)
}

func TestRetrieveMissing(t *testing.T) {
	p := newTestParser(t)
	assert.Nil(t, p.InsertOption("name", 1, "", ""), "insert name")

	_, err := optparse.Retrieve[string](p.Parser, "name", 0)
	assert.True(t, errors.Is(err, fault.ErrMissingArgument), "wrong error: %v", err)

	_, err = optparse.Retrieve[string](p.Parser, "not-registered", 0)
	assert.True(t, errors.Is(err, fault.ErrMissingArgument), "wrong error: %v", err)
}

func TestRetrieveBooleanIgnoresIndex(t *testing.T) {
	p := newTestParser(t)

	status := p.Parse([]string{"prog", "--verbose"})
	assert.Equal(t, optparse.StatusOK, status, "wrong status")

	field, err := p.Field("verbose", 3)
	assert.Nil(t, err, "field")
	assert.Equal(t, "1", field, "wrong field")

	field, err = p.Field("colour", 3)
	assert.Nil(t, err, "field")
	assert.Equal(t, "1", field, "wrong default field")
}

type discard struct{}

func (*discard) Write(b []byte) (int, error) {
	return len(b), nil
}
