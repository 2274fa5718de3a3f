// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package optparse

import (
	"time"

	"github.com/bitmark-inc/optparse/configuration"
)

// Dump - append the current values and user defaults to a configuration file
//
// the file can be given back with --load
func (p *Parser) Dump(fileName string) error {
	err := configuration.Dump(fileName, p.registry, p.values, time.Now())
	if nil != err {
		p.warnf("dump: %s", err)
		return err
	}
	p.infof("dump: wrote: %q", fileName)
	return nil
}
