// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of each option processing error to allow
// easy comparison without having to resort to partial string matches.
// Errors carrying the offending name or text wrap one of these
// instances, so errors.Is and the IsErrXxx classifiers still apply.
package fault
