// Copyright 2017 The Shale Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

// Package humanize provides routines for formatting counts and byte sizes
// for human consumption in log output.
package humanize

import (
	"fmt"

	"github.com/cockroachdb/redact"
)

// FormattedString is a string produced by one of the formatters in this
// package. It contains no user data and is safe to log verbatim.
type FormattedString string

var _ redact.SafeValue = FormattedString("")

// SafeValue implements redact.SafeValue.
func (FormattedString) SafeValue() {}

type config struct {
	scale    uint64
	suffixes []string
}

// Bytes formats values as byte sizes using 1024-based unit prefixes.
var Bytes = config{1024, []string{" B", " KB", " MB", " GB", " TB", " PB", " EB"}}

// Count formats values as plain counts using 1000-based unit prefixes.
var Count = config{1000, []string{"", " K", " M", " G", " T"}}

// Uint64 formats the given value.
func (c config) Uint64(value uint64) FormattedString {
	fv := float64(value)
	var i int
	for i = 0; fv >= float64(c.scale) && i < len(c.suffixes)-1; i++ {
		fv /= float64(c.scale)
	}
	if i == 0 {
		return FormattedString(fmt.Sprintf("%d%s", value, c.suffixes[0]))
	}
	return FormattedString(fmt.Sprintf("%.1f%s", fv, c.suffixes[i]))
}

// Int64 formats the given value.
func (c config) Int64(value int64) FormattedString {
	if value < 0 {
		return "-" + c.Uint64(uint64(-value))
	}
	return c.Uint64(uint64(value))
}
