// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package epoch

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ParseError is returned when a digit string can not be parsed into a signed
// 64-bit number of seconds.  This covers both empty input and overflow.
type ParseError struct {
	Digits string // Input handed to the parser
	Err    error  // Underlying *strconv.NumError
}

// reason describes why parsing failed in plain words.
func (e *ParseError) reason() string {
	switch {
	case e.Digits == "":
		return "cannot parse integer from empty string"
	case errors.Is(e.Err, strconv.ErrRange):
		if strings.HasPrefix(e.Digits, "-") {
			return "number too small to fit in target type"
		}
		return "number too large to fit in target type"
	default:
		return "invalid digit found in string"
	}
}

// Error satisfies the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%v, timestamp should fit in 64-bit number",
		e.reason())
}

// Unwrap returns the underlying strconv error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// RangeError is returned when a number of seconds is a valid int64 but falls
// outside the supported calendar range.
type RangeError struct {
	Seconds int64
}

// Error satisfies the error interface.
func (e *RangeError) Error() string {
	return fmt.Sprintf("couldn't convert %v to timestamp, since it's an "+
		"out-of-range number of seconds", e.Seconds)
}
