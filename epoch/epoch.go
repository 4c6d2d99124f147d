// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package epoch turns free-form user input into Unix epoch timestamps and
// resolves them into calendar date-times.
//
// Conversion is a forward-only pipeline: Sanitize drops everything that is
// not an ASCII digit, Parse reads the remaining digits as a signed 64-bit
// number of seconds and a Resolver validates the seconds against the
// supported calendar range before rendering them in UTC and in a local zone.
package epoch

import (
	"errors"
	"strconv"
	"strings"
)

// Conversion is the outcome of running one raw input through the pipeline.
// Fields are filled in stage order; DateTime is nil until resolution
// succeeds.
type Conversion struct {
	Raw      string    // Input exactly as supplied
	Digits   string    // Raw with all non-digits removed
	Seconds  int64     // Digits as seconds since the epoch
	DateTime *DateTime // Resolved calendar date-time
}

// Result pairs a possibly partial Conversion with the error that stopped it.
type Result struct {
	Conversion
	Err error
}

// Parsed reports whether the input made it past the parser.
func (r *Result) Parsed() bool {
	if r.Err == nil {
		return true
	}
	var re *RangeError
	return errors.As(r.Err, &re)
}

// Sanitize returns s with every character that is not an ASCII digit
// removed.  Order is preserved and the result may be empty.
func Sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if r < '0' || r > '9' {
			return -1
		}
		return r
	}, s)
}

// Parse reads digits as a base 10 signed 64-bit number of seconds.  Leading
// zeros are permitted.  Empty input and values that overflow an int64 yield a
// *ParseError.
func Parse(digits string) (int64, error) {
	seconds, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, &ParseError{Digits: digits, Err: err}
	}
	return seconds, nil
}

// convert runs the pipeline and returns whatever it managed to compute
// together with the first error encountered.
func convert(raw string, r *Resolver) (Conversion, error) {
	c := Conversion{
		Raw:    raw,
		Digits: Sanitize(raw),
	}
	if len(c.Digits) != len(raw) {
		log.Tracef("sanitized %q to %q", raw, c.Digits)
	}

	var err error
	c.Seconds, err = Parse(c.Digits)
	if err != nil {
		log.Debugf("parse %q: %v", raw, err)
		return c, err
	}

	c.DateTime, err = r.Resolve(c.Seconds)
	if err != nil {
		log.Debugf("resolve %q: %v", raw, err)
		return c, err
	}

	return c, nil
}

// Convert runs raw through the full pipeline using resolver r.  On failure
// the *ParseError or *RangeError is returned unchanged.
func Convert(raw string, r *Resolver) (*Conversion, error) {
	c, err := convert(raw, r)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ConvertAll converts every input independently and in order.  A failing
// input is recorded in its own Result and does not affect the others.
func ConvertAll(raws []string, r *Resolver) []Result {
	results := make([]Result, 0, len(raws))
	for _, raw := range raws {
		c, err := convert(raw, r)
		results = append(results, Result{Conversion: c, Err: err})
	}
	return results
}
