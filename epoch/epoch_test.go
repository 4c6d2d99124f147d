// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package epoch

import (
	"bytes"
	"errors"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/decred/slog"
)

var sanitizeTests = []struct {
	in       string
	expected string
}{
	{"1213123831231", "1213123831231"},
	{"0000123", "0000123"},
	{"1213-123831231", "1213123831231"},
	{"1_213_123_831_231", "1213123831231"},
	{" 1523296148 ", "1523296148"},
	{"-42", "42"},
	{"2008-06-10T18:37:11Z", "20080610183711"},
	// Non-ASCII digits are not ASCII digits
	{"١٢٣4", "4"},
	{"émoji🙂7", "7"},
	// Nothing left
	{"", ""},
	{"abc", ""},
	{"--", ""},
}

func TestSanitize(t *testing.T) {
	for _, v := range sanitizeTests {
		got := Sanitize(v.in)
		if got != v.expected {
			t.Errorf("Sanitize(%q): want %q got %q", v.in, v.expected,
				got)
		}
		for _, r := range got {
			if r < '0' || r > '9' {
				t.Errorf("Sanitize(%q): non-digit %q in %q", v.in,
					r, got)
			}
		}
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	for _, v := range sanitizeTests {
		once := Sanitize(v.in)
		twice := Sanitize(once)
		if once != twice {
			t.Errorf("Sanitize(%q) not idempotent: %q != %q", v.in,
				once, twice)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in       string
		expected int64
	}{
		{"1213123831231", 1213123831231},
		{"0", 0},
		{"000042", 42},
		{"9223372036854775807", 9223372036854775807},
	}
	for _, v := range tests {
		got, err := Parse(v.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", v.in, err)
		}
		if got != v.expected {
			t.Fatalf("Parse(%q): want %v got %v", v.in, v.expected,
				got)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in      string
		reason  string
		isRange bool
	}{
		{"121312383123100000000", "number too large to fit in target type", true},
		{"9223372036854775808", "number too large to fit in target type", true},
		{"", "cannot parse integer from empty string", false},
		{"12a", "invalid digit found in string", false},
	}
	for _, v := range tests {
		_, err := Parse(v.in)
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("Parse(%q): want *ParseError got %T", v.in, err)
		}
		message := v.reason + ", timestamp should fit in 64-bit number"
		if err.Error() != message {
			t.Fatalf("Parse(%q): want %q got %q", v.in, message,
				err.Error())
		}
		if errors.Is(err, strconv.ErrRange) != v.isRange {
			t.Fatalf("Parse(%q): want ErrRange %v", v.in, v.isRange)
		}
	}
}

func TestConvert(t *testing.T) {
	r := NewResolver(FixedZone("CEST", 2*60*60))

	c, err := Convert("1213-123831231", r)
	if err != nil {
		t.Fatal(err)
	}
	if c.Raw != "1213-123831231" {
		t.Fatalf("raw: got %q", c.Raw)
	}
	if c.Digits != "1213123831231" {
		t.Fatalf("digits: got %q", c.Digits)
	}
	if c.Seconds != 1213123831231 {
		t.Fatalf("seconds: got %v", c.Seconds)
	}
	if c.DateTime == nil || c.DateTime.UTC.Unix() != c.Seconds {
		t.Fatalf("bad date-time %v", spew.Sdump(c.DateTime))
	}
}

func TestConvertErrors(t *testing.T) {
	r := NewResolver(nil)

	c, err := Convert("121_312_383_123_100_000_000", r)
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("want *ParseError got %v", err)
	}
	if c != nil {
		t.Fatalf("unexpected conversion %v", spew.Sdump(c))
	}

	c, err = Convert("no digits here", r)
	if !errors.As(err, &pe) {
		t.Fatalf("want *ParseError got %v", err)
	}

	_, err = Convert("12,131,238,312,310,000", r)
	var re *RangeError
	if !errors.As(err, &re) {
		t.Fatalf("want *RangeError got %v", err)
	}
	if re.Seconds != 12131238312310000 {
		t.Fatalf("want 12131238312310000 got %v", re.Seconds)
	}
}

func TestConvertAll(t *testing.T) {
	r := NewResolver(FixedZone("UTC", 0))
	inputs := []string{
		"1523296148",
		"121312383123100000000",
		"12131238312310000",
		"0",
	}

	results := ConvertAll(inputs, r)
	if len(results) != len(inputs) {
		t.Fatalf("want %v results got %v", len(inputs), len(results))
	}

	if results[0].Err != nil || results[0].DateTime == nil ||
		results[0].DateTime.UTC.Unix() != 1523296148 {
		t.Fatalf("unexpected result %v", spew.Sdump(results[0]))
	}
	if !results[0].Parsed() {
		t.Fatalf("result 0 should be parsed")
	}

	if _, ok := results[1].Err.(*ParseError); !ok {
		t.Fatalf("want *ParseError got %v", results[1].Err)
	}
	if results[1].Parsed() {
		t.Fatalf("result 1 should not be parsed")
	}

	if _, ok := results[2].Err.(*RangeError); !ok {
		t.Fatalf("want *RangeError got %v", results[2].Err)
	}
	if !results[2].Parsed() || results[2].Seconds != 12131238312310000 {
		t.Fatalf("unexpected result %v", spew.Sdump(results[2]))
	}
	if results[2].DateTime != nil {
		t.Fatalf("out of range result resolved")
	}

	// Failures do not leak into the inputs that follow them.
	expected := Result{
		Conversion: Conversion{
			Raw:     "0",
			Digits:  "0",
			Seconds: 0,
		},
	}
	got := results[3]
	if got.DateTime == nil || !got.DateTime.UTC.Equal(
		got.DateTime.Local) {
		t.Fatalf("unexpected result %v", spew.Sdump(got))
	}
	got.DateTime = nil
	if !reflect.DeepEqual(expected, got) {
		t.Fatalf("want %v got %v", spew.Sdump(expected),
			spew.Sdump(got))
	}
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	l := slog.NewBackend(&buf).Logger("EPCH")
	l.SetLevel(slog.LevelTrace)
	UseLogger(l)
	defer UseLogger(slog.Disabled)

	_, err := Convert("1213-123831231", NewResolver(nil))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `sanitized "1213-123831231"`) {
		t.Fatalf("missing trace output: %q", buf.String())
	}

	buf.Reset()
	_, err = Convert("12131238312310000", NewResolver(nil))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(buf.String(), "out-of-range number of seconds") {
		t.Fatalf("missing debug output: %q", buf.String())
	}
}
