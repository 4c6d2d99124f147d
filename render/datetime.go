// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"time"
)

// calendar renders the date and time of day of t.  Years outside 0-9999 carry
// an explicit sign.
func calendar(t time.Time) string {
	var year string
	switch y := t.Year(); {
	case y < 0:
		year = fmt.Sprintf("-%04d", -y)
	case y > 9999:
		year = fmt.Sprintf("+%04d", y)
	default:
		year = fmt.Sprintf("%04d", y)
	}
	return fmt.Sprintf("%s-%02d-%02d %02d:%02d:%02d", year, int(t.Month()),
		t.Day(), t.Hour(), t.Minute(), t.Second())
}

// UTC renders t in UTC, e.g. "2008-06-10 18:50:31 UTC".
func UTC(t time.Time) string {
	return calendar(t.UTC()) + " UTC"
}

// Local renders t in its own location followed by its numeric offset, e.g.
// "2008-06-10 20:50:31 +02:00".  Offsets that are not a whole number of
// minutes, such as historical local mean time, keep their seconds.
func Local(t time.Time) string {
	layout := "-07:00"
	if _, offset := t.Zone(); offset%60 != 0 {
		layout = "-07:00:00"
	}
	return calendar(t) + " " + t.Format(layout)
}
