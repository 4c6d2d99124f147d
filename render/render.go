// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package render formats epoch conversions as labeled, colorized text.
//
// Rendering never influences the values shown; it only pads and styles them.
package render

import (
	"strconv"
	"strings"

	"github.com/decred/tsconv/epoch"
)

const (
	// labelWidth is the width of the label column.
	labelWidth = 20

	// cellWidth is the width of every value column in a table.
	cellWidth = 30
)

// Output labels.
const (
	LabelItem      = "Item:"
	LabelRead      = "Read:"
	LabelTimestamp = "As timestamp:"
	LabelUTC       = "In UTC:"
	LabelLocal     = "In Local Timezone:"
)

// Field renders a single "label value" line.
func (p *Palette) Field(label, value string) string {
	return p.Label(pad(label, labelWidth)) + " " + p.Value(value)
}

// Block renders a successful conversion as four labeled lines.
func (p *Palette) Block(c *epoch.Conversion) string {
	lines := []string{
		p.Field(LabelRead, c.Raw),
		p.Field(LabelTimestamp, strconv.FormatInt(c.Seconds, 10)),
		p.Field(LabelUTC, UTC(c.DateTime.UTC)),
		p.Field(LabelLocal, Local(c.DateTime.Local)),
	}
	return strings.Join(lines, "\n")
}

// Table renders results side by side, one column per input.  Cells of a
// failed input show the error text instead of a value.  The timestamp row
// still shows the parsed number when only resolution failed.
func (p *Palette) Table(results []epoch.Result) string {
	var (
		items      = make([]string, 0, len(results))
		reads      = make([]string, 0, len(results))
		timestamps = make([]string, 0, len(results))
		utcs       = make([]string, 0, len(results))
		locals     = make([]string, 0, len(results))
	)
	for i := range results {
		r := &results[i]

		items = append(items, p.Index(pad(strconv.Itoa(i), cellWidth)))
		reads = append(reads, p.cell(r.Raw))

		if r.Parsed() {
			timestamps = append(timestamps,
				p.cell(strconv.FormatInt(r.Seconds, 10)))
		} else {
			timestamps = append(timestamps, p.cell(r.Err.Error()))
		}

		if r.Err != nil {
			utcs = append(utcs, p.cell(r.Err.Error()))
			locals = append(locals, p.cell(r.Err.Error()))
			continue
		}
		utcs = append(utcs, p.cell(UTC(r.DateTime.UTC)))
		locals = append(locals, p.cell(Local(r.DateTime.Local)))
	}

	lines := []string{
		p.row(LabelItem, items),
		p.row(LabelRead, reads),
		p.row(LabelTimestamp, timestamps),
		p.row(LabelUTC, utcs),
		p.row(LabelLocal, locals),
	}
	return strings.Join(lines, "\n")
}

// cell pads and styles a table value.
func (p *Palette) cell(value string) string {
	return p.Value(pad(value, cellWidth))
}

// row prefixes already styled cells with a padded label.
func (p *Palette) row(label string, cells []string) string {
	return p.Label(pad(label, labelWidth)) + strings.Join(cells, "")
}
