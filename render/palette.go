// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Palette styles labels and values for terminal display.
type Palette struct {
	label *color.Color
	value *color.Color
	index *color.Color
}

// NewPalette returns the default palette: cyan labels, blue values and white
// column indices.  When enabled is false every method returns plain text.
func NewPalette(enabled bool) *Palette {
	p := &Palette{
		label: color.New(color.FgCyan),
		value: color.New(color.FgBlue),
		index: color.New(color.FgWhite),
	}
	for _, c := range []*color.Color{p.label, p.value, p.index} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// IsTerminal reports whether f is attached to a terminal.  Output redirected
// to a file or pipe is not colorized.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Label styles s as a label.
func (p *Palette) Label(s string) string {
	return p.label.Sprint(s)
}

// Value styles s as a value.
func (p *Palette) Value(s string) string {
	return p.value.Sprint(s)
}

// Index styles s as a column index.
func (p *Palette) Index(s string) string {
	return p.index.Sprint(s)
}

// pad left aligns s in a field of width runes.  Padding is applied before
// styling so escape sequences do not count towards the width.
func pad(s string, width int) string {
	return fmt.Sprintf("%-*s", width, s)
}
