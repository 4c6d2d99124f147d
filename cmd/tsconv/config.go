// Copyright (c) 2015-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"

	flags "github.com/jessevdk/go-flags"
)

const (
	appName = "tsconv"

	// defaultLogLevel keeps subsystem logging out of the way of regular
	// output.
	defaultLogLevel = "warn"
)

var (
	// errNoTimes is returned when no positional arguments were given.
	errNoTimes = errors.New("at least one timestamp is required")
)

// config defines the command line options for tsconv.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ShowVersion bool `short:"V" long:"version" description:"Display version information and exit"`

	Args struct {
		Times []string `positional-arg-name:"time" description:"Time as timestamp in UTC; any non-digit characters are ignored"`
	} `positional-args:"yes"`
}

// newParser returns the command line parser for cfg.
func newParser(cfg *config) *flags.Parser {
	parser := flags.NewParser(cfg, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = appName
	parser.Usage = "[OPTIONS] <time>..."
	return parser
}

// loadConfig parses the command line.  Requests for help are reported as a
// *flags.Error of type flags.ErrHelp carrying the usage text.
func loadConfig(args []string) (*config, *flags.Parser, error) {
	cfg := config{}
	parser := newParser(&cfg)

	_, err := parser.ParseArgs(args)
	if err != nil {
		return nil, parser, err
	}

	return &cfg, parser, nil
}

// isHelp determines if err is a request for usage information.
func isHelp(err error) bool {
	var e *flags.Error
	return errors.As(err, &e) && e.Type == flags.ErrHelp
}
