// Copyright (c) 2017-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// tsconv converts free-form numeric input into Unix epoch timestamps and
// shows them in UTC and in the local timezone.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/decred/tsconv/epoch"
	"github.com/decred/tsconv/render"
	"github.com/mattn/go-colorable"
)

var (
	// errConversionFailed is returned when at least one of several inputs
	// could not be converted.
	errConversionFailed = errors.New("conversion failed")
)

// run executes tsconv with args.  A single input is converted strictly: on
// failure nothing is written to stdout and the error is returned.  Multiple
// inputs are rendered as a table with errors shown inline; the returned error
// then only reports how many inputs failed.
func run(args []string, stdout, stderr io.Writer, zone epoch.Zone, p *render.Palette) error {
	prevOutput := logOutput
	logOutput = stderr
	defer func() { logOutput = prevOutput }()

	cfg, parser, err := loadConfig(args)
	if err != nil {
		if isHelp(err) {
			fmt.Fprintln(stdout, err)
			return nil
		}
		return err
	}

	if cfg.ShowVersion {
		fmt.Fprintf(stdout, "%s version %s\n", appName, version())
		return nil
	}

	times := cfg.Args.Times
	if len(times) == 0 {
		parser.WriteHelp(stderr)
		return errNoTimes
	}

	log.Debugf("Converting %v input(s)", len(times))
	r := epoch.NewResolver(zone)

	if len(times) == 1 {
		c, err := epoch.Convert(times[0], r)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, p.Block(c))
		return nil
	}

	results := epoch.ConvertAll(times, r)
	fmt.Fprintln(stdout, p.Table(results))

	var failed int
	for i := range results {
		if results[i].Err != nil {
			log.Warnf("Input %v (%q): %v", i, results[i].Raw,
				results[i].Err)
			failed++
		}
	}
	if failed != 0 {
		return fmt.Errorf("%w: %v of %v inputs could not be converted",
			errConversionFailed, failed, len(results))
	}

	return nil
}

func _main() error {
	if err := initLogging(defaultLogLevel); err != nil {
		return err
	}

	stdout := colorable.NewColorableStdout()
	p := render.NewPalette(render.IsTerminal(os.Stdout))

	return run(os.Args[1:], stdout, os.Stderr, epoch.SystemZone, p)
}

func main() {
	err := _main()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
