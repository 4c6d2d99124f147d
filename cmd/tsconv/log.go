// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2015-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/decred/slog"
	"github.com/decred/tsconv/epoch"
)

// logOutput is where the backend writes.  run points it at its stderr.
var logOutput io.Writer = os.Stderr

// logWriter implements an io.Writer that outputs to logOutput.
type logWriter struct{}

func (logWriter) Write(p []byte) (n int, err error) {
	logOutput.Write(p)
	return len(p), nil
}

// Loggers per subsystem.  A single backend logger is created and all subsytem
// loggers created from it will write to the backend.  When adding new
// subsystems, add the subsystem logger variable here and to the
// subsystemLoggers map.
var (
	// backendLog is the logging backend used to create all subsystem
	// loggers.
	backendLog = slog.NewBackend(logWriter{})

	log      = backendLog.Logger("TSCV")
	epochLog = backendLog.Logger("EPCH")
)

// Initialize package-global logger variables.
func init() {
	epoch.UseLogger(epochLog)
}

// subsystemLoggers maps each subsystem identifier to its associated logger.
var subsystemLoggers = map[string]slog.Logger{
	"TSCV": log,
	"EPCH": epochLog,
}

// setLogLevel sets the logging level for provided subsystem.  Invalid
// subsystems are ignored.
func setLogLevel(subsystemID string, logLevel string) {
	// Ignore invalid subsystems.
	logger, ok := subsystemLoggers[subsystemID]
	if !ok {
		return
	}

	// Defaults to info if the log level is invalid.
	level, _ := slog.LevelFromString(logLevel)
	logger.SetLevel(level)
}

// setLogLevels sets the log level for all subsystem loggers to the passed
// level.
func setLogLevels(logLevel string) {
	for subsystemID := range subsystemLoggers {
		setLogLevel(subsystemID, logLevel)
	}
}

// initLogging validates logLevel and applies it to every subsystem.
func initLogging(logLevel string) error {
	if _, ok := slog.LevelFromString(logLevel); !ok {
		return fmt.Errorf("the specified debug level [%v] is invalid",
			logLevel)
	}
	setLogLevels(logLevel)
	return nil
}
