// Copyright (c) 2021 The peas developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package log provides the shared logging backend.  Subsystem loggers hand
// formatted records to a single writer that duplicates them to the
// terminal, colorized when the terminal supports it, and to an optional
// rotating log file.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/btcsuite/btclog"
	"github.com/jrick/logrotate/rotator"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// logWriter implements an io.Writer that outputs to both standard error and
// the write-end pipe of an initialized log rotator.
type logWriter struct {
	// logRotator is one of the logging outputs.  It should be closed on
	// application shutdown.
	logRotator *rotator.Rotator

	// colorableWrite is set when the terminal supports color.
	colorableWrite io.Writer
}

func (lw *logWriter) Init() {
	usecolor := isatty.IsTerminal(os.Stderr.Fd()) &&
		os.Getenv("TERM") != "dumb"
	if usecolor {
		lw.colorableWrite = colorable.NewColorableStderr()
	}
}

func (lw *logWriter) Close() {
	if lw.logRotator != nil {
		lw.logRotator.Close()
	}
}

func (lw *logWriter) Write(p []byte) (n int, err error) {
	if lw.logRotator != nil {
		lw.logRotator.Write(p)
	}
	if lw.colorableWrite != nil {
		lw.colorableWrite.Write(p)
	} else {
		os.Stderr.Write(p)
	}
	return len(p), nil
}

var (
	// logWrite is the shared writer behind every subsystem logger.
	// Output goes to stderr so daemons under systemd or supervisord
	// collect it alongside Go runtime panics.
	logWrite = &logWriter{}

	backend *btclog.Backend
)

func init() {
	logWrite.Init()
	backend = btclog.NewBackend(logWrite)
}

// New returns a logger for the named subsystem backed by the shared
// writer.
func New(subsystem string) btclog.Logger {
	return backend.Logger(subsystem)
}

// InitLogRotator initializes the logging rotator to write logs to logFile
// and create roll files in the same directory.  It must be called before
// log output is expected in the file.
func InitLogRotator(logFile string) {
	logDir, _ := filepath.Split(logFile)
	err := os.MkdirAll(logDir, 0700)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create log directory: %v\n", err)
		os.Exit(1)
	}
	r, err := rotator.New(logFile, 10*1024, false, 3)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create file rotator: %v\n", err)
		os.Exit(1)
	}

	logWrite.logRotator = r
}

// Close flushes and closes the rotating log file, if one was initialized.
func Close() {
	logWrite.Close()
}
