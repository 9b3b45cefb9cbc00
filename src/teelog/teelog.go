// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package teelog

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/H0llyW00dzZ/compress-log-utils/src/logger"
)

// timestampLayout formats record prefixes as [MM/DD/YYYY][HH:MM:SS].
const timestampLayout = "[01/02/2006][15:04:05]"

// Filter transforms a message before it reaches a single sink.
// Returning ok=false suppresses output to that sink only; the other sink is
// unaffected. The default filter for both sinks is identity pass-through.
type Filter func(message string) (modified string, ok bool)

// passthrough is the default Filter for both sinks.
func passthrough(message string) (string, bool) { return message, true }

// Config holds the immutable construction-time settings of a Logger.
// It is set once at construction and never mutated afterwards.
type Config struct {
	// FilePath is the target log file. Ignored unless File is set.
	FilePath string
	// Timestamp prepends a [MM/DD/YYYY][HH:MM:SS] prefix to every record.
	Timestamp bool
	// Console mirrors records to the console writer.
	Console bool
	// File appends records to FilePath.
	File bool
}

// DefaultConfig returns a Config with timestamping, console output, and file
// output all enabled for the given path.
func DefaultConfig(path string) Config {
	return Config{
		FilePath:  path,
		Timestamp: true,
		Console:   true,
		File:      true,
	}
}

// Logger mirrors timestamped text to a console writer and, if enabled, to an
// append-mode log file. It holds the two sinks by composition rather than
// extending a stream type.
//
// All writes and the close transition are serialized by an internal mutex, so
// a Logger is safe for concurrent use by multiple goroutines. This is a
// deliberate strengthening over sources that leave serialization to callers.
type Logger struct {
	mu  sync.Mutex
	cfg Config

	console io.Writer
	file    *os.File
	closed  bool

	filterConsole Filter
	filterLog     Filter

	errs logger.Logger
	now  func() time.Time
}

// New creates a Logger from cfg, reporting failures to stderr.
//
// If cfg.File is set, the target file is created if absent and opened in
// append mode. Failure to create or open is reported to the error channel and
// the Logger continues operating with the file sink explicitly disabled; it
// never holds a nil handle behind an enabled switch.
func New(cfg Config) *Logger {
	return NewWithLogger(cfg, logger.NewErrorLogger())
}

// NewWithLogger creates a Logger from cfg, reporting failures to errs.
// A nil errs falls back to stderr.
func NewWithLogger(cfg Config, errs logger.Logger) *Logger {
	if errs == nil {
		errs = logger.NewErrorLogger()
	}

	l := &Logger{
		cfg:           cfg,
		console:       os.Stdout,
		filterConsole: passthrough,
		filterLog:     passthrough,
		errs:          errs,
		now:           time.Now,
	}

	if cfg.File {
		f, err := os.OpenFile(cfg.FilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			errs.Printf("teelog: could not open log file %q: %v", cfg.FilePath, err)
			l.cfg.File = false
		} else {
			l.file = f
		}
	}

	return l
}

// SetConsoleOutput redirects the console sink to w. Passing nil restores the
// default (stdout). The file sink is unaffected.
func (l *Logger) SetConsoleOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stdout
	}
	l.console = w
}

// SetConsoleFilter installs f as the console-sink filter.
// Passing nil restores pass-through.
func (l *Logger) SetConsoleFilter(f Filter) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if f == nil {
		f = passthrough
	}
	l.filterConsole = f
}

// SetLogFilter installs f as the file-sink filter.
// Passing nil restores pass-through.
func (l *Logger) SetLogFilter(f Filter) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if f == nil {
		f = passthrough
	}
	l.filterLog = f
}

// Print emits text as exactly one record per call, regardless of embedded
// line breaks. Each enabled sink receives the text through its own filter;
// if the filter keeps it, the identical timestamp prefix (when enabled) is
// prepended and the result is written without an added newline.
//
// The file handle is unbuffered, so every file write reaches the operating
// system immediately. Console writes after Close remain permitted; file
// writes stop.
func (l *Logger) Print(text string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var stamp string
	if l.cfg.Timestamp {
		stamp = l.now().Format(timestampLayout) + " "
	}

	if l.cfg.Console {
		if msg, ok := l.filterConsole(text); ok {
			if _, err := io.WriteString(l.console, stamp+msg); err != nil {
				l.errs.Printf("teelog: could not write to console: %v", err)
			}
		}
	}

	if l.cfg.File && !l.closed {
		if msg, ok := l.filterLog(text); ok {
			// The prefix always heads the record; a trailing line
			// terminator in msg stays at the end of the record.
			if _, err := io.WriteString(l.file, stamp+msg); err != nil {
				l.errs.Printf("teelog: could not write to log file %q: %v", l.cfg.FilePath, err)
			}
		}
	}
}

// Println emits text followed by a line terminator as one record.
func (l *Logger) Println(text string) {
	l.Print(text + "\n")
}

// Printf formats according to fmt.Sprintf and emits the result as one record.
func (l *Logger) Printf(format string, v ...any) {
	l.Print(fmt.Sprintf(format, v...))
}

// Write implements io.Writer so a Logger can stand in for an output stream,
// e.g. behind a redirection Registry or a stdlib log.Logger. Each call emits
// one record.
func (l *Logger) Write(p []byte) (int, error) {
	l.Print(string(p))
	return len(p), nil
}

// IsClosed reports whether Close has been called.
func (l *Logger) IsClosed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.closed
}

// Close flushes and releases the file handle. The transition is irreversible
// and idempotent: the first call does the work, subsequent calls are no-ops
// returning nil. Console output remains usable after Close.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}
	l.closed = true

	if l.file == nil {
		return nil
	}

	if err := l.file.Sync(); err != nil {
		l.errs.Printf("teelog: could not flush log file %q: %v", l.cfg.FilePath, err)
	}

	if err := l.file.Close(); err != nil {
		l.errs.Printf("teelog: could not close log file %q: %v", l.cfg.FilePath, err)
		return fmt.Errorf("teelog: closing log file %q: %w", l.cfg.FilePath, err)
	}

	return nil
}
