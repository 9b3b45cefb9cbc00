// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package teelog

import (
	"io"
	"os"
	"sync"
)

// Stream names a process-default output stream managed by a Registry.
type Stream int

const (
	// Stdout is the process standard output stream.
	Stdout Stream = iota
	// Stderr is the process standard error stream.
	Stderr
)

// String returns the conventional name of the stream.
func (s Stream) String() string {
	switch s {
	case Stdout:
		return "stdout"
	case Stderr:
		return "stderr"
	default:
		return "unknown"
	}
}

// Registry tracks which writer currently stands in for each standard stream,
// replacing ambient process-state mutation with an explicit object that
// embedding code consults via Writer.
//
// Lifecycle: construct (or use DefaultRegistry), Install at startup, Restore
// at shutdown. Installing a nil Logger is equivalent to Restore.
//
// A Registry is safe for concurrent use by multiple goroutines.
type Registry struct {
	mu       sync.Mutex
	original map[Stream]io.Writer
	current  map[Stream]io.Writer
}

// NewRegistry creates a Registry whose original writers are the real
// process streams.
func NewRegistry() *Registry {
	return &Registry{
		original: map[Stream]io.Writer{
			Stdout: os.Stdout,
			Stderr: os.Stderr,
		},
		current: map[Stream]io.Writer{
			Stdout: os.Stdout,
			Stderr: os.Stderr,
		},
	}
}

// Install makes l the writer returned for s. A nil l restores the original
// stream writer.
func (r *Registry) Install(s Stream, l *Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if l == nil {
		r.current[s] = r.original[s]
		return
	}
	r.current[s] = l
}

// Restore resets s to its original writer.
func (r *Registry) Restore(s Stream) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.current[s] = r.original[s]
}

// Writer returns the writer currently installed for s. Code that would
// otherwise write to the ambient process stream writes here instead.
func (r *Registry) Writer(s Stream) io.Writer {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.current[s]
}

// DefaultRegistry is the process-wide registry, initialized with the real
// standard streams. Set it up at startup and restore it at shutdown.
var DefaultRegistry = NewRegistry()
