// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for the compression and
// logging utilities. It implements a Cobra-based CLI with subcommands for
// compressing and decompressing files in DEFLATE and GZIP formats, sniffing
// the GZIP magic number, inspecting per-format compression ratios, and
// tee-logging stdin to console and file. The package handles file I/O,
// context cancellation, and integrates with the logger package for output
// and error reporting.
package cli
