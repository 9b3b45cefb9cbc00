// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package teelog provides a dual-sink logger that mirrors timestamped text to
// a console writer and an append-mode log file, with independent per-sink
// filter hooks and an idempotent close.
//
// Every Print call produces exactly one timestamped record per enabled sink,
// regardless of line breaks embedded in the text. The file is opened in
// append mode so repeated runs accumulate history.
//
// Process-wide stream redirection is modeled by Registry, an explicit object
// mapping standard streams to installed loggers, rather than mutation of the
// ambient process streams.
package teelog
