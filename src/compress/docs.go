// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package compress provides reversible DEFLATE (RFC 1951) and GZIP (RFC 1952)
// transforms for in-memory byte sequences, plus a GZIP magic-number sniffer.
// Output is binary-compatible with any standard decoder for those formats.
//
// The codec never panics and never aborts on I/O failure: it reports the
// failure to its error channel and returns the original input unchanged
// together with a non-nil error. Encoder output and decoder drains are staged
// in pooled buffers to keep per-call allocations low.
package compress
