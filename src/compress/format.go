// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package compress

import (
	"errors"
	"strings"
)

// Format identifies a supported compression format.
//
// Both formats belong to the deflate family: Deflate is the raw [RFC 1951]
// bitstream, GZIP is the [RFC 1952] container wrapping a deflate stream with
// header, footer, and CRC32 checksum.
//
// [RFC 1951]: https://datatracker.ietf.org/doc/html/rfc1951
// [RFC 1952]: https://datatracker.ietf.org/doc/html/rfc1952
type Format int

const (
	// Deflate is the raw DEFLATE bitstream format (RFC 1951), headerless.
	Deflate Format = iota
	// GZIP is the GZIP container format (RFC 1952), identified by a fixed
	// 2-byte magic number.
	GZIP
)

// DefaultFormat is the format used when callers do not specify one.
const DefaultFormat = GZIP

// ErrUnknownFormat indicates that the requested compression format is not supported.
var ErrUnknownFormat = errors.New("compress: unknown compression format")

// GZIP magic number, first two bytes of every GZIP stream (RFC 1952 section 2.3.1).
const (
	gzipMagic0 = 0x1F
	gzipMagic1 = 0x8B
)

// String returns the canonical name of the format.
func (f Format) String() string {
	switch f {
	case Deflate:
		return "DEFLATE"
	case GZIP:
		return "GZIP"
	default:
		return "UNKNOWN"
	}
}

// ParseFormat converts a format name to a Format. Matching is case-insensitive.
// It returns ErrUnknownFormat for names other than "deflate" and "gzip".
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "deflate":
		return Deflate, nil
	case "gzip":
		return GZIP, nil
	default:
		return 0, ErrUnknownFormat
	}
}

// IsGZIPCompressed reports whether data begins with the GZIP magic number.
//
// Inputs shorter than two bytes return false rather than faulting, so the
// check is safe on arbitrary byte sequences.
func IsGZIPCompressed(data []byte) bool {
	return len(data) >= 2 && data[0] == gzipMagic0 && data[1] == gzipMagic1
}
