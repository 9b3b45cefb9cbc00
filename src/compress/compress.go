// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package compress

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"fmt"
	"io"

	"github.com/H0llyW00dzZ/compress-log-utils/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/compress-log-utils/src/logger"
)

// Codec performs reversible compression and decompression of in-memory byte
// sequences. It holds no per-call state and is safe for concurrent use.
//
// On any I/O failure the codec reports a human-readable message to its
// error-reporting channel and returns the ORIGINAL input unchanged together
// with a non-nil error. Callers that ignore the error must not assume the
// returned bytes are compressed (or decompressed); check the length or the
// GZIP magic if correctness matters.
type Codec struct {
	log logger.Logger

	// Constructor seams, swapped in tests to simulate stream failures.
	newWriter func(w io.Writer, format Format) (io.WriteCloser, error)
	newReader func(r io.Reader, format Format) (io.ReadCloser, error)
}

// New creates a Codec reporting failures to stderr.
func New() *Codec {
	return NewWithLogger(logger.NewErrorLogger())
}

// NewWithLogger creates a Codec reporting failures to the given channel.
// A nil logger falls back to stderr.
func NewWithLogger(l logger.Logger) *Codec {
	if l == nil {
		l = logger.NewErrorLogger()
	}
	return &Codec{
		log:       l,
		newWriter: newCompressionWriter,
		newReader: newDecompressionReader,
	}
}

// newCompressionWriter wraps w with an encoder for the given format.
func newCompressionWriter(w io.Writer, format Format) (io.WriteCloser, error) {
	switch format {
	case Deflate:
		return flate.NewWriter(w, flate.DefaultCompression)
	case GZIP:
		return gzip.NewWriter(w), nil
	default:
		return nil, ErrUnknownFormat
	}
}

// newDecompressionReader wraps r with a decoder for the given format.
func newDecompressionReader(r io.Reader, format Format) (io.ReadCloser, error) {
	switch format {
	case Deflate:
		return flate.NewReader(r), nil
	case GZIP:
		return gzip.NewReader(r)
	default:
		return nil, ErrUnknownFormat
	}
}

// Compress encodes data using the named deflate-family format and returns the
// compressed byte sequence. Empty input is allowed and produces a valid
// (non-empty) compressed stream.
//
// On failure the original input is returned unchanged along with the error,
// and the failure is reported to the codec's error channel.
func (c *Codec) Compress(data []byte, format Format) ([]byte, error) {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	cw, err := c.newWriter(buf, format)
	if err != nil {
		c.log.Printf("compress: could not compress data in %s format: %v", format, err)
		return data, fmt.Errorf("compress: compressing %s data: %w", format, err)
	}

	if _, err := cw.Write(data); err != nil {
		c.log.Printf("compress: could not compress data in %s format: %v", format, err)
		return data, fmt.Errorf("compress: compressing %s data: %w", format, err)
	}

	if err := cw.Close(); err != nil {
		c.log.Printf("compress: could not compress data in %s format: %v", format, err)
		return data, fmt.Errorf("compress: compressing %s data: %w", format, err)
	}

	// Copy out of the pooled buffer before it is reused.
	return append([]byte(nil), buf.Bytes()...), nil
}

// Decompress decodes data previously produced by Compress with the same
// format and returns the original bytes. The decoder is drained to completion
// through a pooled buffer, so the decompressed payload may be arbitrarily
// larger than the compressed input.
//
// Feeding data that was not produced with the given format fails at the codec
// layer; as with Compress, the original input is returned unchanged along
// with the error.
func (c *Codec) Decompress(data []byte, format Format) ([]byte, error) {
	dr, err := c.newReader(bytes.NewReader(data), format)
	if err != nil {
		c.log.Printf("compress: could not decompress data in %s format: %v", format, err)
		return data, fmt.Errorf("compress: decompressing %s data: %w", format, err)
	}

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	if _, err := buf.ReadFrom(dr); err != nil {
		dr.Close()
		c.log.Printf("compress: could not decompress data in %s format: %v", format, err)
		return data, fmt.Errorf("compress: decompressing %s data: %w", format, err)
	}

	if err := dr.Close(); err != nil {
		c.log.Printf("compress: could not decompress data in %s format: %v", format, err)
		return data, fmt.Errorf("compress: decompressing %s data: %w", format, err)
	}

	return append([]byte(nil), buf.Bytes()...), nil
}

// defaultCodec backs the package-level convenience functions.
var defaultCodec = New()

// Compress encodes data with the default codec in the default (GZIP) format.
func Compress(data []byte) ([]byte, error) {
	return defaultCodec.Compress(data, DefaultFormat)
}

// CompressFormat encodes data with the default codec in the given format.
func CompressFormat(data []byte, format Format) ([]byte, error) {
	return defaultCodec.Compress(data, format)
}

// Decompress decodes data with the default codec in the default (GZIP) format.
func Decompress(data []byte) ([]byte, error) {
	return defaultCodec.Decompress(data, DefaultFormat)
}

// DecompressFormat decodes data with the default codec in the given format.
func DecompressFormat(data []byte, format Format) ([]byte, error) {
	return defaultCodec.Decompress(data, format)
}
