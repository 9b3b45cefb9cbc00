// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/compress-log-utils/src/compress"
	"github.com/H0llyW00dzZ/compress-log-utils/src/teelog"
)

// newToolRequest builds a CallToolRequest with the given arguments.
func newToolRequest(name string, args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

// silentAudit returns a tee logger with both sinks disabled.
func silentAudit() *teelog.Logger {
	return teelog.New(teelog.Config{})
}

// resultText extracts the first text content of a tool result.
func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	require.NotEmpty(t, result.Content, "tool result should carry content")
	tc, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "tool result content should be text")
	return tc.Text
}

func testConfig(t *testing.T) *Config {
	t.Helper()

	config, err := loadConfig("")
	require.NoError(t, err)
	return config
}

func TestHandleCompressData(t *testing.T) {
	config := testConfig(t)
	payload := []byte("Hello")

	req := newToolRequest("compress_data", map[string]any{
		"data": base64.StdEncoding.EncodeToString(payload),
	})

	result, err := handleCompressData(req, config, silentAudit())
	require.NoError(t, err)
	require.False(t, result.IsError, "expected success, got: %s", resultText(t, result))

	text := resultText(t, result)
	assert.Contains(t, text, "Format: GZIP", "default format should apply")

	// The last line is the base64 compressed payload; it must round-trip.
	lines := strings.Split(strings.TrimSpace(text), "\n")
	encoded, err := base64.StdEncoding.DecodeString(lines[len(lines)-1])
	require.NoError(t, err)
	assert.True(t, compress.IsGZIPCompressed(encoded), "compressed payload should carry the GZIP magic")

	decoded, err := compress.Decompress(encoded)
	require.NoError(t, err)
	assert.Equal(t, payload, decoded)
}

func TestHandleCompressDecompressRoundTrip(t *testing.T) {
	config := testConfig(t)
	payload := []byte("round trip through both tools in deflate format")

	compressReq := newToolRequest("compress_data", map[string]any{
		"data":   base64.StdEncoding.EncodeToString(payload),
		"format": "deflate",
	})

	compressResult, err := handleCompressData(compressReq, config, silentAudit())
	require.NoError(t, err)
	require.False(t, compressResult.IsError)

	lines := strings.Split(strings.TrimSpace(resultText(t, compressResult)), "\n")
	compressedB64 := lines[len(lines)-1]

	decompressReq := newToolRequest("decompress_data", map[string]any{
		"data":   compressedB64,
		"format": "deflate",
	})

	decompressResult, err := handleDecompressData(decompressReq, config, silentAudit())
	require.NoError(t, err)
	require.False(t, decompressResult.IsError)

	lines = strings.Split(strings.TrimSpace(resultText(t, decompressResult)), "\n")
	decoded, err := base64.StdEncoding.DecodeString(lines[len(lines)-1])
	require.NoError(t, err)
	assert.Equal(t, payload, decoded)
}

func TestHandleToolErrors(t *testing.T) {
	config := testConfig(t)

	tests := []struct {
		name    string
		handler func(mcp.CallToolRequest) (*mcp.CallToolResult, error)
		args    map[string]any
	}{
		{
			name: "compress missing data",
			handler: func(req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handleCompressData(req, config, silentAudit())
			},
			args: map[string]any{},
		},
		{
			name: "compress invalid base64",
			handler: func(req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handleCompressData(req, config, silentAudit())
			},
			args: map[string]any{"data": "not-base64!!!"},
		},
		{
			name: "compress unsupported format",
			handler: func(req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handleCompressData(req, config, silentAudit())
			},
			args: map[string]any{
				"data":   base64.StdEncoding.EncodeToString([]byte("x")),
				"format": "zstd",
			},
		},
		{
			name: "decompress corrupt payload",
			handler: func(req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handleDecompressData(req, config, silentAudit())
			},
			args: map[string]any{
				"data": base64.StdEncoding.EncodeToString([]byte("not a gzip stream")),
			},
		},
		{
			name: "detect missing data",
			handler: func(req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handleDetectCompression(req, silentAudit())
			},
			args: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := tt.handler(newToolRequest("tool", tt.args))
			require.NoError(t, err, "tool failures are reported in-band, not as handler errors")
			assert.True(t, result.IsError, "expected an error result")
		})
	}
}

func TestHandleCompressPayloadCap(t *testing.T) {
	config := testConfig(t)
	config.Defaults.MaxInputSize = 8

	req := newToolRequest("compress_data", map[string]any{
		"data": base64.StdEncoding.EncodeToString([]byte("payload over the cap")),
	})

	result, err := handleCompressData(req, config, silentAudit())
	require.NoError(t, err)
	require.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "exceeds the configured limit")
}

func TestHandleDetectCompression(t *testing.T) {
	gzipData, err := compress.Compress([]byte("detect me"))
	require.NoError(t, err)

	tests := []struct {
		name    string
		payload []byte
		want    string
	}{
		{name: "gzip payload", payload: gzipData, want: "GZIP compressed"},
		{name: "plain payload", payload: []byte("plain"), want: "not GZIP compressed"},
		{name: "empty payload", payload: []byte{}, want: "not GZIP compressed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newToolRequest("detect_compression", map[string]any{
				"data": base64.StdEncoding.EncodeToString(tt.payload),
			})

			result, err := handleDetectCompression(req, silentAudit())
			require.NoError(t, err)
			require.False(t, result.IsError)
			assert.Equal(t, tt.want, resultText(t, result))
		})
	}
}

func TestAuditLogRecordsInvocations(t *testing.T) {
	config := testConfig(t)

	path := filepath.Join(t.TempDir(), "audit.log")
	audit := teelog.New(teelog.Config{FilePath: path, Console: false, File: true})

	req := newToolRequest("compress_data", map[string]any{
		"data": base64.StdEncoding.EncodeToString([]byte("audited")),
	})

	result, err := handleCompressData(req, config, audit)
	require.NoError(t, err)
	require.False(t, result.IsError)
	require.NoError(t, audit.Close())

	fileData, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(fileData), "compress_data: GZIP", "invocation should be recorded")
}
