// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"encoding/base64"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/H0llyW00dzZ/compress-log-utils/src/compress"
	"github.com/H0llyW00dzZ/compress-log-utils/src/logger"
	"github.com/H0llyW00dzZ/compress-log-utils/src/teelog"
)

// decodePayload extracts and decodes the base64 "data" parameter, enforcing
// the configured payload cap.
func decodePayload(request mcp.CallToolRequest, maxInputSize int) ([]byte, *mcp.CallToolResult) {
	encoded, err := request.RequireString("data")
	if err != nil {
		return nil, mcp.NewToolResultError(fmt.Sprintf("data parameter required: %v", err))
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, mcp.NewToolResultError(fmt.Sprintf("failed to decode data: not valid base64: %v", err))
	}

	if maxInputSize > 0 && len(data) > maxInputSize {
		return nil, mcp.NewToolResultError(fmt.Sprintf("payload of %d bytes exceeds the configured limit of %d bytes", len(data), maxInputSize))
	}

	return data, nil
}

// requestFormat resolves the "format" parameter against the configured default.
func requestFormat(request mcp.CallToolRequest, config *Config) (compress.Format, *mcp.CallToolResult) {
	name := request.GetString("format", config.Defaults.Format)
	format, err := compress.ParseFormat(name)
	if err != nil {
		return 0, mcp.NewToolResultError(fmt.Sprintf("unsupported format %q: use 'gzip' or 'deflate'", name))
	}
	return format, nil
}

// handleCompressData compresses a base64 payload and reports sizes and ratio.
func handleCompressData(request mcp.CallToolRequest, config *Config, audit *teelog.Logger) (*mcp.CallToolResult, error) {
	data, errResult := decodePayload(request, config.Defaults.MaxInputSize)
	if errResult != nil {
		return errResult, nil
	}

	format, errResult := requestFormat(request, config)
	if errResult != nil {
		return errResult, nil
	}

	codec := compress.NewWithLogger(logger.NewMCPLogger(nil, true))
	out, err := codec.Compress(data, format)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to compress data: %v", err)), nil
	}

	audit.Printf("compress_data: %s %d -> %d bytes\n", format, len(data), len(out))

	ratio := "n/a"
	if len(data) > 0 {
		ratio = fmt.Sprintf("%.2f%%", float64(len(out))/float64(len(data))*100)
	}

	result := fmt.Sprintf("Format: %s\nOriginal size: %d bytes\nCompressed size: %d bytes\nRatio: %s\n\n%s",
		format, len(data), len(out), ratio, base64.StdEncoding.EncodeToString(out))

	return mcp.NewToolResultText(result), nil
}

// handleDecompressData decompresses a base64 payload back to the original bytes.
func handleDecompressData(request mcp.CallToolRequest, config *Config, audit *teelog.Logger) (*mcp.CallToolResult, error) {
	data, errResult := decodePayload(request, config.Defaults.MaxInputSize)
	if errResult != nil {
		return errResult, nil
	}

	format, errResult := requestFormat(request, config)
	if errResult != nil {
		return errResult, nil
	}

	codec := compress.NewWithLogger(logger.NewMCPLogger(nil, true))
	out, err := codec.Decompress(data, format)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to decompress data: %v", err)), nil
	}

	audit.Printf("decompress_data: %s %d -> %d bytes\n", format, len(data), len(out))

	result := fmt.Sprintf("Format: %s\nDecompressed size: %d bytes\n\n%s",
		format, len(out), base64.StdEncoding.EncodeToString(out))

	return mcp.NewToolResultText(result), nil
}

// handleDetectCompression reports whether a base64 payload carries the GZIP magic.
func handleDetectCompression(request mcp.CallToolRequest, audit *teelog.Logger) (*mcp.CallToolResult, error) {
	encoded, err := request.RequireString("data")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("data parameter required: %v", err)), nil
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to decode data: not valid base64: %v", err)), nil
	}

	verdict := "not GZIP compressed"
	if compress.IsGZIPCompressed(data) {
		verdict = "GZIP compressed"
	}

	audit.Printf("detect_compression: %d bytes, %s\n", len(data), verdict)

	return mcp.NewToolResultText(verdict), nil
}
