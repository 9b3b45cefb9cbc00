// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/H0llyW00dzZ/compress-log-utils/src/teelog"
	"github.com/H0llyW00dzZ/compress-log-utils/src/version"
)

var serverName = "DEFLATE/GZIP Compression Utilities" // MCP server name
var appVersion = version.Version                      // default version

// GetVersion returns the version reported by the MCP server.
func GetVersion() string { return appVersion }

// Run starts the MCP server with compression and format-detection tools.
// It loads configuration from the COMPRESS_LOG_CONFIG_FILE environment variable.
func Run() error {
	// Load configuration
	config, err := loadConfig(os.Getenv(configFileEnv))
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	// Server-side tee log. The console sink stays off: stdout belongs to
	// the MCP stdio transport.
	audit := teelog.New(teelog.Config{
		FilePath:  config.Log.FilePath,
		Timestamp: config.Log.Timestamp,
		Console:   false,
		File:      config.Log.FilePath != "",
	})
	defer audit.Close()

	// Create MCP server
	s := server.NewMCPServer(
		serverName,
		appVersion,
		server.WithToolCapabilities(true),
	)

	// Define compression tool
	compressDataTool := mcp.NewTool("compress_data",
		mcp.WithDescription("Compress base64-encoded data using DEFLATE (RFC 1951) or GZIP (RFC 1952)"),
		mcp.WithString("data",
			mcp.Required(),
			mcp.Description("Base64-encoded payload to compress"),
		),
		mcp.WithString("format",
			mcp.Description("Compression format: 'gzip' or 'deflate' (default: "+config.Defaults.Format+")"),
			mcp.DefaultString(config.Defaults.Format),
		),
	)

	// Define decompression tool
	decompressDataTool := mcp.NewTool("decompress_data",
		mcp.WithDescription("Decompress base64-encoded DEFLATE or GZIP data back to the original bytes"),
		mcp.WithString("data",
			mcp.Required(),
			mcp.Description("Base64-encoded compressed payload"),
		),
		mcp.WithString("format",
			mcp.Description("Compression format: 'gzip' or 'deflate' (default: "+config.Defaults.Format+")"),
			mcp.DefaultString(config.Defaults.Format),
		),
	)

	// Define format detection tool
	detectCompressionTool := mcp.NewTool("detect_compression",
		mcp.WithDescription("Check base64-encoded data for the GZIP magic number (0x1F 0x8B)"),
		mcp.WithString("data",
			mcp.Required(),
			mcp.Description("Base64-encoded payload to check"),
		),
	)

	// Register tool handlers
	s.AddTool(compressDataTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleCompressData(request, config, audit)
	})
	s.AddTool(decompressDataTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleDecompressData(request, config, audit)
	})
	s.AddTool(detectCompressionTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleDetectCompression(request, audit)
	})

	// Start server
	return server.ServeStdio(s)
}
