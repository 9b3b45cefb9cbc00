// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package mcpserver provides the [MCP] server surface for the compression
// utilities. It exposes tools for compressing, decompressing, and sniffing
// base64-encoded payloads over the stdio transport, configured by an optional
// JSON or YAML file. Tool invocations are recorded through a file-only tee
// log so the stdio stream stays reserved for the protocol.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
package mcpserver
