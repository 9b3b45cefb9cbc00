// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/H0llyW00dzZ/compress-log-utils/src/compress"
)

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
)

// configFileEnv names the environment variable consulted when no config path
// is given explicitly.
const configFileEnv = "COMPRESS_LOG_CONFIG_FILE"

// Config represents the MCP server configuration structure.
// It contains default settings for compression operations and the switches
// for the server-side tee log.
//
// The configuration can be loaded from a JSON or YAML file specified by the
// COMPRESS_LOG_CONFIG_FILE environment variable, with defaults applied for
// any missing values. Supported file extensions: .json, .yaml, .yml
type Config struct {
	// Defaults: Default settings for compression operations
	Defaults struct {
		// Format: Compression format used when a tool call omits one ("gzip" or "deflate")
		Format string `json:"format" yaml:"format"`
		// MaxInputSize: Upper bound in bytes for decoded tool payloads (0 = unlimited)
		MaxInputSize int `json:"maxInputSizeBytes" yaml:"maxInputSizeBytes"`
	} `json:"defaults" yaml:"defaults"`

	// Log: Switches for the server-side tee log
	Log struct {
		// FilePath: Target log file (empty disables the file sink)
		FilePath string `json:"filePath,omitempty" yaml:"filePath,omitempty"`
		// Timestamp: Prefix records with [MM/DD/YYYY][HH:MM:SS]
		Timestamp bool `json:"timestamp" yaml:"timestamp"`
	} `json:"log" yaml:"log"`
}

// detectConfigFormat determines the configuration file format based on file extension.
// It supports .json, .yaml, and .yml extensions, matched case-insensitively.
func detectConfigFormat(configPath string) configFormat {
	ext := strings.ToLower(filepath.Ext(configPath))
	switch ext {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

// unmarshalConfig unmarshals configuration data based on the specified format.
// It supports both JSON and YAML formats for configuration flexibility.
func unmarshalConfig(data []byte, config *Config, format configFormat) error {
	switch format {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// loadConfig loads MCP server configuration from a JSON or YAML file or applies defaults.
//
// Configuration priority:
//  1. Default values are set
//  2. COMPRESS_LOG_CONFIG_FILE environment variable is checked if configPath is empty
//  3. Values from the file override the defaults
//
// A missing file is not an error; the defaults apply. An unreadable or
// unparsable file is.
func loadConfig(configPath string) (*Config, error) {
	config := &Config{}
	config.Defaults.Format = compress.DefaultFormat.String()
	config.Defaults.MaxInputSize = 32 << 20 // 32 MiB
	config.Log.Timestamp = true

	if configPath == "" {
		configPath = os.Getenv(configFileEnv)
	}
	if configPath == "" {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := unmarshalConfig(data, config, detectConfigFormat(configPath)); err != nil {
		return nil, err
	}

	if _, err := compress.ParseFormat(config.Defaults.Format); err != nil {
		return nil, fmt.Errorf("invalid default format %q in config file: %w", config.Defaults.Format, err)
	}

	return config, nil
}
