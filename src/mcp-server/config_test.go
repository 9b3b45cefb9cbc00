// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	config, err := loadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "GZIP", config.Defaults.Format)
	assert.Equal(t, 32<<20, config.Defaults.MaxInputSize)
	assert.True(t, config.Log.Timestamp)
	assert.Empty(t, config.Log.FilePath)
}

func TestLoadConfigJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	contents := `{
		"defaults": {"format": "deflate", "maxInputSizeBytes": 1024},
		"log": {"filePath": "/tmp/audit.log", "timestamp": false}
	}`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))

	config, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "deflate", config.Defaults.Format)
	assert.Equal(t, 1024, config.Defaults.MaxInputSize)
	assert.Equal(t, "/tmp/audit.log", config.Log.FilePath)
	assert.False(t, config.Log.Timestamp)
}

func TestLoadConfigYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := `
defaults:
  format: gzip
  maxInputSizeBytes: 2048
log:
  filePath: audit.log
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))

	config, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "gzip", config.Defaults.Format)
	assert.Equal(t, 2048, config.Defaults.MaxInputSize)
	assert.Equal(t, "audit.log", config.Log.FilePath)
}

func TestLoadConfigEnvVar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env-config.yml")
	require.NoError(t, os.WriteFile(path, []byte("defaults:\n  format: deflate\n"), 0644))

	t.Setenv(configFileEnv, path)

	config, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "deflate", config.Defaults.Format)
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	config, err := loadConfig(filepath.Join(t.TempDir(), "nonexistent.json"))
	require.NoError(t, err)
	assert.Equal(t, "GZIP", config.Defaults.Format)
}

func TestLoadConfigInvalidFormatRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"defaults": {"format": "zstd"}}`), 0644))

	_, err := loadConfig(path)
	assert.Error(t, err, "an unsupported default format must be rejected at load time")
}

func TestLoadConfigMalformed(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		contents string
	}{
		{name: "broken JSON", file: "broken.json", contents: `{"defaults": `},
		{name: "broken YAML", file: "broken.yaml", contents: "defaults:\n\t- bad"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			require.NoError(t, os.WriteFile(path, []byte(tt.contents), 0644))

			_, err := loadConfig(path)
			assert.Error(t, err)
		})
	}
}

func TestDetectConfigFormat(t *testing.T) {
	assert.Equal(t, configFormatYAML, detectConfigFormat("settings.yaml"))
	assert.Equal(t, configFormatYAML, detectConfigFormat("SETTINGS.YML"))
	assert.Equal(t, configFormatJSON, detectConfigFormat("settings.json"))
	assert.Equal(t, configFormatJSON, detectConfigFormat("settings.conf"))
}
