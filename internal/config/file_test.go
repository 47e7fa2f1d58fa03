// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestParseFile_JSON(t *testing.T) {
	// Arrange
	p := writeConfigFile(t, "config.json", `{
		"app": {
			"version": "1.0.0",
			"log_level": "warn",
			"token_sign_key": "jwt_secret",
			"token_issuer": "test_issuer"
		},
		"adapter": {
			"podman_url": "unix:///run/podman/podman.sock",
			"api_version": "4.9.0",
			"request_timeout": "20s"
		},
		"server": {
			"http_address": "localhost:8080",
			"grpc_address": "localhost:9090"
		},
		"workers": {
			"refresh_interval": "5m",
			"events_retry_min": "1s",
			"events_retry_max": 60000000000
		}
	}`)

	// Act
	cfg, err := parseFile(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "unix:///run/podman/podman.sock", cfg.Adapter.PodmanURL)
	assert.Equal(t, "4.9.0", cfg.Adapter.APIVersion)
	assert.Equal(t, 20*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:9090", cfg.Server.GRPCAddress)
	assert.Equal(t, 5*time.Minute, cfg.Workers.RefreshInterval)
	assert.Equal(t, time.Second, cfg.Workers.EventsRetryMin)
	assert.Equal(t, time.Minute, cfg.Workers.EventsRetryMax)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseFile_YAML(t *testing.T) {
	// Arrange
	p := writeConfigFile(t, "config.yaml", `
app:
  log_level: debug
adapter:
  podman_url: tcp://10.0.0.3:8888
  request_timeout: 45s
workers:
  refresh_interval: 90s
  events_retry_max: 1000000000
`)

	// Act
	cfg, err := parseFile(p)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "tcp://10.0.0.3:8888", cfg.Adapter.PodmanURL)
	assert.Equal(t, 45*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 90*time.Second, cfg.Workers.RefreshInterval)
	assert.Equal(t, time.Second, cfg.Workers.EventsRetryMax)
	assert.Empty(t, cfg.Server.HTTPAddress)
}

func TestParseFile_YMLExtension(t *testing.T) {
	p := writeConfigFile(t, "config.yml", "server:\n  http_address: 0.0.0.0:8081\n")

	cfg, err := parseFile(p)

	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:8081", cfg.Server.HTTPAddress)
}

func TestParseFile_FileNotFound(t *testing.T) {
	cfg, err := parseFile("/nonexistent/config.json")

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a config file")
}

func TestParseFile_InvalidJSON(t *testing.T) {
	p := writeConfigFile(t, "bad.json", `{"app": {"log_level": "debug"`)

	cfg, err := parseFile(p)

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseFile_InvalidYAML(t *testing.T) {
	p := writeConfigFile(t, "bad.yaml", "adapter:\n  request_timeout: [1, 2\n")

	cfg, err := parseFile(p)

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding yaml configs")
}

func TestParseFile_InvalidDuration(t *testing.T) {
	p := writeConfigFile(t, "config.yaml", "workers:\n  refresh_interval: soon\n")

	_, err := parseFile(p)

	assert.Error(t, err)
}

func TestParseFile_UnsupportedExtension(t *testing.T) {
	p := writeConfigFile(t, "config.toml", "[app]\n")

	_, err := parseFile(p)

	assert.ErrorIs(t, err, ErrUnsupportedConfigFile)
}

func TestDuration_JSONRoundTrip(t *testing.T) {
	d := Duration(90 * time.Second)

	b, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(b))

	var back Duration
	require.NoError(t, back.UnmarshalJSON(b))
	assert.Equal(t, d, back)
}

func TestDuration_MarshalYAML(t *testing.T) {
	v, err := Duration(2 * time.Hour).MarshalYAML()

	require.NoError(t, err)
	assert.Equal(t, "2h0m0s", v)
}
