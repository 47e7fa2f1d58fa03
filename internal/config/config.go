// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-pod-mirror binaries. It aggregates all sub-configurations and is
// populated by merging values from defaults, environment variables,
// command-line flags and an optional JSON or YAML file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//   - validate: go-playground/validator rules checked by the role views.
type StructuredConfig struct {
	// App holds application-level settings such as the log level, token
	// parameters and the application version.
	App App `envPrefix:"APP_"`

	// Adapter holds the settings used to reach the Podman service.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Server holds the listen addresses of the HTTP and gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for the refresh job and the event watcher.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON or YAML configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the zerolog level name ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`

	// TokenSignKey is the secret key used to verify JWT tokens on mutating
	// API routes. When empty, those routes are not protected.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim expected in every accepted JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER" validate:"required_with=TokenSignKey"`

	// TokenDuration is how long tokens minted by the token command stay
	// valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION" validate:"gte=0"`
}

// Adapter holds the Podman connection settings.
type Adapter struct {
	// PodmanURL is where the Podman service listens: a unix socket
	// ("unix:///run/podman/podman.sock" or a bare path) or a TCP endpoint
	// ("tcp://host:port", "http://host:port").
	// Env: ADAPTER_PODMAN_URL
	PodmanURL string `env:"PODMAN_URL" validate:"required"`

	// APIVersion is the libpod API version requests are made against.
	// Env: ADAPTER_API_VERSION
	APIVersion string `env:"API_VERSION" validate:"required"`

	// RequestTimeout bounds every request except the event stream.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" validate:"gt=0"`
}

// Server holds network settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" validate:"required,hostname_port"`

	// GRPCAddress is the TCP address on which the gRPC health server
	// listens, in "host:port" format (e.g. "0.0.0.0:9090").
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS" validate:"omitempty,hostname_port"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// RefreshInterval is how often a full listing is fetched, on top of the
	// event stream. Zero disables the periodic refresh.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL" validate:"gte=0"`

	// EventsRetryMin is the first delay before the event stream is
	// reopened after it failed.
	// Env: WORKERS_EVENTS_RETRY_MIN
	EventsRetryMin time.Duration `env:"EVENTS_RETRY_MIN" validate:"gt=0"`

	// EventsRetryMax caps the delay between two reconnect attempts.
	// Env: WORKERS_EVENTS_RETRY_MAX
	EventsRetryMax time.Duration `env:"EVENTS_RETRY_MAX" validate:"gtefield=EventsRetryMin"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (last source wins for non-zero
// fields):
//  1. Defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON or YAML file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withFile().
		build()
}
