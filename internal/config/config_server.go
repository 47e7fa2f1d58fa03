// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// ServerConfig is the configuration of the mirror daemon, assembled from
// [StructuredConfig].
type ServerConfig struct {
	// App contains the version, log level and token settings.
	App App
	// Adapter contains the Podman connection settings.
	Adapter Adapter
	// Server contains the HTTP and gRPC listen addresses.
	Server Server
	// Workers contains the refresh and reconnect timings.
	Workers Workers
}

// GetServerConfig builds and validates the daemon's config view from the
// merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	return &ServerConfig{
		App:     cfg.App,
		Adapter: cfg.Adapter,
		Server:  cfg.Server,
		Workers: cfg.Workers,
	}
}
