// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Version is shown in the panel's footer.
	Version string
	// LogLevel is the level of the client's log file.
	LogLevel string `validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
}

// ClientConfig is the top-level configuration of the terminal panel,
// assembled from [StructuredConfig]. The panel talks to Podman directly and
// runs its own refresh job and event watcher.
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the Podman connection settings.
	Adapter Adapter
	// Workers contains background job settings.
	Workers Workers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Version:  cfg.App.Version,
			LogLevel: cfg.App.LogLevel,
		},
		Adapter: cfg.Adapter,
		Workers: cfg.Workers,
	}
}
