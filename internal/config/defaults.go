// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DefaultPodmanURL       = "unix:///run/podman/podman.sock"
	DefaultAPIVersion      = "4.0.0"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultHTTPAddress     = "localhost:8080"
	DefaultGRPCAddress     = "localhost:9090"
	DefaultRefreshInterval = time.Minute
	DefaultEventsRetryMin  = time.Second
	DefaultEventsRetryMax  = 30 * time.Second
	DefaultLogLevel        = "info"
	DefaultTokenIssuer     = "go-pod-mirror"
	DefaultTokenDuration   = 24 * time.Hour
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel:      DefaultLogLevel,
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
		},
		Adapter: Adapter{
			PodmanURL:      DefaultPodmanURL,
			APIVersion:     DefaultAPIVersion,
			RequestTimeout: DefaultRequestTimeout,
		},
		Server: Server{
			HTTPAddress: DefaultHTTPAddress,
			GRPCAddress: DefaultGRPCAddress,
		},
		Workers: Workers{
			RefreshInterval: DefaultRefreshInterval,
			EventsRetryMin:  DefaultEventsRetryMin,
			EventsRetryMax:  DefaultEventsRetryMax,
		},
	}
}
