// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server runs every configured transport.
type Server interface {
	// Run binds the listeners, serves until ctx ends or a transport fails,
	// and then shuts all transports down. A clean shutdown returns nil.
	Run(ctx context.Context) error
}

// transport is the lifecycle contract of one listener.
type transport interface {
	name() string
	// listen binds the listen address.
	listen() error
	// release closes a listener that was bound but never served.
	release()
	// RunServer serves on the bound listener and blocks until the transport
	// stops.
	RunServer() error
	// Shutdown stops accepting work and waits for in-flight requests until
	// ctx ends.
	Shutdown(ctx context.Context) error
}
