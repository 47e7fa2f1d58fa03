// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive front of the client.
type UI interface {
	// Run blocks until the user leaves or ctx ends.
	Run(ctx context.Context) error
	// RefreshFailed reports a failed pod refresh to the user.
	RefreshFailed(err error)
}
