// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mirror

import (
	"context"

	"github.com/MKhiriev/go-pod-mirror/models"
)

// Dispatcher runs functions one at a time, in the order they were posted.
// Post must not block, also when called from a function the dispatcher is
// running. It returns false when the function was dropped, for example
// because the dispatcher was stopped.
type Dispatcher interface {
	Post(fn func()) bool
}

// InlineDispatcher runs every function immediately on the caller's goroutine.
// It suits embedders that already drive the list from a single goroutine.
type InlineDispatcher struct{}

// Post implements [Dispatcher].
func (InlineDispatcher) Post(fn func()) bool {
	fn()
	return true
}

// Lister fetches pod listings from the remote host. An empty id lists every
// pod; otherwise the listing is filtered to that id.
type Lister interface {
	ListPods(ctx context.Context, id string) ([]models.PodReport, error)
}

// Option configures a [PodList].
type Option func(*PodList)

// WithSpawner replaces the function that starts a fetch. The default runs each
// fetch on its own goroutine; passing a function that calls its argument
// directly makes refreshes synchronous.
func WithSpawner(spawn func(func())) Option {
	return func(l *PodList) {
		l.spawn = spawn
	}
}

func spawnGoroutine(fn func()) {
	go fn()
}
