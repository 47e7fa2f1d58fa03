// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/go-pod-mirror/internal/mirror"
)

// PodList is the part of [mirror.PodList] the panel renders and drives.
type PodList interface {
	Subscribe(o mirror.Observer) (unsubscribe func())

	Pods() []*mirror.Pod
	Stats() mirror.Stats
	Listing() bool
	Initialized() bool
	SelectionMode() bool
	NumSelected() int
	SelectedIDs() []string

	Refresh(ctx context.Context, id string, onErr func(error))
	SetSelectionMode(enabled bool)
	Toggle(id string)
	SelectAll()
	ClearSelection()
}
