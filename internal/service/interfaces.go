// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-pod-mirror/internal/mirror"
	"github.com/MKhiriev/go-pod-mirror/models"
)

// PodService is the API facing view of the pod mirror.
type PodService interface {
	// ListPods returns every mirrored pod in mirror order.
	ListPods(ctx context.Context) models.PodsResponse
	// GetPod returns one pod, or ErrPodNotFound.
	GetPod(ctx context.Context, id string) (models.PodView, error)
	// Stats returns the counters and flags of the mirror.
	Stats(ctx context.Context) models.StatsResponse
	// SelectedIDs returns the ids of the selected pods in mirror order.
	SelectedIDs(ctx context.Context) []string

	// Refresh reconciles the mirror with the remote host and waits for the
	// result. An empty id refreshes every pod.
	Refresh(ctx context.Context, id string) (models.StatsResponse, error)

	SetSelectionMode(ctx context.Context, enabled bool) (models.StatsResponse, error)
	TogglePod(ctx context.Context, id string) (models.PodView, error)
	SelectAll(ctx context.Context) (models.StatsResponse, error)
	ClearSelection(ctx context.Context) (models.StatsResponse, error)
}

// AuthService issues and checks the bearer tokens of the mutating API routes.
type AuthService interface {
	// Enabled reports whether a sign key is configured. Without one, tokens
	// are neither issued nor required.
	Enabled() bool
	CreateToken(ctx context.Context, operator string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService exposes build information of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// PodMirror is the part of [mirror.PodList] the pod service relies on.
type PodMirror interface {
	Pods() []*mirror.Pod
	GetPod(id string) (*mirror.Pod, bool)
	IndexOf(id string) int
	Stats() mirror.Stats
	NumSelected() int
	SelectedIDs() []string
	SelectionMode() bool
	Listing() bool
	Initialized() bool

	RefreshWait(ctx context.Context, id string) error
	Sync(ctx context.Context) error
	SetSelectionMode(enabled bool)
	Toggle(id string)
	SelectAll()
	ClearSelection()
}
