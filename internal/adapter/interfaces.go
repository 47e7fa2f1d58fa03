// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for talking to the
// Podman REST API.
//
// The primary abstraction is [PodmanAdapter], which decouples the mirror from
// the underlying protocol. The package ships an HTTP implementation
// ([NewHTTPPodmanAdapter]) that reaches Podman either over its unix socket or
// over TCP.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pod-mirror/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/podman_adapter_mock.go -package=mock

// PodmanAdapter defines transport-agnostic communication with a Podman host.
type PodmanAdapter interface {
	// Ping checks that the Podman service answers. Returns an error if the
	// request fails or the service responds with a non-2xx status.
	Ping(ctx context.Context) error

	// ListPods returns the pods of the host in the order Podman lists them.
	// A non-empty id restricts the listing to that pod; the result is then
	// empty when the pod does not exist. Returns an error if the request
	// fails or the response cannot be decoded.
	ListPods(ctx context.Context, id string) ([]models.PodReport, error)

	// StreamEvents follows the Podman event stream, restricted to events of
	// eventType when it is not empty, and calls handle for every event in
	// arrival order. It blocks until ctx is cancelled, in which case it
	// returns ctx.Err(), or until the stream fails or ends, in which case it
	// returns the reason ([ErrEventStreamClosed] for a clean end).
	StreamEvents(ctx context.Context, eventType string, handle func(models.Event)) error
}
