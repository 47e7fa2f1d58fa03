// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc implements the gRPC transport of the pod mirror: the standard
// health service, whose status follows the mirror's initialized latch, and
// server reflection.
package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/MKhiriev/go-pod-mirror/internal/logger"
	"github.com/MKhiriev/go-pod-mirror/internal/mirror"
	"github.com/MKhiriev/go-pod-mirror/internal/service"
)

// ServiceName is the health service name reported for the mirror itself.
// The empty name reports the same status for the server as a whole.
const ServiceName = "podmirror.PodMirror"

// Handler is the root gRPC transport handler.
//
// It is also a pod list observer: subscribe it and the health status turns
// SERVING once the mirror has completed its first reconciliation.
type Handler struct {
	mirror.NopObserver

	// services provides access to all application business operations.
	services *service.Services

	health *health.Server

	// logger is used for diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler]. The health status starts as NOT_SERVING
// unless the mirror is already initialized.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}

	status := healthpb.HealthCheckResponse_NOT_SERVING
	if services != nil && services.PodService != nil && services.PodService.Stats(context.Background()).Initialized {
		status = healthpb.HealthCheckResponse_SERVING
	}
	h.setStatus(status)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health and reflection services to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
	reflection.Register(s)
}

// Initialized implements [mirror.Observer].
func (h *Handler) Initialized() {
	h.logger.Info().Msg("pod mirror initialized, reporting SERVING")
	h.setStatus(healthpb.HealthCheckResponse_SERVING)
}

// Shutdown reports NOT_SERVING to every watcher and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
