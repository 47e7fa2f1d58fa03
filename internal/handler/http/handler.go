// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-pod-mirror/internal/logger"
	"github.com/MKhiriev/go-pod-mirror/internal/service"
)

// Metrics records served requests and exposes the collected metrics.
type Metrics interface {
	RecordHTTPRequest(method, path string, status int, duration time.Duration)
	Handler() http.Handler
}

type Handler struct {
	services *service.Services
	metrics  Metrics

	logger *logger.Logger
}

// NewHandler creates the HTTP handler. metrics may be nil, in which case
// requests are not recorded and /metrics is not served.
func NewHandler(services *service.Services, metrics Metrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  metrics,
		logger:   logger,
	}
}
