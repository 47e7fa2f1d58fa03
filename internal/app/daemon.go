// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pod-mirror/internal/adapter"
	"github.com/MKhiriev/go-pod-mirror/internal/config"
	"github.com/MKhiriev/go-pod-mirror/internal/handler"
	"github.com/MKhiriev/go-pod-mirror/internal/logger"
	"github.com/MKhiriev/go-pod-mirror/internal/metrics"
	"github.com/MKhiriev/go-pod-mirror/internal/mirror"
	"github.com/MKhiriev/go-pod-mirror/internal/server"
	"github.com/MKhiriev/go-pod-mirror/internal/service"
	"github.com/MKhiriev/go-pod-mirror/internal/workers"
	"github.com/MKhiriev/go-pod-mirror/models"
)

var ErrNoAdapter = errors.New("app: podman adapter is required")

// Daemon mirrors one Podman host and serves the mirror over HTTP and gRPC.
type Daemon struct {
	podman   adapter.PodmanAdapter
	list     *mirror.PodList
	metrics  *metrics.Metrics
	services *service.Services
	server   server.Server
	workers  *workers.Workers

	logger *logger.Logger
}

// NewDaemon wires a daemon around podman. An empty cfg.App.Version is
// replaced by the version of buildInfo.
func NewDaemon(podman adapter.PodmanAdapter, cfg *config.ServerConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*Daemon, error) {
	if podman == nil {
		return nil, ErrNoAdapter
	}

	appCfg := cfg.App
	if appCfg.Version == "" {
		appCfg.Version = buildInfo.BuildVersion()
	}

	loop := workers.NewLoop(log)
	list := mirror.NewPodList(podman, loop, log)

	m := metrics.New()
	list.Subscribe(m)

	services, err := service.NewServices(list, appCfg, log)
	if err != nil {
		return nil, fmt.Errorf("create services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, m, cfg.Server, log)
	if err != nil {
		return nil, fmt.Errorf("create handlers: %w", err)
	}
	if handlers.GRPC != nil {
		list.Subscribe(handlers.GRPC)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return nil, fmt.Errorf("create server: %w", err)
	}

	refreshJob := workers.NewRefreshJob(list, cfg.Workers.RefreshInterval, m.RefreshFailed, log)
	eventWatcher := workers.NewEventWatcher(podman, list,
		cfg.Workers.EventsRetryMin, cfg.Workers.EventsRetryMax, m.RefreshFailed, log)

	return &Daemon{
		podman:   podman,
		list:     list,
		metrics:  m,
		services: services,
		server:   srv,
		workers:  workers.NewWorkers(loop, refreshJob, eventWatcher),
		logger:   log,
	}, nil
}

// Services exposes the daemon's services, for example to mint a token
// without starting the servers.
func (d *Daemon) Services() *service.Services {
	return d.services
}

// Run starts the workers, requests the first listing and serves until ctx
// ends. A Podman that does not answer yet is not fatal: the refresh job and
// the event watcher keep trying.
func (d *Daemon) Run(ctx context.Context) error {
	if err := d.podman.Ping(ctx); err != nil {
		d.logger.Warn().Err(err).Msg("podman is not answering yet")
	}

	d.workers.Start(ctx)
	defer d.workers.Stop()
	defer d.list.Close()

	d.list.Refresh(ctx, "", d.metrics.RefreshFailed)

	return d.server.Run(ctx)
}
