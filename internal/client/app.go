// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pod-mirror/internal/adapter"
	"github.com/MKhiriev/go-pod-mirror/internal/config"
	"github.com/MKhiriev/go-pod-mirror/internal/logger"
	"github.com/MKhiriev/go-pod-mirror/internal/mirror"
	"github.com/MKhiriev/go-pod-mirror/internal/tui"
	"github.com/MKhiriev/go-pod-mirror/internal/workers"
	"github.com/MKhiriev/go-pod-mirror/models"
)

var ErrNoAdapter = errors.New("client: podman adapter is required")

type App struct {
	podman  adapter.PodmanAdapter
	list    *mirror.PodList
	ui      UI
	workers *workers.Workers

	logger *logger.Logger
}

// NewApp builds the panel around a fresh mirror of podman. The mirror runs on
// its own dispatcher loop; refresh failures from any source end up in the UI.
func NewApp(podman adapter.PodmanAdapter, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger, opts ...tui.Option) (*App, error) {
	if podman == nil {
		return nil, ErrNoAdapter
	}
	if log == nil {
		log = logger.Nop()
	}

	loop := workers.NewLoop(log)
	list := mirror.NewPodList(podman, loop, log)

	ui, err := tui.New(list, buildInfo, log, opts...)
	if err != nil {
		return nil, fmt.Errorf("create ui: %w", err)
	}

	refreshJob := workers.NewRefreshJob(list, cfg.Workers.RefreshInterval, ui.RefreshFailed, log)
	eventWatcher := workers.NewEventWatcher(podman, list,
		cfg.Workers.EventsRetryMin, cfg.Workers.EventsRetryMax, ui.RefreshFailed, log)

	return &App{
		podman:  podman,
		list:    list,
		ui:      ui,
		workers: workers.NewWorkers(loop, refreshJob, eventWatcher),
		logger:  log,
	}, nil
}

// Run implements [Client]. The initial listing is requested before the panel
// opens, so the panel shows "loading" only until the first answer.
func (a *App) Run(ctx context.Context) error {
	if err := a.podman.Ping(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("podman is not answering, the panel will retry")
	}

	a.workers.Start(ctx)
	defer a.workers.Stop()
	defer a.list.Close()

	a.list.Refresh(ctx, "", a.ui.RefreshFailed)

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
