// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pod-mirror/internal/logger"
	"github.com/MKhiriev/go-pod-mirror/internal/mirror"
	"github.com/MKhiriev/go-pod-mirror/models"
)

// podService answers API calls from the mirror. Mutations are queued on the
// mirror's dispatcher; every mutating method waits for its own call to be
// applied before it reads the result back.
type podService struct {
	pods PodMirror

	logger *logger.Logger
}

func NewPodService(pods PodMirror, logger *logger.Logger) PodService {
	return &podService{
		pods:   pods,
		logger: logger,
	}
}

func (s *podService) ListPods(ctx context.Context) models.PodsResponse {
	pods := s.pods.Pods()

	views := make([]models.PodView, len(pods))
	for i, pod := range pods {
		views[i] = pod.View(i)
	}

	return models.PodsResponse{Pods: views, Length: len(views)}
}

func (s *podService) GetPod(ctx context.Context, id string) (models.PodView, error) {
	pod, ok := s.pods.GetPod(id)
	if !ok {
		return models.PodView{}, fmt.Errorf("%w: %s", ErrPodNotFound, id)
	}

	return pod.View(s.pods.IndexOf(id)), nil
}

func (s *podService) Stats(ctx context.Context) models.StatsResponse {
	stats := s.pods.Stats()

	return models.StatsResponse{
		Len:           stats.Len,
		Running:       stats.Running,
		Paused:        stats.Paused,
		Degraded:      stats.Degraded,
		NotRunning:    stats.NotRunning,
		NumSelected:   s.pods.NumSelected(),
		SelectionMode: s.pods.SelectionMode(),
		Listing:       s.pods.Listing(),
		Initialized:   s.pods.Initialized(),
	}
}

func (s *podService) SelectedIDs(ctx context.Context) []string {
	ids := s.pods.SelectedIDs()
	if ids == nil {
		return []string{}
	}
	return ids
}

// Refresh waits for the refresh to be applied. A scoped refresh of a pod the
// remote host does not know returns ErrPodNotFound.
func (s *podService) Refresh(ctx context.Context, id string) (models.StatsResponse, error) {
	log := logger.FromContext(ctx)

	if err := s.pods.RefreshWait(ctx, id); err != nil {
		log.Err(err).Str("scope", id).Msg("refresh ended with error")
		return models.StatsResponse{}, s.mapMirrorError(err)
	}

	if id != "" {
		if _, ok := s.pods.GetPod(id); !ok {
			return models.StatsResponse{}, fmt.Errorf("%w: %s", ErrPodNotFound, id)
		}
	}

	return s.Stats(ctx), nil
}

func (s *podService) SetSelectionMode(ctx context.Context, enabled bool) (models.StatsResponse, error) {
	s.pods.SetSelectionMode(enabled)
	if err := s.sync(ctx); err != nil {
		return models.StatsResponse{}, err
	}

	return s.Stats(ctx), nil
}

func (s *podService) TogglePod(ctx context.Context, id string) (models.PodView, error) {
	if _, ok := s.pods.GetPod(id); !ok {
		return models.PodView{}, fmt.Errorf("%w: %s", ErrPodNotFound, id)
	}
	if !s.pods.SelectionMode() {
		return models.PodView{}, ErrSelectionModeDisabled
	}

	s.pods.Toggle(id)
	if err := s.sync(ctx); err != nil {
		return models.PodView{}, err
	}

	// the pod may have been removed by a refresh queued before the toggle
	return s.GetPod(ctx, id)
}

func (s *podService) SelectAll(ctx context.Context) (models.StatsResponse, error) {
	if !s.pods.SelectionMode() {
		return models.StatsResponse{}, ErrSelectionModeDisabled
	}

	s.pods.SelectAll()
	if err := s.sync(ctx); err != nil {
		return models.StatsResponse{}, err
	}

	return s.Stats(ctx), nil
}

func (s *podService) ClearSelection(ctx context.Context) (models.StatsResponse, error) {
	s.pods.ClearSelection()
	if err := s.sync(ctx); err != nil {
		return models.StatsResponse{}, err
	}

	return s.Stats(ctx), nil
}

func (s *podService) sync(ctx context.Context) error {
	if err := s.pods.Sync(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Msg("waiting for the pod mirror failed")
		return s.mapMirrorError(err)
	}
	return nil
}

func (s *podService) mapMirrorError(err error) error {
	if errors.Is(err, mirror.ErrClosed) {
		return fmt.Errorf("%w: %w", ErrMirrorUnavailable, err)
	}
	return err
}
