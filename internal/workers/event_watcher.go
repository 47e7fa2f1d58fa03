// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-pod-mirror/internal/logger"
	"github.com/MKhiriev/go-pod-mirror/models"
)

// PodEventType is the Podman event type the watcher subscribes to.
const PodEventType = "pod"

var errStreamEnded = errors.New("event stream ended")

const (
	defaultRetryMin = time.Second
	defaultRetryMax = 30 * time.Second
)

// EventWatcher follows the Podman pod event stream and feeds every event to
// the mirror. When the stream breaks it reconnects with capped exponential
// backoff and requests a full refresh, since events may have been lost while
// it was down. The backoff starts over once a stream has delivered events.
type EventWatcher struct {
	source   EventSource
	list     EventHandler
	retryMin time.Duration
	retryMax time.Duration
	onErr    func(error)
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewEventWatcher creates an idle watcher. Non-positive delays fall back to
// one second and thirty seconds. onErr, when not nil, receives every refresh
// failure caused by an event.
func NewEventWatcher(source EventSource, list EventHandler, retryMin, retryMax time.Duration, onErr func(error), log *logger.Logger) *EventWatcher {
	if retryMin <= 0 {
		retryMin = defaultRetryMin
	}
	if retryMax <= 0 {
		retryMax = defaultRetryMax
	}
	if retryMax < retryMin {
		retryMax = retryMin
	}
	if log == nil {
		log = logger.Nop()
	}

	return &EventWatcher{
		source:   source,
		list:     list,
		retryMin: retryMin,
		retryMax: retryMax,
		onErr:    onErr,
		logger:   log,
	}
}

// Start implements [Worker].
func (w *EventWatcher) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	watchCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		for {
			err := retry.Do(watchCtx, w.backoff(), w.follow)
			if watchCtx.Err() != nil {
				w.logger.Info().Msg("event watcher stopped")
				return
			}
			if err != nil {
				w.logger.Error().Err(err).Msg("event watcher gave up")
				return
			}
		}
	}()
}

// Stop implements [Worker].
func (w *EventWatcher) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

func (w *EventWatcher) backoff() retry.Backoff {
	return retry.WithCappedDuration(w.retryMax, retry.NewExponential(w.retryMin))
}

// follow reads one stream until it ends. A stream that delivered events
// returns nil so that the next one starts with a fresh backoff; one that
// failed straight away is retried with the growing delay.
func (w *EventWatcher) follow(ctx context.Context) error {
	delivered := 0
	err := w.source.StreamEvents(ctx, PodEventType, func(event models.Event) {
		delivered++
		w.logger.Debug().
			Str("action", event.Action).
			Str("pod_id", event.Actor.ID).
			Msg("pod event")
		w.list.HandleEvent(ctx, event, w.failed)
	})
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err == nil {
		err = errStreamEnded
	}

	w.logger.Warn().Err(err).Int("delivered", delivered).Msg("event stream interrupted")
	w.list.Refresh(ctx, "", w.failed)

	if delivered > 0 {
		return nil
	}
	return retry.RetryableError(err)
}

func (w *EventWatcher) failed(err error) {
	w.logger.Warn().Err(err).Msg("event refresh failed")
	if w.onErr != nil {
		w.onErr(err)
	}
}
