// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-pod-mirror/internal/logger"
)

// RefreshJob runs a full pod refresh on a ticker, as a safety net for events
// the watcher missed.
type RefreshJob struct {
	list     Refresher
	interval time.Duration
	onErr    func(error)
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshJob creates a RefreshJob that calls list.Refresh every interval.
// The job is idle until Start is called; a zero or negative interval keeps it
// idle for good. onErr, when not nil, receives every refresh failure.
func NewRefreshJob(list Refresher, interval time.Duration, onErr func(error), log *logger.Logger) *RefreshJob {
	if log == nil {
		log = logger.Nop()
	}
	return &RefreshJob{list: list, interval: interval, onErr: onErr, logger: log}
}

// Start implements [Worker]. It stops any previously running job, then
// launches a background goroutine that requests a full refresh every
// interval. The goroutine exits when ctx is cancelled or Stop is called.
func (j *RefreshJob) Start(ctx context.Context) {
	if j.interval <= 0 {
		j.logger.Info().Msg("periodic refresh disabled")
		return
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	j.logger.Info().Dur("interval", j.interval).Msg("periodic refresh started")

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.list.Refresh(jobCtx, "", j.failed)
			}
		}
	}()
}

// Stop implements [Worker]. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is not
// running (no-op in that case).
func (j *RefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *RefreshJob) failed(err error) {
	j.logger.Warn().Err(err).Msg("periodic refresh failed")
	if j.onErr != nil {
		j.onErr(err)
	}
}
