// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-pod-mirror/internal/logger"
)

// Loop runs posted functions one at a time on a single goroutine, in the
// order they were posted. Its queue is unbounded, so Post never blocks, also
// when called from a function the loop is running.
//
// Functions posted before Start are kept and run once the loop starts.
type Loop struct {
	logger *logger.Logger

	mu      sync.Mutex
	queue   []func()
	stopped bool
	cancel  context.CancelFunc

	wake chan struct{}
	wg   sync.WaitGroup
}

// NewLoop creates a loop that is idle until Start is called.
func NewLoop(log *logger.Logger) *Loop {
	if log == nil {
		log = logger.Nop()
	}
	return &Loop{
		logger: log,
		wake:   make(chan struct{}, 1),
	}
}

// Post queues fn. It returns false once the loop has been stopped.
func (l *Loop) Post(fn func()) bool {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return false
	}
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
	return true
}

// Start implements [Worker]. Calling Start on a running loop does nothing.
func (l *Loop) Start(ctx context.Context) {
	l.mu.Lock()
	if l.cancel != nil || l.stopped {
		l.mu.Unlock()
		return
	}
	loopCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.wg.Add(1)
	l.mu.Unlock()

	l.logger.Info().Msg("dispatcher loop started")

	go func() {
		defer l.wg.Done()
		for {
			l.drain()
			select {
			case <-loopCtx.Done():
				l.shutdown()
				return
			case <-l.wake:
			}
		}
	}()
}

// Stop implements [Worker]. Work still queued is dropped and later posts are
// rejected.
func (l *Loop) Stop() {
	l.mu.Lock()
	cancel := l.cancel
	l.mu.Unlock()

	if cancel == nil {
		l.shutdown()
		return
	}
	cancel()
	l.wg.Wait()
}

func (l *Loop) drain() {
	for {
		l.mu.Lock()
		if len(l.queue) == 0 {
			l.mu.Unlock()
			return
		}
		fn := l.queue[0]
		l.queue[0] = nil
		l.queue = l.queue[1:]
		l.mu.Unlock()

		fn()
	}
}

func (l *Loop) shutdown() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.stopped {
		return
	}
	l.stopped = true
	if n := len(l.queue); n > 0 {
		l.logger.Warn().Int("dropped", n).Msg("dispatcher loop stopped with queued work")
	}
	l.queue = nil
	l.logger.Info().Msg("dispatcher loop stopped")
}
