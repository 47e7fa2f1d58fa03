// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import "context"

// Workers starts and stops a fixed set of workers together.
type Workers struct {
	workers []Worker
}

// NewWorkers groups workers. They are started in the given order and stopped
// in reverse, so a worker may rely on the ones listed before it.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Start implements [Worker].
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop implements [Worker].
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
