// Package workers provides the background processes that keep a pod mirror
// current: the dispatcher loop every mutation runs on, the periodic refresh
// job and the Podman event watcher.
//
// It defines the Worker interface and a Workers aggregate that starts and
// stops several workers in a unified way.
package workers

import (
	"context"

	"github.com/MKhiriev/go-pod-mirror/models"
)

// Worker is the interface that must be implemented by any background worker.
//
// Start launches the worker and returns; the worker keeps running until ctx
// is cancelled or Stop is called. Stop blocks until the worker has exited
// and is safe to call on a worker that is not running.
//
// Example implementation:
//
//	type MyWorker struct{ cancel context.CancelFunc }
//
//	func (w *MyWorker) Start(ctx context.Context) {
//	    ctx, w.cancel = context.WithCancel(ctx)
//	    go process(ctx)
//	}
//
//	func (w *MyWorker) Stop() { w.cancel() }
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// Refresher starts full or scoped pod refreshes.
type Refresher interface {
	Refresh(ctx context.Context, id string, onErr func(error))
}

// EventHandler applies Podman events to a pod mirror. Refresh is used to
// resynchronise after the event stream was interrupted.
type EventHandler interface {
	Refresher
	HandleEvent(ctx context.Context, event models.Event, onErr func(error))
}

// EventSource follows the Podman event stream.
type EventSource interface {
	StreamEvents(ctx context.Context, eventType string, handle func(models.Event)) error
}
