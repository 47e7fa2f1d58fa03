// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mirror

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"weak"

	"github.com/MKhiriev/go-pod-mirror/internal/collection"
	"github.com/MKhiriev/go-pod-mirror/internal/logger"
	"github.com/MKhiriev/go-pod-mirror/models"
)

// PodList mirrors the pods of one Podman host.
//
// Mutations only happen on the dispatcher given to [NewPodList]; the exported
// mutating methods post their work there and return immediately. Read methods
// may be called from any goroutine.
//
// Overlapping refreshes are not prevented: [PodList.Listing] is a signal for
// views, not a lock. Two refreshes in flight do redundant work but converge on
// the same contents.
type PodList struct {
	lister     Lister
	dispatcher Dispatcher
	spawn      func(func())
	logger     *logger.Logger

	mu            sync.RWMutex
	pods          *collection.Ordered[*Pod]
	listing       bool
	initialized   initState
	selectionMode bool

	obsMu     sync.RWMutex
	nextObsID uint64
	observers []subscription

	closed atomic.Bool
}

// NewPodList creates an empty, uninitialized list. Nothing is fetched until
// the first [PodList.Refresh] or [PodList.HandleEvent].
func NewPodList(lister Lister, dispatcher Dispatcher, log *logger.Logger, opts ...Option) *PodList {
	if log == nil {
		log = logger.Nop()
	}

	l := &PodList{
		lister:     lister,
		dispatcher: dispatcher,
		spawn:      spawnGoroutine,
		logger:     log,
		pods:       collection.New[*Pod](16),
	}
	for _, opt := range opts {
		opt(l)
	}

	l.Subscribe(&aggregator{list: l})
	l.Subscribe(&selection{list: l})
	l.Subscribe(&containersWatch{list: l})

	return l
}

// Subscribe registers o for change notifications and returns a function that
// removes it again.
func (l *PodList) Subscribe(o Observer) (unsubscribe func()) {
	l.obsMu.Lock()
	l.nextObsID++
	id := l.nextObsID
	l.observers = append(l.observers, subscription{id: id, observer: o})
	l.obsMu.Unlock()

	return func() {
		l.obsMu.Lock()
		defer l.obsMu.Unlock()
		l.observers = slices.DeleteFunc(l.observers, func(s subscription) bool { return s.id == id })
	}
}

// Close detaches the list from its dispatcher. Calls made afterwards and
// fetches that complete afterwards are ignored.
func (l *PodList) Close() {
	l.closed.Store(true)
}

// Refresh fetches pods from the remote host and reconciles the list with the
// result. An empty id fetches every pod, and pods missing from the listing
// are removed; a non-empty id only fetches and updates (or adds) that pod.
//
// onErr, when not nil, is called at most once, with [ErrRefreshFailed], if the
// fetch fails.
func (l *PodList) Refresh(ctx context.Context, id string, onErr func(error)) {
	l.post(func() { l.refresh(ctx, id, onErr, nil) })
}

// RefreshWait runs the same refresh as [PodList.Refresh] and blocks until its
// result has been applied. It returns nil, [ErrRefreshFailed], [ErrClosed] or
// the error of ctx, whichever comes first. Calling it from the dispatcher's
// own goroutine deadlocks unless the dispatcher runs work inline.
func (l *PodList) RefreshWait(ctx context.Context, id string) error {
	done := make(chan error, 1)
	if !l.post(func() {
		l.refresh(ctx, id, nil, func(err error) { done <- err })
	}) {
		return ErrClosed
	}

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Sync blocks until every call posted before it has been applied. Fetches
// still in flight are not waited for; use [PodList.RefreshWait] for those.
func (l *PodList) Sync(ctx context.Context) error {
	done := make(chan struct{})
	if !l.post(func() { close(done) }) {
		return ErrClosed
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// HandleEvent applies one event of the Podman event stream. A remove event
// drops the pod locally. Any other action, known or not, refreshes the pod if
// it is already listed and runs a full refresh otherwise, since an unknown id
// may belong to a pod that only a full listing can discover.
func (l *PodList) HandleEvent(ctx context.Context, event models.Event, onErr func(error)) {
	l.post(func() {
		id := event.Actor.ID
		if event.Action == models.EventActionRemove {
			l.removePod(id)
			return
		}

		scope := ""
		if _, ok := l.GetPod(id); ok {
			scope = id
		}
		l.refresh(ctx, scope, onErr, nil)
	})
}

// RemovePod drops the pod with the given id, if listed.
func (l *PodList) RemovePod(id string) {
	l.post(func() { l.removePod(id) })
}

// Len returns the number of listed pods.
func (l *PodList) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.pods.Len()
}

// PodAt returns the pod at position i.
func (l *PodList) PodAt(i int) (*Pod, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.pods.At(i)
}

// GetPod returns the pod with the given id.
func (l *PodList) GetPod(id string) (*Pod, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.pods.Get(id)
}

// IndexOf returns the position of the pod with the given id, or -1.
func (l *PodList) IndexOf(id string) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.pods.IndexOf(id)
}

// Pods returns the listed pods in order.
func (l *PodList) Pods() []*Pod {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.pods.Values()
}

// IDs returns the ids of the listed pods in order.
func (l *PodList) IDs() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.pods.Keys()
}

// Listing reports whether a full listing fetch is outstanding.
func (l *PodList) Listing() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.listing
}

// Initialized reports whether any reconciliation has completed yet.
func (l *PodList) Initialized() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.initialized.done()
}

func (l *PodList) post(fn func()) bool {
	if l.closed.Load() {
		return false
	}
	if !l.dispatcher.Post(fn) {
		l.logger.Warn().Msg("pod list dispatcher rejected work")
		return false
	}
	return true
}

// refresh runs on the dispatcher. The completion only holds a weak pointer to
// the list, so a list that has been dropped is not kept alive by a fetch.
// onDone, when set, receives the outcome after the listing flag is cleared.
func (l *PodList) refresh(ctx context.Context, id string, onErr, onDone func(error)) {
	l.setListing(true)

	ref := weak.Make(l)
	lister, dispatcher := l.lister, l.dispatcher

	l.spawn(func() {
		reports, err := lister.ListPods(ctx, id)
		dispatcher.Post(func() {
			list := ref.Value()
			if list == nil || list.closed.Load() {
				return
			}
			list.finishRefresh(id, reports, err, onErr, onDone)
		})
	})
}

func (l *PodList) finishRefresh(scope string, reports []models.PodReport, err error, onErr, onDone func(error)) {
	var result error
	if err != nil {
		result = ErrRefreshFailed
		l.logger.Error().Err(err).Str("scope", scope).Msg("error on retrieving pods")
		if onErr != nil {
			onErr(result)
		}
	} else {
		l.reconcile(scope, reports)
	}

	l.setListing(false)
	l.setInitialized()

	if onDone != nil {
		onDone(result)
	}
}

// reconcile brings the list in line with reports. For an unscoped listing the
// pods that are no longer reported go first, in list order; then each report
// is added or applied in place, in the order the transport returned them.
func (l *PodList) reconcile(scope string, reports []models.PodReport) {
	ids := make([]string, len(reports))
	for i, report := range reports {
		id, ok := report.PodID()
		if !ok {
			panic(fmt.Sprintf("mirror: pod report %d (%q) has no id", i, report.Name))
		}
		ids[i] = id
	}

	if scope == "" {
		fetched := make(map[string]struct{}, len(ids))
		for _, id := range ids {
			fetched[id] = struct{}{}
		}

		var stale []string
		for _, id := range l.IDs() {
			if _, ok := fetched[id]; !ok {
				stale = append(stale, id)
			}
		}
		for _, id := range stale {
			l.removePod(id)
		}
	}

	for i, report := range reports {
		l.upsert(ids[i], report)
	}
}

func (l *PodList) upsert(id string, report models.PodReport) {
	l.mu.Lock()
	pod, index, created := l.pods.Upsert(id, func() *Pod { return newPod(l, id, report) }, nil)
	l.mu.Unlock()

	if !created {
		pod.update(report)
		return
	}

	l.itemsChanged(index, 0, 1)
	l.forEachObserver(func(o Observer) { o.PodAdded(pod) })
}

func (l *PodList) removePod(id string) {
	l.mu.Lock()
	pod, index, ok := l.pods.Remove(id)
	l.mu.Unlock()
	if !ok {
		return
	}

	pod.dropSelection()
	l.itemsChanged(index, 1, 0)
	pod.emitDeleted()
}

func (l *PodList) itemsChanged(position, removed, added int) {
	l.forEachObserver(func(o Observer) { o.ItemsChanged(position, removed, added) })
}

func (l *PodList) notifyCounter(counter Counter, value int) {
	l.forEachObserver(func(o Observer) { o.CounterChanged(counter, value) })
}

func (l *PodList) setListing(listing bool) {
	l.mu.Lock()
	if l.listing == listing {
		l.mu.Unlock()
		return
	}
	l.listing = listing
	l.mu.Unlock()

	l.forEachObserver(func(o Observer) { o.ListingChanged(listing) })
}

func (l *PodList) setInitialized() {
	l.mu.Lock()
	advanced := l.initialized.advance()
	l.mu.Unlock()

	if advanced {
		l.forEachObserver(func(o Observer) { o.Initialized() })
	}
}

func (l *PodList) forEachObserver(fn func(Observer)) {
	l.obsMu.RLock()
	subs := slices.Clone(l.observers)
	l.obsMu.RUnlock()

	for _, s := range subs {
		fn(s.observer)
	}
}

// containersWatch forwards container count changes of listed pods to the
// observers that implement [ContainersObserver].
type containersWatch struct {
	NopObserver
	list *PodList
}

func (w *containersWatch) PodAdded(pod *Pod) {
	ref := weak.Make(w.list)
	pod.ConnectNotify(PodPropertyNumContainers, func(p *Pod) {
		list := ref.Value()
		if list == nil {
			return
		}
		list.forEachObserver(func(o Observer) {
			if co, ok := o.(ContainersObserver); ok {
				co.ContainersInPodChanged(p)
			}
		})
	})
}
