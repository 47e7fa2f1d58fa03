// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mirror

// Counter names one of the derived values a [PodList] notifies about.
type Counter string

const (
	CounterLen         Counter = "len"
	CounterRunning     Counter = "running"
	CounterPaused      Counter = "paused"
	CounterDegraded    Counter = "degraded"
	CounterNotRunning  Counter = "not-running"
	CounterNumSelected Counter = "num-selected"
)

// Observer receives the change notifications of a [PodList].
//
// All methods are called on the list's dispatcher, in mutation order. An
// observer may read the list from inside a callback; calls that mutate the
// list are queued behind the current one.
type Observer interface {
	// ItemsChanged reports that at position, removed entries were dropped
	// and added entries were inserted.
	ItemsChanged(position, removed, added int)
	// PodAdded is called once per new pod, right after its ItemsChanged.
	PodAdded(pod *Pod)
	// CounterChanged is called when a derived counter takes a new value.
	CounterChanged(counter Counter, value int)
	// ListingChanged reports the start and the end of a full listing fetch.
	ListingChanged(listing bool)
	// Initialized is called once, when the first reconciliation completes.
	Initialized()
}

// ContainersObserver is implemented by observers that also want to know when
// the number of containers in one of the pods changes.
type ContainersObserver interface {
	ContainersInPodChanged(pod *Pod)
}

// SelectionObserver is implemented by observers that track selection mode.
type SelectionObserver interface {
	SelectionModeChanged(enabled bool)
}

// NopObserver implements [Observer] with empty methods. Embed it to handle
// only the notifications you need.
type NopObserver struct{}

func (NopObserver) ItemsChanged(int, int, int) {}
func (NopObserver) PodAdded(*Pod) {}
func (NopObserver) CounterChanged(Counter, int) {}
func (NopObserver) ListingChanged(bool) {}
func (NopObserver) Initialized() {}

type subscription struct {
	id       uint64
	observer Observer
}
