// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mirror

import (
	"weak"

	"github.com/MKhiriev/go-pod-mirror/models"
)

// Stats is a snapshot of the derived pod counters.
type Stats struct {
	Len        int
	Running    int
	Paused     int
	Degraded   int
	NotRunning int
}

// Stats scans the list and returns its counters.
func (l *PodList) Stats() Stats {
	l.mu.RLock()
	defer l.mu.RUnlock()

	s := Stats{Len: l.pods.Len()}
	for _, pod := range l.pods.Values() {
		switch pod.Status() {
		case models.PodStatusRunning:
			s.Running++
		case models.PodStatusPaused:
			s.Paused++
		case models.PodStatusDegraded:
			s.Degraded++
		}
	}
	s.NotRunning = s.Len - s.Running - s.Paused - s.Degraded
	return s
}

// Running counts the pods with status Running.
func (l *PodList) Running() int {
	return l.Stats().Running
}

// Paused counts the pods with status Paused.
func (l *PodList) Paused() int {
	return l.Stats().Paused
}

// Degraded counts the pods with status Degraded.
func (l *PodList) Degraded() int {
	return l.Stats().Degraded
}

// NotRunning counts every pod that is neither running, paused nor degraded.
func (l *PodList) NotRunning() int {
	return l.Stats().NotRunning
}

// aggregator recomputes the counters on every membership change and on every
// status change of a listed pod, and notifies the ones whose value moved.
// last only remembers what was notified; the counts themselves are always
// rescanned.
type aggregator struct {
	NopObserver
	list *PodList
	last Stats
}

func (a *aggregator) ItemsChanged(int, int, int) {
	a.recompute()
}

// PodAdded attaches the status watch. It runs once per pod; updates of an
// already listed pod never subscribe again.
func (a *aggregator) PodAdded(pod *Pod) {
	ref := weak.Make(a)
	pod.ConnectNotify(PodPropertyStatus, func(*Pod) {
		if agg := ref.Value(); agg != nil {
			agg.recompute()
		}
	})
}

func (a *aggregator) recompute() {
	now := a.list.Stats()
	prev := a.last
	a.last = now

	notify := func(c Counter, old, cur int) {
		if old != cur {
			a.list.notifyCounter(c, cur)
		}
	}
	notify(CounterLen, prev.Len, now.Len)
	notify(CounterDegraded, prev.Degraded, now.Degraded)
	notify(CounterNotRunning, prev.NotRunning, now.NotRunning)
	notify(CounterPaused, prev.Paused, now.Paused)
	notify(CounterRunning, prev.Running, now.Running)
}
