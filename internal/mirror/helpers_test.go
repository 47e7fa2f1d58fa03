// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mirror

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pod-mirror/internal/logger"
	"github.com/MKhiriev/go-pod-mirror/models"
)

// listerFunc adapts a function to the Lister interface.
type listerFunc func(ctx context.Context, id string) ([]models.PodReport, error)

func (f listerFunc) ListPods(ctx context.Context, id string) ([]models.PodReport, error) {
	return f(ctx, id)
}

// snapshotLister serves whatever snapshot the test put in pods and records the
// scope of every call.
type snapshotLister struct {
	pods   []models.PodReport
	err    error
	scopes []string
}

func (s *snapshotLister) ListPods(_ context.Context, id string) ([]models.PodReport, error) {
	s.scopes = append(s.scopes, id)
	if s.err != nil {
		return nil, s.err
	}
	if id == "" {
		return s.pods, nil
	}
	for _, p := range s.pods {
		if pid, _ := p.PodID(); pid == id {
			return []models.PodReport{p}, nil
		}
	}
	return nil, nil
}

// recorder keeps every notification it receives, in order, as text.
type recorder struct {
	events     []string
	counters   map[Counter]int
	containers []string
	modes      []bool
}

func newRecorder() *recorder {
	return &recorder{counters: map[Counter]int{}}
}

func (r *recorder) ItemsChanged(position, removed, added int) {
	r.events = append(r.events, fmt.Sprintf("items %d %d %d", position, removed, added))
}

func (r *recorder) PodAdded(pod *Pod) {
	r.events = append(r.events, "added "+pod.ID())
}

func (r *recorder) CounterChanged(counter Counter, value int) {
	r.counters[counter] = value
	r.events = append(r.events, fmt.Sprintf("counter %s=%d", counter, value))
}

func (r *recorder) ListingChanged(listing bool) {
	r.events = append(r.events, fmt.Sprintf("listing %t", listing))
}

func (r *recorder) Initialized() {
	r.events = append(r.events, "initialized")
}

func (r *recorder) ContainersInPodChanged(pod *Pod) {
	r.containers = append(r.containers, pod.ID())
}

func (r *recorder) SelectionModeChanged(enabled bool) {
	r.modes = append(r.modes, enabled)
}

func (r *recorder) reset() {
	r.events = nil
	r.containers = nil
	r.modes = nil
}

// only returns the recorded events that start with prefix.
func (r *recorder) only(prefix string) []string {
	var out []string
	for _, e := range r.events {
		if len(e) >= len(prefix) && e[:len(prefix)] == prefix {
			out = append(out, e)
		}
	}
	return out
}

func syncSpawner() Option {
	return WithSpawner(func(fn func()) { fn() })
}

// newTestList builds a list that runs every refresh to completion inside the
// calling method.
func newTestList(lister Lister) (*PodList, *recorder) {
	l := NewPodList(lister, InlineDispatcher{}, logger.Nop(), syncSpawner())
	rec := newRecorder()
	l.Subscribe(rec)
	return l, rec
}

func podReport(id string, status models.PodStatus, containers ...string) models.PodReport {
	r := models.PodReport{
		ID:     &id,
		Name:   "pod-" + id,
		Status: status,
	}
	for _, c := range containers {
		r.Containers = append(r.Containers, models.PodContainer{ID: c, Status: "running"})
	}
	return r
}
