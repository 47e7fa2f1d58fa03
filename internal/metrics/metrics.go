// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics exposes the state of the pod mirror as Prometheus metrics.
//
// [Metrics] is a pod list observer: subscribe it and the counter gauges follow
// the list. It also records refresh failures and HTTP requests, and serves
// everything on its own registry through [Metrics.Handler].
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-pod-mirror/internal/mirror"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "podmirror"

// Metrics collects the mirror metrics on a private registry.
type Metrics struct {
	mirror.NopObserver

	registry *prometheus.Registry

	pods            *prometheus.GaugeVec
	listing         prometheus.Gauge
	initialized     prometheus.Gauge
	selectionMode   prometheus.Gauge
	podsAdded       prometheus.Counter
	podsRemoved     prometheus.Counter
	refreshFailures prometheus.Counter
	listingDuration prometheus.Histogram

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	// listingStarted is only touched from observer callbacks, which run on
	// the list's dispatcher.
	listingStarted time.Time
	now            func() time.Time
}

// New creates the collectors and registers them, together with the Go and
// process collectors, on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		now:      time.Now,

		pods: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "pods",
				Name:      "count",
				Help:      "Current value of the pod list counters.",
			},
			[]string{"counter"},
		),
		listing: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "refresh",
			Name:      "listing",
			Help:      "1 while a full listing fetch is outstanding.",
		}),
		initialized: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "pods",
			Name:      "initialized",
			Help:      "1 once the first reconciliation has completed.",
		}),
		selectionMode: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "pods",
			Name:      "selection_mode",
			Help:      "1 while the list is in selection mode.",
		}),
		podsAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pods",
			Name:      "added_total",
			Help:      "Pods added to the list.",
		}),
		podsRemoved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pods",
			Name:      "removed_total",
			Help:      "Pods removed from the list.",
		}),
		refreshFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "refresh",
			Name:      "failures_total",
			Help:      "Refreshes whose fetch failed.",
		}),
		listingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "refresh",
			Name:      "listing_duration_seconds",
			Help:      "Time between the start and the end of a listing.",
			Buckets:   prometheus.DefBuckets,
		}),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total HTTP requests.",
			},
			[]string{"method", "path", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.pods, m.listing, m.initialized, m.selectionMode,
		m.podsAdded, m.podsRemoved, m.refreshFailures, m.listingDuration,
		m.httpRequests, m.httpDuration,
	)

	for _, c := range []mirror.Counter{
		mirror.CounterLen, mirror.CounterRunning, mirror.CounterPaused,
		mirror.CounterDegraded, mirror.CounterNotRunning, mirror.CounterNumSelected,
	} {
		m.pods.WithLabelValues(string(c)).Set(0)
	}

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RefreshFailed counts a failed refresh. Its signature matches the failure
// callbacks of the pod list.
func (m *Metrics) RefreshFailed(error) {
	m.refreshFailures.Inc()
}

// RecordHTTPRequest counts one served request and observes its duration.
func (m *Metrics) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	statusLabel := strconv.Itoa(status)
	m.httpRequests.WithLabelValues(method, path, statusLabel).Inc()
	m.httpDuration.WithLabelValues(method, path, statusLabel).Observe(duration.Seconds())
}

// ItemsChanged implements [mirror.Observer].
func (m *Metrics) ItemsChanged(_, removed, _ int) {
	m.podsRemoved.Add(float64(removed))
}

// PodAdded implements [mirror.Observer].
func (m *Metrics) PodAdded(*mirror.Pod) {
	m.podsAdded.Inc()
}

// CounterChanged implements [mirror.Observer].
func (m *Metrics) CounterChanged(counter mirror.Counter, value int) {
	m.pods.WithLabelValues(string(counter)).Set(float64(value))
}

// ListingChanged implements [mirror.Observer].
func (m *Metrics) ListingChanged(listing bool) {
	if listing {
		m.listing.Set(1)
		m.listingStarted = m.now()
		return
	}

	m.listing.Set(0)
	if !m.listingStarted.IsZero() {
		m.listingDuration.Observe(m.now().Sub(m.listingStarted).Seconds())
		m.listingStarted = time.Time{}
	}
}

// Initialized implements [mirror.Observer].
func (m *Metrics) Initialized() {
	m.initialized.Set(1)
}

// SelectionModeChanged implements [mirror.SelectionObserver].
func (m *Metrics) SelectionModeChanged(enabled bool) {
	if enabled {
		m.selectionMode.Set(1)
		return
	}
	m.selectionMode.Set(0)
}
