// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)

	// promhttp negotiates its own compression
	if h.metrics != nil {
		router.Handle("/metrics", h.metrics.Handler())
	}

	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		r.Get("/api/version/", h.getServerVersion)

		r.Route("/api/pods", func(r chi.Router) {
			r.Get("/", h.listPods)
			r.Get("/stats", h.getStats)
			r.Get("/selection", h.getSelection)
			r.Get("/{id}", h.getPod)

			// mutating routes
			r.Group(func(r chi.Router) {
				r.Use(h.auth)
				r.Post("/refresh", h.refresh)
				r.Put("/selection/mode", h.setSelectionMode)
				r.Post("/selection/all", h.selectAll)
				r.Delete("/selection", h.clearSelection)
				r.Post("/{id}/toggle", h.togglePod)
			})
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
