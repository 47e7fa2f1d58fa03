// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-pod-mirror/internal/logger"
)

func TestInit_RegistersAllRoutes(t *testing.T) {
	router := newTestEnv(t, "").handler.Init()

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/version/"},
		{http.MethodGet, "/metrics"},
		{http.MethodGet, "/api/pods"},
		{http.MethodGet, "/api/pods/stats"},
		{http.MethodGet, "/api/pods/selection"},
		{http.MethodPost, "/api/pods/refresh"},
		{http.MethodPut, "/api/pods/selection/mode"},
		{http.MethodPost, "/api/pods/selection/all"},
		{http.MethodDelete, "/api/pods/selection"},
	}

	for _, tc := range routes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))

			assert.NotEqual(t, http.StatusNotFound, rec.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code)
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	router := newTestEnv(t, "").handler.Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nonexistent", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	router := newTestEnv(t, "").handler.Init()

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodPost, "/api/version/", nil),
		httptest.NewRequest(http.MethodPut, "/api/pods/stats", nil),
		httptest.NewRequest(http.MethodGet, "/api/pods/selection/all", nil),
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code, "%s %s", req.Method, req.URL.Path)
	}
}

func TestInit_MetricsOnlyWhenConfigured(t *testing.T) {
	env := newTestEnv(t, "")

	rec := httptest.NewRecorder()
	env.handler.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "# metrics", rec.Body.String())

	bare := NewHandler(env.handler.services, nil, logger.Nop())
	rec = httptest.NewRecorder()
	bare.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
