// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pod-mirror/internal/utils"
	"github.com/MKhiriev/go-pod-mirror/models"
)

func serve(t *testing.T, router http.Handler, method, target, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestPods_ReadRoutes(t *testing.T) {
	env := newTestEnv(t, "")
	router := env.handler.Init()

	rec := serve(t, router, http.MethodGet, "/api/pods", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, decode[models.PodsResponse](t, rec).Length)

	rec = serve(t, router, http.MethodPost, "/api/pods/refresh", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decode[models.StatsResponse](t, rec)
	assert.Equal(t, models.StatsResponse{Len: 3, Running: 1, Paused: 1, NotRunning: 1, Initialized: true}, stats)

	rec = serve(t, router, http.MethodGet, "/api/pods/", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	pods := decode[models.PodsResponse](t, rec)
	require.Equal(t, 3, pods.Length)
	assert.Equal(t, "a", pods.Pods[0].ID)
	assert.Equal(t, "c", pods.Pods[2].ID)

	rec = serve(t, router, http.MethodGet, "/api/pods/b", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	pod := decode[models.PodView](t, rec)
	assert.Equal(t, "pod-b", pod.Name)
	assert.Equal(t, models.PodStatusPaused, pod.Status)
	assert.Equal(t, 1, pod.Position)

	rec = serve(t, router, http.MethodGet, "/api/pods/zz", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, decode[utils.ErrorResponse](t, rec).Error, "pod not found")

	rec = serve(t, router, http.MethodGet, "/api/pods/stats", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, stats, decode[models.StatsResponse](t, rec))
}

func TestPods_Refresh(t *testing.T) {
	env := newTestEnv(t, "")
	router := env.handler.Init()

	rec := serve(t, router, http.MethodPost, "/api/pods/refresh", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	env.lister.mu.Lock()
	env.lister.pods[0] = report("a", models.PodStatusDegraded)
	env.lister.mu.Unlock()

	rec = serve(t, router, http.MethodPost, "/api/pods/refresh?id=a", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decode[models.StatsResponse](t, rec)
	assert.Equal(t, 1, stats.Degraded)
	assert.Equal(t, 0, stats.Running)

	rec = serve(t, router, http.MethodPost, "/api/pods/refresh?id=missing", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	env.lister.mu.Lock()
	env.lister.err = errors.New("connection refused")
	env.lister.mu.Unlock()

	rec = serve(t, router, http.MethodPost, "/api/pods/refresh", "", "")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "refresh failed", decode[utils.ErrorResponse](t, rec).Error)

	env.list.Close()
	rec = serve(t, router, http.MethodPost, "/api/pods/refresh", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPods_Selection(t *testing.T) {
	env := newTestEnv(t, "")
	router := env.handler.Init()
	require.Equal(t, http.StatusOK, serve(t, router, http.MethodPost, "/api/pods/refresh", "", "").Code)

	rec := serve(t, router, http.MethodPost, "/api/pods/a/toggle", "", "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = serve(t, router, http.MethodPut, "/api/pods/selection/mode", `{"enabled": true}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[models.StatsResponse](t, rec).SelectionMode)

	rec = serve(t, router, http.MethodPost, "/api/pods/c/toggle", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	pod := decode[models.PodView](t, rec)
	assert.Equal(t, "c", pod.ID)
	assert.True(t, pod.Selected)

	rec = serve(t, router, http.MethodGet, "/api/pods/selection", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.SelectionResponse{IDs: []string{"c"}, Length: 1}, decode[models.SelectionResponse](t, rec))

	rec = serve(t, router, http.MethodPost, "/api/pods/selection/all", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, decode[models.StatsResponse](t, rec).NumSelected)

	rec = serve(t, router, http.MethodDelete, "/api/pods/selection", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decode[models.StatsResponse](t, rec)
	assert.Equal(t, 0, stats.NumSelected)
	assert.True(t, stats.SelectionMode)

	rec = serve(t, router, http.MethodPut, "/api/pods/selection/mode", `{"enabled": false}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decode[models.StatsResponse](t, rec).SelectionMode)

	rec = serve(t, router, http.MethodGet, "/api/pods/selection", "", "")
	assert.Equal(t, models.SelectionResponse{IDs: []string{}, Length: 0}, decode[models.SelectionResponse](t, rec))
}

func TestPods_SetSelectionMode_InvalidBody(t *testing.T) {
	router := newTestEnv(t, "").handler.Init()

	rec := serve(t, router, http.MethodPut, "/api/pods/selection/mode", `{"enabled":`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode[utils.ErrorResponse](t, rec).Error, ErrInvalidRequestBody.Error())
}

func TestPods_ToggleUnknownPod(t *testing.T) {
	router := newTestEnv(t, "").handler.Init()

	rec := serve(t, router, http.MethodPost, "/api/pods/nope/toggle", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPods_MutatingRoutesRequireToken(t *testing.T) {
	env := newTestEnv(t, testSignKey)
	router := env.handler.Init()

	mutating := []struct {
		method string
		target string
		body   string
	}{
		{http.MethodPost, "/api/pods/refresh", ""},
		{http.MethodPut, "/api/pods/selection/mode", `{"enabled": true}`},
		{http.MethodPost, "/api/pods/selection/all", ""},
		{http.MethodDelete, "/api/pods/selection", ""},
		{http.MethodPost, "/api/pods/a/toggle", ""},
	}
	for _, tc := range mutating {
		rec := serve(t, router, tc.method, tc.target, tc.body, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", tc.method, tc.target)
	}

	// reads stay open
	assert.Equal(t, http.StatusOK, serve(t, router, http.MethodGet, "/api/pods", "", "").Code)
	assert.Equal(t, http.StatusOK, serve(t, router, http.MethodGet, "/api/pods/stats", "", "").Code)

	token := env.token(t, "alice")
	assert.Equal(t, http.StatusOK, serve(t, router, http.MethodPost, "/api/pods/refresh", "", token).Code)
	assert.Equal(t, http.StatusOK, serve(t, router, http.MethodPut, "/api/pods/selection/mode", `{"enabled": true}`, token).Code)
	assert.Equal(t, http.StatusOK, serve(t, router, http.MethodPost, "/api/pods/a/toggle", "", token).Code)
	assert.Equal(t, []string{"a"}, env.list.SelectedIDs())
}

func TestPods_RequestsAreRecorded(t *testing.T) {
	env := newTestEnv(t, "")
	router := env.handler.Init()

	serve(t, router, http.MethodGet, "/api/pods/a", "", "")
	serve(t, router, http.MethodGet, "/api/pods/stats", "", "")
	serve(t, router, http.MethodGet, "/api/nowhere", "", "")

	assert.Equal(t, []string{
		"GET /api/pods/{id} Not Found",
		"GET /api/pods/stats OK",
		"GET unmatched Not Found",
	}, env.metrics.recorded())
}
