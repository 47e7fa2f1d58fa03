// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-pod-mirror/internal/logger"
	"github.com/MKhiriev/go-pod-mirror/internal/utils"
	"github.com/MKhiriev/go-pod-mirror/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listPods(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.PodService.ListPods(r.Context()), http.StatusOK)
}

func (h *Handler) getPod(w http.ResponseWriter, r *http.Request) {
	pod, err := h.services.PodService.GetPod(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, pod, http.StatusOK)
}

func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.PodService.Stats(r.Context()), http.StatusOK)
}

func (h *Handler) getSelection(w http.ResponseWriter, r *http.Request) {
	ids := h.services.PodService.SelectedIDs(r.Context())
	utils.WriteJSON(w, models.SelectionResponse{IDs: ids, Length: len(ids)}, http.StatusOK)
}

// refresh reconciles the mirror and answers once the result is applied. The
// optional "id" query parameter limits the refresh to one pod.
func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.PodService.Refresh(r.Context(), r.URL.Query().Get("id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}

func (h *Handler) setSelectionMode(w http.ResponseWriter, r *http.Request) {
	var req models.SelectionModeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err))
		return
	}

	stats, err := h.services.PodService.SetSelectionMode(r.Context(), req.Enabled)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}

func (h *Handler) togglePod(w http.ResponseWriter, r *http.Request) {
	pod, err := h.services.PodService.TogglePod(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, pod, http.StatusOK)
}

func (h *Handler) selectAll(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.PodService.SelectAll(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}

func (h *Handler) clearSelection(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.PodService.ClearSelection(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Int("status", status).Msg("request failed")
	}
	utils.WriteError(w, err, status)
}
