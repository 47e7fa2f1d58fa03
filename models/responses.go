// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// PodView is the API representation of one mirrored pod.
type PodView struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Status        PodStatus         `json:"status"`
	Created       time.Time         `json:"created"`
	InfraID       string            `json:"infra_id,omitempty"`
	Namespace     string            `json:"namespace,omitempty"`
	Networks      []string          `json:"networks,omitempty"`
	Labels        map[string]string `json:"labels,omitempty"`
	NumContainers int               `json:"num_containers"`
	Selected      bool              `json:"selected"`
	// Position is the pod's index in the mirrored order.
	Position int `json:"position"`
}

// PodsResponse lists the mirrored pods in mirror order.
type PodsResponse struct {
	Pods []PodView `json:"pods"`

	// Length is the number of entries in Pods.
	Length int `json:"length"`
}

// StatsResponse carries the aggregate counters of the mirror.
type StatsResponse struct {
	Len           int  `json:"len"`
	Running       int  `json:"running"`
	Paused        int  `json:"paused"`
	Degraded      int  `json:"degraded"`
	NotRunning    int  `json:"not_running"`
	NumSelected   int  `json:"num_selected"`
	SelectionMode bool `json:"selection_mode"`
	Listing       bool `json:"listing"`
	Initialized   bool `json:"initialized"`
}

// SelectionModeRequest switches selection mode on or off.
type SelectionModeRequest struct {
	Enabled bool `json:"enabled"`
}

// SelectionResponse lists the ids of the selected pods in mirror order.
type SelectionResponse struct {
	IDs    []string `json:"ids"`
	Length int      `json:"length"`
}
