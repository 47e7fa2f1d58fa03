// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// PodStatus is the operational state Podman reports for a pod.
type PodStatus string

const (
	PodStatusUnknown  PodStatus = "Unknown"
	PodStatusCreated  PodStatus = "Created"
	PodStatusRunning  PodStatus = "Running"
	PodStatusPaused   PodStatus = "Paused"
	PodStatusDegraded PodStatus = "Degraded"
	PodStatusStopped  PodStatus = "Stopped"
	PodStatusExited   PodStatus = "Exited"
	PodStatusDead     PodStatus = "Dead"
	PodStatusError    PodStatus = "Error"
)

// ParsePodStatus maps a status string from the Podman API onto [PodStatus].
// Matching is case-insensitive; anything unrecognised is [PodStatusUnknown].
func ParsePodStatus(s string) PodStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "created":
		return PodStatusCreated
	case "running":
		return PodStatusRunning
	case "paused":
		return PodStatusPaused
	case "degraded":
		return PodStatusDegraded
	case "stopped":
		return PodStatusStopped
	case "exited":
		return PodStatusExited
	case "dead":
		return PodStatusDead
	case "error":
		return PodStatusError
	default:
		return PodStatusUnknown
	}
}

// UnmarshalText lets JSON decoding go through [ParsePodStatus].
func (s *PodStatus) UnmarshalText(b []byte) error {
	*s = ParsePodStatus(string(b))
	return nil
}

// PodContainer is the short container description embedded in a pod listing.
type PodContainer struct {
	ID     string `json:"Id"`
	Names  string `json:"Names"`
	Status string `json:"Status"`
}

// PodReport is one entry of GET /libpod/pods/json. It is a point-in-time
// snapshot; the mirror turns it into a long-lived pod handle.
//
// ID is a pointer because the listing contract only promises it, and a
// report without one is a broken remote rather than an empty string id.
type PodReport struct {
	ID        *string           `json:"Id"`
	Name      string            `json:"Name"`
	Status    PodStatus         `json:"Status"`
	Created   time.Time         `json:"Created"`
	InfraID   string            `json:"InfraId"`
	Namespace string            `json:"Namespace"`
	Cgroup    string            `json:"Cgroup"`
	Networks  []string          `json:"Networks"`
	Labels    map[string]string `json:"Labels"`
	// Containers lists every container of the pod, the infra container included.
	Containers []PodContainer `json:"Containers"`
}

// PodID returns the report id and whether it was present.
func (r PodReport) PodID() (string, bool) {
	if r.ID == nil || *r.ID == "" {
		return "", false
	}
	return *r.ID, true
}
