// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the pod mirror.
//
// It exposes the read-only pod views, the refresh and selection operations,
// the version endpoint and the Prometheus metrics. Request tracing, access
// logging, response compression and bearer authentication of the mutating
// routes are handled here before calls reach the service layer.
package http
