// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal pods panel runtime.
//
// It wires the Podman adapter, the pod mirror, its dispatcher loop and the
// background refresh and event workers to the terminal UI, and runs them for
// the lifetime of the panel.
package client
