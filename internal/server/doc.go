// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the application's transport servers.
//
// It binds the HTTP and gRPC listeners, serves them side by side and shuts
// every enabled transport down gracefully once the run context ends or one of
// them fails.
package server
