// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app assembles the mirror daemon.
//
// [Daemon] owns one pod mirror and everything that feeds or reads it: the
// dispatcher loop, the refresh job, the event watcher, the metrics observer,
// the services and the HTTP and gRPC servers. cmd/server only loads the
// configuration, builds the Podman adapter and hands both to [NewDaemon].
package app
