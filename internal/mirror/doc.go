// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package mirror keeps a local, ordered, observable copy of the pods of a
// Podman host.
//
// [PodList] reconciles its contents against full listings fetched through a
// [Lister] and against single events from the Podman event stream. Every
// mutation runs on one [Dispatcher]; fetches run elsewhere and post their
// completion back. Observers subscribed with [PodList.Subscribe] receive
// position-based change notifications, counter updates and the listing and
// initialized signals synchronously, on the dispatcher, with no list lock held.
//
// The engine never returns transport errors to its callers. A failed refresh
// is logged and reported through the per-call failure callback as
// [ErrRefreshFailed]; the previous contents stay as they were.
package mirror
