// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mirror

import "errors"

// ErrClosed is returned by calls that wait on a list that has been closed or
// whose dispatcher no longer accepts work.
var ErrClosed = errors.New("pod list closed")

// ErrRefreshFailed is the only value passed to refresh failure callbacks.
// The transport error behind it is logged, not propagated.
var ErrRefreshFailed = errors.New("refresh failed")
