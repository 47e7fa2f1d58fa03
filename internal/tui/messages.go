// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

// changedMsg tells the panel to re-read the pod list.
type changedMsg struct{}

type refreshFailedMsg struct {
	err error
}

type copiedMsg struct {
	count int
	err   error
}

type clearStatusMsg struct {
	seq int
}
