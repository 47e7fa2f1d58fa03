// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pod-mirror/internal/mirror"
)

// notifier is the panel's mirror observer. Callbacks run on the mirror's
// dispatcher and must not block it, so they only leave a mark in a one slot
// channel; the panel drains it with wait and re-reads the whole list.
// Bursts of notifications collapse into a single redraw.
type notifier struct {
	mirror.NopObserver

	changes  chan struct{}
	failures chan error
}

func newNotifier() *notifier {
	return &notifier{
		changes:  make(chan struct{}, 1),
		failures: make(chan error, 1),
	}
}

func (n *notifier) signal() {
	select {
	case n.changes <- struct{}{}:
	default:
	}
}

func (n *notifier) ItemsChanged(int, int, int) { n.signal() }

func (n *notifier) CounterChanged(mirror.Counter, int) { n.signal() }

func (n *notifier) ListingChanged(bool) { n.signal() }

func (n *notifier) Initialized() { n.signal() }

func (n *notifier) SelectionModeChanged(bool) { n.signal() }

func (n *notifier) ContainersInPodChanged(*mirror.Pod) { n.signal() }

// PodAdded watches the properties that show up in the table but do not move
// any list counter.
func (n *notifier) PodAdded(pod *mirror.Pod) {
	onChange := func(*mirror.Pod) { n.signal() }
	pod.ConnectNotify(mirror.PodPropertyName, onChange)
	pod.ConnectNotify(mirror.PodPropertyStatus, onChange)
	pod.ConnectNotify(mirror.PodPropertySelected, onChange)
}

// RefreshFailed hands a refresh failure to the panel. Only the first of
// several failures waiting to be shown is kept.
func (n *notifier) RefreshFailed(err error) {
	select {
	case n.failures <- err:
	default:
	}
}

// wait returns a command that blocks until the next change or failure.
func (n *notifier) wait(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-n.changes:
			return changedMsg{}
		case err := <-n.failures:
			return refreshFailedMsg{err: err}
		case <-ctx.Done():
			return nil
		}
	}
}
