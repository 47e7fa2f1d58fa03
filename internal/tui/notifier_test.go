// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pod-mirror/internal/mirror"
	"github.com/MKhiriev/go-pod-mirror/models"
)

func TestNotifier_CoalescesChanges(t *testing.T) {
	n := newNotifier()

	n.ItemsChanged(0, 0, 3)
	n.CounterChanged(mirror.CounterLen, 3)
	n.ListingChanged(false)
	n.Initialized()

	assert.Equal(t, changedMsg{}, n.wait(context.Background())())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Nil(t, n.wait(ctx)(), "only one redraw is pending")
}

func TestNotifier_RefreshFailed(t *testing.T) {
	n := newNotifier()

	n.RefreshFailed(mirror.ErrRefreshFailed)
	n.RefreshFailed(context.DeadlineExceeded)

	msg := n.wait(context.Background())()
	require.IsType(t, refreshFailedMsg{}, msg)
	assert.ErrorIs(t, msg.(refreshFailedMsg).err, mirror.ErrRefreshFailed)
}

func TestNotifier_WatchesPodProperties(t *testing.T) {
	lister := &stubLister{}
	lister.set(report("a", models.PodStatusRunning))
	list := newList(t, lister)
	list.Refresh(context.Background(), "", nil)

	pod, ok := list.GetPod("a")
	require.True(t, ok)

	// not subscribed to the list, so only the pod handlers reach it
	n := newNotifier()
	n.PodAdded(pod)

	list.Refresh(context.Background(), "a", nil)
	assert.Empty(t, n.changes, "nothing changed")

	renamed := report("a", models.PodStatusRunning)
	renamed.Name = "renamed"
	lister.set(renamed)
	list.Refresh(context.Background(), "a", nil)
	assert.Len(t, n.changes, 1)
	drain(n)

	lister.set(report("a", models.PodStatusDegraded))
	list.Refresh(context.Background(), "a", nil)
	assert.Len(t, n.changes, 1)
}

func TestNotifier_SelectionMode(t *testing.T) {
	list := newList(t, &stubLister{})
	n := newNotifier()
	t.Cleanup(list.Subscribe(n))

	list.SetSelectionMode(true)

	assert.Len(t, n.changes, 1)
}

func drain(n *notifier) {
	for {
		select {
		case <-n.changes:
		default:
			return
		}
	}
}
