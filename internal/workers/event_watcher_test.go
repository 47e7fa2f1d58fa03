// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pod-mirror/internal/adapter"
	"github.com/MKhiriev/go-pod-mirror/internal/logger"
	"github.com/MKhiriev/go-pod-mirror/internal/mock"
	"github.com/MKhiriev/go-pod-mirror/models"
)

// blockUntilCancelled is a StreamEvents stub that behaves like a healthy,
// quiet stream.
func blockUntilCancelled(ctx context.Context, _ string, _ func(models.Event)) error {
	<-ctx.Done()
	return ctx.Err()
}

func TestEventWatcher_FeedsEventsAndResyncsAfterInterruption(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mock.NewMockPodmanAdapter(ctrl)
	list := &fakeMirror{}

	event := models.Event{Type: "pod", Action: "start", Actor: models.EventActor{ID: "a1"}}
	gomock.InOrder(
		source.EXPECT().StreamEvents(gomock.Any(), PodEventType, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, handle func(models.Event)) error {
				handle(event)
				return adapter.ErrEventStreamClosed
			}),
		source.EXPECT().StreamEvents(gomock.Any(), PodEventType, gomock.Any()).
			DoAndReturn(blockUntilCancelled),
	)

	w := NewEventWatcher(source, list, time.Millisecond, 5*time.Millisecond, nil, logger.Nop())
	w.Start(context.Background())

	require.Eventually(t, func() bool { return list.refreshCount() == 1 }, time.Second, time.Millisecond)
	w.Stop()

	list.mu.Lock()
	defer list.mu.Unlock()
	require.Len(t, list.events, 1)
	assert.Equal(t, event, list.events[0])
	assert.Equal(t, []string{""}, list.refreshes)
}

func TestEventWatcher_RetriesFailingStream(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mock.NewMockPodmanAdapter(ctrl)
	list := &fakeMirror{}

	gomock.InOrder(
		source.EXPECT().StreamEvents(gomock.Any(), PodEventType, gomock.Any()).
			Return(adapter.ErrServiceUnavailable).Times(3),
		source.EXPECT().StreamEvents(gomock.Any(), PodEventType, gomock.Any()).
			DoAndReturn(blockUntilCancelled),
	)

	w := NewEventWatcher(source, list, time.Millisecond, 2*time.Millisecond, nil, logger.Nop())
	w.Start(context.Background())

	require.Eventually(t, func() bool { return list.refreshCount() == 3 }, time.Second, time.Millisecond)
	w.Stop()

	assert.Zero(t, list.eventCount())
}

func TestEventWatcher_StreamEndingWithoutErrorIsRetried(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mock.NewMockPodmanAdapter(ctrl)
	list := &fakeMirror{}

	gomock.InOrder(
		source.EXPECT().StreamEvents(gomock.Any(), PodEventType, gomock.Any()).Return(nil),
		source.EXPECT().StreamEvents(gomock.Any(), PodEventType, gomock.Any()).
			DoAndReturn(blockUntilCancelled),
	)

	w := NewEventWatcher(source, list, time.Millisecond, time.Millisecond, nil, logger.Nop())
	w.Start(context.Background())

	require.Eventually(t, func() bool { return list.refreshCount() == 1 }, time.Second, time.Millisecond)
	w.Stop()
}

func TestEventWatcher_ForwardsEventRefreshFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mock.NewMockPodmanAdapter(ctrl)
	boom := errors.New("refresh failed")
	list := &fakeMirror{failWith: boom}

	source.EXPECT().StreamEvents(gomock.Any(), PodEventType, gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, handle func(models.Event)) error {
			handle(models.Event{Action: "create", Actor: models.EventActor{ID: "x"}})
			<-ctx.Done()
			return ctx.Err()
		})

	var mu sync.Mutex
	var got []error
	w := NewEventWatcher(source, list, time.Millisecond, time.Millisecond, func(err error) {
		mu.Lock()
		got = append(got, err)
		mu.Unlock()
	}, logger.Nop())
	w.Start(context.Background())

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 1
	}, time.Second, time.Millisecond)
	w.Stop()

	mu.Lock()
	defer mu.Unlock()
	assert.ErrorIs(t, got[0], boom)
}

func TestEventWatcher_StopWithoutStart(t *testing.T) {
	w := NewEventWatcher(nil, &fakeMirror{}, 0, 0, nil, nil)

	// Should not block or panic
	w.Stop()
	assert.Equal(t, defaultRetryMin, w.retryMin)
	assert.Equal(t, defaultRetryMax, w.retryMax)
}

func TestNewEventWatcher_CapBelowMinimum(t *testing.T) {
	w := NewEventWatcher(nil, &fakeMirror{}, 10*time.Second, time.Second, nil, logger.Nop())

	assert.Equal(t, 10*time.Second, w.retryMax)
}
