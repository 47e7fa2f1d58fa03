// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pod-mirror/internal/config"
	"github.com/MKhiriev/go-pod-mirror/internal/logger"
	"github.com/MKhiriev/go-pod-mirror/internal/mock"
	"github.com/MKhiriev/go-pod-mirror/internal/tui"
	"github.com/MKhiriev/go-pod-mirror/models"
)

func clientConfig() *config.ClientConfig {
	return &config.ClientConfig{
		Workers: config.Workers{
			RefreshInterval: time.Hour,
			EventsRetryMin:  10 * time.Millisecond,
			EventsRetryMax:  20 * time.Millisecond,
		},
	}
}

// quitOnStart makes the panel read a single "q" and leave.
func quitOnStart() tui.Option {
	return tui.WithProgramOptions(
		tea.WithInput(strings.NewReader("q")),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
	)
}

func expectIdlePodman(podman *mock.MockPodmanAdapter) {
	podman.EXPECT().ListPods(gomock.Any(), "").Return(nil, nil).AnyTimes()
	podman.EXPECT().StreamEvents(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ func(models.Event)) error {
			<-ctx.Done()
			return ctx.Err()
		}).AnyTimes()
}

func TestNewApp_RequiresAdapter(t *testing.T) {
	app, err := NewApp(nil, clientConfig(), models.AppBuildInfo{}, logger.Nop())

	assert.ErrorIs(t, err, ErrNoAdapter)
	assert.Nil(t, app)
}

func TestApp_Run(t *testing.T) {
	tests := []struct {
		name    string
		pingErr error
	}{
		{name: "podman answers"},
		{name: "podman down", pingErr: errors.New("connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			podman := mock.NewMockPodmanAdapter(ctrl)
			podman.EXPECT().Ping(gomock.Any()).Return(tt.pingErr)
			expectIdlePodman(podman)

			app, err := NewApp(podman, clientConfig(), models.AppBuildInfo{}, logger.Nop(), quitOnStart())
			require.NoError(t, err)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			assert.NoError(t, app.Run(ctx))
			assert.NoError(t, ctx.Err())
		})
	}
}

func TestApp_ImplementsClient(t *testing.T) {
	var _ Client = (*App)(nil)
}
