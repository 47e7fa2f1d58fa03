// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pod-mirror/internal/logger"
	"github.com/MKhiriev/go-pod-mirror/models"
)

var ErrNoPodList = errors.New("tui: pod list is required")

// TUI is the terminal pods panel. It renders a [PodList] and subscribes to it
// for the time [TUI.Run] is running.
type TUI struct {
	list      PodList
	notifier  *notifier
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	programOptions []tea.ProgramOption
}

// Option configures a [TUI].
type Option func(*TUI)

// WithProgramOptions appends options to the bubbletea program, for example
// to read keys from somewhere other than the terminal.
func WithProgramOptions(opts ...tea.ProgramOption) Option {
	return func(t *TUI) {
		t.programOptions = append(t.programOptions, opts...)
	}
}

func New(list PodList, buildInfo models.AppBuildInfo, log *logger.Logger, opts ...Option) (*TUI, error) {
	if list == nil {
		return nil, ErrNoPodList
	}
	if log == nil {
		log = logger.Nop()
	}

	t := &TUI{
		list:           list,
		notifier:       newNotifier(),
		buildInfo:      buildInfo,
		logger:         log,
		programOptions: []tea.ProgramOption{tea.WithAltScreen()},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// RefreshFailed shows a refresh failure in the panel. It fits the onErr
// callbacks of the list and the background workers.
func (t *TUI) RefreshFailed(err error) {
	t.logger.Warn().Err(err).Msg("refresh failed")
	t.notifier.RefreshFailed(err)
}

// Run shows the panel and blocks until the user quits or ctx ends. Leaving
// because ctx ended is not an error.
func (t *TUI) Run(ctx context.Context) error {
	unsubscribe := t.list.Subscribe(t.notifier)
	defer unsubscribe()

	model := newPanelModel(ctx, t.list, t.notifier, t.buildInfo)
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.programOptions...)

	t.logger.Info().Msg("pods panel started")
	_, err := tea.NewProgram(model, opts...).Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		err = nil
	}
	t.logger.Info().Err(err).Msg("pods panel closed")

	return err
}
