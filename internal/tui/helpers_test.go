// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pod-mirror/internal/logger"
	"github.com/MKhiriev/go-pod-mirror/internal/mirror"
	"github.com/MKhiriev/go-pod-mirror/models"
)

type stubLister struct {
	mu   sync.Mutex
	pods []models.PodReport
	err  error
}

func (s *stubLister) ListPods(context.Context, string) ([]models.PodReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pods, s.err
}

func (s *stubLister) set(pods ...models.PodReport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pods = pods
	s.err = nil
}

func (s *stubLister) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func report(id string, status models.PodStatus) models.PodReport {
	return models.PodReport{ID: &id, Name: "pod-" + id, Status: status}
}

// newList returns a list that applies every call before returning.
func newList(t *testing.T, lister mirror.Lister) *mirror.PodList {
	t.Helper()

	list := mirror.NewPodList(lister, mirror.InlineDispatcher{}, logger.Nop(),
		mirror.WithSpawner(func(f func()) { f() }))
	t.Cleanup(list.Close)
	return list
}

// newPanel builds a panel subscribed to list, the way TUI.Run does.
func newPanel(t *testing.T, list PodList) panelModel {
	t.Helper()

	n := newNotifier()
	t.Cleanup(list.Subscribe(n))
	return newPanelModel(context.Background(), list, n, models.NewAppBuildInfo("1.2.3", "2026-01-02", "abc123"))
}

func update(t *testing.T, m panelModel, msg tea.Msg) (panelModel, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(msg)
	pm, ok := next.(panelModel)
	require.True(t, ok, "Update returned %T", next)
	return pm, cmd
}

// press sends a key and then the redraw the list's notifications ask for.
func press(t *testing.T, m panelModel, k tea.KeyMsg) (panelModel, tea.Cmd) {
	t.Helper()

	m, cmd := update(t, m, k)
	m, _ = update(t, m, changedMsg{})
	return m, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	downKey  = tea.KeyMsg{Type: tea.KeyDown}
)
