// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pod-mirror/internal/mirror"
	"github.com/MKhiriev/go-pod-mirror/models"
)

const (
	statusTTL     = 3 * time.Second
	defaultHeight = 15
	// lines taken by title, footer and help around the table
	chromeHeight = 9
	nameWidth    = 24
)

// panelModel shows the mirrored pods in a table. It owns no pod state: every
// changedMsg re-reads the list, and key presses are forwarded to the list as
// mutations whose effect comes back as notifications.
type panelModel struct {
	ctx       context.Context
	list      PodList
	notifier  *notifier
	buildInfo models.AppBuildInfo
	copyText  func(string) error

	table table.Model
	help  help.Model
	ids   []string

	stats         mirror.Stats
	listing       bool
	initialized   bool
	selectionMode bool
	numSelected   int

	status    string
	statusSeq int
	errMsg    string

	showBuildInfo bool
}

func newPanelModel(ctx context.Context, list PodList, n *notifier, buildInfo models.AppBuildInfo) panelModel {
	t := table.New(
		table.WithColumns(columns(false)),
		table.WithFocused(true),
		table.WithStyles(tableStyles()),
		table.WithHeight(defaultHeight),
	)

	m := panelModel{
		ctx:       ctx,
		list:      list,
		notifier:  n,
		buildInfo: buildInfo,
		copyText:  clipboard.WriteAll,
		table:     t,
		help:      help.New(),
	}
	m.reload()
	return m
}

func columns(selectionMode bool) []table.Column {
	cols := []table.Column{
		{Title: "NAME", Width: nameWidth},
		{Title: "STATUS", Width: 10},
		{Title: "ID", Width: 12},
		{Title: "CONTAINERS", Width: 10},
		{Title: "CREATED", Width: 16},
	}
	if selectionMode {
		cols = append([]table.Column{{Title: " ", Width: 3}}, cols...)
	}
	return cols
}

func (m panelModel) Init() tea.Cmd {
	return m.notifier.wait(m.ctx)
}

func (m panelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case changedMsg:
		m.reload()
		return m, m.notifier.wait(m.ctx)
	case refreshFailedMsg:
		m.errMsg = fmt.Sprintf("Refresh failed: %v", msg.err)
		return m, m.notifier.wait(m.ctx)
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Copy failed: %v", msg.err)
			return m, nil
		}
		return m.setStatus(fmt.Sprintf("Copied %d id(s)", msg.count))
	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.table.SetWidth(msg.Width - appStyle.GetHorizontalPadding())
		m.table.SetHeight(max(msg.Height-chromeHeight, 3))
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m panelModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.clear, keys.info) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.info):
		m.showBuildInfo = true
		return m, nil
	case key.Matches(msg, keys.help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, keys.refresh):
		m.errMsg = ""
		m.list.Refresh(m.ctx, "", m.notifier.RefreshFailed)
		return m.setStatus("Refreshing...")
	case key.Matches(msg, keys.selection):
		m.list.SetSelectionMode(!m.selectionMode)
		return m, nil
	case key.Matches(msg, keys.toggle):
		if !m.selectionMode {
			return m.setStatus("Press s to select pods")
		}
		if id, ok := m.currentID(); ok {
			m.list.Toggle(id)
		}
		return m, nil
	case key.Matches(msg, keys.selectAll):
		if !m.selectionMode {
			return m.setStatus("Press s to select pods")
		}
		m.list.SelectAll()
		return m, nil
	case key.Matches(msg, keys.clear):
		m.errMsg = ""
		if m.selectionMode {
			m.list.ClearSelection()
		}
		return m, nil
	case key.Matches(msg, keys.copy):
		return m, m.cmdCopySelected()
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m panelModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(overlayBoxStyle.Render(renderBuildInfoWindow(m.buildInfo)))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Pods"))
	if m.selectionMode {
		b.WriteString("  ")
		b.WriteString(modeStyle.Render("SELECT"))
	}
	b.WriteString("\n\n")

	if !m.initialized {
		b.WriteString("Loading pods...\n")
	} else if len(m.ids) == 0 {
		b.WriteString("No pods\n")
	} else {
		b.WriteString(m.table.View())
		b.WriteString("\n")
	}

	b.WriteString(footerStyle.Render(m.footer()))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(m.help.View(keys)))
	return appStyle.Render(b.String())
}

func (m panelModel) footer() string {
	parts := []string{
		fmt.Sprintf("total %d", m.stats.Len),
		counterText(models.PodStatusRunning, "running", m.stats.Running),
		counterText(models.PodStatusPaused, "paused", m.stats.Paused),
		counterText(models.PodStatusDegraded, "degraded", m.stats.Degraded),
		counterText(models.PodStatusExited, "not running", m.stats.NotRunning),
	}
	if m.selectionMode {
		parts = append(parts, fmt.Sprintf("selected %d", m.numSelected))
	}
	if m.listing {
		parts = append(parts, "listing...")
	}
	return strings.Join(parts, "  ")
}

// reload takes a fresh snapshot of the list and keeps the cursor on the same
// pod when it is still listed.
func (m *panelModel) reload() {
	cursorID, hadCursor := m.currentID()

	m.stats = m.list.Stats()
	m.listing = m.list.Listing()
	m.initialized = m.list.Initialized()
	m.numSelected = m.list.NumSelected()

	if mode := m.list.SelectionMode(); mode != m.selectionMode {
		m.selectionMode = mode
		// rows must match the new column count before the columns change
		m.table.SetRows(nil)
		m.table.SetColumns(columns(mode))
	}

	pods := m.list.Pods()
	rows := make([]table.Row, len(pods))
	m.ids = make([]string, len(pods))
	cursor := m.table.Cursor()
	for i, pod := range pods {
		m.ids[i] = pod.ID()
		rows[i] = podRow(pod, m.selectionMode)
		if hadCursor && pod.ID() == cursorID {
			cursor = i
		}
	}
	m.table.SetRows(rows)
	m.table.SetCursor(min(cursor, max(len(rows)-1, 0)))
}

func podRow(pod *mirror.Pod, selectionMode bool) table.Row {
	created := "-"
	if t := pod.Created(); !t.IsZero() {
		created = t.Local().Format("2006-01-02 15:04")
	}

	row := table.Row{
		fitText(pod.Name(), nameWidth),
		string(pod.Status()),
		shortID(pod.ID()),
		strconv.Itoa(pod.NumContainers()),
		created,
	}
	if selectionMode {
		mark := "[ ]"
		if pod.Selected() {
			mark = "[x]"
		}
		row = append(table.Row{mark}, row...)
	}
	return row
}

func (m panelModel) currentID() (string, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.ids) {
		return "", false
	}
	return m.ids[i], true
}

func (m panelModel) setStatus(status string) (panelModel, tea.Cmd) {
	m.status = status
	m.statusSeq++
	seq := m.statusSeq
	return m, tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}

func (m panelModel) cmdCopySelected() tea.Cmd {
	ids := m.list.SelectedIDs()
	if len(ids) == 0 {
		if id, ok := m.currentID(); ok {
			ids = []string{id}
		}
	}
	copyText := m.copyText

	return func() tea.Msg {
		if len(ids) == 0 {
			return copiedMsg{}
		}
		if err := copyText(strings.Join(ids, "\n")); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{count: len(ids)}
	}
}
