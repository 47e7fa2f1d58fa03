// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-pod-mirror/models"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	footerStyle     = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true, false, false, false).PaddingTop(0)
	modeStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
)

var statusColors = map[models.PodStatus]lipgloss.Color{
	models.PodStatusRunning:  lipgloss.Color("10"),
	models.PodStatusPaused:   lipgloss.Color("11"),
	models.PodStatusDegraded: lipgloss.Color("208"),
	models.PodStatusExited:   lipgloss.Color("8"),
	models.PodStatusStopped:  lipgloss.Color("8"),
	models.PodStatusDead:     lipgloss.Color("9"),
}

func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.Reverse(true)
	return s
}

// counterText renders a footer counter in the color of the status it counts.
func counterText(status models.PodStatus, label string, n int) string {
	text := fmt.Sprintf("%s %d", label, n)
	color, ok := statusColors[status]
	if !ok {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
