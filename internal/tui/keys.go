// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	selection key.Binding
	toggle    key.Binding
	selectAll key.Binding
	clear     key.Binding
	refresh   key.Binding
	copy      key.Binding
	info      key.Binding
	help      key.Binding
	quit      key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	selection: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "selection mode")),
	toggle:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
	selectAll: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select all")),
	clear:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
	refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	copy:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy ids")),
	info:      key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "version")),
	help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.selection, k.toggle, k.refresh, k.copy, k.help, k.quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down},
		{k.selection, k.toggle, k.selectAll, k.clear},
		{k.refresh, k.copy, k.info},
		{k.help, k.quit},
	}
}
