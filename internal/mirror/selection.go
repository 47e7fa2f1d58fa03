// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mirror

import "weak"

// SelectionMode reports whether the list is in selection mode.
func (l *PodList) SelectionMode() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.selectionMode
}

// NumSelected counts the selected pods.
func (l *PodList) NumSelected() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	n := 0
	for _, pod := range l.pods.Values() {
		if pod.Selected() {
			n++
		}
	}
	return n
}

// SelectedIDs returns the ids of the selected pods in list order.
func (l *PodList) SelectedIDs() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var ids []string
	for _, pod := range l.pods.Values() {
		if pod.Selected() {
			ids = append(ids, pod.ID())
		}
	}
	return ids
}

// SetSelectionMode enters or leaves selection mode. Entering selects nothing;
// leaving clears the selection.
func (l *PodList) SetSelectionMode(enabled bool) {
	l.post(func() {
		l.mu.Lock()
		if l.selectionMode == enabled {
			l.mu.Unlock()
			return
		}
		l.selectionMode = enabled
		l.mu.Unlock()

		if !enabled {
			l.setAllSelected(false)
		}
		l.forEachObserver(func(o Observer) {
			if so, ok := o.(SelectionObserver); ok {
				so.SelectionModeChanged(enabled)
			}
		})
	})
}

// Toggle flips the selection of one pod. It does nothing outside selection
// mode or for an id that is not listed.
func (l *PodList) Toggle(id string) {
	l.post(func() {
		if !l.SelectionMode() {
			return
		}
		if pod, ok := l.GetPod(id); ok {
			pod.setSelected(!pod.Selected())
		}
	})
}

// SelectAll selects every listed pod. It does nothing outside selection mode.
func (l *PodList) SelectAll() {
	l.post(func() {
		if l.SelectionMode() {
			l.setAllSelected(true)
		}
	})
}

// ClearSelection unselects every pod and keeps the selection mode as it is.
func (l *PodList) ClearSelection() {
	l.post(func() { l.setAllSelected(false) })
}

func (l *PodList) setAllSelected(selected bool) {
	for _, pod := range l.Pods() {
		pod.setSelected(selected)
	}
}

// selection keeps the num-selected counter current. A pod's selection lives
// on its handle, so a removed pod takes it along; the count only has to be
// redone.
type selection struct {
	NopObserver
	list *PodList
	last int
}

func (s *selection) ItemsChanged(int, int, int) {
	s.recompute()
}

func (s *selection) PodAdded(pod *Pod) {
	ref := weak.Make(s)
	pod.ConnectNotify(PodPropertySelected, func(*Pod) {
		if sel := ref.Value(); sel != nil {
			sel.recompute()
		}
	})
}

func (s *selection) recompute() {
	n := s.list.NumSelected()
	if n == s.last {
		return
	}
	s.last = n
	s.list.notifyCounter(CounterNumSelected, n)
}
