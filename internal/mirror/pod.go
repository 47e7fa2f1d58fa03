// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mirror

import (
	"maps"
	"slices"
	"sync"
	"time"
	"weak"

	"github.com/MKhiriev/go-pod-mirror/models"
)

// PodProperty names a pod attribute that observers can watch.
type PodProperty int

const (
	PodPropertyName PodProperty = iota
	PodPropertyStatus
	PodPropertyNumContainers
	PodPropertySelected
)

// HandlerID identifies a pod subscription for [Pod.Disconnect].
type HandlerID uint64

type podHandler struct {
	id   HandlerID
	prop PodProperty
	fn   func(*Pod)
}

// Pod is the local handle of one remote pod. A handle lives as long as the pod
// is listed: updates are applied to it in place, so references held by
// observers stay valid. Reads are safe from any goroutine.
type Pod struct {
	id    string
	owner weak.Pointer[PodList]

	mu         sync.RWMutex
	name       string
	status     models.PodStatus
	created    time.Time
	infraID    string
	namespace  string
	cgroup     string
	networks   []string
	labels     map[string]string
	containers []models.PodContainer
	selected   bool

	handlersMu      sync.Mutex
	nextHandlerID   HandlerID
	handlers        []podHandler
	deletedHandlers []podHandler
}

func newPod(owner *PodList, id string, report models.PodReport) *Pod {
	p := &Pod{id: id, owner: weak.Make(owner)}
	p.apply(report)
	return p
}

// ID returns the Podman id of the pod.
func (p *Pod) ID() string {
	return p.id
}

// List returns the list that owns the pod, or nil once that list is gone.
func (p *Pod) List() *PodList {
	return p.owner.Value()
}

func (p *Pod) Name() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.name
}

func (p *Pod) Status() models.PodStatus {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.status
}

func (p *Pod) Created() time.Time {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.created
}

func (p *Pod) InfraID() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.infraID
}

func (p *Pod) Namespace() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.namespace
}

func (p *Pod) Cgroup() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.cgroup
}

func (p *Pod) Networks() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Clone(p.networks)
}

func (p *Pod) Labels() map[string]string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return maps.Clone(p.labels)
}

func (p *Pod) Containers() []models.PodContainer {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Clone(p.containers)
}

// NumContainers counts the pod's containers, the infra container included.
func (p *Pod) NumContainers() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.containers)
}

// Selected reports whether the pod is part of the list's selection.
func (p *Pod) Selected() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.selected
}

// ConnectNotify calls fn every time prop changes value.
func (p *Pod) ConnectNotify(prop PodProperty, fn func(*Pod)) HandlerID {
	p.handlersMu.Lock()
	defer p.handlersMu.Unlock()

	p.nextHandlerID++
	p.handlers = append(p.handlers, podHandler{id: p.nextHandlerID, prop: prop, fn: fn})
	return p.nextHandlerID
}

// ConnectDeleted calls fn once the pod has been removed from its list.
func (p *Pod) ConnectDeleted(fn func(*Pod)) HandlerID {
	p.handlersMu.Lock()
	defer p.handlersMu.Unlock()

	p.nextHandlerID++
	p.deletedHandlers = append(p.deletedHandlers, podHandler{id: p.nextHandlerID, fn: fn})
	return p.nextHandlerID
}

// Disconnect removes a handler registered with ConnectNotify or ConnectDeleted.
func (p *Pod) Disconnect(id HandlerID) {
	p.handlersMu.Lock()
	defer p.handlersMu.Unlock()

	match := func(h podHandler) bool { return h.id == id }
	p.handlers = slices.DeleteFunc(p.handlers, match)
	p.deletedHandlers = slices.DeleteFunc(p.deletedHandlers, match)
}

// View converts the pod into its API representation.
func (p *Pod) View(position int) models.PodView {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return models.PodView{
		ID:            p.id,
		Name:          p.name,
		Status:        p.status,
		Created:       p.created,
		InfraID:       p.infraID,
		Namespace:     p.namespace,
		Networks:      slices.Clone(p.networks),
		Labels:        maps.Clone(p.labels),
		NumContainers: len(p.containers),
		Selected:      p.selected,
		Position:      position,
	}
}

// update applies a newer snapshot of the same pod and notifies the watchers
// of every property whose value changed.
func (p *Pod) update(report models.PodReport) {
	p.mu.Lock()
	oldName, oldStatus, oldNum := p.name, p.status, len(p.containers)
	p.apply(report)
	changed := make([]PodProperty, 0, 3)
	if p.name != oldName {
		changed = append(changed, PodPropertyName)
	}
	if p.status != oldStatus {
		changed = append(changed, PodPropertyStatus)
	}
	if len(p.containers) != oldNum {
		changed = append(changed, PodPropertyNumContainers)
	}
	p.mu.Unlock()

	for _, prop := range changed {
		p.notify(prop)
	}
}

// apply copies the snapshot fields. The caller holds p.mu or owns p exclusively.
func (p *Pod) apply(report models.PodReport) {
	p.name = report.Name
	p.status = report.Status
	if p.status == "" {
		p.status = models.PodStatusUnknown
	}
	p.created = report.Created
	p.infraID = report.InfraID
	p.namespace = report.Namespace
	p.cgroup = report.Cgroup
	p.networks = slices.Clone(report.Networks)
	p.labels = maps.Clone(report.Labels)
	p.containers = slices.Clone(report.Containers)
}

func (p *Pod) setSelected(selected bool) {
	p.mu.Lock()
	if p.selected == selected {
		p.mu.Unlock()
		return
	}
	p.selected = selected
	p.mu.Unlock()

	p.notify(PodPropertySelected)
}

// dropSelection clears the flag without notifying; used when the pod leaves
// its list.
func (p *Pod) dropSelection() {
	p.mu.Lock()
	p.selected = false
	p.mu.Unlock()
}

func (p *Pod) notify(prop PodProperty) {
	p.handlersMu.Lock()
	fns := make([]func(*Pod), 0, len(p.handlers))
	for _, h := range p.handlers {
		if h.prop == prop {
			fns = append(fns, h.fn)
		}
	}
	p.handlersMu.Unlock()

	for _, fn := range fns {
		fn(p)
	}
}

func (p *Pod) emitDeleted() {
	p.handlersMu.Lock()
	fns := make([]func(*Pod), 0, len(p.deletedHandlers))
	for _, h := range p.deletedHandlers {
		fns = append(fns, h.fn)
	}
	p.handlersMu.Unlock()

	for _, fn := range fns {
		fn(p)
	}
}
