// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package collection provides the insertion-ordered, unique-keyed map the
// mirror keeps its handles in.
//
// An [Ordered] is addressable both by key and by position. Positions follow
// insertion order: an updated entry keeps its place, a new one is appended,
// and removing position k shifts every later position down by one. The type
// does no locking; callers serialize access.
package collection

type entry[V any] struct {
	key   string
	value V
}

// Ordered is an insertion-ordered map from string keys to values.
// The zero value is ready to use.
type Ordered[V any] struct {
	entries []entry[V]
	index   map[string]int
}

// New returns an empty [Ordered] with room for capacity entries.
func New[V any](capacity int) *Ordered[V] {
	return &Ordered[V]{
		entries: make([]entry[V], 0, capacity),
		index:   make(map[string]int, capacity),
	}
}

// Len returns the number of entries.
func (o *Ordered[V]) Len() int {
	return len(o.entries)
}

// Get returns the value stored under key.
func (o *Ordered[V]) Get(key string) (V, bool) {
	i, ok := o.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	return o.entries[i].value, true
}

// IndexOf returns the position of key, or -1 when it is absent.
func (o *Ordered[V]) IndexOf(key string) int {
	if i, ok := o.index[key]; ok {
		return i
	}
	return -1
}

// At returns the value at position i.
func (o *Ordered[V]) At(i int) (V, bool) {
	if i < 0 || i >= len(o.entries) {
		var zero V
		return zero, false
	}
	return o.entries[i].value, true
}

// Upsert is the only way values enter the map. When key is absent, create is
// called and its result appended at the end; otherwise update is called with
// the stored value, which keeps its position. Upsert returns the stored value,
// its position and whether it was created.
func (o *Ordered[V]) Upsert(key string, create func() V, update func(V)) (V, int, bool) {
	if o.index == nil {
		o.index = make(map[string]int)
	}

	if i, ok := o.index[key]; ok {
		v := o.entries[i].value
		if update != nil {
			update(v)
		}
		return v, i, false
	}

	v := create()
	o.entries = append(o.entries, entry[V]{key: key, value: v})
	i := len(o.entries) - 1
	o.index[key] = i
	return v, i, true
}

// Remove deletes key and returns the removed value and the position it held.
// The relative order of the remaining entries is preserved.
func (o *Ordered[V]) Remove(key string) (V, int, bool) {
	i, ok := o.index[key]
	if !ok {
		var zero V
		return zero, -1, false
	}

	v := o.entries[i].value
	copy(o.entries[i:], o.entries[i+1:])
	var zero entry[V]
	o.entries[len(o.entries)-1] = zero
	o.entries = o.entries[:len(o.entries)-1]

	delete(o.index, key)
	for j := i; j < len(o.entries); j++ {
		o.index[o.entries[j].key] = j
	}

	return v, i, true
}

// Keys returns the keys in order.
func (o *Ordered[V]) Keys() []string {
	keys := make([]string, len(o.entries))
	for i, e := range o.entries {
		keys[i] = e.key
	}
	return keys
}

// Values returns the values in order.
func (o *Ordered[V]) Values() []V {
	values := make([]V, len(o.entries))
	for i, e := range o.entries {
		values[i] = e.value
	}
	return values
}
