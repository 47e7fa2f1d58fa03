// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mirror

// initState is a one-way latch: uninitialized until the first reconciliation
// completes, initialized forever after.
type initState uint8

const (
	uninitialized initState = iota
	initialized
)

// advance moves the latch to initialized and reports whether this call did it.
func (s *initState) advance() bool {
	if *s == initialized {
		return false
	}
	*s = initialized
	return true
}

func (s initState) done() bool {
	return s == initialized
}
