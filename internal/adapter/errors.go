// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("podman internal error")
	ErrServiceUnavailable  = errors.New("podman service unavailable")

	ErrEmptyAddress      = errors.New("empty podman address")
	ErrEventStreamClosed = errors.New("event stream closed")
)
