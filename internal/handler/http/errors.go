// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pod-mirror/internal/mirror"
	"github.com/MKhiriev/go-pod-mirror/internal/service"
)

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
)

// ErrInvalidRequestBody is returned when a request body cannot be decoded.
var ErrInvalidRequestBody = errors.New("invalid request body")

var errorStatusMap = map[error]int{
	service.ErrPodNotFound:             http.StatusNotFound,
	service.ErrSelectionModeDisabled:   http.StatusConflict,
	service.ErrMirrorUnavailable:       http.StatusServiceUnavailable,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrAuthDisabled:            http.StatusUnauthorized,

	mirror.ErrRefreshFailed: http.StatusBadGateway,

	ErrInvalidRequestBody:         http.StatusBadRequest,
	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,

	context.DeadlineExceeded: http.StatusGatewayTimeout,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
