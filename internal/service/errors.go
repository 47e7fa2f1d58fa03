// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrPodNotFound           = errors.New("pod not found")
	ErrSelectionModeDisabled = errors.New("selection mode is disabled")
	ErrMirrorUnavailable     = errors.New("pod mirror is not accepting work")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrAuthDisabled            = errors.New("token sign key is not configured")
	ErrEmptyOperator           = errors.New("empty operator")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
