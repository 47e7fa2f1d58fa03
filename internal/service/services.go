// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-pod-mirror/internal/config"
	"github.com/MKhiriev/go-pod-mirror/internal/logger"
)

type Services struct {
	PodService     PodService
	AuthService    AuthService
	AppInfoService AppInfoService
}

func NewServices(pods PodMirror, cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		PodService:     NewPodService(pods, logger),
		AuthService:    NewAuthService(cfg, logger),
		AppInfoService: appInfoService,
	}, nil
}
