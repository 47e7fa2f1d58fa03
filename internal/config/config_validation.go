// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validate checks every section of the daemon's configuration and reports
// all failing sections at once.
func (cfg *ServerConfig) validate() error {
	return errors.Join(
		validateSection(cfg.App, ErrInvalidAppConfigs),
		validateSection(cfg.Adapter, ErrInvalidAdapterConfigs),
		validateSection(cfg.Server, ErrInvalidServerConfigs),
		validateSection(cfg.Workers, ErrInvalidWorkerConfigs),
	)
}

func (cfg *ClientConfig) validate() error {
	return errors.Join(
		validateSection(cfg.App, ErrInvalidAppConfigs),
		validateSection(cfg.Adapter, ErrInvalidAdapterConfigs),
		validateSection(cfg.Workers, ErrInvalidWorkerConfigs),
	)
}

func validateSection(section any, sentinel error) error {
	if err := validate.Struct(section); err != nil {
		return fmt.Errorf("%w: %w", sentinel, err)
	}
	return nil
}
