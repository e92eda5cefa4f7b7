// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid*Configs sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	switch cfg.App.Env {
	case EnvDevelopment, EnvProduction:
	default:
		return fmt.Errorf("%w: unknown environment %q", ErrInvalidAppConfigs, cfg.App.Env)
	}

	if cfg.App.IsProduction() && cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required in production", ErrInvalidAppConfigs)
	}

	if cfg.App.TokenDuration <= 0 || cfg.App.OTPDuration <= 0 {
		return fmt.Errorf("%w: token and OTP durations must be positive", ErrInvalidAppConfigs)
	}

	if cfg.App.PasswordHashCost < bcrypt.MinCost || cfg.App.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: password hash cost must be in [%d, %d]",
			ErrInvalidAppConfigs, bcrypt.MinCost, bcrypt.MaxCost)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: address and request timeout are required", ErrInvalidServerConfigs)
	}

	if cfg.Storage.DB.DSN != "" && cfg.Storage.DB.ConnectTimeout <= 0 {
		return fmt.Errorf("%w: connect timeout must be positive", ErrInvalidStorageConfigs)
	}

	if err := cfg.Notifier.validate(); err != nil {
		return err
	}

	if cfg.Workers.OTPSweepInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (n Notifier) validate() error {
	switch n.Transport {
	case TransportLog:
	case TransportSMTP:
		if n.SMTP.Host == "" || n.SMTP.Port == 0 {
			return fmt.Errorf("%w: smtp host and port are required", ErrInvalidNotifierConfigs)
		}
	case TransportHTTP:
		if n.HTTP.URL == "" {
			return fmt.Errorf("%w: http url is required", ErrInvalidNotifierConfigs)
		}
	case TransportAMQP:
		if n.AMQP.URL == "" || n.AMQP.Queue == "" {
			return fmt.Errorf("%w: amqp url and queue are required", ErrInvalidNotifierConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown transport %q", ErrInvalidNotifierConfigs, n.Transport)
	}

	return nil
}
