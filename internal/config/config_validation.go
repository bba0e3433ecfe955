// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// ValidateStorage checks the settings needed to reach the database.
func (cfg *StructuredConfig) ValidateStorage() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return ErrUnsupportedDriver
	}

	return nil
}

// ValidateServer checks that the merged configuration can start the API
// server: a reachable database, a token sign key and a listen address.
func (cfg *StructuredConfig) ValidateServer() error {
	var errs []error

	if err := cfg.ValidateStorage(); err != nil {
		errs = append(errs, err)
	}

	if cfg.App.TokenSignKey == "" {
		errs = append(errs, ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		errs = append(errs, ErrInvalidServerConfigs)
	}

	return errors.Join(errs...)
}

func (cfg *ClientConfig) validate() error {
	if cfg.BaseURL == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
