// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Each configuration group is checked separately so the returned error names
// the group at fault: [ErrInvalidAppConfigs], [ErrInvalidServerConfigs] or
// [ErrInvalidMongoConfigs], wrapping the validator's field-level report.
func (cfg *StructuredConfig) validate() error {
	if err := validate.Struct(cfg.App); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	if err := cfg.validateServer(); err != nil {
		return err
	}

	if err := validate.Struct(cfg.Mongo); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMongoConfigs, err)
	}

	return nil
}

func (cfg *StructuredConfig) validateServer() error {
	if err := validate.Struct(cfg.Server); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidServerConfigs, err)
	}
	return nil
}
