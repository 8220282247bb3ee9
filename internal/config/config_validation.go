// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] can be handed to
// the listener constructor. With defaults merged in this only fails when the
// builder was used without them.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.Host == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Server.Port < minPort || cfg.Server.Port > maxPort {
		return fmt.Errorf("%w: port %d", ErrInvalidServerConfigs, cfg.Server.Port)
	}

	return nil
}
