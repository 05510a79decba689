// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from APP_*, ADAPTER_*, VIEWER_*, SERVER_*, WORKERS_*,
// LOG_* and CONFIG. Unset variables leave their fields zero so the builder
// can fall through to the next source.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse fare-card environment: %w", err)
	}
	return nil
}
