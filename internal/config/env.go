// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from the process environment via caarlos0/env,
// following the `env` and `envPrefix` tags of [StructuredConfig].
//
// Variables that are exported but empty are dropped first, so `APP_HASH_KEY=`
// in a shell profile does not count as a value.
func parseEnv(cfg any) error {
	environ := env.ToMap(os.Environ())
	for k, v := range environ {
		if v == "" {
			delete(environ, k)
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
