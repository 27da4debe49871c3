// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads the APP_, TRANSPORT_, PROTOCOL_ and UI_ variables plus
// CONFIG. PROTOCOL_FEATURES entries are trimmed and lower-cased, and empty
// entries are dropped, so "logout, Open," reads as [logout open].
func parseEnv() (*StructuredConfig, error) {
	cfg, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	if cfg.Protocol.Features != nil {
		features := make([]string, 0, len(cfg.Protocol.Features))
		for _, f := range cfg.Protocol.Features {
			if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
				features = append(features, f)
			}
		}
		cfg.Protocol.Features = features
	}

	return &cfg, nil
}
