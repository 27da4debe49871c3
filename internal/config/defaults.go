// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Built-in defaults, the lowest-priority configuration layer.
const (
	DefaultAppName     = "go-pass-shell"
	DefaultURL         = "ws://127.0.0.1:4000/shell"
	DefaultDialTimeout = 5 * time.Second
	DefaultResource    = "account"
	DefaultDialect     = "flat"
	DefaultNoticeTTL   = 3 * time.Second

	FeatureLogout = "logout"
	FeatureOpen   = "open"
	// FeatureNone replaces the default feature list with an empty one.
	FeatureNone = "none"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name: DefaultAppName,
		},
		Transport: Transport{
			URL:         DefaultURL,
			DialTimeout: DefaultDialTimeout,
		},
		Protocol: Protocol{
			Resource: DefaultResource,
			Dialect:  DefaultDialect,
			Features: []string{FeatureLogout},
		},
		UI: UI{
			NoticeTTL: DefaultNoticeTTL,
		},
	}
}
