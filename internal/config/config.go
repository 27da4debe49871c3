// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the raw, merged configuration for go-pass-shell.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name for scalar fields.
//   - json / toml: keys used when reading a config file.
type StructuredConfig struct {
	App       App       `envPrefix:"APP_" json:"app" toml:"app"`
	Transport Transport `envPrefix:"TRANSPORT_" json:"transport" toml:"transport"`
	Protocol  Protocol  `envPrefix:"PROTOCOL_" json:"protocol" toml:"protocol"`
	UI        UI        `envPrefix:"UI_" json:"ui" toml:"ui"`

	// ConfigFilePath is the optional path to a JSON or TOML file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	ConfigFilePath string `env:"CONFIG" json:"-" toml:"-"`
}

// App holds process-level settings.
type App struct {
	// Name is used as the logger role and in the build info view.
	// Env: APP_NAME
	Name string `env:"NAME" json:"name" toml:"name"`

	// LogPath is the file the client logger appends to. The terminal is
	// owned by the UI, so logs never go to stdout.
	// Env: APP_LOG_PATH
	LogPath string `env:"LOG_PATH" json:"log_path" toml:"log_path"`
}

// Transport holds settings for the connection to the host process.
type Transport struct {
	// URL is the ws:// or wss:// endpoint of the host.
	// Env: TRANSPORT_URL
	URL string `env:"URL" json:"url" toml:"url"`

	// DialTimeout bounds the initial handshake.
	// Env: TRANSPORT_DIAL_TIMEOUT
	DialTimeout time.Duration `env:"DIAL_TIMEOUT" json:"dial_timeout" toml:"dial_timeout"`
}

// Protocol selects the message vocabulary spoken with the host.
type Protocol struct {
	// Resource is the managed resource kind, e.g. "account" or "email".
	// Env: PROTOCOL_RESOURCE
	Resource string `env:"RESOURCE" json:"resource" toml:"resource"`

	// Dialect is "flat" or "namespaced".
	// Env: PROTOCOL_DIALECT
	Dialect string `env:"DIALECT" json:"dialect" toml:"dialect"`

	// Features lists optional capabilities: "logout" and "open".
	// Env: PROTOCOL_FEATURES (comma separated)
	Features []string `env:"FEATURES" envSeparator:"," json:"features" toml:"features"`
}

// UI holds terminal presentation settings.
type UI struct {
	// NoticeTTL is how long a success or error notice stays on screen.
	// Env: UI_NOTICE_TTL
	NoticeTTL time.Duration `env:"NOTICE_TTL" json:"notice_ttl" toml:"notice_ttl"`

	// Inline disables the alternate screen buffer.
	// Env: UI_INLINE
	Inline bool `env:"INLINE" json:"inline" toml:"inline"`
}

// GetStructuredConfig loads and merges the configuration using the process
// arguments.
func GetStructuredConfig() (*StructuredConfig, error) {
	return LoadStructuredConfig(os.Args[1:])
}

// LoadStructuredConfig loads and merges the configuration, parsing args as
// command-line flags.
func LoadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withFile().
		build()
}
