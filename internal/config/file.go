// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors [StructuredConfig] with durations written as strings
// like "5s" in both JSON and TOML.
type fileConfig struct {
	App struct {
		Name    string `json:"name" toml:"name"`
		LogPath string `json:"log_path" toml:"log_path"`
	} `json:"app" toml:"app"`

	Transport struct {
		URL         string   `json:"url" toml:"url"`
		DialTimeout Duration `json:"dial_timeout" toml:"dial_timeout"`
	} `json:"transport" toml:"transport"`

	Protocol struct {
		Resource string   `json:"resource" toml:"resource"`
		Dialect  string   `json:"dialect" toml:"dialect"`
		Features []string `json:"features" toml:"features"`
	} `json:"protocol" toml:"protocol"`

	UI struct {
		NoticeTTL Duration `json:"notice_ttl" toml:"notice_ttl"`
		Inline    bool     `json:"inline" toml:"inline"`
	} `json:"ui" toml:"ui"`
}

// parseFile reads a config file, choosing the decoder by extension.
// Files ending in .toml are TOML, everything else is JSON.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding toml configs: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return &StructuredConfig{
		App: App{
			Name:    fc.App.Name,
			LogPath: fc.App.LogPath,
		},
		Transport: Transport{
			URL:         fc.Transport.URL,
			DialTimeout: time.Duration(fc.Transport.DialTimeout),
		},
		Protocol: Protocol{
			Resource: fc.Protocol.Resource,
			Dialect:  fc.Protocol.Dialect,
			Features: fc.Protocol.Features,
		},
		UI: UI{
			NoticeTTL: time.Duration(fc.UI.NoticeTTL),
			Inline:    fc.UI.Inline,
		},
	}, nil
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" in JSON and TOML. Bare JSON numbers are nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.UnmarshalText([]byte(value))
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d *Duration) UnmarshalText(text []byte) error {
	tmp, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
