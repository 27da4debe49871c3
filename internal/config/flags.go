// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"
)

// EndpointURL holds a validated ws:// or wss:// address.
// It implements the flag.Value interface.
type EndpointURL struct {
	u *url.URL
}

// FeatureList is a comma-separated list of feature names.
// It implements the flag.Value interface.
type FeatureList []string

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-u host endpoint, ws://host:port/path
//	-dial-timeout handshake timeout (e.g., "5s")
//	-resource managed resource kind (e.g., "account", "email")
//	-dialect message dialect, "flat" or "namespaced"
//	-features comma-separated optional features ("logout,open")
//	-notice-ttl how long notices stay visible (e.g., "3s")
//	-inline render without the alternate screen
//	-log log file path
//	-c/-config JSON or TOML file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var endpoint EndpointURL
	var features FeatureList
	var dialTimeout, noticeTTL time.Duration
	var resource, dialect, logPath, configPath string
	var inline bool

	fs := flag.NewFlagSet("go-pass-shell", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&endpoint, "u", "Host endpoint ws://host:port/path")
	fs.DurationVar(&dialTimeout, "dial-timeout", 0, "Handshake timeout (e.g., 5s)")
	fs.StringVar(&resource, "resource", "", "Managed resource kind")
	fs.StringVar(&dialect, "dialect", "", "Message dialect: flat or namespaced")
	fs.Var(&features, "features", "Comma-separated optional features")
	fs.DurationVar(&noticeTTL, "notice-ttl", 0, "Notice lifetime (e.g., 3s)")
	fs.BoolVar(&inline, "inline", false, "Render without the alternate screen")
	fs.StringVar(&logPath, "log", "", "Log file path")
	fs.StringVar(&configPath, "c", "", "Config file path (JSON or TOML)")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogPath: logPath,
		},
		Transport: Transport{
			URL:         endpoint.String(),
			DialTimeout: dialTimeout,
		},
		Protocol: Protocol{
			Resource: resource,
			Dialect:  dialect,
			Features: features,
		},
		UI: UI{
			NoticeTTL: noticeTTL,
			Inline:    inline,
		},
		ConfigFilePath: configPath,
	}, nil
}

// String returns the URL, or an empty string when unset.
func (e *EndpointURL) String() string {
	if e == nil || e.u == nil {
		return ""
	}
	return e.u.String()
}

// Set parses s and requires a ws or wss scheme with a host.
func (e *EndpointURL) Set(s string) error {
	u, err := url.Parse(s)
	if err != nil {
		return err
	}

	if u.Scheme != "ws" && u.Scheme != "wss" {
		return errors.New("need address in a form `ws://host:port/path`")
	}

	if u.Host == "" {
		return errors.New("endpoint host is empty")
	}

	e.u = u
	return nil
}

// String joins the list with commas.
func (f *FeatureList) String() string {
	if f == nil {
		return ""
	}
	return strings.Join(*f, ",")
}

// Set splits s on commas, trimming blanks. Repeated flags accumulate.
func (f *FeatureList) Set(s string) error {
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		*f = append(*f, part)
	}
	return nil
}
