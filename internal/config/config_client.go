// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/MKhiriev/go-pass-shell/internal/protocol"
)

// ClientApp holds process-level client settings.
type ClientApp struct {
	Name    string
	LogPath string
}

// ClientTransport holds settings used by the WebSocket transport.
type ClientTransport struct {
	URL         string
	DialTimeout time.Duration
}

// ClientProtocol holds the resolved message vocabulary.
type ClientProtocol struct {
	Resource string
	Dialect  protocol.Dialect
	// Logout enables the logout button and command.
	Logout bool
	// Open makes list rows open a resource instead of following its link.
	Open bool
}

// ClientUI holds terminal presentation settings.
type ClientUI struct {
	NoticeTTL time.Duration
	AltScreen bool
}

// ClientConfig is the validated configuration consumed by the client.
type ClientConfig struct {
	App       ClientApp
	Transport ClientTransport
	Protocol  ClientProtocol
	UI        ClientUI
}

// GetClientConfig builds a [ClientConfig] from the process arguments.
func GetClientConfig() (*ClientConfig, error) {
	return LoadClientConfig(os.Args[1:])
}

// LoadClientConfig builds and validates a [ClientConfig], parsing args as
// command-line flags.
func LoadClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := LoadStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Name:    cfg.App.Name,
			LogPath: cfg.App.LogPath,
		},
		Transport: ClientTransport{
			URL:         cfg.Transport.URL,
			DialTimeout: cfg.Transport.DialTimeout,
		},
		Protocol: ClientProtocol{
			Resource: cfg.Protocol.Resource,
			Dialect:  protocol.Dialect(cfg.Protocol.Dialect),
			Logout:   slices.Contains(cfg.Protocol.Features, FeatureLogout),
			Open:     slices.Contains(cfg.Protocol.Features, FeatureOpen),
		},
		UI: ClientUI{
			NoticeTTL: cfg.UI.NoticeTTL,
			AltScreen: !cfg.UI.Inline,
		},
	}

	return clientCfg, clientCfg.validate()
}
