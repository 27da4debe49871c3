// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-pass-shell/internal/protocol"
)

// validate rejects feature names the client does not know.
func (cfg *StructuredConfig) validate() error {
	for _, f := range cfg.Protocol.Features {
		if f != FeatureLogout && f != FeatureOpen && f != FeatureNone {
			return fmt.Errorf("%w: unknown feature %q", ErrInvalidProtocolConfigs, f)
		}
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.App.Name == "" {
		return ErrInvalidAppConfigs
	}

	u, err := url.Parse(cfg.Transport.URL)
	if err != nil || (u.Scheme != "ws" && u.Scheme != "wss") || u.Host == "" {
		return fmt.Errorf("%w: url %q", ErrInvalidTransportConfigs, cfg.Transport.URL)
	}
	if cfg.Transport.DialTimeout <= 0 {
		return fmt.Errorf("%w: dial timeout must be positive", ErrInvalidTransportConfigs)
	}

	// The resource kind becomes the first segment of a dotted message name.
	r := cfg.Protocol.Resource
	if r == "" || strings.ContainsAny(r, ". \t") {
		return fmt.Errorf("%w: resource %q", ErrInvalidProtocolConfigs, r)
	}
	if _, err := protocol.ParseDialect(string(cfg.Protocol.Dialect)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidProtocolConfigs, err)
	}

	if cfg.UI.NoticeTTL <= 0 {
		return ErrInvalidUIConfigs
	}

	return nil
}
