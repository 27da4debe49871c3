// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates a missing application name.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")

	// ErrInvalidTransportConfigs indicates a malformed endpoint URL or a
	// non-positive dial timeout.
	ErrInvalidTransportConfigs = errors.New("invalid transport configuration")

	// ErrInvalidProtocolConfigs indicates an unusable resource kind, an
	// unknown dialect or an unknown feature name.
	ErrInvalidProtocolConfigs = errors.New("invalid protocol configuration")

	// ErrInvalidUIConfigs indicates a non-positive notice lifetime.
	ErrInvalidUIConfigs = errors.New("invalid ui configuration")
)
