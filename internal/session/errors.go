// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import "errors"

var (
	// ErrFeatureDisabled is returned by actions the configured protocol
	// variant does not expose (logout, open).
	ErrFeatureDisabled = errors.New("feature disabled")

	// ErrNoAuthURL is returned when unlocking a resource that has no
	// authorization link.
	ErrNoAuthURL = errors.New("resource has no authorization url")

	// ErrMissingDependency is returned by [New] when the transport or a
	// widget is nil.
	ErrMissingDependency = errors.New("missing session dependency")
)
