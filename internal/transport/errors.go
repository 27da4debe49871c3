// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package transport

import "errors"

var (
	// ErrNotReady is returned by Send before the ready signal fired.
	ErrNotReady = errors.New("transport is not ready")
	// ErrClosed is returned by Send after the channel was closed.
	ErrClosed = errors.New("transport is closed")
	// ErrInvalidURL is returned for websocket URLs without a ws/wss scheme.
	ErrInvalidURL = errors.New("invalid transport url")
)
