// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client runs one shell window until it is closed.
type Client interface {
	// Run blocks until SIGINT, SIGTERM, the user quits or the host goes away.
	Run() error
	// RunContext is Run with the caller owning cancellation.
	RunContext(ctx context.Context) error
}
