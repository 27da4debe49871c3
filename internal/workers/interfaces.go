// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the long-lived parts of the client (the transport
// pump and the terminal UI) side by side.
package workers

import "context"

// Worker is a long-running part of the process. Run blocks until the work is
// done or ctx is cancelled.
type Worker interface {
	Run(ctx context.Context) error
}

// Func adapts a function to [Worker].
type Func func(ctx context.Context) error

func (f Func) Run(ctx context.Context) error {
	return f(ctx)
}
