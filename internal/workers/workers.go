// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-pass-shell/internal/logger"
	"github.com/MKhiriev/go-pass-shell/internal/utils"
)

type Workers struct {
	workers []Worker
}

func New(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker and waits for all of them. The first worker to
// return, with or without an error, cancels the others. The first non-nil
// error is returned.
func (w *Workers) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	gctx, cancel := context.WithCancel(gctx)
	defer cancel()

	log := logger.FromContext(ctx)
	sessionID, _ := utils.GetSessionIDFromContext(ctx)

	for i, worker := range w.workers {
		g.Go(func() error {
			defer cancel()

			err := worker.Run(gctx)
			log.Debug().
				Int("worker", i).
				Str("session_id", sessionID).
				AnErr("error", err).
				Msg("worker stopped")
			return err
		})
	}

	return g.Wait()
}
