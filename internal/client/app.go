// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pass-shell/internal/logger"
	"github.com/MKhiriev/go-pass-shell/internal/transport"
	"github.com/MKhiriev/go-pass-shell/internal/tui"
	"github.com/MKhiriev/go-pass-shell/internal/utils"
	"github.com/MKhiriev/go-pass-shell/internal/workers"
)

var errMissingDependency = errors.New("client: transport and ui are required")

type App struct {
	workers   *workers.Workers
	sessionID string
	log       *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp wires the transport and the UI worker. ui is normally a *tui.TUI
// built on the same transport.
func NewApp(t transport.Transport, ui workers.Worker, sessionID string, log *logger.Logger) (*App, error) {
	if t == nil || ui == nil {
		return nil, errMissingDependency
	}
	if log == nil {
		log = logger.Nop()
	}

	return &App{
		workers:   workers.New(t, ui),
		sessionID: sessionID,
		log:       log,
	}, nil
}

// Run installs signal handling and blocks until the process should exit.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
	)
	defer stop()

	return a.RunContext(ctx)
}

// RunContext runs until ctx is cancelled, the user quits or the host closes
// the channel. Quitting is not an error.
func (a *App) RunContext(ctx context.Context) error {
	ctx = a.log.WithContext(ctx)
	ctx = utils.WithSessionID(ctx, a.sessionID)

	a.log.Info().Str("session_id", a.sessionID).Msg("shell client started")

	err := a.workers.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		err = nil
	}

	a.log.Info().Str("session_id", a.sessionID).AnErr("error", err).Msg("shell client stopped")
	return err
}
