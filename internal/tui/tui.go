// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front-end of the shell. It hosts a
// [session.ClientSession] inside a bubbletea program and implements the
// loader, notifier and modal widgets on top of bubbles and lipgloss.
package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/skratchdot/open-golang/open"

	"github.com/MKhiriev/go-pass-shell/internal/logger"
	"github.com/MKhiriev/go-pass-shell/internal/session"
	"github.com/MKhiriev/go-pass-shell/internal/transport"
	"github.com/MKhiriev/go-pass-shell/internal/widget"
	"github.com/MKhiriev/go-pass-shell/models"
)

var ErrUserQuit = errors.New("вышел из программы")

// Options configures the terminal front-end.
type Options struct {
	NoticeTTL time.Duration
	AltScreen bool
	BuildInfo models.AppBuildInfo
}

type TUI struct {
	transport transport.Transport
	session   session.Options
	opts      Options
	log       *logger.Logger
}

func New(t transport.Transport, sessionOpts session.Options, opts Options, log *logger.Logger) (*TUI, error) {
	if t == nil {
		return nil, session.ErrMissingDependency
	}
	if log == nil {
		log = logger.Nop()
	}
	return &TUI{transport: t, session: sessionOpts, opts: opts, log: log}, nil
}

// Run blocks until the user quits or ctx is cancelled. Quitting returns
// [ErrUserQuit]; cancellation returns nil.
func (t *TUI) Run(ctx context.Context) error {
	m, err := newAppModel(t.transport, t.session, t.opts, t.log)
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if t.opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(m, programOpts...)

	t.transport.OnMessage(func(msg models.Message) {
		p.Send(inboundMsg{message: msg})
	})
	go func() {
		select {
		case <-t.transport.Ready():
			p.Send(readyMsg{})
		case <-ctx.Done():
		}
	}()

	finalModel, runErr := p.Run()
	if runErr != nil {
		if errors.Is(runErr, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return runErr
	}

	if result, ok := finalModel.(*appModel); ok && result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

// newAppModel builds the session with terminal widgets and initialises it.
func newAppModel(t transport.Transport, sessionOpts session.Options, opts Options, log *logger.Logger) (*appModel, error) {
	m := &appModel{
		loader:    &loaderWidget{},
		notifier:  &notifierWidget{},
		modal:     &modalWidget{},
		noticeTTL: opts.NoticeTTL,
		buildInfo: opts.BuildInfo,
		openURL:   open.Run,
		copyText:  clipboard.WriteAll,
		log:       log,
	}

	s, err := session.New(t, widget.Widgets{Loader: m.loader, Notifier: m.notifier, Modaler: m.modal}, sessionOpts, log)
	if err != nil {
		return nil, err
	}
	s.Init()

	m.session = s
	m.syncRender()
	return m, nil
}
