// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"fmt"

	"github.com/MKhiriev/go-pass-shell/internal/logger"
	"github.com/MKhiriev/go-pass-shell/internal/protocol"
	"github.com/MKhiriev/go-pass-shell/internal/transport"
	"github.com/MKhiriev/go-pass-shell/internal/utils"
	"github.com/MKhiriev/go-pass-shell/internal/view"
	"github.com/MKhiriev/go-pass-shell/internal/widget"
	"github.com/MKhiriev/go-pass-shell/models"
)

// Options selects the protocol variant a session speaks.
type Options struct {
	// Resource is the managed resource kind, e.g. "account".
	Resource string
	Dialect  protocol.Dialect
	// Logout enables [ClientSession.Logout].
	Logout bool
	// Open enables [ClientSession.OpenResource] and the open dialog.
	Open bool
	// SessionID tags every log entry. Generated when empty.
	SessionID string
}

// ClientSession is the message dispatcher, view state machine and command
// emitter of one shell window.
type ClientSession struct {
	transport transport.Transport
	widgets   widget.Widgets
	codec     *protocol.Codec
	dialect   protocol.Dialect
	layout    view.Layout
	features  Options
	log       *logger.Logger

	id       string
	view     models.ViewState
	modal    models.ModalState
	root     view.Node
	revision uint64
	booted   bool
}

// New constructs a session in the Loading state. Call [ClientSession.Init]
// before dispatching.
func New(t transport.Transport, w widget.Widgets, opts Options, log *logger.Logger) (*ClientSession, error) {
	if t == nil || !w.Valid() {
		return nil, ErrMissingDependency
	}

	if _, err := protocol.ParseDialect(string(opts.Dialect)); err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}

	if log == nil {
		log = logger.Nop()
	}

	id := opts.SessionID
	if id == "" {
		id = utils.NewUUIDGenerator().Generate()
	}

	return &ClientSession{
		transport: t,
		widgets:   w,
		codec:     protocol.NewCodec(opts.Resource),
		dialect:   opts.Dialect,
		layout:    view.Layout{Resource: opts.Resource, Logout: opts.Logout, Open: opts.Open},
		features:  opts,
		log:       log.WithField("session_id", id),
		id:        id,
		view:      models.LoadingView(),
		modal:     models.HiddenModal(),
	}, nil
}

// Init initialises every widget once and renders the loading view.
func (s *ClientSession) Init() {
	s.widgets.Init()
	s.render()
}

// ID returns the session identifier used in logs.
func (s *ClientSession) ID() string {
	return s.id
}

// Resource returns the managed resource kind.
func (s *ClientSession) Resource() string {
	return s.codec.Resource()
}

// Layout returns the rendering options derived from the session options.
func (s *ClientSession) Layout() view.Layout {
	return s.layout
}

// View returns the current view state.
func (s *ClientSession) View() models.ViewState {
	return s.view
}

// Modal returns the current modal state.
func (s *ClientSession) Modal() models.ModalState {
	return s.modal
}

// Root returns the tree produced by the last render.
func (s *ClientSession) Root() view.Node {
	return s.root
}

// ModalContent returns the tree of the modal overlay.
func (s *ClientSession) ModalContent() view.Node {
	return view.RenderModal(s.modal, s.layout)
}

// Revision counts full renders of the main view. It only changes when an
// inbound message replaces the view.
func (s *ClientSession) Revision() uint64 {
	return s.revision
}

// Focused returns the id of the element holding input focus: the modal's
// when it is visible, the main view's otherwise.
func (s *ClientSession) Focused() string {
	if s.modal.Visible {
		return s.ModalContent().Focused()
	}
	return s.root.Focused()
}

func (s *ClientSession) setView(v models.ViewState) {
	s.view = v
	s.render()
}

func (s *ClientSession) render() {
	s.root = view.Render(s.view, s.layout)
	s.revision++
}

func (s *ClientSession) showModal(m models.ModalState) {
	m.Visible = true
	s.modal = m
	s.widgets.Modaler.SetContent(view.RenderModal(m, s.layout))
	s.widgets.Modaler.Show()
}

func (s *ClientSession) hideModal() {
	s.modal = models.HiddenModal()
	s.widgets.Modaler.Hide()
}
