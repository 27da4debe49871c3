// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"github.com/MKhiriev/go-pass-shell/internal/protocol"
	"github.com/MKhiriev/go-pass-shell/models"
)

// Dispatch applies one inbound message. The loader is hidden first,
// whatever the message. Unknown names change nothing and are not logged.
//
// Dispatch has the signature of a transport handler.
func (s *ClientSession) Dispatch(m models.Message) {
	s.widgets.Loader.Hide()

	ev := s.codec.Decode(m)
	if _, unknown := ev.(protocol.Unknown); !unknown {
		s.log.Debug().Str("name", ev.Name()).Msg("inbound message")
	}

	s.apply(ev)
}

func (s *ClientSession) apply(ev protocol.Event) {
	switch e := ev.(type) {
	case protocol.ErrorEvent:
		s.onError(e)
	case protocol.ResourceAdded:
		s.onAdded(e)
	case protocol.ResourceListed:
		s.setView(models.ResourceListView(e.Items))
	case protocol.ResourceOpened:
		s.onOpened()
	case protocol.Indexed:
		s.onIndexed(e)
	case protocol.LoggedIn, protocol.LoggedOut, protocol.SignedUp:
		// The backend owns authentication state: ask it what to show.
		_ = s.RequestIndex()
	case protocol.Unknown:
	}
}

func (s *ClientSession) onError(e protocol.ErrorEvent) {
	text := e.Text
	if text == "" {
		text = DefaultErrorText
	}
	s.log.Warn().Str("text", text).Msg("backend reported an error")
	s.widgets.Notifier.Error(text)
}

func (s *ClientSession) onAdded(e protocol.ResourceAdded) {
	s.hideModal()

	text := e.Text
	if text == "" {
		text = DefaultAddedText
	}
	s.widgets.Notifier.Success(text)

	_ = s.ListResources()
}

func (s *ClientSession) onOpened() {
	if s.modal.Kind == models.ModalOpenResource {
		s.hideModal()
	}
	s.setView(models.ResourceDetailView())
}

func (s *ClientSession) onIndexed(e protocol.Indexed) {
	switch e.Mode {
	case models.AuthModeIndex:
		_ = s.ListResources()
	default:
		s.setView(models.AuthFormView(e.Mode))
	}
}
