// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"fmt"

	"github.com/MKhiriev/go-pass-shell/internal/protocol"
	"github.com/MKhiriev/go-pass-shell/models"
)

// Bootstrap sends the initial index request. Only the first call sends;
// later calls return nil.
func (s *ClientSession) Bootstrap() error {
	if s.booted {
		return nil
	}
	s.booted = true
	return s.RequestIndex()
}

// RequestIndex asks the backend which screen to show.
func (s *ClientSession) RequestIndex() error {
	return s.emit(s.dialect.IndexName(), nil)
}

// Login sends the password as a login attempt.
func (s *ClientSession) Login(password string) error {
	return s.emit(s.dialect.LoginName(), password)
}

// SignUp sends the password as the new master password.
func (s *ClientSession) SignUp(password string) error {
	return s.emit(s.dialect.SignUpName(), password)
}

// Logout ends the backend session.
func (s *ClientSession) Logout() error {
	if !s.features.Logout {
		return fmt.Errorf("logout: %w", ErrFeatureDisabled)
	}
	return s.emit(s.dialect.LogoutName(), nil)
}

// ListResources requests the full resource list.
func (s *ClientSession) ListResources() error {
	return s.emit(protocol.ResourceName(s.Resource(), protocol.VerbList), nil)
}

// OpenAddResource shows the add dialog. Nothing is sent.
func (s *ClientSession) OpenAddResource() {
	s.showModal(models.ModalState{Kind: models.ModalAddResource})
}

// SubmitResource sends value as a new resource. The value is sent verbatim;
// the backend validates it.
func (s *ClientSession) SubmitResource(value string) error {
	return s.emit(protocol.ResourceName(s.Resource(), protocol.VerbAdd), value)
}

// UnlockResource shows the authorization link of r.
func (s *ClientSession) UnlockResource(r models.Resource) error {
	if !r.Authorizable() {
		return fmt.Errorf("unlock %q: %w", r.Addr, ErrNoAuthURL)
	}
	s.showModal(models.ModalState{Kind: models.ModalUnlockResource, Resource: r})
	return nil
}

// PromptOpenResource shows the password dialog for r.
func (s *ClientSession) PromptOpenResource(r models.Resource) error {
	if !s.features.Open {
		return fmt.Errorf("open: %w", ErrFeatureDisabled)
	}
	s.showModal(models.ModalState{Kind: models.ModalOpenResource, Resource: r})
	return nil
}

// OpenResource asks the backend to open addr with password.
func (s *ClientSession) OpenResource(addr, password string) error {
	if !s.features.Open {
		return fmt.Errorf("open: %w", ErrFeatureDisabled)
	}
	r := s.Resource()
	return s.emit(protocol.ResourceName(r, protocol.VerbOpen), protocol.OpenPayload(r, addr, password))
}

// DismissModal hides the modal.
func (s *ClientSession) DismissModal() {
	s.hideModal()
}

// emit shows the loader and sends a command. On failure the loader is hidden
// again and the user is told.
func (s *ClientSession) emit(name string, payload any) error {
	s.widgets.Loader.Show()

	if err := s.transport.Send(name, payload); err != nil {
		s.widgets.Loader.Hide()
		s.log.Error().Err(err).Str("name", name).Msg("failed to send command")
		s.widgets.Notifier.Error(SendFailedText)
		return fmt.Errorf("send %s: %w", name, err)
	}

	s.log.Debug().Str("name", name).Msg("command sent")
	return nil
}
