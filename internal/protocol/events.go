// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package protocol

import (
	"encoding/json"

	"github.com/MKhiriev/go-pass-shell/models"
)

// Event is a decoded inbound message. The set of implementations is closed:
// every type in this file, and [Unknown] for anything else.
//
//sumtype:decl
type Event interface {
	// Name returns the wire name the event was decoded from.
	Name() string

	sealed()
}

// ErrorEvent reports a backend failure. Text is the user-facing message.
type ErrorEvent struct {
	Text string
}

// ResourceAdded confirms a "<resource>.add" command. Text is the success
// message chosen by the backend.
type ResourceAdded struct {
	Resource string
	Text     string
}

// ResourceListed carries the full, ordered list of resources.
type ResourceListed struct {
	Resource string
	Items    []models.Resource
}

// ResourceOpened confirms a "<resource>.open" command.
type ResourceOpened struct {
	Resource string
}

// Indexed tells the client which screen to show. WireName keeps the alias
// that was received ("indexed" or "index.show").
type Indexed struct {
	WireName string
	Mode     models.AuthMode
}

// LoggedIn confirms a login command.
type LoggedIn struct {
	WireName string
}

// LoggedOut confirms a logout command.
type LoggedOut struct{}

// SignedUp confirms a sign-up command.
type SignedUp struct {
	WireName string
}

// Unknown wraps any message the client does not understand.
type Unknown struct {
	WireName string
	Payload  json.RawMessage
}

func (ErrorEvent) Name() string       { return NameError }
func (e ResourceAdded) Name() string  { return ResourceName(e.Resource, VerbAdded) }
func (e ResourceListed) Name() string { return ResourceName(e.Resource, VerbListed) }
func (e ResourceOpened) Name() string { return ResourceName(e.Resource, VerbOpened) }
func (e Indexed) Name() string        { return e.WireName }
func (e LoggedIn) Name() string       { return e.WireName }
func (LoggedOut) Name() string        { return NameLoggedOut }
func (e SignedUp) Name() string       { return e.WireName }
func (e Unknown) Name() string        { return e.WireName }

func (ErrorEvent) sealed()     {}
func (ResourceAdded) sealed()  {}
func (ResourceListed) sealed() {}
func (ResourceOpened) sealed() {}
func (Indexed) sealed()        {}
func (LoggedIn) sealed()       {}
func (LoggedOut) sealed()      {}
func (SignedUp) sealed()       {}
func (Unknown) sealed()        {}
