// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package protocol

import (
	"github.com/MKhiriev/go-pass-shell/models"
)

// Codec decodes inbound messages for one resource kind (for example
// "account" or "email").
type Codec struct {
	resource string
}

// NewCodec returns a Codec bound to resource.
func NewCodec(resource string) *Codec {
	return &Codec{resource: resource}
}

// Resource returns the resource kind the codec is bound to.
func (c *Codec) Resource() string {
	return c.resource
}

// Decode maps m onto a typed [Event]. It never fails: unrecognised names,
// including resource messages of another kind, decode to [Unknown], and
// payloads are coerced to defaults.
func (c *Codec) Decode(m models.Message) Event {
	switch m.Name {
	case NameError:
		return ErrorEvent{Text: decodeText(m)}
	case NameIndexed, NameIndexShow:
		return Indexed{WireName: m.Name, Mode: models.ParseAuthMode(decodeText(m))}
	case NameLoggedIn, NameIndexLoggedIn:
		return LoggedIn{WireName: m.Name}
	case NameLoggedOut:
		return LoggedOut{}
	case NameSignedUp, NameIndexSignedUp:
		return SignedUp{WireName: m.Name}
	}

	resource, verb, ok := splitResourceName(m.Name)
	if !ok || resource != c.resource {
		return Unknown{WireName: m.Name, Payload: m.Payload}
	}

	switch verb {
	case VerbAdded:
		return ResourceAdded{Resource: resource, Text: decodeText(m)}
	case VerbListed:
		return ResourceListed{Resource: resource, Items: decodeResources(m)}
	case VerbOpened:
		return ResourceOpened{Resource: resource}
	default:
		return Unknown{WireName: m.Name, Payload: m.Payload}
	}
}
