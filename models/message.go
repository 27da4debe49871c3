// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
)

// Message is the unit exchanged with the backend over the shell's message
// channel in both directions.
//
// Name is a dot-segmented tag such as "index.show", "account.list" or
// "error". Payload is kept undecoded; its shape is fixed per name and is
// interpreted by the protocol codec. Messages carry no correlation id.
type Message struct {
	Name    string          `json:"name"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// NewMessage builds a Message, marshalling payload when it is not nil.
func NewMessage(name string, payload any) (Message, error) {
	m := Message{Name: name}
	if payload == nil {
		return m, nil
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	m.Payload = raw
	return m, nil
}

// HasPayload reports whether the message carries a non-null payload.
// Surrounding whitespace is ignored.
func (m Message) HasPayload() bool {
	raw := bytes.TrimSpace(m.Payload)
	return len(raw) > 0 && string(raw) != "null"
}
