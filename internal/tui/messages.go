// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-pass-shell/models"

// readyMsg is sent once when the transport becomes ready.
type readyMsg struct{}

// inboundMsg carries a message received from the host.
type inboundMsg struct {
	message models.Message
}

type clearNoticeMsg struct {
	seq int
}

type linkOpenedMsg struct {
	err error
}

type copiedMsg struct {
	err error
}
