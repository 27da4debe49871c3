// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the client side of the shell protocol.
//
// A [ClientSession] owns the current view and modal state, the transport and
// the widget capabilities. Inbound messages go through [ClientSession.Dispatch],
// which hides the loader, decodes a typed event and applies the matching
// transition. User actions emit commands: each one shows the loader and sends
// a named message. The backend decides which screen comes next; the session
// never infers authentication state on its own.
//
// Replies carry no correlation id. Whatever arrives is applied as the
// current state, so a late reply to an earlier request can overwrite the
// result of a newer one.
//
// A session is not safe for concurrent use. Callers serialise Dispatch and
// the user actions, typically by running both on the UI event loop.
package session
