// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package widget declares the generic UI capabilities the shell session
// drives: a loading indicator, a notifier and a modal overlay.
//
// Every operation is a fire-and-forget command. Implementations must be
// idempotent (showing a visible loader again is a no-op) and the session never
// asks them for their current state.
package widget

import "github.com/MKhiriev/go-pass-shell/internal/view"

//go:generate mockgen -source=interfaces.go -destination=../mock/widget_mock.go -package=mock

// Loader is the "awaiting a reply" indicator.
type Loader interface {
	Init()
	Show()
	Hide()
}

// Notifier shows transient success and error messages.
type Notifier interface {
	Init()
	Success(text string)
	Error(text string)
}

// Modaler is the overlay layer above the main view.
type Modaler interface {
	Init()
	// SetContent replaces the overlay content. It does not change visibility.
	SetContent(content view.Node)
	Show()
	Hide()
}

// Widgets bundles the capabilities handed to a session.
type Widgets struct {
	Loader   Loader
	Notifier Notifier
	Modaler  Modaler
}

// Init initializes every capability once.
func (w Widgets) Init() {
	w.Loader.Init()
	w.Notifier.Init()
	w.Modaler.Init()
}

// Valid reports whether all capabilities are set.
func (w Widgets) Valid() bool {
	return w.Loader != nil && w.Notifier != nil && w.Modaler != nil
}
