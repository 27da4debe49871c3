// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	quit    key.Binding
	info    key.Binding
	add     key.Binding
	refresh key.Binding
	logout  key.Binding
	copy    key.Binding
	unlock  key.Binding
	open    key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	quit:    key.NewBinding(key.WithKeys("ctrl+c")),
	info:    key.NewBinding(key.WithKeys("v")),
	add:     key.NewBinding(key.WithKeys("n")),
	refresh: key.NewBinding(key.WithKeys("s")),
	logout:  key.NewBinding(key.WithKeys("l")),
	copy:    key.NewBinding(key.WithKeys("c")),
	unlock:  key.NewBinding(key.WithKeys("u")),
	open:    key.NewBinding(key.WithKeys("o")),
}
