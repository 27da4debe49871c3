// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-shell/internal/view"
)

// The widgets below are driven by the session from inside appModel.Update
// and read back by appModel.View. They hold state only.

type loaderWidget struct {
	visible bool
	spinner spinner.Model
}

func (l *loaderWidget) Init() {
	l.spinner = spinner.New()
	l.spinner.Spinner = spinner.MiniDot
	l.visible = false
}

func (l *loaderWidget) Show() { l.visible = true }
func (l *loaderWidget) Hide() { l.visible = false }

func (l *loaderWidget) View() string {
	if !l.visible {
		return ""
	}
	return l.spinner.View() + " Загрузка..."
}

type notifierWidget struct {
	text    string
	isError bool
	// seq identifies the current notice so a stale clear tick is ignored.
	seq     int
	pending bool
}

func (n *notifierWidget) Init() {
	*n = notifierWidget{}
}

func (n *notifierWidget) Success(text string) { n.set(text, false) }
func (n *notifierWidget) Error(text string)   { n.set(text, true) }

func (n *notifierWidget) set(text string, isError bool) {
	n.text = text
	n.isError = isError
	n.seq++
	n.pending = true
}

// flush schedules the auto-clear of a notice shown since the last call.
func (n *notifierWidget) flush(ttl time.Duration) tea.Cmd {
	if !n.pending {
		return nil
	}
	n.pending = false
	seq := n.seq
	return tea.Tick(ttl, func(time.Time) tea.Msg {
		return clearNoticeMsg{seq: seq}
	})
}

func (n *notifierWidget) clear(seq int) {
	if seq == n.seq {
		n.text = ""
		n.isError = false
	}
}

func (n *notifierWidget) View() string {
	switch {
	case n.text == "":
		return ""
	case n.isError:
		return errorStyle.Render("Ошибка: " + n.text)
	default:
		return successStyle.Render(n.text)
	}
}

type modalWidget struct {
	visible bool
	content view.Node
	// input is the live text field of the content's first input node.
	input    textinput.Model
	inputID  string
	hasInput bool
}

func (m *modalWidget) Init() {
	*m = modalWidget{}
}

// SetContent replaces the overlay content and resets its input.
func (m *modalWidget) SetContent(content view.Node) {
	m.content = content
	m.hasInput = false
	m.inputID = ""

	inputs := content.Collect(view.KindInput)
	if len(inputs) == 0 {
		return
	}

	m.input = newInput(inputs[0])
	m.inputID = inputs[0].ID
	m.hasInput = true
}

func (m *modalWidget) Show() { m.visible = true }
func (m *modalWidget) Hide() { m.visible = false }

func (m *modalWidget) value() string {
	if !m.hasInput {
		return ""
	}
	return m.input.Value()
}

// newInput builds a text field for an input node.
func newInput(n view.Node) textinput.Model {
	in := textinput.New()
	in.Placeholder = n.Text
	in.CharLimit = 256
	in.Width = 40
	if n.Secret {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
	}
	if n.Focus {
		in.Focus()
	}
	return in
}
