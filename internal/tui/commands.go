// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

func cmdCopyToClipboard(copyText func(string) error, text string) tea.Cmd {
	return func() tea.Msg {
		if err := copyText(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdOpenLink(openURL func(string) error, url string) tea.Cmd {
	return func() tea.Msg {
		if err := openURL(url); err != nil {
			return linkOpenedMsg{err: fmt.Errorf("open %s: %w", url, err)}
		}
		return linkOpenedMsg{}
	}
}
