// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-pass-shell/internal/view"
)

const uiDivider = "──────────────────────────────────────────────────────"

// renderContext supplies the live parts of a view tree: text field views
// keyed by node id and the selected list row.
type renderContext struct {
	inputs map[string]string
	cursor int
}

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("  ctrl+c: выход"))

	return b.String()
}

// renderNode turns a view tree into terminal text.
func renderNode(n view.Node, c renderContext) string {
	var b strings.Builder
	writeNode(&b, n, c)
	return strings.TrimRight(b.String(), "\n")
}

func writeNode(b *strings.Builder, n view.Node, c renderContext) {
	switch n.Kind {
	case view.KindText:
		b.WriteString(n.Text)
		b.WriteString("\n")
	case view.KindHeader:
		labels := make([]string, 0, len(n.Children))
		for _, child := range n.Children {
			labels = append(labels, buttonLabel(child))
		}
		b.WriteString(strings.Join(labels, "  "))
		b.WriteString("\n\n")
	case view.KindButton:
		b.WriteString(buttonLabel(n))
		b.WriteString("\n")
	case view.KindInput:
		b.WriteString(n.Text)
		b.WriteString(": ")
		b.WriteString(c.inputs[n.ID])
		b.WriteString("\n")
	case view.KindList:
		if len(n.Children) == 0 {
			b.WriteString(helpStyle.Render("Список пуст"))
			b.WriteString("\n")
		}
		for i, row := range n.Children {
			writeRow(b, row, i == c.cursor)
		}
	case view.KindLink:
		b.WriteString(linkStyle.Render(n.Text))
		b.WriteString("\n")
	default:
		for _, child := range n.Children {
			writeNode(b, child, c)
		}
	}
}

func writeRow(b *strings.Builder, row view.Node, selected bool) {
	if selected {
		b.WriteString(cursorStyle.Render("> " + row.Text))
	} else {
		b.WriteString("  " + row.Text)
	}
	if row.Href != "" {
		b.WriteString(helpStyle.Render("  ↗"))
	}
	b.WriteString("\n")
}

func buttonLabel(n view.Node) string {
	label := "[" + n.Text + "]"
	if n.Title != "" {
		label += " " + n.Title
	}
	return buttonStyle.Render(label)
}
