// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-pass-shell/internal/view"
	"github.com/MKhiriev/go-pass-shell/models"
)

func TestRenderNode_List(t *testing.T) {
	root := view.Render(models.ResourceListView([]models.Resource{
		{Addr: "a@x.com", AuthURL: "https://auth"},
		{Addr: "b@x.com"},
	}), view.Layout{Resource: "account", Logout: true})

	out := renderNode(root, renderContext{cursor: 1})

	lines := strings.Split(out, "\n")
	assert.Contains(t, lines[0], "Добавить")
	assert.Contains(t, lines[0], "Выйти")
	assert.Contains(t, out, "  a@x.com")
	assert.Contains(t, out, "> b@x.com")
	assert.Contains(t, out, "↗")
}

func TestRenderNode_AuthFormUsesLiveInput(t *testing.T) {
	root := view.Render(models.AuthFormView(models.AuthModeLogin), view.Layout{Resource: "account"})

	out := renderNode(root, renderContext{inputs: map[string]string{view.PasswordInputID: "***"}})

	assert.Contains(t, out, "Пароль: ***")
	assert.Contains(t, out, "[Войти]")
}

func TestRenderPage(t *testing.T) {
	out := renderPage("TITLE", "", "keys")

	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "  -\n")
	assert.Contains(t, out, "ctrl+c: выход")
}
