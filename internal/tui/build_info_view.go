// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-pass-shell/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, sessionID string) string {
	var b strings.Builder

	b.WriteString("Название приложения: ")
	b.WriteString(info.AppName())
	b.WriteString("\n")
	b.WriteString("Версия: ")
	b.WriteString(info.BuildVersion())
	b.WriteString("\n")
	b.WriteString("Дата: ")
	b.WriteString(info.BuildDate())
	b.WriteString("\n")
	b.WriteString("Коммит: ")
	b.WriteString(info.BuildCommit())
	b.WriteString("\n")
	b.WriteString("Сессия: ")
	b.WriteString(sessionID)

	return renderPage("ИНФОРМАЦИЯ О ПРОГРАММЕ", b.String(), "v / esc: назад")
}
