// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-pass-shell/internal/transport"
)

// humanizeSendError returns a more specific text for a failed command than
// the generic one the session already showed. ok is false when there is
// nothing better to say.
func humanizeSendError(err error) (string, bool) {
	if err == nil {
		return "", false
	}

	switch {
	case errors.Is(err, transport.ErrNotReady):
		return "Соединение ещё не установлено", true
	case errors.Is(err, transport.ErrClosed):
		return "Соединение с сервером закрыто", true
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "broken pipe") ||
		strings.Contains(s, "connection reset") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Отсутствует сеть или Сервер недоступен", true
	}

	return "", false
}
