// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

// Notices used when the backend sends an empty text.
const (
	DefaultErrorText = "Произошла ошибка"
	DefaultAddedText = "Добавлено"
	SendFailedText   = "Не удалось отправить запрос"
)
