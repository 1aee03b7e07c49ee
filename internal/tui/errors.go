// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-trust-keeper/internal/service"
)

// ErrUserQuit is returned by [TUI.Run] when the user closed the program.
var ErrUserQuit = errors.New("вышел из программы")

// humanizeError turns a client service error into a message for the user.
// Ceremony failures stay generic.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrCeremonyFailed):
		return "Ключ доступа не подтверждён"
	case errors.Is(err, service.ErrNoCredentialsEnrolled):
		return "Ключ доступа не зарегистрирован. Войдите по ссылке и добавьте ключ"
	case errors.Is(err, service.ErrSignInLinkInvalid):
		return "Ссылка недействительна или устарела"
	case errors.Is(err, service.ErrMailDelivery):
		return "Не удалось отправить письмо"
	case errors.Is(err, service.ErrInvalidDataProvided):
		return "Проверьте введённые данные"
	case errors.Is(err, service.ErrTokenIsExpiredOrInvalid), errors.Is(err, service.ErrNotSignedIn):
		return "Сессия истекла, войдите снова"
	case errors.Is(err, service.ErrNotElevated):
		return "Ключ доступа принадлежит другому пользователю"
	}

	return humanizeServerUnavailableError(err)
}

func humanizeServerUnavailableError(err error) string {
	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Отсутствует сеть или Сервер недоступен"
	}

	return err.Error()
}
