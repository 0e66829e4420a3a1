package mailer

import "errors"

var (
	// ErrNotConfigured возвращается, если SMTP сервер не задан
	ErrNotConfigured = errors.New("mailer: smtp host is not configured")

	// ErrSend возвращается при ошибке отправки письма
	ErrSend = errors.New("mailer: failed to send message")

	// ErrRender возвращается при ошибке подстановки шаблона
	ErrRender = errors.New("mailer: failed to render template")
)
