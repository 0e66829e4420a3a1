package otp

import "errors"

var (
	// ErrCodeNotFound возвращается, когда для email нет выданного кода
	ErrCodeNotFound = errors.New("otp.store: code not found")

	// ErrStore возвращается при ошибке обращения к Redis
	ErrStore = errors.New("otp.store: redis error")

	// ErrCorruptRecord возвращается, если поля записи не удалось разобрать
	ErrCorruptRecord = errors.New("otp.store: corrupt record")
)
