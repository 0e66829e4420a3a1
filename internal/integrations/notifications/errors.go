package notifications

import "errors"

var (
	// ErrEnqueue возвращается при ошибке постановки задачи в очередь
	ErrEnqueue = errors.New("notifications: failed to enqueue task")

	// ErrPayload возвращается, если полезную нагрузку задачи не удалось закодировать или разобрать
	ErrPayload = errors.New("notifications: invalid task payload")

	// ErrActionLink возвращается, если не удалось подписать ссылку администратора
	ErrActionLink = errors.New("notifications: failed to build action link")
)
