package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotTaken возвращается, когда уникальный индекс на (корт, дата, слот) отклонил вставку
	ErrSlotTaken = errors.New("booking.repository: slot already taken")

	// ErrCourtNotFound возвращается при нарушении внешнего ключа на корт
	ErrCourtNotFound = errors.New("booking.repository: court not found")

	// ErrInvalidTransition возвращается, когда текущий статус не допускает перехода
	ErrInvalidTransition = errors.New("booking.repository: status transition not allowed")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
