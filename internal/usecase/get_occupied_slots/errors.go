package get_occupied_slots

import "errors"

var (
	// ErrMissingFields возвращается, если не указан корт или дата
	ErrMissingFields = errors.New("get_occupied_slots: courtId and date are required")

	// ErrInvalidDate возвращается при нераспознанной дате
	ErrInvalidDate = errors.New("get_occupied_slots: invalid date")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_occupied_slots: internal error")
)
