package verify_otp

import "errors"

var (
	// ErrMissingFields возвращается, если не переданы email или код
	ErrMissingFields = errors.New("verify_otp: email and code are required")

	// ErrNotFound возвращается, если для email нет действующего кода
	ErrNotFound = errors.New("verify_otp: code not found")

	// ErrExpired возвращается для просроченного кода; запись при этом удаляется
	ErrExpired = errors.New("verify_otp: code expired")

	// ErrInvalidCode возвращается при несовпадении кода; запись сохраняется
	ErrInvalidCode = errors.New("verify_otp: invalid code")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("verify_otp: internal error")
)
