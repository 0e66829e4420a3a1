package issue_otp

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	// ErrMissingFields возвращается, если email не передан
	ErrMissingFields = errors.New("issue_otp: email is required")

	// ErrInvalidEmail возвращается при синтаксически некорректном email
	ErrInvalidEmail = errors.New("issue_otp: invalid email")

	// ErrDomainNotAllowed возвращается для email вне институционального домена
	ErrDomainNotAllowed = errors.New("issue_otp: email domain is not allowed")

	// ErrRateLimited возвращается при повторном запросе кода раньше окончания паузы
	ErrRateLimited = errors.New("issue_otp: code requested too often")

	// ErrSendFailed возвращается, если письмо с кодом не удалось отправить
	ErrSendFailed = errors.New("issue_otp: failed to send code")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("issue_otp: internal error")
)

// RateLimitedError содержит время до следующей допустимой выдачи
type RateLimitedError struct {
	RetryAfter time.Duration
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("%s: retry after %ds", ErrRateLimited.Error(), e.RetryAfterSeconds())
}

func (e *RateLimitedError) Unwrap() error {
	return ErrRateLimited
}

// RetryAfterSeconds округляет оставшееся время вверх до секунд
func (e *RateLimitedError) RetryAfterSeconds() int {
	return int(math.Ceil(e.RetryAfter.Seconds()))
}
