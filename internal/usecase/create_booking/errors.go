package create_booking

import "errors"

var (
	// ErrBookingsDisabled возвращается, когда прием заявок выключен администратором
	ErrBookingsDisabled = errors.New("create_booking: bookings are disabled")

	// ErrMissingFields возвращается, если не заполнены обязательные поля
	ErrMissingFields = errors.New("create_booking: required fields are missing")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidEmail возвращается при синтаксически некорректном email
	ErrInvalidEmail = errors.New("create_booking: invalid email")

	// ErrDomainNotAllowed возвращается для email вне институционального домена
	ErrDomainNotAllowed = errors.New("create_booking: email domain is not allowed")

	// ErrEmailNotVerified возвращается, если токен подтверждения отсутствует, невалиден или выдан для другого email
	ErrEmailNotVerified = errors.New("create_booking: email is not verified")

	// ErrInvalidSlot возвращается для слота вне каталога
	ErrInvalidSlot = errors.New("create_booking: invalid time slot")

	// ErrInvalidDate возвращается при нераспознанной дате
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrDateInPast возвращается для даты раньше сегодняшней
	ErrDateInPast = errors.New("create_booking: booking date is in the past")

	// ErrLeadTimeTooShort возвращается, если до начала слота сегодня осталось слишком мало времени
	ErrLeadTimeTooShort = errors.New("create_booking: too late to book this slot today")

	// ErrInvalidCourt возвращается, если корт не найден или выключен
	ErrInvalidCourt = errors.New("create_booking: invalid court")

	// ErrSlotTaken возвращается, когда слот уже занят
	ErrSlotTaken = errors.New("create_booking: slot is already taken")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// SlotTakenError уточняет, занят слот заявкой или заблокирован администратором
type SlotTakenError struct {
	Blocked bool
}

func (e *SlotTakenError) Error() string {
	if e.Blocked {
		return "create_booking: slot is blocked by admin"
	}
	return ErrSlotTaken.Error()
}

func (e *SlotTakenError) Unwrap() error {
	return ErrSlotTaken
}
