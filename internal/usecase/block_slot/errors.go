package block_slot

import "errors"

var (
	// ErrMissingFields возвращается, если не заполнены корт, дата или слот
	ErrMissingFields = errors.New("block_slot: required fields are missing")

	// ErrInvalidCourt возвращается для несуществующего корта или некорректного ID
	ErrInvalidCourt = errors.New("block_slot: invalid court")

	// ErrInvalidDate возвращается при нераспознанной дате
	ErrInvalidDate = errors.New("block_slot: invalid date")

	// ErrInvalidSlot возвращается для слота вне каталога
	ErrInvalidSlot = errors.New("block_slot: invalid time slot")

	// ErrSlotTaken возвращается, когда слот уже занят
	ErrSlotTaken = errors.New("block_slot: slot is already taken")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("block_slot: internal error")
)

// SlotTakenError уточняет, занят слот заявкой или уже заблокирован
type SlotTakenError struct {
	Blocked bool
}

func (e *SlotTakenError) Error() string {
	if e.Blocked {
		return "block_slot: slot is already blocked"
	}
	return "block_slot: slot is already booked"
}

func (e *SlotTakenError) Unwrap() error {
	return ErrSlotTaken
}
