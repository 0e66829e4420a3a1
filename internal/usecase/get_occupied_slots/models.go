package get_occupied_slots

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// Request модель запроса занятых слотов
type Request struct {
	CourtID string
	Date    string // YYYY-MM-DD или DD-MM-YYYY
}

// Response модель ответа: занятые метки в порядке каталога и полная сетка
type Response struct {
	CourtID  string
	Date     time.Time
	Occupied []domain.Slot
	Slots    []Slot
}

// Slot состояние одной метки каталога
type Slot struct {
	StartTime domain.Slot
	Status    SlotStatus
}

// SlotStatus состояние слота для отображения
type SlotStatus string

const (
	SlotFree    SlotStatus = "free"
	SlotBooked  SlotStatus = "booked"
	SlotBlocked SlotStatus = "blocked"
)
