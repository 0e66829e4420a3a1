package get_occupied_slots

import (
	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	getOccupiedSlots "github.com/m04kA/SMC-CourtBookingService/internal/usecase/get_occupied_slots"
)

// OccupiedSlotsResponse HTTP response model
type OccupiedSlotsResponse struct {
	CourtID  string     `json:"courtId"`
	Date     string     `json:"date"`
	Occupied []string   `json:"occupied"`
	Slots    []SlotView `json:"slots"`
}

// SlotView состояние метки каталога
type SlotView struct {
	StartTime string `json:"startTime"`
	Status    string `json:"status"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getOccupiedSlots.Response) *OccupiedSlotsResponse {
	occupied := make([]string, len(resp.Occupied))
	for i, slot := range resp.Occupied {
		occupied[i] = slot.String()
	}

	slots := make([]SlotView, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotView{
			StartTime: slot.StartTime.String(),
			Status:    string(slot.Status),
		}
	}

	return &OccupiedSlotsResponse{
		CourtID:  resp.CourtID,
		Date:     domain.FormatDate(resp.Date),
		Occupied: occupied,
		Slots:    slots,
	}
}
