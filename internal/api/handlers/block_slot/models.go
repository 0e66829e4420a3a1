package block_slot

import (
	"github.com/m04kA/SMC-CourtBookingService/internal/service/bookings/models"
	blockSlot "github.com/m04kA/SMC-CourtBookingService/internal/usecase/block_slot"
)

// BlockSlotRequest HTTP request model
type BlockSlotRequest struct {
	CourtID   string `json:"courtId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BlockSlotRequest) ToUseCaseRequest() *blockSlot.Request {
	return &blockSlot.Request{
		CourtID:   r.CourtID,
		Date:      r.Date,
		StartTime: r.StartTime,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *blockSlot.Response) *models.BookingResponse {
	return models.FromDomainBooking(resp.Booking)
}
