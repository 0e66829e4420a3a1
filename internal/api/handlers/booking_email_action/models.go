package booking_email_action

import "github.com/m04kA/SMC-CourtBookingService/internal/service/bookings/models"

// ActionResponse ответ на переход по ссылке из письма
type ActionResponse struct {
	Success bool                    `json:"success"`
	Message string                  `json:"message"`
	Booking *models.BookingResponse `json:"booking"`
}
