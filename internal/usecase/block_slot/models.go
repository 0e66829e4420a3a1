package block_slot

import "github.com/m04kA/SMC-CourtBookingService/internal/domain"

// Request модель запроса на блокировку слота
type Request struct {
	CourtID   string
	Date      string // YYYY-MM-DD или DD-MM-YYYY
	StartTime string
}

// Response созданная блокировка
type Response struct {
	Booking *domain.Booking
}
