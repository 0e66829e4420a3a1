package create_booking

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// Config бизнес-параметры создания бронирования
type Config struct {
	Location           *time.Location // часовой пояс, в котором считается "сегодня"
	AllowedEmailDomain string
	SameDayLeadTime    time.Duration
	AllowPastDates     bool
	NotifyTimeout      time.Duration
}

// Request модель запроса на создание бронирования
type Request struct {
	StudentName       string
	StudentEmail      string
	CourtID           string
	Date              string // YYYY-MM-DD или DD-MM-YYYY
	StartTime         string // метка слота, например "13:00"
	TeamMembers       string
	VerificationToken string
}

// Response созданное бронирование с данными корта
type Response struct {
	Booking *domain.Booking
}
