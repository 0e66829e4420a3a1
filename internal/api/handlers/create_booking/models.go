package create_booking

import (
	"net/http"
	"strings"

	"github.com/m04kA/SMC-CourtBookingService/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-CourtBookingService/internal/usecase/create_booking"
)

// VerificationTokenHeader заголовок с токеном подтверждения email
const VerificationTokenHeader = "X-Email-Verification-Token"

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	StudentName  string `json:"studentName"`
	StudentEmail string `json:"studentEmail"`
	CourtID      string `json:"courtId"`
	Date         string `json:"date"`      // "2025-06-01" или "01-06-2025"
	StartTime    string `json:"startTime"` // "13:00"
	TeamMembers  string `json:"teamMembers"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(token string) *createBooking.Request {
	return &createBooking.Request{
		StudentName:       r.StudentName,
		StudentEmail:      r.StudentEmail,
		CourtID:           r.CourtID,
		Date:              r.Date,
		StartTime:         r.StartTime,
		TeamMembers:       r.TeamMembers,
		VerificationToken: token,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *models.BookingResponse {
	return models.FromDomainBooking(resp.Booking)
}

// verificationToken достает токен из X-Email-Verification-Token или Authorization: Bearer
func verificationToken(r *http.Request) string {
	if token := strings.TrimSpace(r.Header.Get(VerificationTokenHeader)); token != "" {
		return token
	}
	auth := r.Header.Get("Authorization")
	if len(auth) > 7 && strings.EqualFold(auth[:7], "Bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return ""
}
