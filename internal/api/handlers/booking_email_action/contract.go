package booking_email_action

import (
	"context"

	"github.com/m04kA/SMC-CourtBookingService/internal/service/bookings/models"
)

type BookingService interface {
	Approve(ctx context.Context, id string) (*models.BookingResponse, error)
	Reject(ctx context.Context, id string) (*models.BookingResponse, error)
}

// ActionVerifier проверяет токен ссылки из письма; реализуется *jwtauth.Manager
type ActionVerifier interface {
	VerifyBookingAction(token, bookingID, action string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
