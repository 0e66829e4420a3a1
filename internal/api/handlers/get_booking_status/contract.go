package get_booking_status

import (
	"context"

	"github.com/m04kA/SMC-CourtBookingService/internal/service/settings"
)

type SettingsService interface {
	GetBookingEnabled(ctx context.Context) (*settings.BookingStatus, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
