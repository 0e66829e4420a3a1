package toggle_booking

import (
	"context"

	"github.com/m04kA/SMC-CourtBookingService/internal/service/settings"
)

type SettingsService interface {
	ToggleBookingEnabled(ctx context.Context) (*settings.BookingStatus, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
