package bookings

import (
	"context"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, status *domain.BookingStatus) ([]*domain.Booking, error)
	Transition(ctx context.Context, id string, to domain.BookingStatus, from []domain.BookingStatus) (*domain.Booking, error)
	Delete(ctx context.Context, id string) error
}

// Notifier диспетчер уведомлений о решениях администратора
type Notifier interface {
	OnApproved(ctx context.Context, booking *domain.Booking) error
	OnRejected(ctx context.Context, booking *domain.Booking) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
