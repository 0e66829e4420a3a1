package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	FindConflict(ctx context.Context, courtID string, date time.Time, slot domain.Slot) (*domain.Booking, error)
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Court, error)
}

// SettingRepository интерфейс хранилища глобальных настроек
type SettingRepository interface {
	GetOrCreate(ctx context.Context, key string, def bool) (bool, error)
}

// TokenVerifier проверяет токен подтверждения email и возвращает привязанный email
type TokenVerifier interface {
	VerifyEmailVerification(token string) (string, error)
}

// Notifier диспетчер уведомлений
type Notifier interface {
	OnCreated(ctx context.Context, booking *domain.Booking) error
}

// MetricsCollector счетчик исходов бронирования
type MetricsCollector interface {
	IncBooking(outcome string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
