package verify_otp

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// CodeStore хранилище выданных кодов
type CodeStore interface {
	Get(ctx context.Context, email string) (*domain.VerificationCode, error)
	Delete(ctx context.Context, email string) error
	Consume(ctx context.Context, email string) (bool, error)
}

// TokenIssuer выпускает токен подтверждения email
type TokenIssuer interface {
	IssueEmailVerification(email string, ttl time.Duration) (string, time.Time, error)
}

// MetricsCollector счетчик операций с кодами
type MetricsCollector interface {
	IncOTP(outcome string)
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
