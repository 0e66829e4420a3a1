package issue_otp

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/internal/integrations/mailer"
)

// CodeStore хранилище выданных кодов и пауз между выдачами
type CodeStore interface {
	AcquireCooldown(ctx context.Context, email string, cooldown time.Duration) (bool, time.Duration, error)
	ReleaseCooldown(ctx context.Context, email string) error
	Save(ctx context.Context, code *domain.VerificationCode) error
	Delete(ctx context.Context, email string) error
}

// Sender отправитель писем
type Sender interface {
	Send(ctx context.Context, msg mailer.Message) error
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
