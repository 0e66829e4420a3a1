package notifications

import (
	"context"
	"time"

	"github.com/hibiken/asynq"

	"github.com/m04kA/SMC-CourtBookingService/internal/integrations/mailer"
)

// Enqueuer постановщик задач; реализуется *asynq.Client
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Sender отправитель писем
type Sender interface {
	Send(ctx context.Context, msg mailer.Message) error
}

// ActionTokenIssuer выпускает токены ссылок администратора; реализуется *jwtauth.Manager
type ActionTokenIssuer interface {
	IssueBookingAction(bookingID, action string, ttl time.Duration) (string, time.Time, error)
}

// LinkBuilder строит ссылки approve и reject для письма о новой заявке
type LinkBuilder interface {
	Build(bookingID string) (approveURL, rejectURL string, err error)
}

// MetricsCollector счетчик уведомлений
type MetricsCollector interface {
	IncNotification(event, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
