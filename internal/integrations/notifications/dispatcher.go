package notifications

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/pkg/metrics"
)

// Dispatcher публикует события жизненного цикла бронирования в очередь
// Письма отправляет отдельный воркер, поэтому запрос не ждет SMTP
type Dispatcher struct {
	client   Enqueuer
	queue    string
	maxRetry int
	metrics  MetricsCollector
	log      Logger
}

// NewDispatcher создает новый экземпляр диспетчера уведомлений
func NewDispatcher(client Enqueuer, queue string, maxRetry int, metrics MetricsCollector, log Logger) *Dispatcher {
	return &Dispatcher{
		client:   client,
		queue:    queue,
		maxRetry: maxRetry,
		metrics:  metrics,
		log:      log,
	}
}

// OnCreated уведомляет администратора о новой заявке
func (d *Dispatcher) OnCreated(ctx context.Context, b *domain.Booking) error {
	return d.enqueue(ctx, TypeBookingCreated, b)
}

// OnApproved уведомляет студента об одобрении
func (d *Dispatcher) OnApproved(ctx context.Context, b *domain.Booking) error {
	return d.enqueue(ctx, TypeBookingApproved, b)
}

// OnRejected уведомляет студента об отклонении
func (d *Dispatcher) OnRejected(ctx context.Context, b *domain.Booking) error {
	return d.enqueue(ctx, TypeBookingRejected, b)
}

func (d *Dispatcher) enqueue(ctx context.Context, taskType string, b *domain.Booking) error {
	task, err := NewTask(taskType, b)
	if err != nil {
		d.inc(taskType, metrics.NotificationFailed)
		return err
	}

	opts := []asynq.Option{asynq.MaxRetry(d.maxRetry)}
	if d.queue != "" {
		opts = append(opts, asynq.Queue(d.queue))
	}

	info, err := d.client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		d.inc(taskType, metrics.NotificationFailed)
		return fmt.Errorf("%w: %s for booking %s: %v", ErrEnqueue, taskType, b.ID, err)
	}

	d.inc(taskType, metrics.NotificationEnqueued)
	d.log.Info("Enqueued %s for booking %s (task=%s)", taskType, b.ID, info.ID)
	return nil
}

func (d *Dispatcher) inc(event, result string) {
	if d.metrics != nil {
		d.metrics.IncNotification(event, result)
	}
}
