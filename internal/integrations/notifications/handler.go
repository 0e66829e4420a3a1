package notifications

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"

	"github.com/m04kA/SMC-CourtBookingService/internal/integrations/mailer"
	"github.com/m04kA/SMC-CourtBookingService/pkg/metrics"
)

// Handler обрабатывает задачи уведомлений в воркере
type Handler struct {
	sender     Sender
	adminEmail string
	links      LinkBuilder
	metrics    MetricsCollector
	log        Logger
}

// NewHandler создает обработчик задач уведомлений
// links может быть nil: тогда письмо администратору уходит без ссылок быстрого решения
func NewHandler(sender Sender, adminEmail string, links LinkBuilder, metrics MetricsCollector, log Logger) *Handler {
	return &Handler{
		sender:     sender,
		adminEmail: adminEmail,
		links:      links,
		metrics:    metrics,
		log:        log,
	}
}

// Register подключает обработчики ко всем типам задач
func (h *Handler) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(TypeBookingCreated, h.ProcessTask)
	mux.HandleFunc(TypeBookingApproved, h.ProcessTask)
	mux.HandleFunc(TypeBookingRejected, h.ProcessTask)
}

// ProcessTask формирует письмо по типу задачи и отправляет его
// Ошибка отправки возвращается asynq для повторной попытки
func (h *Handler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	payload, err := ParsePayload(task)
	if err != nil {
		h.log.Error("Dropping task %s: %v", task.Type(), err)
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}

	msg, skip, err := h.message(task.Type(), payload)
	if err != nil {
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}
	if skip {
		h.log.Warn("Admin email is not configured, skipping %s for booking %s", task.Type(), payload.BookingID)
		return nil
	}

	if err := h.sender.Send(ctx, msg); err != nil {
		h.inc(task.Type(), metrics.NotificationFailed)
		h.log.Error("Failed to send %s for booking %s: %v", task.Type(), payload.BookingID, err)
		return err
	}

	h.inc(task.Type(), metrics.NotificationSent)
	return nil
}

func (h *Handler) message(taskType string, p Payload) (mailer.Message, bool, error) {
	switch taskType {
	case TypeBookingCreated:
		if h.adminEmail == "" {
			return mailer.Message{}, true, nil
		}
		view := p.View()
		if h.links != nil {
			approveURL, rejectURL, err := h.links.Build(p.BookingID)
			if err != nil {
				// Без ссылок администратор решает через панель
				h.log.Warn("Sending %s for booking %s without action links: %v", taskType, p.BookingID, err)
			} else {
				view.ApproveURL, view.RejectURL = approveURL, rejectURL
			}
		}
		msg, err := mailer.NewBookingMessage(h.adminEmail, view)
		return msg, false, err
	case TypeBookingApproved:
		msg, err := mailer.ApprovedMessage(p.View())
		return msg, false, err
	case TypeBookingRejected:
		msg, err := mailer.RejectedMessage(p.View())
		return msg, false, err
	default:
		return mailer.Message{}, false, fmt.Errorf("%w: unknown task type %q", ErrPayload, taskType)
	}
}

func (h *Handler) inc(event, result string) {
	if h.metrics != nil {
		h.metrics.IncNotification(event, result)
	}
}
