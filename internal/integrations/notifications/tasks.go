package notifications

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/internal/integrations/mailer"
)

// Типы задач уведомлений
const (
	TypeBookingCreated  = "booking:created"
	TypeBookingApproved = "booking:approved"
	TypeBookingRejected = "booking:rejected"
)

// Payload снимок бронирования на момент события
type Payload struct {
	BookingID   string `json:"bookingId"`
	StudentName string `json:"studentName"`
	Email       string `json:"studentEmail"`
	CourtName   string `json:"courtName"`
	Date        string `json:"date"`
	Slot        string `json:"startTime"`
	TeamMembers string `json:"teamMembers,omitempty"`
	Status      string `json:"status"`
}

// NewPayload собирает полезную нагрузку из бронирования
func NewPayload(b *domain.Booking) Payload {
	p := Payload{
		BookingID:   b.ID,
		StudentName: b.StudentName,
		Email:       b.StudentEmail,
		CourtName:   b.CourtID,
		Date:        domain.FormatDate(b.BookingDate),
		Slot:        b.StartTime.String(),
		TeamMembers: b.TeamMembers,
		Status:      string(b.Status),
	}
	if b.Court != nil && b.Court.Name != "" {
		p.CourtName = b.Court.Name
	}
	return p
}

// View данные для шаблонов писем
func (p Payload) View() mailer.BookingView {
	return mailer.BookingView{
		ID:          p.BookingID,
		StudentName: p.StudentName,
		Email:       p.Email,
		Court:       p.CourtName,
		Date:        p.Date,
		Slot:        p.Slot,
		TeamMembers: p.TeamMembers,
		Status:      p.Status,
	}
}

// NewTask создает задачу asynq указанного типа
func NewTask(taskType string, b *domain.Booking) (*asynq.Task, error) {
	data, err := json.Marshal(NewPayload(b))
	if err != nil {
		return nil, fmt.Errorf("%w: marshal %s: %v", ErrPayload, taskType, err)
	}
	return asynq.NewTask(taskType, data), nil
}

// ParsePayload разбирает полезную нагрузку задачи
func ParsePayload(task *asynq.Task) (Payload, error) {
	var p Payload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return Payload{}, fmt.Errorf("%w: unmarshal %s: %v", ErrPayload, task.Type(), err)
	}
	return p, nil
}
