package mailer

import (
	"bytes"
	"fmt"
	"text/template"
	"time"
)

const (
	SubjectOTP        = "Your OTP for Sports Booking"
	SubjectNewBooking = "New Booking Request"
	SubjectApproved   = "Your Booking Approved"
	SubjectRejected   = "Your Booking Request Was Rejected"
)

var (
	otpTemplate = template.Must(template.New("otp").Parse(
		`Your verification code is {{.Code}}.
It expires in {{.Minutes}} minutes. Do not share it with anyone.
`))

	newBookingTemplate = template.Must(template.New("new_booking").Parse(
		`A new booking request is waiting for review.

Booking ID:   {{.ID}}
Student:      {{.StudentName}} <{{.Email}}>
Court:        {{.Court}}
Date:         {{.Date}}
Time:         {{.Slot}}
{{- if .TeamMembers}}
Team members: {{.TeamMembers}}
{{- end}}
{{- if .ApproveURL}}

Approve: {{.ApproveURL}}
Reject:  {{.RejectURL}}
{{- end}}
`))

	approvedTemplate = template.Must(template.New("approved").Parse(
		`Hello {{.StudentName}},

Your booking for {{.Court}} on {{.Date}} at {{.Slot}} has been approved.
`))

	rejectedTemplate = template.Must(template.New("rejected").Parse(
		`Hello {{.StudentName}},

Your booking request for {{.Court}} on {{.Date}} at {{.Slot}} was rejected.
You may choose another slot and submit a new request.
`))
)

// OTPMessage письмо с кодом подтверждения
func OTPMessage(to, code string, ttl time.Duration) (Message, error) {
	body, err := render(otpTemplate, struct {
		Code    string
		Minutes int
	}{Code: code, Minutes: int(ttl / time.Minute)})
	if err != nil {
		return Message{}, err
	}
	return Message{To: to, Subject: SubjectOTP, Body: body}, nil
}

// NewBookingMessage уведомление администратора о новой заявке
func NewBookingMessage(to string, view BookingView) (Message, error) {
	body, err := render(newBookingTemplate, view)
	if err != nil {
		return Message{}, err
	}
	return Message{To: to, Subject: SubjectNewBooking, Body: body}, nil
}

// ApprovedMessage уведомление студента об одобрении
func ApprovedMessage(view BookingView) (Message, error) {
	body, err := render(approvedTemplate, view)
	if err != nil {
		return Message{}, err
	}
	return Message{To: view.Email, Subject: SubjectApproved, Body: body}, nil
}

// RejectedMessage уведомление студента об отклонении
func RejectedMessage(view BookingView) (Message, error) {
	body, err := render(rejectedTemplate, view)
	if err != nil {
		return Message{}, err
	}
	return Message{To: view.Email, Subject: SubjectRejected, Body: body}, nil
}

func render(tmpl *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrRender, tmpl.Name(), err)
	}
	return buf.String(), nil
}
