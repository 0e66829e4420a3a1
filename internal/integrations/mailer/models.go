package mailer

import "time"

// Config параметры подключения к SMTP
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
	Timeout  time.Duration
}

// Message текстовое письмо
type Message struct {
	To      string
	Subject string
	Body    string
}

// BookingView данные бронирования для шаблонов писем
type BookingView struct {
	ID          string
	StudentName string
	Email       string
	Court       string
	Date        string
	Slot        string
	TeamMembers string
	Status      string

	// Ссылки быстрого решения для администратора, пустые если не настроены
	ApproveURL string
	RejectURL  string
}
