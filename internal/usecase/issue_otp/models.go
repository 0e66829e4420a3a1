package issue_otp

import "time"

// Config параметры выдачи кодов
type Config struct {
	Secret             string
	AllowedEmailDomain string
	Cooldown           time.Duration
	TTL                time.Duration
}

// Request модель запроса кода
type Request struct {
	Email string
}

// Response окна действия выданного кода
type Response struct {
	CooldownSeconds  int
	ExpiresInSeconds int
}
