package verify_otp

import "time"

// Config параметры подтверждения
type Config struct {
	Secret   string
	TokenTTL time.Duration
}

// Request модель запроса подтверждения кода
type Request struct {
	Email string
	Code  string
}

// Response токен подтверждения email
type Response struct {
	Email     string
	Token     string
	ExpiresAt time.Time
}
