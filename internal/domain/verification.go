package domain

import "time"

// VerificationCode is the stored state of an issued one-time code
// Хранится только HMAC кода, сам код не сохраняется
type VerificationCode struct {
	Email      string
	CodeHash   string
	LastSentAt time.Time
	ExpiresAt  time.Time
}

// IsExpired returns true once now has passed ExpiresAt
func (c *VerificationCode) IsExpired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}
