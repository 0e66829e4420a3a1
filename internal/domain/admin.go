package domain

import "time"

// Admin represents an administrator account
type Admin struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
