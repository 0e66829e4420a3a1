package domain

import "time"

// Court represents a bookable sports court
type Court struct {
	ID        string
	Name      string
	Type      string // например badminton, basketball
	Active    bool
	CreatedAt time.Time
}
