package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending  BookingStatus = "pending"
	StatusApproved BookingStatus = "approved"
	StatusRejected BookingStatus = "rejected"
	StatusBlocked  BookingStatus = "blocked"
)

// Identity used for slots blocked by an administrator
const (
	BlockedByAdminName  = "Blocked by Admin"
	BlockedByAdminEmail = "admin-block@system.local"
)

// Booking represents a court reservation
type Booking struct {
	ID           string
	StudentName  string
	StudentEmail string
	CourtID      string
	BookingDate  time.Time // календарная дата, полночь UTC
	StartTime    Slot
	TeamMembers  string
	Status       BookingStatus

	// Court заполняется на чтении, nil если корт не загружен
	Court *Court

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OccupiesSlot returns true if the booking holds its (court, date, slot) triple
func (b *Booking) OccupiesSlot() bool {
	return b.Status.OccupiesSlot()
}

// IsBlocked returns true for admin-blocked slots
func (b *Booking) IsBlocked() bool {
	return b.Status == StatusBlocked
}

// OccupiesSlot returns true for every status except rejected
func (s BookingStatus) OccupiesSlot() bool {
	return s == StatusPending || s == StatusApproved || s == StatusBlocked
}

// IsValid checks the status against the known set
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusBlocked:
		return true
	}
	return false
}

// transitionSources lists, for each target status, the statuses it may be entered from.
// blocked is never a target: it is only created directly.
// rejected is final because the freed slot may already be held by another booking.
var transitionSources = map[BookingStatus][]BookingStatus{
	StatusApproved: {StatusPending},
	StatusRejected: {StatusPending, StatusApproved},
}

// TransitionSources returns the statuses a booking may move to target from
func TransitionSources(target BookingStatus) []BookingStatus {
	return transitionSources[target]
}

// OccupyingStatuses statuses that hold a slot
var OccupyingStatuses = []BookingStatus{
	StatusPending,
	StatusApproved,
	StatusBlocked,
}
