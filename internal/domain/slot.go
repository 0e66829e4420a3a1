package domain

import (
	"errors"
	"time"
)

// Slot is a canonical 30-minute start label, e.g. "13:30"
type Slot string

// ErrUnknownSlot is returned for labels outside the catalog
var ErrUnknownSlot = errors.New("domain: slot is not in the catalog")

// SlotCatalog is the fixed daily grid of bookable start times, in order
var SlotCatalog = []Slot{
	"12:30", "13:00", "13:30",
	"14:00", "14:30", "15:00",
	"15:30", "16:00", "16:30",
}

// ParseSlot validates a label against the catalog
func ParseSlot(s string) (Slot, error) {
	slot := Slot(s)
	if slot.Index() < 0 {
		return "", ErrUnknownSlot
	}
	return slot, nil
}

// Index returns the position in SlotCatalog or -1
func (s Slot) Index() int {
	for i, c := range SlotCatalog {
		if c == s {
			return i
		}
	}
	return -1
}

// Offset returns the slot start as a duration since midnight
func (s Slot) Offset() (time.Duration, error) {
	t, err := time.Parse(TimeFormat, string(s))
	if err != nil {
		return 0, err
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

// StartOn returns the slot start instant on the given calendar date in loc
func (s Slot) StartOn(date time.Time, loc *time.Location) (time.Time, error) {
	offset, err := s.Offset()
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc).Add(offset), nil
}

func (s Slot) String() string {
	return string(s)
}
