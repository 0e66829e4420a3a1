package domain

import (
	"errors"
	"strings"
	"time"
)

// ErrInvalidDate is returned when a date matches none of the accepted layouts
var ErrInvalidDate = errors.New("domain: invalid calendar date")

// acceptedDateLayouts in order of preference; DateFormat is canonical
var acceptedDateLayouts = []string{DateFormat, AltDateFormat}

// ParseDate parses YYYY-MM-DD or DD-MM-YYYY into a calendar date (midnight UTC)
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range acceptedDateLayouts {
		if len(s) != len(layout) {
			continue
		}
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// FormatDate renders a calendar date in canonical form
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// DateOf returns the calendar date of instant t as observed in loc
func DateOf(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDate compares two calendar dates ignoring time and location
func SameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
