package create_booking

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// validateRequest проверяет обязательные поля и их длину
func validateRequest(req *Request) error {
	var missing []string
	if strings.TrimSpace(req.StudentName) == "" {
		missing = append(missing, "studentName")
	}
	if strings.TrimSpace(req.StudentEmail) == "" {
		missing = append(missing, "studentEmail")
	}
	if strings.TrimSpace(req.CourtID) == "" {
		missing = append(missing, "courtId")
	}
	if strings.TrimSpace(req.Date) == "" {
		missing = append(missing, "date")
	}
	if strings.TrimSpace(req.StartTime) == "" {
		missing = append(missing, "startTime")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(missing, ", "))
	}

	if utf8.RuneCountInString(strings.TrimSpace(req.StudentName)) > domain.MaxStudentNameLength {
		return fmt.Errorf("%w: studentName exceeds %d characters", ErrInvalidInput, domain.MaxStudentNameLength)
	}
	if utf8.RuneCountInString(req.TeamMembers) > domain.MaxTeamMembersLength {
		return fmt.Errorf("%w: teamMembers exceeds %d characters", ErrInvalidInput, domain.MaxTeamMembersLength)
	}

	return nil
}

// validateEmail проверяет синтаксис и домен нормализованного email
func validateEmail(email, allowedDomain string) error {
	switch domain.CheckEmail(email, allowedDomain) {
	case domain.EmailMalformed:
		return ErrInvalidEmail
	case domain.EmailDomainNotAllowed:
		return ErrDomainNotAllowed
	}
	return nil
}

// validateDate проверяет, что дата не в прошлом и что на сегодня хватает запаса времени
// Для дат кроме сегодняшней ограничение по запасу времени не действует
func validateDate(date time.Time, slot domain.Slot, now time.Time, cfg Config) error {
	today := domain.DateOf(now, cfg.Location)

	if date.Before(today) && !cfg.AllowPastDates {
		return fmt.Errorf("%w: %s is before %s", ErrDateInPast, domain.FormatDate(date), domain.FormatDate(today))
	}

	if !domain.SameDate(date, today) {
		return nil
	}

	start, err := slot.StartOn(date, cfg.Location)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSlot, err)
	}

	if delta := start.Sub(now); delta < cfg.SameDayLeadTime {
		return fmt.Errorf("%w: slot %s starts in %s, minimum is %s",
			ErrLeadTimeTooShort, slot, delta.Round(time.Minute), cfg.SameDayLeadTime)
	}

	return nil
}
