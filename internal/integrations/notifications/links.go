package notifications

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/pkg/jwtauth"
)

// ActionLinks строит подписанные ссылки одобрения и отклонения для письма администратору
type ActionLinks struct {
	baseURL string
	tokens  ActionTokenIssuer
	ttl     time.Duration
}

// NewActionLinks создает построитель ссылок; baseURL - публичный адрес API без /api/v1
func NewActionLinks(baseURL string, tokens ActionTokenIssuer, ttl time.Duration) *ActionLinks {
	return &ActionLinks{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		ttl:     ttl,
	}
}

// Build возвращает ссылки approve и reject для бронирования
func (l *ActionLinks) Build(bookingID string) (string, string, error) {
	approve, err := l.link(bookingID, jwtauth.ActionApprove)
	if err != nil {
		return "", "", err
	}
	reject, err := l.link(bookingID, jwtauth.ActionReject)
	if err != nil {
		return "", "", err
	}
	return approve, reject, nil
}

func (l *ActionLinks) link(bookingID, action string) (string, error) {
	token, _, err := l.tokens.IssueBookingAction(bookingID, action, l.ttl)
	if err != nil {
		return "", fmt.Errorf("%w: %s link for booking %s: %v", ErrActionLink, action, bookingID, err)
	}
	return fmt.Sprintf("%s/api/v1/bookings/%s/%s-email?token=%s",
		l.baseURL, url.PathEscape(bookingID), action, url.QueryEscape(token)), nil
}
