package jwtauth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
)

// Назначения токенов
const (
	PurposeEmailVerification = "email_verification"
	PurposeAdmin             = "admin"
	PurposeBookingAction     = "booking_action"
)

// Действия над бронированием по ссылке из письма
const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

var (
	// ErrInvalidToken возвращается, если подпись или формат токена некорректны
	ErrInvalidToken = errors.New("jwtauth: invalid token")

	// ErrExpiredToken возвращается для просроченного токена
	ErrExpiredToken = errors.New("jwtauth: token expired")

	// ErrWrongPurpose возвращается, если токен выпущен для другой цели
	ErrWrongPurpose = errors.New("jwtauth: wrong token purpose")
)

// Claims полезная нагрузка токенов сервиса
type Claims struct {
	Email   string `json:"email,omitempty"`
	Purpose string `json:"purpose"`
	Action  string `json:"action,omitempty"`
	jwt.StandardClaims
}

// Manager выпускает и проверяет HS256-токены
type Manager struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// NewManager создает менеджер токенов
func NewManager(secret, issuer string) *Manager {
	return &Manager{
		secret: []byte(secret),
		issuer: issuer,
		now:    time.Now,
	}
}

// WithClock подменяет источник времени при выпуске токенов
func (m *Manager) WithClock(now func() time.Time) *Manager {
	m.now = now
	return m
}

// IssueEmailVerification выпускает подтверждение владения email
func (m *Manager) IssueEmailVerification(email string, ttl time.Duration) (string, time.Time, error) {
	return m.issue(Claims{
		Email:   NormalizeEmail(email),
		Purpose: PurposeEmailVerification,
	}, "", ttl)
}

// VerifyEmailVerification проверяет подпись, срок и назначение токена и возвращает привязанный email
func (m *Manager) VerifyEmailVerification(token string) (string, error) {
	claims, err := m.parse(token)
	if err != nil {
		return "", err
	}
	if claims.Purpose != PurposeEmailVerification {
		return "", ErrWrongPurpose
	}
	if claims.Email == "" {
		return "", fmt.Errorf("%w: email claim is empty", ErrInvalidToken)
	}
	return claims.Email, nil
}

// IssueAdmin выпускает токен администратора
func (m *Manager) IssueAdmin(adminID string, ttl time.Duration) (string, time.Time, error) {
	return m.issue(Claims{Purpose: PurposeAdmin}, adminID, ttl)
}

// VerifyAdmin проверяет токен администратора и возвращает его ID
func (m *Manager) VerifyAdmin(token string) (string, error) {
	claims, err := m.parse(token)
	if err != nil {
		return "", err
	}
	if claims.Purpose != PurposeAdmin {
		return "", ErrWrongPurpose
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: subject is empty", ErrInvalidToken)
	}
	return claims.Subject, nil
}

// IssueBookingAction выпускает токен ссылки администратора на одобрение или отклонение бронирования
// Повторное применение отсекается переходами статусов
func (m *Manager) IssueBookingAction(bookingID, action string, ttl time.Duration) (string, time.Time, error) {
	if action != ActionApprove && action != ActionReject {
		return "", time.Time{}, fmt.Errorf("%w: unknown action %q", ErrInvalidToken, action)
	}
	return m.issue(Claims{Purpose: PurposeBookingAction, Action: action}, bookingID, ttl)
}

// VerifyBookingAction проверяет, что токен выпущен для данного бронирования и действия
func (m *Manager) VerifyBookingAction(token, bookingID, action string) error {
	claims, err := m.parse(token)
	if err != nil {
		return err
	}
	if claims.Purpose != PurposeBookingAction {
		return ErrWrongPurpose
	}
	if claims.Subject == "" || claims.Subject != bookingID || claims.Action != action {
		return fmt.Errorf("%w: token is bound to another booking or action", ErrInvalidToken)
	}
	return nil
}

func (m *Manager) issue(claims Claims, subject string, ttl time.Duration) (string, time.Time, error) {
	now := m.now()
	expiresAt := now.Add(ttl)

	claims.StandardClaims = jwt.StandardClaims{
		Subject:   subject,
		Issuer:    m.issuer,
		IssuedAt:  now.Unix(),
		ExpiresAt: expiresAt.Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("jwtauth: sign token: %w", err)
	}
	return signed, expiresAt, nil
}

func (m *Manager) parse(token string) (*Claims, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		var vErr *jwt.ValidationError
		if errors.As(err, &vErr) && vErr.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}

// NormalizeEmail приводит email к каноническому виду: без пробелов по краям, в нижнем регистре
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
