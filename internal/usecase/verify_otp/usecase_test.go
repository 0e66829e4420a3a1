package verify_otp

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	otpStore "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/otp"
	"github.com/m04kA/SMC-CourtBookingService/pkg/jwtauth"
	"github.com/m04kA/SMC-CourtBookingService/pkg/logger"
	"github.com/m04kA/SMC-CourtBookingService/pkg/otpcode"
)

const (
	secret = "otp-secret"
	email  = "asha@mietjammu.in"
)

type memStore struct {
	mu      sync.Mutex
	records map[string]*domain.VerificationCode
}

func (s *memStore) Get(_ context.Context, email string) (*domain.VerificationCode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.records[email]
	if !ok {
		return nil, otpStore.ErrCodeNotFound
	}
	copied := *r
	return &copied, nil
}

func (s *memStore) Delete(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, email)
	return nil
}

func (s *memStore) Consume(_ context.Context, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.records[email]
	delete(s.records, email)
	return ok, nil
}

type nopMetrics struct{}

func (nopMetrics) IncOTP(string) {}

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

var issuedAt = time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC)

func setup(t *testing.T) (*UseCase, *memStore, *clock, *jwtauth.Manager) {
	t.Helper()

	store := &memStore{records: map[string]*domain.VerificationCode{
		email: {
			Email:      email,
			CodeHash:   otpcode.Hash("042917", secret),
			LastSentAt: issuedAt,
			ExpiresAt:  issuedAt.Add(5 * time.Minute),
		},
	}}
	tokens := jwtauth.NewManager("jwt-secret", "test")
	uc := NewUseCase(store, tokens, nopMetrics{}, Config{Secret: secret, TokenTTL: 15 * time.Minute}, logger.NewNop())
	c := &clock{now: issuedAt.Add(time.Minute)}
	uc.timeProvider = c

	return uc, store, c, tokens
}

func TestExecute_OneTimeUse(t *testing.T) {
	uc, _, _, tokens := setup(t)
	ctx := context.Background()

	resp, err := uc.Execute(ctx, &Request{Email: " ASHA@mietjammu.in", Code: "042917 "})
	require.NoError(t, err)
	assert.Equal(t, email, resp.Email)

	bound, err := tokens.VerifyEmailVerification(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, email, bound)

	_, err = uc.Execute(ctx, &Request{Email: email, Code: "042917"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExecute_WrongCodeKeepsRecord(t *testing.T) {
	uc, store, _, _ := setup(t)
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{Email: email, Code: "000000"})
	assert.ErrorIs(t, err, ErrInvalidCode)
	assert.Contains(t, store.records, email)

	_, err = uc.Execute(ctx, &Request{Email: email, Code: "042917"})
	assert.NoError(t, err)
}

func TestExecute_Expired(t *testing.T) {
	uc, store, c, _ := setup(t)
	c.now = issuedAt.Add(5*time.Minute + time.Second)

	_, err := uc.Execute(context.Background(), &Request{Email: email, Code: "042917"})
	assert.ErrorIs(t, err, ErrExpired)
	assert.NotContains(t, store.records, email)
}

func TestExecute_ExpiryBoundaryIsInclusive(t *testing.T) {
	uc, _, c, _ := setup(t)
	c.now = issuedAt.Add(5 * time.Minute)

	_, err := uc.Execute(context.Background(), &Request{Email: email, Code: "042917"})
	assert.NoError(t, err)
}

func TestExecute_MissingAndUnknown(t *testing.T) {
	uc, _, _, _ := setup(t)
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{Email: email})
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = uc.Execute(ctx, &Request{Email: "other@mietjammu.in", Code: "042917"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExecute_ConcurrentVerifySingleToken(t *testing.T) {
	uc, _, _, _ := setup(t)
	ctx := context.Background()

	const workers = 10
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := uc.Execute(ctx, &Request{Email: email, Code: "042917"}); err == nil {
				mu.Lock()
				success++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, success)
}
