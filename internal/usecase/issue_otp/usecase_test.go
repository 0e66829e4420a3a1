package issue_otp

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/internal/integrations/mailer"
	"github.com/m04kA/SMC-CourtBookingService/pkg/logger"
	"github.com/m04kA/SMC-CourtBookingService/pkg/otpcode"
)

const secret = "otp-secret"

type memStore struct {
	mu        sync.Mutex
	records   map[string]*domain.VerificationCode
	cooldowns map[string]time.Time
	clock     *clock
}

func newMemStore() *memStore {
	return &memStore{
		records:   map[string]*domain.VerificationCode{},
		cooldowns: map[string]time.Time{},
	}
}

func (s *memStore) AcquireCooldown(_ context.Context, email string, cooldown time.Duration) (bool, time.Duration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock.Now()
	if until, ok := s.cooldowns[email]; ok && until.After(now) {
		return false, until.Sub(now), nil
	}
	s.cooldowns[email] = now.Add(cooldown)
	return true, 0, nil
}

func (s *memStore) ReleaseCooldown(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.cooldowns, email)
	return nil
}

func (s *memStore) Save(_ context.Context, code *domain.VerificationCode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *code
	s.records[code.Email] = &copied
	return nil
}

func (s *memStore) Delete(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, email)
	return nil
}

type fakeSender struct {
	sent []mailer.Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, msg mailer.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

type nopMetrics struct{}

func (nopMetrics) IncOTP(string) {}

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

func newUseCase(store *memStore, sender Sender) (*UseCase, *clock) {
	uc := NewUseCase(store, sender, nopMetrics{}, Config{
		Secret:             secret,
		AllowedEmailDomain: "mietjammu.in",
		Cooldown:           60 * time.Second,
		TTL:                5 * time.Minute,
	}, logger.NewNop())

	c := &clock{now: time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC)}
	uc.timeProvider = c
	store.clock = c
	uc.generate = func(int) (string, error) { return "042917", nil }
	return uc, c
}

func TestExecute_IssuesHashedCode(t *testing.T) {
	store := newMemStore()
	sender := &fakeSender{}
	uc, c := newUseCase(store, sender)

	resp, err := uc.Execute(context.Background(), &Request{Email: " Asha@MIETJAMMU.in "})
	require.NoError(t, err)
	assert.Equal(t, 60, resp.CooldownSeconds)
	assert.Equal(t, 300, resp.ExpiresInSeconds)

	record := store.records["asha@mietjammu.in"]
	require.NotNil(t, record)
	assert.NotEqual(t, "042917", record.CodeHash)
	assert.True(t, otpcode.Verify("042917", secret, record.CodeHash))
	assert.Equal(t, c.now, record.LastSentAt)
	assert.Equal(t, c.now.Add(5*time.Minute), record.ExpiresAt)

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "asha@mietjammu.in", sender.sent[0].To)
	assert.Contains(t, sender.sent[0].Body, "042917")
}

func TestExecute_Cooldown(t *testing.T) {
	store := newMemStore()
	uc, c := newUseCase(store, &fakeSender{})
	ctx := context.Background()
	req := &Request{Email: "asha@mietjammu.in"}

	_, err := uc.Execute(ctx, req)
	require.NoError(t, err)

	c.now = c.now.Add(20*time.Second + 500*time.Millisecond)
	_, err = uc.Execute(ctx, req)
	require.ErrorIs(t, err, ErrRateLimited)

	var limited *RateLimitedError
	require.ErrorAs(t, err, &limited)
	assert.Equal(t, 40, limited.RetryAfterSeconds())

	c.now = c.now.Add(40 * time.Second)
	uc.generate = func(int) (string, error) { return "111111", nil }
	_, err = uc.Execute(ctx, req)
	require.NoError(t, err)
	assert.True(t, otpcode.Verify("111111", secret, store.records["asha@mietjammu.in"].CodeHash))
}

func TestExecute_EmailValidation(t *testing.T) {
	uc, _ := newUseCase(newMemStore(), &fakeSender{})
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{Email: "  "})
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = uc.Execute(ctx, &Request{Email: "not-an-email"})
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = uc.Execute(ctx, &Request{Email: "asha@gmail.com"})
	assert.ErrorIs(t, err, ErrDomainNotAllowed)
}

func TestExecute_SendFailureDropsRecord(t *testing.T) {
	store := newMemStore()
	uc, _ := newUseCase(store, &fakeSender{err: errors.New("smtp down")})

	_, err := uc.Execute(context.Background(), &Request{Email: "asha@mietjammu.in"})
	assert.ErrorIs(t, err, ErrSendFailed)
	assert.Empty(t, store.records)
	assert.Empty(t, store.cooldowns)
}

func TestExecute_ConcurrentRequestsSendOneCode(t *testing.T) {
	store := newMemStore()
	sender := &lockedSender{}
	uc, _ := newUseCase(store, sender)

	const workers = 8
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		issued  int
		limited int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), &Request{Email: "asha@mietjammu.in"})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				issued++
			case errors.Is(err, ErrRateLimited):
				limited++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, issued)
	assert.Equal(t, workers-1, limited)
	assert.Equal(t, 1, sender.count())
}

type lockedSender struct {
	mu   sync.Mutex
	sent int
}

func (s *lockedSender) Send(context.Context, mailer.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent++
	return nil
}

func (s *lockedSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sent
}
