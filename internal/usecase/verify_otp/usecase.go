package verify_otp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	otpStore "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/otp"
	"github.com/m04kA/SMC-CourtBookingService/pkg/metrics"
	"github.com/m04kA/SMC-CourtBookingService/pkg/otpcode"
)

// UseCase use case подтверждения кода и выдачи токена
type UseCase struct {
	store        CodeStore
	tokens       TokenIssuer
	metrics      MetricsCollector
	cfg          Config
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(store CodeStore, tokens TokenIssuer, metrics MetricsCollector, cfg Config, logger Logger) *UseCase {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = domain.DefaultVerificationTokenTTL
	}

	return &UseCase{
		store:        store,
		tokens:       tokens,
		metrics:      metrics,
		cfg:          cfg,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute проверяет код; при совпадении код погашается и выдается токен
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	email := domain.NormalizeEmail(req.Email)
	code := strings.TrimSpace(req.Code)
	if email == "" || code == "" {
		return nil, ErrMissingFields
	}

	record, err := uc.store.Get(ctx, email)
	if err != nil {
		if errors.Is(err, otpStore.ErrCodeNotFound) {
			uc.fail("no code for %s", email)
			return nil, ErrNotFound
		}
		uc.logger.Error("VerifyOTP: failed to read code for %s: %v", email, err)
		return nil, fmt.Errorf("%w: failed to read code: %v", ErrInternal, err)
	}

	if record.IsExpired(uc.timeProvider.Now()) {
		if err := uc.store.Delete(ctx, email); err != nil {
			uc.logger.Warn("VerifyOTP: failed to delete expired code for %s: %v", email, err)
		}
		uc.fail("expired code for %s", email)
		return nil, ErrExpired
	}

	if !otpcode.Verify(code, uc.cfg.Secret, record.CodeHash) {
		uc.fail("wrong code for %s", email)
		return nil, ErrInvalidCode
	}

	// Погасить может только один из параллельных запросов
	consumed, err := uc.store.Consume(ctx, email)
	if err != nil {
		uc.logger.Error("VerifyOTP: failed to consume code for %s: %v", email, err)
		return nil, fmt.Errorf("%w: failed to consume code: %v", ErrInternal, err)
	}
	if !consumed {
		uc.fail("code for %s already used", email)
		return nil, ErrNotFound
	}

	token, expiresAt, err := uc.tokens.IssueEmailVerification(email, uc.cfg.TokenTTL)
	if err != nil {
		uc.logger.Error("VerifyOTP: failed to issue token for %s: %v", email, err)
		return nil, fmt.Errorf("%w: failed to issue token: %v", ErrInternal, err)
	}

	uc.metrics.IncOTP(metrics.OTPOutcomeVerified)
	uc.logger.Info("VerifyOTP: %s verified", email)

	return &Response{Email: email, Token: token, ExpiresAt: expiresAt}, nil
}

func (uc *UseCase) fail(format string, v ...interface{}) {
	uc.metrics.IncOTP(metrics.OTPOutcomeFailed)
	uc.logger.Warn("VerifyOTP: "+format, v...)
}
