package issue_otp

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/internal/integrations/mailer"
	"github.com/m04kA/SMC-CourtBookingService/pkg/metrics"
	"github.com/m04kA/SMC-CourtBookingService/pkg/otpcode"
)

// UseCase use case выдачи кода подтверждения email
type UseCase struct {
	store        CodeStore
	sender       Sender
	metrics      MetricsCollector
	cfg          Config
	generate     func(length int) (string, error)
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(store CodeStore, sender Sender, metrics MetricsCollector, cfg Config, logger Logger) *UseCase {
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = domain.DefaultOTPCooldown
	}
	if cfg.TTL <= 0 {
		cfg.TTL = domain.DefaultOTPTTL
	}

	return &UseCase{
		store:        store,
		sender:       sender,
		metrics:      metrics,
		cfg:          cfg,
		generate:     otpcode.Generate,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выдает новый код, заменяя предыдущий, и отправляет его на почту
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	email := domain.NormalizeEmail(req.Email)
	if email == "" {
		return nil, ErrMissingFields
	}

	switch domain.CheckEmail(email, uc.cfg.AllowedEmailDomain) {
	case domain.EmailMalformed:
		uc.logger.Warn("IssueOTP: malformed email %q", email)
		return nil, ErrInvalidEmail
	case domain.EmailDomainNotAllowed:
		uc.logger.Warn("IssueOTP: domain not allowed for %s", email)
		return nil, ErrDomainNotAllowed
	}

	now := uc.timeProvider.Now()

	// 1. Пауза между выдачами; занимается атомарно, параллельный запрос получит отказ
	acquired, remaining, err := uc.store.AcquireCooldown(ctx, email, uc.cfg.Cooldown)
	if err != nil {
		uc.logger.Error("IssueOTP: failed to acquire cooldown for %s: %v", email, err)
		return nil, fmt.Errorf("%w: failed to acquire cooldown: %v", ErrInternal, err)
	}
	if !acquired {
		uc.metrics.IncOTP(metrics.OTPOutcomeRateLimited)
		uc.logger.Warn("IssueOTP: cooldown active for %s, %s left", email, remaining)
		return nil, &RateLimitedError{RetryAfter: remaining}
	}

	// 2. Новый код; хранится только хеш
	code, err := uc.generate(domain.OTPLength)
	if err != nil {
		uc.logger.Error("IssueOTP: failed to generate code: %v", err)
		uc.releaseCooldown(ctx, email)
		return nil, fmt.Errorf("%w: failed to generate code: %v", ErrInternal, err)
	}

	record := &domain.VerificationCode{
		Email:      email,
		CodeHash:   otpcode.Hash(code, uc.cfg.Secret),
		LastSentAt: now,
		ExpiresAt:  now.Add(uc.cfg.TTL),
	}
	if err := uc.store.Save(ctx, record); err != nil {
		uc.logger.Error("IssueOTP: failed to save code for %s: %v", email, err)
		uc.releaseCooldown(ctx, email)
		return nil, fmt.Errorf("%w: failed to save code: %v", ErrInternal, err)
	}

	// 3. Отправка; при ошибке запись и пауза снимаются, чтобы пользователь мог запросить код сразу
	msg, err := mailer.OTPMessage(email, code, uc.cfg.TTL)
	if err == nil {
		err = uc.sender.Send(ctx, msg)
	}
	if err != nil {
		uc.metrics.IncOTP(metrics.OTPOutcomeFailed)
		uc.logger.Error("IssueOTP: failed to send code to %s: %v", email, err)
		if derr := uc.store.Delete(ctx, email); derr != nil {
			uc.logger.Warn("IssueOTP: failed to drop unsent code for %s: %v", email, derr)
		}
		uc.releaseCooldown(ctx, email)
		return nil, fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	uc.metrics.IncOTP(metrics.OTPOutcomeIssued)
	uc.logger.Info("IssueOTP: code sent to %s, expires at %s", email, record.ExpiresAt.Format("15:04:05"))

	return &Response{
		CooldownSeconds:  int(uc.cfg.Cooldown.Seconds()),
		ExpiresInSeconds: int(uc.cfg.TTL.Seconds()),
	}, nil
}

func (uc *UseCase) releaseCooldown(ctx context.Context, email string) {
	if err := uc.store.ReleaseCooldown(ctx, email); err != nil {
		uc.logger.Warn("IssueOTP: failed to release cooldown for %s: %v", email, err)
	}
}
