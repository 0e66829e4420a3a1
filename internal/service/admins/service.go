package admins

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/admin"
)

// MinPasswordLength минимальная длина пароля администратора
const MinPasswordLength = 8

// Service сервис администраторов
type Service struct {
	repo     AdminRepository
	tokens   TokenIssuer
	tokenTTL time.Duration
	cost     int
	logger   Logger
}

// NewService создает новый экземпляр сервиса администраторов
func NewService(repo AdminRepository, tokens TokenIssuer, tokenTTL time.Duration, logger Logger) *Service {
	if tokenTTL <= 0 {
		tokenTTL = domain.DefaultAdminTokenTTL
	}
	return &Service{
		repo:     repo,
		tokens:   tokens,
		tokenTTL: tokenTTL,
		cost:     bcrypt.DefaultCost,
		logger:   logger,
	}
}

// Login проверяет пароль и выпускает токен администратора
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	email := domain.NormalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	a, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, admin.ErrAdminNotFound) {
			s.logger.Warn("Login: unknown admin email %s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error: %v", err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: wrong password for %s", email)
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.IssueAdmin(a.ID, s.tokenTTL)
	if err != nil {
		s.logger.Error("Login: failed to issue token: %v", err)
		return nil, fmt.Errorf("%w: Login - issue token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: admin %s signed in", a.ID)
	return &LoginResponse{Token: token, ExpiresAt: expiresAt}, nil
}

// Create регистрирует администратора, сохраняя только bcrypt-хеш пароля
func (s *Service) Create(ctx context.Context, email, password string) (*domain.Admin, error) {
	email = domain.NormalizeEmail(email)
	if domain.CheckEmail(email, "") != domain.EmailOK {
		return nil, fmt.Errorf("%w: malformed email", ErrInvalidInput)
	}
	if len(password) < MinPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, MinPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - hash password: %v", ErrInternal, err)
	}

	created, err := s.repo.Create(ctx, &domain.Admin{Email: email, PasswordHash: string(hash)})
	if err != nil {
		if errors.Is(err, admin.ErrAdminExists) {
			return nil, ErrAdminExists
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: admin %s registered", created.ID)
	return created, nil
}
