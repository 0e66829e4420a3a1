package courts

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/courts/models"
)

// Service сервис кортов
type Service struct {
	repo   CourtRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса кортов
func NewService(repo CourtRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List возвращает активные корты
func (s *Service) List(ctx context.Context) ([]models.CourtResponse, error) {
	courts, err := s.repo.List(ctx, true)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainCourtList(courts), nil
}

// Create добавляет корт; по умолчанию корт активен
func (s *Service) Create(ctx context.Context, req *models.CreateCourtRequest) (*models.CourtResponse, error) {
	name := strings.TrimSpace(req.Name)
	courtType := strings.ToLower(strings.TrimSpace(req.Type))

	if name == "" || courtType == "" {
		return nil, fmt.Errorf("%w: name and type are required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > domain.MaxCourtNameLength {
		return nil, fmt.Errorf("%w: name exceeds %d characters", ErrInvalidInput, domain.MaxCourtNameLength)
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	court, err := s.repo.Create(ctx, &domain.Court{Name: name, Type: courtType, Active: active})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: court id=%s (%s) added", court.ID, court.Name)
	return models.FromDomainCourt(court), nil
}
