package settings

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// BookingStatus ответ с состоянием приема заявок
type BookingStatus struct {
	BookingEnabled bool `json:"bookingEnabled"`
}

// Service сервис глобального переключателя приема заявок
type Service struct {
	repo   SettingRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(repo SettingRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// GetBookingEnabled возвращает текущее значение, создавая настройку со значением true при отсутствии
func (s *Service) GetBookingEnabled(ctx context.Context) (*BookingStatus, error) {
	enabled, err := s.repo.GetOrCreate(ctx, domain.SettingBookingEnabled, domain.DefaultBookingEnabled)
	if err != nil {
		s.logger.Error("GetBookingEnabled: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetBookingEnabled - repository error: %v", ErrInternal, err)
	}
	return &BookingStatus{BookingEnabled: enabled}, nil
}

// ToggleBookingEnabled атомарно инвертирует значение и возвращает новое
func (s *Service) ToggleBookingEnabled(ctx context.Context) (*BookingStatus, error) {
	enabled, err := s.repo.Toggle(ctx, domain.SettingBookingEnabled, domain.DefaultBookingEnabled)
	if err != nil {
		s.logger.Error("ToggleBookingEnabled: repository error: %v", err)
		return nil, fmt.Errorf("%w: ToggleBookingEnabled - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ToggleBookingEnabled: bookings are now enabled=%t", enabled)
	return &BookingStatus{BookingEnabled: enabled}, nil
}
