package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/bookings/models"
)

const defaultNotifyTimeout = 5 * time.Second

// Service сервис для работы с бронированиями (админские операции)
type Service struct {
	bookingRepo   BookingRepository
	notifier      Notifier
	notifyTimeout time.Duration
	logger        Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	notifier Notifier,
	notifyTimeout time.Duration,
	logger Logger,
) *Service {
	if notifyTimeout <= 0 {
		notifyTimeout = defaultNotifyTimeout
	}

	return &Service{
		bookingRepo:   bookingRepo,
		notifier:      notifier,
		notifyTimeout: notifyTimeout,
		logger:        logger,
	}
}

// List получает все бронирования с кортами, новые первыми
// Опционально фильтрует по статусу
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	var status *domain.BookingStatus
	if req != nil && req.Status != nil {
		st, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("List: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, *req.Status)
		}
		status = &st
	}

	bookings, err := s.bookingRepo.List(ctx, status)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// Delete удаляет бронирование; это единственный способ снять блокировку слота
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%s not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: booking id=%s deleted", id)
	return nil
}

// Approve переводит бронирование в approved и уведомляет студента
func (s *Service) Approve(ctx context.Context, id string) (*models.BookingResponse, error) {
	return s.transition(ctx, id, domain.StatusApproved, s.notifier.OnApproved)
}

// Reject переводит бронирование в rejected и уведомляет студента
// Слот освобождается: отклоненные записи не участвуют в уникальном индексе
func (s *Service) Reject(ctx context.Context, id string) (*models.BookingResponse, error) {
	return s.transition(ctx, id, domain.StatusRejected, s.notifier.OnRejected)
}

func (s *Service) transition(
	ctx context.Context,
	id string,
	to domain.BookingStatus,
	notify func(context.Context, *domain.Booking) error,
) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.Transition(ctx, id, to, domain.TransitionSources(to))
	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			s.logger.Warn("Transition: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		case errors.Is(err, bookingRepo.ErrInvalidTransition):
			s.logger.Warn("Transition: booking id=%s cannot move to %s", id, to)
			return nil, fmt.Errorf("%w: cannot move to %s", ErrInvalidTransition, to)
		default:
			s.logger.Error("Transition: repository error for booking id=%s: %v", id, err)
			return nil, fmt.Errorf("%w: Transition - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Transition: booking id=%s is now %s", id, to)

	// Уведомление не влияет на результат операции
	notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.notifyTimeout)
	go func() {
		defer cancel()
		if err := notify(notifyCtx, booking); err != nil {
			s.logger.Error("Transition: failed to dispatch %s notification for booking id=%s: %v", to, id, err)
		}
	}()

	return models.FromDomainBooking(booking), nil
}
