package block_slot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/booking"
	courtRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/court"
	"github.com/m04kA/SMC-CourtBookingService/pkg/metrics"
)

// UseCase use case блокировки слота администратором
type UseCase struct {
	bookingRepo BookingRepository
	courtRepo   CourtRepository
	metrics     MetricsCollector
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, courtRepo CourtRepository, metrics MetricsCollector, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		courtRepo:   courtRepo,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute создает запись со статусом blocked, минуя pending
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BlockSlot: court=%s, date=%s, time=%s", req.CourtID, req.Date, req.StartTime)

	courtID := strings.TrimSpace(req.CourtID)
	if courtID == "" || strings.TrimSpace(req.Date) == "" || strings.TrimSpace(req.StartTime) == "" {
		return nil, ErrMissingFields
	}

	court, err := uc.courtRepo.GetByID(ctx, courtID)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Warn("BlockSlot: court id=%s not found", courtID)
			return nil, fmt.Errorf("%w: court %s not found", ErrInvalidCourt, courtID)
		}
		uc.logger.Error("BlockSlot: failed to get court id=%s: %v", courtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDate, req.Date)
	}

	slot, err := domain.ParseSlot(strings.TrimSpace(req.StartTime))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSlot, req.StartTime)
	}

	if err := uc.checkConflict(ctx, court.ID, date, slot); err != nil {
		return nil, err
	}

	block := &domain.Booking{
		StudentName:  domain.BlockedByAdminName,
		StudentEmail: domain.BlockedByAdminEmail,
		CourtID:      court.ID,
		BookingDate:  date,
		StartTime:    slot,
		Status:       domain.StatusBlocked,
	}

	created, err := uc.bookingRepo.Create(ctx, block)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			if cerr := uc.checkConflict(ctx, court.ID, date, slot); cerr != nil {
				return nil, cerr
			}
			return nil, &SlotTakenError{}
		}
		uc.logger.Error("BlockSlot: failed to insert block: %v", err)
		return nil, fmt.Errorf("%w: failed to create block: %v", ErrInternal, err)
	}
	created.Court = court

	uc.metrics.IncBooking(metrics.BookingOutcomeBlocked)
	uc.logger.Info("BlockSlot: blocked court=%s date=%s time=%s (id=%s)",
		court.ID, domain.FormatDate(date), slot, created.ID)

	return &Response{Booking: created}, nil
}

func (uc *UseCase) checkConflict(ctx context.Context, courtID string, date time.Time, slot domain.Slot) error {
	existing, err := uc.bookingRepo.FindConflict(ctx, courtID, date, slot)
	if err != nil {
		uc.logger.Error("BlockSlot: failed to check conflict: %v", err)
		return fmt.Errorf("%w: failed to check conflict: %v", ErrInternal, err)
	}
	if existing == nil {
		return nil
	}

	uc.metrics.IncBooking(metrics.BookingOutcomeConflict)
	uc.logger.Warn("BlockSlot: slot court=%s date=%s time=%s held by booking id=%s (%s)",
		courtID, domain.FormatDate(date), slot, existing.ID, existing.Status)
	return &SlotTakenError{Blocked: existing.IsBlocked()}
}
