package get_occupied_slots

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// UseCase use case для получения занятых слотов корта на дату
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выполняет use case получения занятых слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	courtID := strings.TrimSpace(req.CourtID)
	if courtID == "" || strings.TrimSpace(req.Date) == "" {
		return nil, ErrMissingFields
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		uc.logger.Warn("GetOccupiedSlots: invalid date %q", req.Date)
		return nil, fmt.Errorf("%w: %s", ErrInvalidDate, req.Date)
	}

	bookings, err := uc.bookingRepo.ListByCourtDate(ctx, courtID, date)
	if err != nil {
		uc.logger.Error("GetOccupiedSlots: failed to list bookings for court=%s date=%s: %v",
			courtID, domain.FormatDate(date), err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	occupied, grid := buildGrid(bookings)

	return &Response{
		CourtID:  courtID,
		Date:     date,
		Occupied: occupied,
		Slots:    grid,
	}, nil
}
