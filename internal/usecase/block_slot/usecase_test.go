package block_slot

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/booking"
	courtRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/court"
	"github.com/m04kA/SMC-CourtBookingService/pkg/logger"
)

type memLedger struct {
	mu       sync.Mutex
	bookings []*domain.Booking
}

func (l *memLedger) find(courtID string, date time.Time, slot domain.Slot) *domain.Booking {
	for _, b := range l.bookings {
		if b.CourtID == courtID && domain.SameDate(b.BookingDate, date) && b.StartTime == slot && b.OccupiesSlot() {
			return b
		}
	}
	return nil
}

func (l *memLedger) FindConflict(_ context.Context, courtID string, date time.Time, slot domain.Slot) (*domain.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.find(courtID, date, slot), nil
}

func (l *memLedger) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.find(b.CourtID, b.BookingDate, b.StartTime) != nil {
		return nil, bookingRepo.ErrSlotTaken
	}
	copied := *b
	copied.ID = fmt.Sprintf("b-%d", len(l.bookings)+1)
	l.bookings = append(l.bookings, &copied)
	return &copied, nil
}

type fakeCourts map[string]*domain.Court

func (f fakeCourts) GetByID(_ context.Context, id string) (*domain.Court, error) {
	if c, ok := f[id]; ok {
		return c, nil
	}
	return nil, courtRepo.ErrCourtNotFound
}

type nopMetrics struct{}

func (nopMetrics) IncBooking(string) {}

func newUseCase() (*UseCase, *memLedger) {
	ledger := &memLedger{}
	courts := fakeCourts{"C1": {ID: "C1", Name: "Court 1", Active: true}}
	return NewUseCase(ledger, courts, nopMetrics{}, logger.NewNop()), ledger
}

func TestExecute_BlockThenBlockAgain(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()
	req := &Request{CourtID: "C1", Date: "2025-06-01", StartTime: "13:30"}

	resp, err := uc.Execute(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusBlocked, resp.Booking.Status)
	assert.Equal(t, domain.BlockedByAdminName, resp.Booking.StudentName)
	assert.Equal(t, domain.BlockedByAdminEmail, resp.Booking.StudentEmail)
	assert.Equal(t, "Court 1", resp.Booking.Court.Name)

	_, err = uc.Execute(ctx, req)
	require.ErrorIs(t, err, ErrSlotTaken)

	var taken *SlotTakenError
	require.ErrorAs(t, err, &taken)
	assert.True(t, taken.Blocked)
	assert.Contains(t, err.Error(), "blocked")
}

func TestExecute_BlockBookedSlot(t *testing.T) {
	uc, ledger := newUseCase()
	date, _ := domain.ParseDate("2025-06-01")
	ledger.bookings = append(ledger.bookings, &domain.Booking{
		ID: "p", CourtID: "C1", BookingDate: date, StartTime: "13:30", Status: domain.StatusPending,
	})

	_, err := uc.Execute(context.Background(), &Request{CourtID: "C1", Date: "01-06-2025", StartTime: "13:30"})

	var taken *SlotTakenError
	require.ErrorAs(t, err, &taken)
	assert.False(t, taken.Blocked)
}

func TestExecute_NormalizesAltDate(t *testing.T) {
	uc, _ := newUseCase()

	resp, err := uc.Execute(context.Background(), &Request{CourtID: "C1", Date: "01-06-2025", StartTime: "12:30"})
	require.NoError(t, err)
	assert.Equal(t, "2025-06-01", domain.FormatDate(resp.Booking.BookingDate))
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{"missing court", Request{Date: "2025-06-01", StartTime: "13:30"}, ErrMissingFields},
		{"missing date", Request{CourtID: "C1", StartTime: "13:30"}, ErrMissingFields},
		{"missing slot", Request{CourtID: "C1", Date: "2025-06-01"}, ErrMissingFields},
		{"unknown court", Request{CourtID: "nope", Date: "2025-06-01", StartTime: "13:30"}, ErrInvalidCourt},
		{"bad date", Request{CourtID: "C1", Date: "June 1", StartTime: "13:30"}, ErrInvalidDate},
		{"bad slot", Request{CourtID: "C1", Date: "2025-06-01", StartTime: "13:15"}, ErrInvalidSlot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, ledger := newUseCase()
			req := tt.req

			_, err := uc.Execute(context.Background(), &req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, ledger.bookings)
		})
	}
}
