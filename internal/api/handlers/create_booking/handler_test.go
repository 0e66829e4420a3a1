package create_booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	createBooking "github.com/m04kA/SMC-CourtBookingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-CourtBookingService/pkg/logger"
)

type fakeUseCase struct {
	got *createBooking.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &createBooking.Response{Booking: &domain.Booking{
		ID:           "b-1",
		StudentName:  req.StudentName,
		StudentEmail: req.StudentEmail,
		CourtID:      req.CourtID,
		BookingDate:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		StartTime:    domain.Slot(req.StartTime),
		Status:       domain.StatusPending,
		Court:        &domain.Court{ID: req.CourtID, Name: "Badminton 1", Type: "badminton", Active: true},
	}}, nil
}

const body = `{"studentName":"Ann","studentEmail":"ann@uni.edu","courtId":"c-1","date":"2025-06-01","startTime":"13:00"}`

func doRequest(t *testing.T, uc *fakeUseCase, payload string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(uc, logger.NewNop())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(payload))
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{}
	rec := doRequest(t, uc, body, http.Header{VerificationTokenHeader: {"tok-1"}})

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "tok-1", uc.got.VerificationToken)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp["status"])
	assert.Equal(t, "2025-06-01", resp["date"])
	court, ok := resp["court"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Badminton 1", court["name"])
}

func TestHandle_BearerToken(t *testing.T) {
	uc := &fakeUseCase{}
	rec := doRequest(t, uc, body, http.Header{"Authorization": {"Bearer tok-2"}})

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "tok-2", uc.got.VerificationToken)
}

func TestHandle_InvalidBody(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, "{", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), handlers.CodeInvalidRequest)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{"disabled", createBooking.ErrBookingsDisabled, http.StatusForbidden, handlers.CodeBookingsDisabled, msgBookingsDisabled},
		{"missing", fmt.Errorf("%w: date", createBooking.ErrMissingFields), http.StatusBadRequest, handlers.CodeMissingFields, msgMissingFields},
		{"email", createBooking.ErrInvalidEmail, http.StatusBadRequest, handlers.CodeInvalidEmail, msgInvalidEmail},
		{"domain", createBooking.ErrDomainNotAllowed, http.StatusBadRequest, handlers.CodeDomainNotAllowed, msgDomainNotAllowed},
		{"not verified", createBooking.ErrEmailNotVerified, http.StatusUnauthorized, handlers.CodeEmailNotVerified, msgEmailNotVerified},
		{"slot", createBooking.ErrInvalidSlot, http.StatusBadRequest, handlers.CodeInvalidSlot, msgInvalidSlot},
		{"date", createBooking.ErrInvalidDate, http.StatusBadRequest, handlers.CodeInvalidDate, msgInvalidDate},
		{"past", createBooking.ErrDateInPast, http.StatusBadRequest, handlers.CodeDateInPast, msgDateInPast},
		{"lead time", createBooking.ErrLeadTimeTooShort, http.StatusBadRequest, handlers.CodeLeadTimeTooShort, msgLeadTimeTooShort},
		{"court", createBooking.ErrInvalidCourt, http.StatusBadRequest, handlers.CodeInvalidCourt, msgInvalidCourt},
		{"booked", &createBooking.SlotTakenError{}, http.StatusConflict, handlers.CodeSlotTaken, msgSlotBooked},
		{"blocked", &createBooking.SlotTakenError{Blocked: true}, http.StatusConflict, handlers.CodeSlotTaken, msgSlotBlocked},
		{"internal", errors.New("boom"), http.StatusInternalServerError, handlers.CodeInternalError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.err}, body, nil)

			assert.Equal(t, tt.status, rec.Code)
			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.code, resp.Error.Code)
			assert.Equal(t, tt.message, resp.Error.Message)
		})
	}
}
