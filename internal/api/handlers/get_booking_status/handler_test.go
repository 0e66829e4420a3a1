package get_booking_status

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/settings"
	"github.com/m04kA/SMC-CourtBookingService/pkg/logger"
)

type fakeService struct {
	status *settings.BookingStatus
	err    error
}

func (f *fakeService) GetBookingEnabled(context.Context) (*settings.BookingStatus, error) {
	return f.status, f.err
}

func get(svc *fakeService) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/booking-status", nil))
	return rec
}

func TestHandle_Status(t *testing.T) {
	rec := get(&fakeService{status: &settings.BookingStatus{BookingEnabled: true}})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"bookingEnabled":true}`, rec.Body.String())
	assert.Equal(t, "no-store, no-cache, must-revalidate", rec.Header().Get("Cache-Control"))
}

func TestHandle_Failure(t *testing.T) {
	rec := get(&fakeService{err: errors.New("db down")})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), handlers.CodeInternalError)
}
