package reject_booking

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-CourtBookingService/pkg/logger"
)

type fakeService struct {
	gotID string
	err   error
}

func (f *fakeService) Reject(_ context.Context, id string) (*models.BookingResponse, error) {
	f.gotID = id
	if f.err != nil {
		return nil, f.err
	}
	return &models.BookingResponse{ID: id, Status: "rejected"}, nil
}

func serve(svc *fakeService, id string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/bookings/{bookingId}/reject", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodPut)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/v1/bookings/"+id+"/reject", nil))
	return rec
}

func TestHandle_Rejected(t *testing.T) {
	svc := &fakeService{}
	rec := serve(svc, "b-1")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "b-1", svc.gotID)
	assert.Contains(t, rec.Body.String(), `"status":"rejected"`)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", bookings.ErrBookingNotFound, http.StatusNotFound, handlers.CodeNotFound},
		{"terminal status", bookings.ErrInvalidTransition, http.StatusConflict, handlers.CodeInvalidTransition},
		{"internal", errors.New("boom"), http.StatusInternalServerError, handlers.CodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeService{err: tt.err}, "b-1")

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.code)
		})
	}
}
