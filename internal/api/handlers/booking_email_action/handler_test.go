package booking_email_action

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-CourtBookingService/pkg/jwtauth"
	"github.com/m04kA/SMC-CourtBookingService/pkg/logger"
)

type fakeService struct {
	approved []string
	rejected []string
	err      error
}

func (f *fakeService) Approve(_ context.Context, id string) (*models.BookingResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.approved = append(f.approved, id)
	return &models.BookingResponse{ID: id, Status: "approved"}, nil
}

func (f *fakeService) Reject(_ context.Context, id string) (*models.BookingResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.rejected = append(f.rejected, id)
	return &models.BookingResponse{ID: id, Status: "rejected"}, nil
}

func newRouter(svc *fakeService, tokens *jwtauth.Manager) *mux.Router {
	r := mux.NewRouter()
	log := logger.NewNop()
	r.HandleFunc("/api/v1/bookings/{bookingId}/approve-email",
		NewHandler(svc, tokens, jwtauth.ActionApprove, log).Handle).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/bookings/{bookingId}/reject-email",
		NewHandler(svc, tokens, jwtauth.ActionReject, log).Handle).Methods(http.MethodGet)
	return r
}

func get(r *mux.Router, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func issue(t *testing.T, tokens *jwtauth.Manager, bookingID, action string) string {
	t.Helper()
	token, _, err := tokens.IssueBookingAction(bookingID, action, time.Hour)
	require.NoError(t, err)
	return token
}

func TestHandle_ApproveByLink(t *testing.T) {
	tokens := jwtauth.NewManager("secret", "court-booking")
	svc := &fakeService{}

	rec := get(newRouter(svc, tokens), "/api/v1/bookings/b-1/approve-email?token="+issue(t, tokens, "b-1", jwtauth.ActionApprove))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"b-1"}, svc.approved)
	assert.Empty(t, svc.rejected)
	assert.Contains(t, rec.Body.String(), `"message":"booking approved"`)
	assert.Equal(t, "no-store, no-cache, must-revalidate", rec.Header().Get("Cache-Control"))
}

func TestHandle_RejectByLink(t *testing.T) {
	tokens := jwtauth.NewManager("secret", "court-booking")
	svc := &fakeService{}

	rec := get(newRouter(svc, tokens), "/api/v1/bookings/b-1/reject-email?token="+issue(t, tokens, "b-1", jwtauth.ActionReject))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"b-1"}, svc.rejected)
	assert.Contains(t, rec.Body.String(), `"status":"rejected"`)
}

func TestHandle_LinkRejected(t *testing.T) {
	tokens := jwtauth.NewManager("secret", "court-booking")
	expired := jwtauth.NewManager("secret", "court-booking").
		WithClock(func() time.Time { return time.Now().Add(-2 * time.Hour) })

	tests := []struct {
		name     string
		path     string
		wantCode string
	}{
		{
			name:     "missing token",
			path:     "/api/v1/bookings/b-1/approve-email",
			wantCode: handlers.CodeUnauthorized,
		},
		{
			name:     "garbage token",
			path:     "/api/v1/bookings/b-1/approve-email?token=nope",
			wantCode: handlers.CodeUnauthorized,
		},
		{
			name:     "token for another booking",
			path:     "/api/v1/bookings/b-2/approve-email?token=" + issue(t, tokens, "b-1", jwtauth.ActionApprove),
			wantCode: handlers.CodeUnauthorized,
		},
		{
			name:     "approve token on reject link",
			path:     "/api/v1/bookings/b-1/reject-email?token=" + issue(t, tokens, "b-1", jwtauth.ActionApprove),
			wantCode: handlers.CodeUnauthorized,
		},
		{
			name:     "admin session token",
			path:     "/api/v1/bookings/b-1/approve-email?token=" + adminToken(t, tokens),
			wantCode: handlers.CodeUnauthorized,
		},
		{
			name:     "expired link",
			path:     "/api/v1/bookings/b-1/approve-email?token=" + issue(t, expired, "b-1", jwtauth.ActionApprove),
			wantCode: handlers.CodeExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{}
			rec := get(newRouter(svc, tokens), tt.path)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantCode)
			assert.Empty(t, svc.approved)
			assert.Empty(t, svc.rejected)
		})
	}
}

func TestHandle_ServiceErrors(t *testing.T) {
	tokens := jwtauth.NewManager("secret", "court-booking")

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", bookings.ErrBookingNotFound, http.StatusNotFound, handlers.CodeNotFound},
		{"already processed", bookings.ErrInvalidTransition, http.StatusConflict, handlers.CodeInvalidTransition},
		{"internal", bookings.ErrInternal, http.StatusInternalServerError, handlers.CodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(newRouter(&fakeService{err: tt.err}, tokens),
				"/api/v1/bookings/b-1/approve-email?token="+issue(t, tokens, "b-1", jwtauth.ActionApprove))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantCode)
		})
	}
}

func adminToken(t *testing.T, tokens *jwtauth.Manager) string {
	t.Helper()
	token, _, err := tokens.IssueAdmin("admin-1", time.Hour)
	require.NoError(t, err)
	return token
}
