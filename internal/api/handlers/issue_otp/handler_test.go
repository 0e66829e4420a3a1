package issue_otp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	issueOTP "github.com/m04kA/SMC-CourtBookingService/internal/usecase/issue_otp"
	"github.com/m04kA/SMC-CourtBookingService/pkg/logger"
)

type fakeUseCase struct {
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, _ *issueOTP.Request) (*issueOTP.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &issueOTP.Response{CooldownSeconds: 60, ExpiresInSeconds: 300}, nil
}

func post(uc *fakeUseCase) *httptest.ResponseRecorder {
	h := NewHandler(uc, logger.NewNop())
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/otp/send", strings.NewReader(`{"email":"ann@uni.edu"}`)))
	return rec
}

func TestHandle_Sent(t *testing.T) {
	rec := post(&fakeUseCase{})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp IssueOTPResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 60, resp.CooldownSeconds)
	assert.Equal(t, 300, resp.ExpiresInSeconds)
}

func TestHandle_RateLimited(t *testing.T) {
	rec := post(&fakeUseCase{err: &issueOTP.RateLimitedError{RetryAfter: 41500 * time.Millisecond}})

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "42", rec.Header().Get("Retry-After"))

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, handlers.CodeRateLimited, resp.Error.Code)
	require.NotNil(t, resp.RetryAfterSeconds)
	assert.Equal(t, 42, *resp.RetryAfterSeconds)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"email", issueOTP.ErrInvalidEmail, http.StatusBadRequest, handlers.CodeInvalidEmail},
		{"domain", issueOTP.ErrDomainNotAllowed, http.StatusBadRequest, handlers.CodeDomainNotAllowed},
		{"missing", issueOTP.ErrMissingFields, http.StatusBadRequest, handlers.CodeMissingFields},
		{"send", issueOTP.ErrSendFailed, http.StatusBadGateway, handlers.CodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(&fakeUseCase{err: tt.err})
			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.code)
		})
	}
}
