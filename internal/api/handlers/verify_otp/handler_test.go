package verify_otp

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
	verifyOTP "github.com/m04kA/SMC-CourtBookingService/internal/usecase/verify_otp"
	"github.com/m04kA/SMC-CourtBookingService/pkg/logger"
)

type fakeUseCase struct {
	got *verifyOTP.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *verifyOTP.Request) (*verifyOTP.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &verifyOTP.Response{Email: req.Email, Token: "tok", ExpiresAt: time.Date(2025, 6, 1, 12, 15, 0, 0, time.UTC)}, nil
}

func post(uc *fakeUseCase) *httptest.ResponseRecorder {
	h := NewHandler(uc, logger.NewNop())
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/otp/verify",
		strings.NewReader(`{"email":"ann@uni.edu","otp":"123456"}`)))
	return rec
}

func TestHandle_Verified(t *testing.T) {
	uc := &fakeUseCase{}
	rec := post(uc)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "123456", uc.got.Code)

	var resp VerifyOTPResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "tok", resp.VerificationToken)
	assert.Equal(t, "ann@uni.edu", resp.Email)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{"missing", verifyOTP.ErrMissingFields, handlers.CodeMissingFields},
		{"not found", verifyOTP.ErrNotFound, handlers.CodeNotFound},
		{"expired", verifyOTP.ErrExpired, handlers.CodeExpired},
		{"invalid", verifyOTP.ErrInvalidCode, handlers.CodeInvalidCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(&fakeUseCase{err: tt.err})
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.code)
		})
	}
}
