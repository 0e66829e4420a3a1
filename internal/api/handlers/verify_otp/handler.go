package verify_otp

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	verifyOTP "github.com/m04kA/SMC-CourtBookingService/internal/usecase/verify_otp"
)

const (
	msgMissingFields = "email and otp are required"
	msgNotFound      = "verification code not found, request a new one"
	msgExpired       = "verification code expired"
	msgInvalidCode   = "invalid verification code"
)

type Handler struct {
	useCase VerifyOTPUseCase
	logger  Logger
}

func NewHandler(useCase VerifyOTPUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/otp/verify
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req VerifyOTPRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /otp/verify - Invalid request body: %v", err)
		handlers.RespondInvalidBody(w)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, verifyOTP.ErrMissingFields):
			handlers.RespondError(w, http.StatusBadRequest, handlers.CodeMissingFields, msgMissingFields)

		case errors.Is(err, verifyOTP.ErrNotFound):
			handlers.RespondError(w, http.StatusBadRequest, handlers.CodeNotFound, msgNotFound)

		case errors.Is(err, verifyOTP.ErrExpired):
			handlers.RespondError(w, http.StatusBadRequest, handlers.CodeExpired, msgExpired)

		case errors.Is(err, verifyOTP.ErrInvalidCode):
			handlers.RespondError(w, http.StatusBadRequest, handlers.CodeInvalidCode, msgInvalidCode)

		default:
			h.logger.Error("POST /otp/verify - Failed to verify code: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /otp/verify - Email verified: email=%s", result.Email)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
