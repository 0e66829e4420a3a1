package issue_otp

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	issueOTP "github.com/m04kA/SMC-CourtBookingService/internal/usecase/issue_otp"
)

const (
	msgSent             = "verification code sent"
	msgMissingEmail     = "email is required"
	msgInvalidEmail     = "invalid email address"
	msgDomainNotAllowed = "only institutional email addresses are allowed"
	msgRateLimited      = "please wait before requesting a new code"
	msgSendFailed       = "failed to send verification code, please try again"
)

type Handler struct {
	useCase IssueOTPUseCase
	logger  Logger
}

func NewHandler(useCase IssueOTPUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/otp/send
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req IssueOTPRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /otp/send - Invalid request body: %v", err)
		handlers.RespondInvalidBody(w)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &issueOTP.Request{Email: req.Email})
	if err != nil {
		var rateErr *issueOTP.RateLimitedError
		switch {
		case errors.Is(err, issueOTP.ErrMissingFields):
			handlers.RespondError(w, http.StatusBadRequest, handlers.CodeMissingFields, msgMissingEmail)

		case errors.Is(err, issueOTP.ErrInvalidEmail):
			handlers.RespondError(w, http.StatusBadRequest, handlers.CodeInvalidEmail, msgInvalidEmail)

		case errors.Is(err, issueOTP.ErrDomainNotAllowed):
			handlers.RespondError(w, http.StatusBadRequest, handlers.CodeDomainNotAllowed, msgDomainNotAllowed)

		case errors.As(err, &rateErr):
			handlers.RespondRateLimited(w, msgRateLimited, rateErr.RetryAfterSeconds())

		case errors.Is(err, issueOTP.ErrSendFailed):
			h.logger.Error("POST /otp/send - Failed to send code: error=%v", err)
			handlers.RespondError(w, http.StatusBadGateway, handlers.CodeInternalError, msgSendFailed)

		default:
			h.logger.Error("POST /otp/send - Failed to issue code: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
