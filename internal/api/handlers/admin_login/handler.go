package admin_login

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/admins"
)

const (
	msgMissingFields      = "email and password are required"
	msgInvalidCredentials = "invalid email or password"
)

type Handler struct {
	service AdminService
	logger  Logger
}

func NewHandler(service AdminService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req admins.LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/login - Invalid request body: %v", err)
		handlers.RespondInvalidBody(w)
		return
	}

	result, err := h.service.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, admins.ErrInvalidInput):
			handlers.RespondError(w, http.StatusBadRequest, handlers.CodeMissingFields, msgMissingFields)

		case errors.Is(err, admins.ErrInvalidCredentials):
			handlers.RespondError(w, http.StatusUnauthorized, handlers.CodeInvalidCredentials, msgInvalidCredentials)

		default:
			h.logger.Error("POST /admin/login - Failed to login: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
