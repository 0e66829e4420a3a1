package create_court

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/courts"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/courts/models"
)

const (
	msgInvalidCourt = "name and type are required, name up to 100 characters"
)

type Handler struct {
	service CourtService
	logger  Logger
}

func NewHandler(service CourtService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/courts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	adminID, _ := middleware.GetAdminID(r.Context())
	var req models.CreateCourtRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /courts - Invalid request body: %v", err)
		handlers.RespondInvalidBody(w)
		return
	}

	court, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, courts.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidCourt)

		default:
			h.logger.Error("POST /courts - Failed to create court: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /courts - Court created: court_id=%s, admin_id=%s", court.ID, adminID)
	handlers.RespondJSON(w, http.StatusCreated, court)
}
