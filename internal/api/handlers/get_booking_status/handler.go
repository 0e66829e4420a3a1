package get_booking_status

import (
	"net/http"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/booking-status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	status, err := h.service.GetBookingEnabled(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/booking-status - Failed to read setting: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.NoCache(w)
	handlers.RespondJSON(w, http.StatusOK, status)
}
