package toggle_booking

import (
	"net/http"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/api/middleware"
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

// Handle POST /api/v1/admin/toggle-booking
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	adminID, _ := middleware.GetAdminID(r.Context())
	status, err := h.service.ToggleBookingEnabled(r.Context())
	if err != nil {
		h.logger.Error("POST /admin/toggle-booking - Failed to toggle setting: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/toggle-booking - Booking enabled=%t, admin_id=%s", status.BookingEnabled, adminID)
	handlers.RespondJSON(w, http.StatusOK, status)
}
