package approve_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/bookings"
)

const (
	msgNotFound          = "booking not found"
	msgInvalidTransition = "only pending bookings can be approved"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{bookingId}/approve
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	adminID, _ := middleware.GetAdminID(r.Context())
	bookingID := mux.Vars(r)["bookingId"]

	booking, err := h.service.Approve(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id}/approve - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrInvalidTransition):
			h.logger.Warn("PUT /bookings/{id}/approve - Invalid transition: booking_id=%s", bookingID)
			handlers.RespondError(w, http.StatusConflict, handlers.CodeInvalidTransition, msgInvalidTransition)

		default:
			h.logger.Error("PUT /bookings/{id}/approve - Failed to approve booking: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/{id}/approve - Booking approved: booking_id=%s, admin_id=%s", bookingID, adminID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
