package booking_email_action

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-CourtBookingService/pkg/jwtauth"
)

const (
	msgMissingToken      = "action link is missing its token"
	msgInvalidLink       = "action link is invalid"
	msgLinkExpired       = "action link has expired, use the admin panel"
	msgNotFound          = "booking not found"
	msgInvalidTransition = "booking has already been processed"
	msgApproved          = "booking approved"
	msgRejected          = "booking rejected"
)

// Handler обрабатывает ссылки approve/reject из письма администратору
// Вместо Bearer-токена запрос подтверждается подписанным токеном в query
type Handler struct {
	service  BookingService
	verifier ActionVerifier
	action   string
	logger   Logger
}

// NewHandler создает обработчик для одного действия: jwtauth.ActionApprove или jwtauth.ActionReject
func NewHandler(service BookingService, verifier ActionVerifier, action string, logger Logger) *Handler {
	return &Handler{
		service:  service,
		verifier: verifier,
		action:   action,
		logger:   logger,
	}
}

// Handle GET /api/v1/bookings/{bookingId}/approve-email и GET /api/v1/bookings/{bookingId}/reject-email
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]
	token := r.URL.Query().Get("token")

	handlers.NoCache(w)

	if token == "" {
		h.logger.Warn("GET /bookings/{id}/%s-email - Missing token: booking_id=%s", h.action, bookingID)
		handlers.RespondUnauthorized(w, msgMissingToken)
		return
	}

	if err := h.verifier.VerifyBookingAction(token, bookingID, h.action); err != nil {
		if errors.Is(err, jwtauth.ErrExpiredToken) {
			h.logger.Warn("GET /bookings/{id}/%s-email - Expired link: booking_id=%s", h.action, bookingID)
			handlers.RespondError(w, http.StatusUnauthorized, handlers.CodeExpired, msgLinkExpired)
			return
		}
		h.logger.Warn("GET /bookings/{id}/%s-email - Rejected link: booking_id=%s, error=%v", h.action, bookingID, err)
		handlers.RespondUnauthorized(w, msgInvalidLink)
		return
	}

	booking, err := h.apply(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id}/%s-email - Booking not found: booking_id=%s", h.action, bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrInvalidTransition):
			h.logger.Warn("GET /bookings/{id}/%s-email - Invalid transition: booking_id=%s", h.action, bookingID)
			handlers.RespondError(w, http.StatusConflict, handlers.CodeInvalidTransition, msgInvalidTransition)

		default:
			h.logger.Error("GET /bookings/{id}/%s-email - Failed: booking_id=%s, error=%v", h.action, bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{id}/%s-email - Done by email link: booking_id=%s", h.action, bookingID)
	handlers.RespondJSON(w, http.StatusOK, ActionResponse{
		Success: true,
		Message: h.message(),
		Booking: booking,
	})
}

func (h *Handler) apply(ctx context.Context, bookingID string) (*models.BookingResponse, error) {
	if h.action == jwtauth.ActionApprove {
		return h.service.Approve(ctx, bookingID)
	}
	return h.service.Reject(ctx, bookingID)
}

func (h *Handler) message() string {
	if h.action == jwtauth.ActionApprove {
		return msgApproved
	}
	return msgRejected
}
