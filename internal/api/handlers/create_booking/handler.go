package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-CourtBookingService/internal/usecase/create_booking"
)

const (
	msgBookingsDisabled = "bookings are currently disabled"
	msgMissingFields    = "studentName, studentEmail, courtId, date and startTime are required"
	msgInvalidInput     = "invalid booking data"
	msgInvalidEmail     = "invalid email address"
	msgDomainNotAllowed = "only institutional email addresses are allowed"
	msgEmailNotVerified = "email is not verified"
	msgInvalidSlot      = "invalid time slot"
	msgInvalidDate      = "invalid date, expected YYYY-MM-DD or DD-MM-YYYY"
	msgDateInPast       = "booking date is in the past"
	msgLeadTimeTooShort = "same-day bookings must be made at least 6 hours in advance"
	msgInvalidCourt     = "court not found or inactive"
	msgSlotBooked       = "this slot is already booked"
	msgSlotBlocked      = "this slot has been blocked by admin"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondInvalidBody(w)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(verificationToken(r)))
	if err != nil {
		var slotErr *createBooking.SlotTakenError
		switch {
		case errors.Is(err, createBooking.ErrBookingsDisabled):
			handlers.RespondError(w, http.StatusForbidden, handlers.CodeBookingsDisabled, msgBookingsDisabled)

		case errors.Is(err, createBooking.ErrMissingFields):
			handlers.RespondError(w, http.StatusBadRequest, handlers.CodeMissingFields, msgMissingFields)

		case errors.Is(err, createBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrInvalidEmail):
			handlers.RespondError(w, http.StatusBadRequest, handlers.CodeInvalidEmail, msgInvalidEmail)

		case errors.Is(err, createBooking.ErrDomainNotAllowed):
			handlers.RespondError(w, http.StatusBadRequest, handlers.CodeDomainNotAllowed, msgDomainNotAllowed)

		case errors.Is(err, createBooking.ErrEmailNotVerified):
			h.logger.Warn("POST /bookings - Email not verified: email=%s", req.StudentEmail)
			handlers.RespondError(w, http.StatusUnauthorized, handlers.CodeEmailNotVerified, msgEmailNotVerified)

		case errors.Is(err, createBooking.ErrInvalidSlot):
			handlers.RespondError(w, http.StatusBadRequest, handlers.CodeInvalidSlot, msgInvalidSlot)

		case errors.Is(err, createBooking.ErrInvalidDate):
			handlers.RespondError(w, http.StatusBadRequest, handlers.CodeInvalidDate, msgInvalidDate)

		case errors.Is(err, createBooking.ErrDateInPast):
			handlers.RespondError(w, http.StatusBadRequest, handlers.CodeDateInPast, msgDateInPast)

		case errors.Is(err, createBooking.ErrLeadTimeTooShort):
			handlers.RespondError(w, http.StatusBadRequest, handlers.CodeLeadTimeTooShort, msgLeadTimeTooShort)

		case errors.Is(err, createBooking.ErrInvalidCourt):
			handlers.RespondError(w, http.StatusBadRequest, handlers.CodeInvalidCourt, msgInvalidCourt)

		case errors.As(err, &slotErr):
			h.logger.Warn("POST /bookings - Slot taken: court_id=%s, date=%s, slot=%s, blocked=%t",
				req.CourtID, req.Date, req.StartTime, slotErr.Blocked)
			msg := msgSlotBooked
			if slotErr.Blocked {
				msg = msgSlotBlocked
			}
			handlers.RespondError(w, http.StatusConflict, handlers.CodeSlotTaken, msg)

		case errors.Is(err, createBooking.ErrSlotTaken):
			handlers.RespondError(w, http.StatusConflict, handlers.CodeSlotTaken, msgSlotBooked)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: court_id=%s, error=%v", req.CourtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, court_id=%s",
		result.Booking.ID, result.Booking.CourtID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
