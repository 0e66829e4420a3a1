package block_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/api/middleware"
	blockSlot "github.com/m04kA/SMC-CourtBookingService/internal/usecase/block_slot"
)

const (
	msgMissingFields = "courtId, date and startTime are required"
	msgInvalidCourt  = "invalid court id"
	msgInvalidDate   = "invalid date, expected YYYY-MM-DD or DD-MM-YYYY"
	msgInvalidSlot   = "invalid time slot"
	msgAlreadyBooked = "slot is already booked"
	msgAlreadyBlock  = "slot is already blocked"
)

type Handler struct {
	useCase BlockSlotUseCase
	logger  Logger
}

func NewHandler(useCase BlockSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/block-slot
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	adminID, _ := middleware.GetAdminID(r.Context())
	var req BlockSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/block-slot - Invalid request body: %v", err)
		handlers.RespondInvalidBody(w)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		var slotErr *blockSlot.SlotTakenError
		switch {
		case errors.Is(err, blockSlot.ErrMissingFields):
			handlers.RespondError(w, http.StatusBadRequest, handlers.CodeMissingFields, msgMissingFields)

		case errors.Is(err, blockSlot.ErrInvalidCourt):
			handlers.RespondError(w, http.StatusBadRequest, handlers.CodeInvalidCourt, msgInvalidCourt)

		case errors.Is(err, blockSlot.ErrInvalidDate):
			handlers.RespondError(w, http.StatusBadRequest, handlers.CodeInvalidDate, msgInvalidDate)

		case errors.Is(err, blockSlot.ErrInvalidSlot):
			handlers.RespondError(w, http.StatusBadRequest, handlers.CodeInvalidSlot, msgInvalidSlot)

		case errors.As(err, &slotErr):
			msg := msgAlreadyBooked
			if slotErr.Blocked {
				msg = msgAlreadyBlock
			}
			h.logger.Warn("POST /admin/block-slot - Slot taken: court_id=%s, date=%s, slot=%s",
				req.CourtID, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, handlers.CodeSlotTaken, msg)

		default:
			h.logger.Error("POST /admin/block-slot - Failed to block slot: court_id=%s, error=%v", req.CourtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/block-slot - Slot blocked: booking_id=%s, court_id=%s, date=%s, slot=%s, admin_id=%s",
		result.Booking.ID, req.CourtID, req.Date, req.StartTime, adminID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
