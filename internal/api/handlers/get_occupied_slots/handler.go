package get_occupied_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	getOccupiedSlots "github.com/m04kA/SMC-CourtBookingService/internal/usecase/get_occupied_slots"
)

const (
	msgMissingFields = "courtId and date are required"
	msgInvalidDate   = "invalid date, expected YYYY-MM-DD or DD-MM-YYYY"
)

type Handler struct {
	useCase GetOccupiedSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetOccupiedSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/occupied-slots
// Query params: courtId (required), date (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &getOccupiedSlots.Request{
		CourtID: query.Get("courtId"),
		Date:    query.Get("date"),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getOccupiedSlots.ErrMissingFields):
			handlers.RespondError(w, http.StatusBadRequest, handlers.CodeMissingFields, msgMissingFields)

		case errors.Is(err, getOccupiedSlots.ErrInvalidDate):
			h.logger.Warn("GET /bookings/occupied-slots - Invalid date: %s", req.Date)
			handlers.RespondError(w, http.StatusBadRequest, handlers.CodeInvalidDate, msgInvalidDate)

		default:
			h.logger.Error("GET /bookings/occupied-slots - Failed to get slots: court_id=%s, date=%s, error=%v",
				req.CourtID, req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
