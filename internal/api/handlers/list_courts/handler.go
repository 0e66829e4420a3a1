package list_courts

import (
	"net/http"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
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

// Handle GET /api/v1/courts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	courts, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /courts - Failed to list courts: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.NoCache(w)
	handlers.RespondJSON(w, http.StatusOK, courts)
}
