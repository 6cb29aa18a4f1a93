package get_occupancy_board

import (
	"net/http"

	"github.com/kittyofheaven/kaizen-booking/internal/api/handlers"
)

type Handler struct {
	service OverviewService
	logger  Logger
}

func NewHandler(service OverviewService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/resources/washing_machine/occupancy
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	board, err := h.service.Occupancy(r.Context())
	if err != nil {
		h.logger.Error("GET /resources/washing_machine/occupancy - Failed to build board: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /resources/washing_machine/occupancy - Board built: machines=%d, degraded=%v",
		len(board.Machines), board.Degraded)
	handlers.RespondJSON(w, http.StatusOK, FromOccupancyBoard(board))
}
