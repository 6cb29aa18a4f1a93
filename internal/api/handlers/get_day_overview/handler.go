package get_day_overview

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kittyofheaven/kaizen-booking/internal/api/handlers"
	"github.com/kittyofheaven/kaizen-booking/internal/domain"
	"github.com/kittyofheaven/kaizen-booking/internal/service/overview"
)

const (
	msgInvalidKind = "неизвестный тип объекта"
	msgMissingDate = "дата обязательна"
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

// Handle GET /api/v1/resources/{kind}/overview
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	kind := domain.ResourceKind(mux.Vars(r)["kind"])

	date := r.URL.Query().Get("date")
	if date == "" {
		h.logger.Warn("GET /resources/{kind}/overview - Missing date: kind=%s", kind)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	board, err := h.service.DayBoard(r.Context(), kind, date)
	if err != nil {
		switch {
		case errors.Is(err, overview.ErrInvalidKind):
			h.logger.Warn("GET /resources/{kind}/overview - Unknown kind: %s", kind)
			handlers.RespondBadRequest(w, msgInvalidKind)

		default:
			h.logger.Error("GET /resources/{kind}/overview - Failed to build board: kind=%s, date=%s, error=%v",
				kind, date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /resources/{kind}/overview - Board built: kind=%s, date=%s, resources=%d",
		kind, board.Date, len(board.Resources))
	handlers.RespondJSON(w, http.StatusOK, FromDayBoard(board))
}
