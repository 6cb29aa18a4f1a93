package get_week_overview

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
	msgMissingFrom = "начальная дата обязательна"
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

// Handle GET /api/v1/resources/{kind}/overview/week
// Query params: from (required, YYYY-MM-DD, первый день недели обзора)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	kind := domain.ResourceKind(mux.Vars(r)["kind"])

	from := r.URL.Query().Get("from")
	if from == "" {
		h.logger.Warn("GET /resources/{kind}/overview/week - Missing from date: kind=%s", kind)
		handlers.RespondBadRequest(w, msgMissingFrom)
		return
	}

	board, err := h.service.WeekBoard(r.Context(), kind, from)
	if err != nil {
		switch {
		case errors.Is(err, overview.ErrInvalidKind):
			h.logger.Warn("GET /resources/{kind}/overview/week - Unknown kind: %s", kind)
			handlers.RespondBadRequest(w, msgInvalidKind)

		default:
			h.logger.Error("GET /resources/{kind}/overview/week - Failed to build board: kind=%s, from=%s, error=%v",
				kind, from, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /resources/{kind}/overview/week - Board built: kind=%s, from=%s", kind, board.From)
	handlers.RespondJSON(w, http.StatusOK, FromWeekBoard(board))
}
