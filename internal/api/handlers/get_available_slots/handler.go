package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kittyofheaven/kaizen-booking/internal/api/handlers"
	"github.com/kittyofheaven/kaizen-booking/internal/domain"
	getAvailableSlots "github.com/kittyofheaven/kaizen-booking/internal/usecase/get_available_slots"
)

const (
	msgInvalidKind     = "неизвестный тип объекта"
	msgMissingDate     = "дата обязательна"
	msgMissingResource = "ID ресурса обязателен"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/resources/{kind}/slots
// Query params: resourceId (обязателен только для типов со вторичным
// селектором), date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	kind := domain.ResourceKind(mux.Vars(r)["kind"])

	resourceID := r.URL.Query().Get("resourceId")
	if resourceID == "" && kind.HasSecondarySelector() {
		h.logger.Warn("GET /resources/{kind}/slots - Missing resource ID: kind=%s", kind)
		handlers.RespondBadRequest(w, msgMissingResource)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		h.logger.Warn("GET /resources/{kind}/slots - Missing date: kind=%s", kind)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		Kind:       kind,
		ResourceID: resourceID,
		Date:       date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidKind):
			h.logger.Warn("GET /resources/{kind}/slots - Unknown kind: %s", kind)
			handlers.RespondBadRequest(w, msgInvalidKind)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /resources/{kind}/slots - Invalid input: kind=%s, error=%v", kind, err)
			handlers.RespondBadRequest(w, msgMissingDate)

		default:
			h.logger.Error("GET /resources/{kind}/slots - Failed to get slots: kind=%s, resource=%s, error=%v",
				kind, resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /resources/{kind}/slots - Slots retrieved: kind=%s, resource=%s, date=%s, slots_count=%d, degraded=%v",
		kind, resourceID, result.Date, len(result.Slots), result.Degraded)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
