package create_picker

import (
	"net/http"

	"github.com/kittyofheaven/kaizen-booking/internal/api/handlers"
	"github.com/kittyofheaven/kaizen-booking/internal/domain"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidKind        = "неизвестный тип объекта"
)

type Handler struct {
	registry PickerRegistry
	logger   Logger
}

func NewHandler(registry PickerRegistry, logger Logger) *Handler {
	return &Handler{
		registry: registry,
		logger:   logger,
	}
}

// Handle POST /api/v1/pickers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreatePickerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /pickers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	kind := domain.ResourceKind(req.Kind)
	if !kind.IsValid() {
		h.logger.Warn("POST /pickers - Unknown kind: %s", req.Kind)
		handlers.RespondBadRequest(w, msgInvalidKind)
		return
	}

	id, ctrl, err := h.registry.Create(kind)
	if err != nil {
		h.logger.Error("POST /pickers - Failed to create picker: kind=%s, error=%v", kind, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /pickers - Picker created: id=%s, kind=%s", id, kind)
	handlers.RespondJSON(w, http.StatusCreated, handlers.ToPickerView(id, ctrl.Snapshot()))
}
