package get_picker

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kittyofheaven/kaizen-booking/internal/api/handlers"
	"github.com/kittyofheaven/kaizen-booking/internal/picker"
)

const (
	msgPickerNotFound = "picker-сессия не найдена или истекла"
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

// Handle GET /api/v1/pickers/{pickerId}
// Форма опрашивает эту ручку, пока слоты в полёте
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["pickerId"]

	ctrl, err := h.registry.Get(id)
	if err != nil {
		if errors.Is(err, picker.ErrPickerNotFound) {
			h.logger.Warn("GET /pickers/{id} - Picker not found: id=%s", id)
			handlers.RespondNotFound(w, msgPickerNotFound)
			return
		}
		h.logger.Error("GET /pickers/{id} - Failed to get picker: id=%s, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.ToPickerView(id, ctrl.Snapshot()))
}

// HandleDelete DELETE /api/v1/pickers/{pickerId}
// Закрытие формы; удаление неизвестной сессии не считается ошибкой
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["pickerId"]

	h.registry.Delete(id)

	h.logger.Info("DELETE /pickers/{id} - Picker deleted: id=%s", id)
	w.WriteHeader(http.StatusNoContent)
}
