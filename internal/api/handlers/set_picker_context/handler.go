package set_picker_context

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kittyofheaven/kaizen-booking/internal/api/handlers"
	"github.com/kittyofheaven/kaizen-booking/internal/picker"
	"github.com/kittyofheaven/kaizen-booking/internal/selection"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgEmptyContext        = "нужно указать дату и/или ресурс"
	msgPickerNotFound      = "picker-сессия не найдена или истекла"
	msgNoSecondarySelector = "у этого типа объекта нет выбора ресурса"
	msgSubmitInFlight      = "отправка бронирования уже выполняется"
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

// Handle PATCH /api/v1/pickers/{pickerId}/context
// Смена даты и/или ресурса; выбранный слот сбрасывается сразу
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["pickerId"]

	var req SetContextRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /pickers/{id}/context - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Date == nil && req.ResourceID == nil {
		h.logger.Warn("PATCH /pickers/{id}/context - Empty context update: id=%s", id)
		handlers.RespondBadRequest(w, msgEmptyContext)
		return
	}

	ctrl, err := h.registry.Get(id)
	if err != nil {
		if errors.Is(err, picker.ErrPickerNotFound) {
			h.logger.Warn("PATCH /pickers/{id}/context - Picker not found: id=%s", id)
			handlers.RespondNotFound(w, msgPickerNotFound)
			return
		}
		h.logger.Error("PATCH /pickers/{id}/context - Failed to get picker: id=%s, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	// Сначала ресурс, затем дата: обе смены сбрасывают выбор, одна загрузка
	// всё равно победит по generation-токену
	if req.ResourceID != nil {
		if err := ctrl.SetResource(*req.ResourceID); err != nil {
			h.respondControllerError(w, id, err)
			return
		}
	}
	if req.Date != nil {
		if err := ctrl.SetDate(*req.Date); err != nil {
			h.respondControllerError(w, id, err)
			return
		}
	}

	h.logger.Info("PATCH /pickers/{id}/context - Context updated: id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, handlers.ToPickerView(id, ctrl.Snapshot()))
}

func (h *Handler) respondControllerError(w http.ResponseWriter, id string, err error) {
	switch {
	case errors.Is(err, selection.ErrNoSecondarySelector):
		h.logger.Warn("PATCH /pickers/{id}/context - No secondary selector: id=%s", id)
		handlers.RespondBadRequest(w, msgNoSecondarySelector)

	case errors.Is(err, selection.ErrSubmitInFlight):
		h.logger.Warn("PATCH /pickers/{id}/context - Submit in flight: id=%s", id)
		handlers.RespondError(w, http.StatusConflict, msgSubmitInFlight)

	default:
		h.logger.Error("PATCH /pickers/{id}/context - Failed to update context: id=%s, error=%v", id, err)
		handlers.RespondInternalError(w)
	}
}
