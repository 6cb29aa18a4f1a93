package select_slot

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kittyofheaven/kaizen-booking/internal/api/handlers"
	"github.com/kittyofheaven/kaizen-booking/internal/picker"
	"github.com/kittyofheaven/kaizen-booking/internal/selection"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgPickerNotFound     = "picker-сессия не найдена или истекла"
	msgSlotsLoading       = "слоты ещё загружаются, попробуйте снова"
	msgUnknownSlot        = "такого слота нет в текущем расписании"
	msgSlotUnavailable    = "слот уже занят"
	msgSlotInPast         = "слот уже в прошлом"
	msgClosedDay          = "объект закрыт в выбранный день"
	msgSubmitInFlight     = "отправка бронирования уже выполняется"
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

// Handle POST /api/v1/pickers/{pickerId}/slot
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["pickerId"]

	var req SelectSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /pickers/{id}/slot - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	ctrl, err := h.registry.Get(id)
	if err != nil {
		if errors.Is(err, picker.ErrPickerNotFound) {
			h.logger.Warn("POST /pickers/{id}/slot - Picker not found: id=%s", id)
			handlers.RespondNotFound(w, msgPickerNotFound)
			return
		}
		h.logger.Error("POST /pickers/{id}/slot - Failed to get picker: id=%s, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	if err := ctrl.SelectSlot(req.StartAt); err != nil {
		switch {
		case errors.Is(err, selection.ErrLoading):
			h.logger.Warn("POST /pickers/{id}/slot - Slots still loading: id=%s", id)
			handlers.RespondError(w, http.StatusConflict, msgSlotsLoading)

		case errors.Is(err, selection.ErrUnknownSlot):
			h.logger.Warn("POST /pickers/{id}/slot - Unknown slot: id=%s, start_at=%v", id, req.StartAt)
			handlers.RespondBadRequest(w, msgUnknownSlot)

		case errors.Is(err, selection.ErrClosedDay):
			h.logger.Warn("POST /pickers/{id}/slot - Closed day: id=%s", id)
			handlers.RespondBadRequest(w, msgClosedDay)

		case errors.Is(err, selection.ErrSlotUnavailable):
			h.logger.Warn("POST /pickers/{id}/slot - Slot unavailable: id=%s, start_at=%v", id, req.StartAt)
			handlers.RespondError(w, http.StatusConflict, msgSlotUnavailable)

		case errors.Is(err, selection.ErrSlotInPast):
			h.logger.Warn("POST /pickers/{id}/slot - Slot in past: id=%s, start_at=%v", id, req.StartAt)
			handlers.RespondBadRequest(w, msgSlotInPast)

		case errors.Is(err, selection.ErrSubmitInFlight):
			h.logger.Warn("POST /pickers/{id}/slot - Submit in flight: id=%s", id)
			handlers.RespondError(w, http.StatusConflict, msgSubmitInFlight)

		default:
			h.logger.Error("POST /pickers/{id}/slot - Failed to select slot: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.ToPickerView(id, ctrl.Snapshot()))
}
