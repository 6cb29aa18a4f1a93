package submit_booking

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/kittyofheaven/kaizen-booking/internal/api/handlers"
	"github.com/kittyofheaven/kaizen-booking/internal/bookingreq"
	"github.com/kittyofheaven/kaizen-booking/internal/picker"
	"github.com/kittyofheaven/kaizen-booking/internal/selection"
	submitBooking "github.com/kittyofheaven/kaizen-booking/internal/usecase/submit_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgPickerNotFound     = "picker-сессия не найдена или истекла"
	msgNoSlotSelected     = "слот не выбран"
	msgSubmitInFlight     = "отправка бронирования уже выполняется"
	msgAuthRequired       = "нужно войти, чтобы отправить бронирование; выбор сохранён"
	msgSlotInPast         = "слот уже в прошлом"
	msgClosedDay          = "объект закрыт в выбранный день"
	msgUpstreamDown       = "сервис бронирований недоступен, попробуйте позже; выбор сохранён"
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

// Handle POST /api/v1/pickers/{pickerId}/submit
// При любой ошибке выбор и черновик на сервере сохраняются для повтора
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["pickerId"]

	var req SubmitBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /pickers/{id}/submit - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	ctrl, err := h.registry.Get(id)
	if err != nil {
		if errors.Is(err, picker.ErrPickerNotFound) {
			h.logger.Warn("POST /pickers/{id}/submit - Picker not found: id=%s", id)
			handlers.RespondNotFound(w, msgPickerNotFound)
			return
		}
		h.logger.Error("POST /pickers/{id}/submit - Failed to get picker: id=%s, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	result, err := ctrl.Submit(r.Context(), req.ToDraft())
	if err != nil {
		switch {
		case errors.Is(err, selection.ErrNoSlotSelected):
			h.logger.Warn("POST /pickers/{id}/submit - No slot selected: id=%s", id)
			handlers.RespondBadRequest(w, msgNoSlotSelected)

		case errors.Is(err, selection.ErrSubmitInFlight):
			h.logger.Warn("POST /pickers/{id}/submit - Submit in flight: id=%s", id)
			handlers.RespondError(w, http.StatusConflict, msgSubmitInFlight)

		case errors.Is(err, submitBooking.ErrValidation):
			h.logger.Warn("POST /pickers/{id}/submit - Draft validation failed: id=%s, error=%v", id, err)
			handlers.RespondBadRequest(w, validationMessage(err))

		case errors.Is(err, submitBooking.ErrSlotInPast):
			h.logger.Warn("POST /pickers/{id}/submit - Slot in past: id=%s", id)
			handlers.RespondBadRequest(w, msgSlotInPast)

		case errors.Is(err, submitBooking.ErrClosedDay):
			h.logger.Warn("POST /pickers/{id}/submit - Closed day: id=%s", id)
			handlers.RespondBadRequest(w, msgClosedDay)

		case errors.Is(err, submitBooking.ErrAuthRequired):
			h.logger.Warn("POST /pickers/{id}/submit - Auth required: id=%s", id)
			handlers.RespondUnauthorized(w, msgAuthRequired)

		case errors.Is(err, submitBooking.ErrRejected):
			// Сообщение сервера отдаётся дословно
			h.logger.Warn("POST /pickers/{id}/submit - Rejected by server: id=%s, error=%v", id, err)
			handlers.RespondError(w, http.StatusConflict, rejectionMessage(err))

		case errors.Is(err, submitBooking.ErrUpstreamUnavailable):
			h.logger.Error("POST /pickers/{id}/submit - Upstream unavailable: id=%s, error=%v", id, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgUpstreamDown)

		default:
			h.logger.Error("POST /pickers/{id}/submit - Failed to submit: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /pickers/{id}/submit - Booking submitted: id=%s, booking_id=%s", id, result.BookingID)
	handlers.RespondJSON(w, http.StatusCreated, &SubmitBookingResponse{
		BookingID: result.BookingID,
		Status:    result.Status,
		Picker:    handlers.ToPickerView(id, ctrl.Snapshot()),
	})
}

// rejectionMessage снимает префикс sentinel-а, оставляя дословный текст сервера
func rejectionMessage(err error) string {
	return strings.TrimPrefix(err.Error(), submitBooking.ErrRejected.Error()+": ")
}

// validationMessage переводит sentinel сборщика запроса в текст для формы
func validationMessage(err error) string {
	switch {
	case errors.Is(err, bookingreq.ErrNoSlot):
		return msgNoSlotSelected
	case errors.Is(err, bookingreq.ErrMissingResource):
		return "нужно выбрать ресурс"
	case errors.Is(err, bookingreq.ErrMissingParticipants):
		return "нужно указать число участников"
	case errors.Is(err, bookingreq.ErrInvalidParticipants):
		return "некорректное число участников"
	case errors.Is(err, bookingreq.ErrMissingPurpose):
		return "нужно указать цель бронирования"
	case errors.Is(err, bookingreq.ErrPurposeTooLong):
		return "цель бронирования слишком длинная"
	case errors.Is(err, bookingreq.ErrNotesTooLong):
		return "примечание слишком длинное"
	case errors.Is(err, bookingreq.ErrEquipmentNotSupported):
		return "прокат оборудования недоступен для этого типа объекта"
	default:
		return strings.TrimPrefix(err.Error(), submitBooking.ErrValidation.Error()+": ")
	}
}
