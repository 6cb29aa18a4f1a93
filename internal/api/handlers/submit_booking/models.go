package submit_booking

import (
	"github.com/kittyofheaven/kaizen-booking/internal/api/handlers"
	"github.com/kittyofheaven/kaizen-booking/internal/domain"
)

// SubmitBookingRequest поля формы, отправляемые вместе с выбранным слотом
type SubmitBookingRequest struct {
	Participants  *int    `json:"participants,omitempty"`
	Purpose       *string `json:"purpose,omitempty"`
	EquipmentLoan *bool   `json:"equipmentLoan,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

// ToDraft конвертирует тело запроса в черновик бронирования
func (r SubmitBookingRequest) ToDraft() domain.BookingDraft {
	return domain.BookingDraft{
		Participants:  r.Participants,
		Purpose:       r.Purpose,
		EquipmentLoan: r.EquipmentLoan,
		Notes:         r.Notes,
	}
}

// SubmitBookingResponse модель ответа об успешной отправке
// Вместе с бронированием отдаётся обновлённое состояние picker-а
type SubmitBookingResponse struct {
	BookingID string                       `json:"bookingId"`
	Status    string                       `json:"status"`
	Picker    *handlers.PickerViewResponse `json:"picker"`
}
