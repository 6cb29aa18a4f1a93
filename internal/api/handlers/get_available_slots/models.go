package get_available_slots

import (
	"github.com/kittyofheaven/kaizen-booking/internal/api/handlers"
	getAvailableSlots "github.com/kittyofheaven/kaizen-booking/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Kind       string              `json:"kind"`
	ResourceID string              `json:"resourceId"`
	Date       string              `json:"date"`
	Closed     bool                `json:"closed"`
	Degraded   bool                `json:"degraded"`
	Slots      []handlers.SlotView `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]handlers.SlotView, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = handlers.ToSlotView(slot)
	}

	return &AvailableSlotsResponse{
		Kind:       string(resp.Kind),
		ResourceID: resp.ResourceID,
		Date:       resp.Date,
		Closed:     resp.Closed,
		Degraded:   resp.Degraded,
		Slots:      slots,
	}
}
