package handlers

import (
	"time"

	"github.com/kittyofheaven/kaizen-booking/internal/domain"
	"github.com/kittyofheaven/kaizen-booking/internal/selection"
)

// SlotView модель временного слота в HTTP ответах
type SlotView struct {
	StartAt    time.Time `json:"startAt"`
	EndAt      time.Time `json:"endAt"`
	CivilHour  int       `json:"civilHour"`
	Label      string    `json:"label"`
	Available  bool      `json:"available"`
	Reason     string    `json:"reason,omitempty"`
	OccupiedBy *string   `json:"occupiedBy,omitempty"`
}

// PickerViewResponse модель состояния picker-сессии в HTTP ответах
//
// Все ручки picker-а отдают одно и то же представление, чтобы форма
// могла перерисоваться после любого действия.
type PickerViewResponse struct {
	PickerID   string     `json:"pickerId"`
	Kind       string     `json:"kind"`
	State      string     `json:"state"`
	Date       string     `json:"date"`
	ResourceID string     `json:"resourceId,omitempty"`
	Degraded   bool       `json:"degraded"`
	Slots      []SlotView `json:"slots"`
	Selected   *SlotView  `json:"selected,omitempty"`
	LastError  string     `json:"lastError,omitempty"`
}

// ToSlotView конвертирует доменный слот в HTTP модель
func ToSlotView(s domain.Slot) SlotView {
	return SlotView{
		StartAt:    s.StartAt,
		EndAt:      s.EndAt,
		CivilHour:  s.CivilHour,
		Label:      s.Label,
		Available:  s.Available,
		Reason:     string(s.Reason),
		OccupiedBy: s.OccupiedBy,
	}
}

// ToPickerView конвертирует снимок контроллера в HTTP модель
func ToPickerView(pickerID string, v selection.View) *PickerViewResponse {
	slots := make([]SlotView, len(v.Slots))
	for i, s := range v.Slots {
		slots[i] = ToSlotView(s)
	}

	var selected *SlotView
	if v.Selected != nil {
		sv := ToSlotView(*v.Selected)
		selected = &sv
	}

	return &PickerViewResponse{
		PickerID:   pickerID,
		Kind:       string(v.Kind),
		State:      string(v.State),
		Date:       v.Date,
		ResourceID: v.ResourceID,
		Degraded:   v.Degraded,
		Slots:      slots,
		Selected:   selected,
		LastError:  v.LastError,
	}
}
