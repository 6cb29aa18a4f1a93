package get_day_overview

import (
	"github.com/kittyofheaven/kaizen-booking/internal/api/handlers"
	overviewModels "github.com/kittyofheaven/kaizen-booking/internal/service/overview/models"
)

// ResourceBoardView расписание одного ресурса в HTTP ответе
type ResourceBoardView struct {
	ResourceID  string              `json:"resourceId"`
	DisplayName string              `json:"displayName"`
	Closed      bool                `json:"closed"`
	Degraded    bool                `json:"degraded"`
	Slots       []handlers.SlotView `json:"slots"`
}

// DayBoardResponse модель дневного обзора в HTTP ответе
type DayBoardResponse struct {
	Kind            string              `json:"kind"`
	Date            string              `json:"date"`
	Weekday         string              `json:"weekday"`
	CatalogFallback bool                `json:"catalogFallback"`
	Resources       []ResourceBoardView `json:"resources"`
}

// FromDayBoard конвертирует дневной обзор в HTTP response
func FromDayBoard(board *overviewModels.DayBoard) *DayBoardResponse {
	resources := make([]ResourceBoardView, len(board.Resources))
	for i, row := range board.Resources {
		slots := make([]handlers.SlotView, len(row.Slots))
		for j, s := range row.Slots {
			slots[j] = handlers.ToSlotView(s)
		}
		resources[i] = ResourceBoardView{
			ResourceID:  row.Resource.ID,
			DisplayName: row.Resource.DisplayName,
			Closed:      row.Closed,
			Degraded:    row.Degraded,
			Slots:       slots,
		}
	}

	return &DayBoardResponse{
		Kind:            string(board.Kind),
		Date:            board.Date,
		Weekday:         board.Weekday.String(),
		CatalogFallback: board.CatalogFallback,
		Resources:       resources,
	}
}
