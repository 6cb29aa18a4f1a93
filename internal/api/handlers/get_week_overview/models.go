package get_week_overview

import (
	overviewModels "github.com/kittyofheaven/kaizen-booking/internal/service/overview/models"
)

// ResourceDayView сводка одного ресурса за день
type ResourceDayView struct {
	ResourceID  string `json:"resourceId"`
	DisplayName string `json:"displayName"`
	Closed      bool   `json:"closed"`
	Degraded    bool   `json:"degraded"`
	FreeSlots   int    `json:"freeSlots"`
	TotalSlots  int    `json:"totalSlots"`
}

// WeekDayView сводка одного дня недели
type WeekDayView struct {
	Date      string            `json:"date"`
	Weekday   string            `json:"weekday"`
	Resources []ResourceDayView `json:"resources"`
}

// WeekBoardResponse модель недельного обзора в HTTP ответе
type WeekBoardResponse struct {
	Kind string        `json:"kind"`
	From string        `json:"from"`
	Days []WeekDayView `json:"days"`
}

// FromWeekBoard конвертирует недельный обзор в HTTP response
// Полные списки слотов сворачиваются в счётчики, форма недели их не рисует
func FromWeekBoard(board *overviewModels.WeekBoard) *WeekBoardResponse {
	days := make([]WeekDayView, len(board.Days))
	for i, day := range board.Days {
		resources := make([]ResourceDayView, len(day.Resources))
		for j, row := range day.Resources {
			free := 0
			for _, s := range row.Slots {
				if s.Available {
					free++
				}
			}
			resources[j] = ResourceDayView{
				ResourceID:  row.Resource.ID,
				DisplayName: row.Resource.DisplayName,
				Closed:      row.Closed,
				Degraded:    row.Degraded,
				FreeSlots:   free,
				TotalSlots:  len(row.Slots),
			}
		}
		days[i] = WeekDayView{
			Date:      day.Date,
			Weekday:   day.Weekday.String(),
			Resources: resources,
		}
	}

	return &WeekBoardResponse{
		Kind: string(board.Kind),
		From: board.From,
		Days: days,
	}
}
