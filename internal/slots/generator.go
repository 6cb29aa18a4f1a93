package slots

import (
	"fmt"
	"time"

	"github.com/kittyofheaven/kaizen-booking/internal/domain"
	"github.com/kittyofheaven/kaizen-booking/pkg/civiltime"
)

// Generate генерирует упорядоченный список слотов-кандидатов на указанную
// гражданскую дату по расписанию объекта.
//
// Все слоты создаются доступными (оптимистичный базовый вариант) — пометка
// занятых и закрытых слотов выполняется в Merge. Слоты генерируются и для
// закрытых дней: форма показывает их, но Merge помечает все как недоступные.
//
// Для одинаковых (date, cfg, now-дата) результат детерминирован; обращение
// к часам идёт только через чистую конверсию civiltime.
func Generate(date string, cfg domain.ScheduleConfig, now time.Time) []domain.Slot {
	result := make([]domain.Slot, 0, cfg.SlotsPerDay())

	for hour := cfg.OperatingStartHour; hour < cfg.OperatingEndHour; hour += cfg.SlotDurationHours {
		startAt := civiltime.ToInstant(date, hour, now)
		endHour := hour + cfg.SlotDurationHours

		result = append(result, domain.Slot{
			StartAt:   startAt,
			EndAt:     startAt.Add(time.Duration(cfg.SlotDurationHours) * time.Hour),
			CivilHour: hour,
			Label:     fmt.Sprintf("%02d:00 - %02d:00", hour, endHour),
			Available: true,
		})
	}

	return result
}
