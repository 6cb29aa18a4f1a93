package slots

import (
	"time"

	"github.com/kittyofheaven/kaizen-booking/internal/domain"
	"github.com/kittyofheaven/kaizen-booking/pkg/civiltime"
)

// MergeInput входные данные слияния: отчёт сервера о занятых окнах либо
// признак деградации (сбой запроса или отсутствие учётных данных).
type MergeInput struct {
	Windows  []domain.OccupiedWindow
	Degraded bool
}

// Merge накладывает серверную занятость на сгенерированные слоты.
//
// Приоритет правил:
//  1. Закрытый день — все слоты недоступны с причиной "closed",
//     независимо от содержимого Windows.
//  2. Занятые окна — слот, чей гражданский час совпадает с часом начала
//     окна, недоступен с причиной "booked" и несёт сводку владельца.
//  3. Деградация (сбой запроса или нет учётных данных) — возвращается
//     базовый вариант генератора без изменений: fail-open, а не fail-closed.
//     Сервер остаётся единственным арбитром конфликтов, клиентское слияние
//     носит рекомендательный характер.
//
// Слияние идемпотентно и не мутирует вход: возвращается новый срез.
func Merge(date string, cfg domain.ScheduleConfig, generated []domain.Slot, in MergeInput, now time.Time) []domain.Slot {
	result := make([]domain.Slot, len(generated))
	copy(result, generated)

	// 1. Закрытый день
	if cfg.IsClosedOn(civiltime.Weekday(date, now)) {
		for i := range result {
			result[i].Available = false
			result[i].Reason = domain.ReasonClosed
			result[i].OccupiedBy = nil
		}
		return result
	}

	// 3. Fail-open: при деградации отдаём базовый вариант как есть
	if in.Degraded {
		return result
	}

	// 2. Занятые окна: совпадение по гражданскому часу начала
	for _, window := range in.Windows {
		windowHour := civiltime.HourOf(window.StartAt)
		for i := range result {
			if result[i].CivilHour != windowHour {
				continue
			}
			result[i].Available = false
			result[i].Reason = domain.ReasonBooked
			if window.OwnerSummary != "" {
				owner := window.OwnerSummary
				result[i].OccupiedBy = &owner
			}
		}
	}

	return result
}
