package select_slot

import "time"

// SelectSlotRequest модель запроса на выбор слота
// Слот идентифицируется моментом начала; повторный выбор снимает выбор
type SelectSlotRequest struct {
	StartAt time.Time `json:"startAt"`
}
