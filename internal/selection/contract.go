package selection

import (
	"context"
	"time"

	"github.com/kittyofheaven/kaizen-booking/internal/domain"
)

// SlotFetcher интерфейс получения слитого списка слотов для (kind, resource, date).
// degraded=true означает, что список — fail-open вариант без серверной занятости.
type SlotFetcher interface {
	FetchSlots(ctx context.Context, kind domain.ResourceKind, resourceID, date string) (slots []domain.Slot, degraded bool, err error)
}

// Submitter интерфейс отправки подтверждённого выбора на создание бронирования
type Submitter interface {
	Submit(ctx context.Context, kind domain.ResourceKind, sel domain.Selection, draft domain.BookingDraft) (*SubmitResult, error)
}

// SubmitResult результат успешной отправки бронирования
type SubmitResult struct {
	BookingID string
	Status    string
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
