package get_available_slots

import (
	"context"
	"time"

	"github.com/kittyofheaven/kaizen-booking/internal/domain"
)

// BookingServiceClient интерфейс клиента внешнего сервиса бронирований
type BookingServiceClient interface {
	GetAvailability(ctx context.Context, token string, kind domain.ResourceKind, resourceID, date string) ([]domain.OccupiedWindow, error)
}

// CredentialProvider интерфейс источника bearer-токена.
// Пустая строка означает отсутствие учётных данных.
type CredentialProvider interface {
	Token() string
}

// Metrics интерфейс счётчиков fail-open ответов
type Metrics interface {
	IncFailOpen(reason string)
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
