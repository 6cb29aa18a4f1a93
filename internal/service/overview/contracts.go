package overview

import (
	"context"
	"time"

	"github.com/kittyofheaven/kaizen-booking/internal/domain"
)

// BookingServiceClient интерфейс клиента внешнего сервиса бронирований
type BookingServiceClient interface {
	GetBookingsByDate(ctx context.Context, token string, kind domain.ResourceKind, resourceID, date string) ([]domain.OccupiedWindow, error)
}

// CatalogLister интерфейс получения списка ресурсов типа объекта
type CatalogLister interface {
	List(ctx context.Context, kind domain.ResourceKind) ([]domain.Resource, bool, error)
}

// CredentialProvider интерфейс источника bearer-токена
type CredentialProvider interface {
	Token() string
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
