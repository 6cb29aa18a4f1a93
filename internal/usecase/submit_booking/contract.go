package submit_booking

import (
	"context"
	"time"

	bookingClient "github.com/kittyofheaven/kaizen-booking/internal/integrations/bookingservice"
)

// BookingServiceClient интерфейс клиента внешнего сервиса бронирований
type BookingServiceClient interface {
	CreateBooking(ctx context.Context, token string, req *bookingClient.CreateBookingRequest) (*bookingClient.CreatedBooking, error)
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
