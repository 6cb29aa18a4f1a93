package catalog

import (
	"context"

	"github.com/kittyofheaven/kaizen-booking/internal/domain"
)

// BookingServiceClient интерфейс клиента каталога внешнего сервиса
type BookingServiceClient interface {
	GetCatalog(ctx context.Context, token string, kind domain.ResourceKind) ([]domain.Resource, error)
}

// CredentialProvider интерфейс источника bearer-токена
type CredentialProvider interface {
	Token() string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
