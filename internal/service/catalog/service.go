package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/kittyofheaven/kaizen-booking/internal/domain"
	bookingClient "github.com/kittyofheaven/kaizen-booking/internal/integrations/bookingservice"
)

// Service сервис каталога ресурсов
//
// Каталог читается из внешнего сервиса бронирований; при недоступности
// сервиса или отсутствии учётных данных отдаётся встроенный каталог,
// чтобы формы бронирования оставались рабочими.
type Service struct {
	client      BookingServiceClient
	credentials CredentialProvider
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(client BookingServiceClient, credentials CredentialProvider, logger Logger) *Service {
	return &Service{
		client:      client,
		credentials: credentials,
		logger:      logger,
	}
}

// List возвращает список ресурсов типа объекта
// Второй результат true, когда отдан встроенный каталог вместо серверного
func (s *Service) List(ctx context.Context, kind domain.ResourceKind) ([]domain.Resource, bool, error) {
	if !kind.IsValid() {
		return nil, false, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}

	resources, err := s.client.GetCatalog(ctx, s.credentials.Token(), kind)
	if err != nil {
		// Любой сбой каталога не должен ломать формы бронирования:
		// отдаём встроенный каталог и помечаем ответ как деградированный
		switch {
		case errors.Is(err, bookingClient.ErrAuthRequired):
			s.logger.Warn("List: no credentials, serving built-in catalog: kind=%s", kind)
		case errors.Is(err, bookingClient.ErrServiceDegraded):
			s.logger.Warn("List: booking service unavailable, serving built-in catalog: kind=%s, error=%v", kind, err)
		default:
			s.logger.Error("List: unexpected catalog error, serving built-in catalog: kind=%s, error=%v", kind, err)
		}
		return domain.DefaultCatalog(kind), true, nil
	}

	if len(resources) == 0 {
		s.logger.Warn("List: server returned empty catalog, serving built-in: kind=%s", kind)
		return domain.DefaultCatalog(kind), true, nil
	}

	s.logger.Info("List: catalog retrieved: kind=%s, resources_count=%d", kind, len(resources))
	return resources, false, nil
}
