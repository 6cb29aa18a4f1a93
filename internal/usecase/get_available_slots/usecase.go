package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/kittyofheaven/kaizen-booking/internal/domain"
	bookingClient "github.com/kittyofheaven/kaizen-booking/internal/integrations/bookingservice"
	"github.com/kittyofheaven/kaizen-booking/internal/slots"
	"github.com/kittyofheaven/kaizen-booking/pkg/civiltime"
)

// UseCase use case получения слитого списка слотов для формы бронирования
type UseCase struct {
	client       BookingServiceClient
	credentials  CredentialProvider
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	client BookingServiceClient,
	credentials CredentialProvider,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		client:       client,
		credentials:  credentials,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: kind=%s, resource=%s, date=%s", req.Kind, req.ResourceID, req.Date)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время и нормализуем дату (фоллбэк к сегодня)
	now := uc.timeProvider.Now()
	date := civiltime.DateOf(civiltime.ToInstant(req.Date, 0, now))

	// 3. Расписание типа объекта
	cfg, err := domain.ConfigFor(req.Kind)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: no schedule config for kind=%s", req.Kind)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 4. Генерируем слоты-кандидаты (оптимистичный базовый вариант)
	generated := slots.Generate(date, cfg, now)

	// 5. Запрашиваем занятость у сервиса; при сбое или отсутствии учётных
	// данных деградируем в fail-open, а не блокируем пользователя
	in := slots.MergeInput{}
	token := uc.credentials.Token()

	windows, err := uc.client.GetAvailability(ctx, token, req.Kind, req.ResourceID, date)
	switch {
	case err == nil:
		in.Windows = windows
	case errors.Is(err, bookingClient.ErrAuthRequired):
		uc.logger.Info("GetAvailableSlots: no credential, serving fail-open default: kind=%s, date=%s", req.Kind, date)
		in.Degraded = true
		uc.metrics.IncFailOpen("no_credential")
	case errors.Is(err, bookingClient.ErrServiceDegraded):
		uc.logger.Warn("GetAvailableSlots: availability fetch degraded, serving fail-open default: kind=%s, date=%s: %v", req.Kind, date, err)
		in.Degraded = true
		uc.metrics.IncFailOpen("degraded")
	default:
		// Некорректный ответ сервиса тоже не должен ронять picker
		uc.logger.Error("GetAvailableSlots: availability fetch failed: kind=%s, date=%s: %v", req.Kind, date, err)
		in.Degraded = true
		uc.metrics.IncFailOpen("degraded")
	}

	// 6. Сливаем занятость с кандидатами
	merged := slots.Merge(date, cfg, generated, in, now)
	closed := cfg.IsClosedOn(civiltime.Weekday(date, now))

	uc.logger.Info("GetAvailableSlots: returning %d slots: kind=%s, resource=%s, date=%s, closed=%v, degraded=%v",
		len(merged), req.Kind, req.ResourceID, date, closed, in.Degraded)

	return &Response{
		Kind:       req.Kind,
		ResourceID: req.ResourceID,
		Date:       date,
		Closed:     closed,
		Degraded:   in.Degraded,
		Slots:      merged,
	}, nil
}

// FetchSlots адаптер под selection.SlotFetcher: контроллеры выбора получают
// слоты тем же путём, что и HTTP ручка
func (uc *UseCase) FetchSlots(ctx context.Context, kind domain.ResourceKind, resourceID, date string) ([]domain.Slot, bool, error) {
	resp, err := uc.Execute(ctx, &Request{Kind: kind, ResourceID: resourceID, Date: date})
	if err != nil {
		return nil, false, err
	}
	return resp.Slots, resp.Degraded, nil
}
