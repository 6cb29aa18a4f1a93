package submit_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/kittyofheaven/kaizen-booking/internal/bookingreq"
	"github.com/kittyofheaven/kaizen-booking/internal/domain"
	bookingClient "github.com/kittyofheaven/kaizen-booking/internal/integrations/bookingservice"
	"github.com/kittyofheaven/kaizen-booking/internal/selection"
	"github.com/kittyofheaven/kaizen-booking/pkg/civiltime"
)

// UseCase для отправки бронирования во внешний сервис
type UseCase struct {
	client       BookingServiceClient
	credentials  CredentialProvider
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый UseCase для отправки бронирований
func NewUseCase(client BookingServiceClient, credentials CredentialProvider, logger Logger) *UseCase {
	return &UseCase{
		client:       client,
		credentials:  credentials,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute отправляет выбранный слот с черновиком во внешний сервис бронирований
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	// 1. Валидация запроса
	if err := uc.validateRequest(req); err != nil {
		uc.logger.Warn("SubmitBooking: request validation failed: error=%v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Слот в прошлом не отправляем, даже если сервер его ещё отдаёт
	if req.Selection.Slot.IsPast(now) {
		uc.logger.Warn("SubmitBooking: slot is already in the past: start_at=%v", req.Selection.Slot.StartAt)
		return nil, fmt.Errorf("%w: slot %s", ErrSlotInPast, req.Selection.Slot.Label)
	}

	// 3. Закрытый день проверяем до сборки запроса
	cfg, err := domain.ConfigFor(req.Kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if cfg.IsClosedOn(civiltime.Weekday(req.Selection.Date, now)) {
		uc.logger.Warn("SubmitBooking: resource closed on selected day: kind=%s, date=%s", req.Kind, req.Selection.Date)
		return nil, fmt.Errorf("%w: %s on %s", ErrClosedDay, req.Kind, req.Selection.Date)
	}

	// 4. Сборка запроса из черновика; ошибки сборки не доходят до сети
	createReq, err := bookingreq.Build(req.Selection, req.Draft, req.Kind)
	if err != nil {
		uc.logger.Warn("SubmitBooking: draft failed to build: error=%v", err)
		// Двойной %w: ручка различает конкретную причину по sentinel-ам сборщика
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	// 5. На пути отправки отсутствие токена - видимая ошибка, не fail-open
	token := uc.credentials.Token()
	if token == "" {
		uc.logger.Warn("SubmitBooking: missing credentials")
		return nil, ErrAuthRequired
	}

	// 6. Отправка во внешний сервис бронирований
	created, err := uc.client.CreateBooking(ctx, token, createReq)
	if err != nil {
		return nil, uc.mapClientError(err)
	}

	uc.logger.Info("SubmitBooking: booking created: booking_id=%s, kind=%s, resource=%s, slot=%s",
		created.ID, req.Kind, req.Selection.ResourceID, req.Selection.Slot.Label)

	return &Response{
		BookingID:  created.ID,
		Kind:       created.Kind,
		ResourceID: created.ResourceID,
		StartAt:    created.StartAt,
		EndAt:      created.EndAt,
		Status:     created.Status,
		CreatedAt:  created.CreatedAt,
	}, nil
}

// Submit адаптер для контроллера выбора слотов
func (uc *UseCase) Submit(ctx context.Context, kind domain.ResourceKind, sel domain.Selection, draft domain.BookingDraft) (*selection.SubmitResult, error) {
	resp, err := uc.Execute(ctx, Request{Kind: kind, Selection: sel, Draft: draft})
	if err != nil {
		return nil, err
	}
	return &selection.SubmitResult{BookingID: resp.BookingID, Status: resp.Status}, nil
}

func (uc *UseCase) mapClientError(err error) error {
	var rejection *bookingClient.RejectionError

	switch {
	case errors.As(err, &rejection):
		// Сообщение сервера передаём дословно
		uc.logger.Warn("SubmitBooking: booking rejected by server: %s", rejection.Message)
		return fmt.Errorf("%w: %s", ErrRejected, rejection.Message)
	case errors.Is(err, bookingClient.ErrAuthRequired):
		uc.logger.Warn("SubmitBooking: booking service rejected credentials")
		return ErrAuthRequired
	case errors.Is(err, bookingClient.ErrServiceDegraded):
		uc.logger.Error("SubmitBooking: booking service unavailable: error=%v", err)
		return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	default:
		uc.logger.Error("SubmitBooking: unexpected client error: error=%v", err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
