package overview

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kittyofheaven/kaizen-booking/internal/domain"
	bookingClient "github.com/kittyofheaven/kaizen-booking/internal/integrations/bookingservice"
	"github.com/kittyofheaven/kaizen-booking/internal/service/overview/models"
	"github.com/kittyofheaven/kaizen-booking/internal/slots"
	"github.com/kittyofheaven/kaizen-booking/pkg/civiltime"
)

// Service строит обзорные доски без возможности выбора
//
// Доски только для чтения: показывают занятость, но не участвуют в выборе
// слота. Отказ внешнего сервиса не ломает доску, соответствующие ресурсы
// помечаются признаком Degraded и показываются свободными.
type Service struct {
	client       BookingServiceClient
	catalog      CatalogLister
	credentials  CredentialProvider
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса обзоров
func NewService(client BookingServiceClient, catalog CatalogLister, credentials CredentialProvider, logger Logger) *Service {
	return &Service{
		client:       client,
		catalog:      catalog,
		credentials:  credentials,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// DayBoard строит обзор всех ресурсов типа объекта на одну дату
func (s *Service) DayBoard(ctx context.Context, kind domain.ResourceKind, date string) (*models.DayBoard, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}

	now := s.timeProvider.Now()
	date = civiltime.DateOf(civiltime.ToInstant(date, 0, now))

	cfg, err := domain.ConfigFor(kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	resources, fallback, err := s.catalog.List(ctx, kind)
	if err != nil {
		return nil, err
	}

	weekday := civiltime.Weekday(date, now)
	board := &models.DayBoard{
		Kind:            kind,
		Date:            date,
		Weekday:         weekday,
		CatalogFallback: fallback,
		Resources:       make([]models.ResourceBoard, 0, len(resources)),
	}

	for _, resource := range resources {
		row := s.resourceBoard(ctx, kind, cfg, resource, date, now)
		board.Resources = append(board.Resources, row)
	}

	return board, nil
}

// WeekBoard строит семь последовательных дневных обзоров начиная с даты from
func (s *Service) WeekBoard(ctx context.Context, kind domain.ResourceKind, from string) (*models.WeekBoard, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}

	now := s.timeProvider.Now()
	start := civiltime.ToInstant(from, 0, now)

	board := &models.WeekBoard{
		Kind: kind,
		From: civiltime.DateOf(start),
		Days: make([]models.DayBoard, 0, 7),
	}

	for i := 0; i < 7; i++ {
		date := civiltime.DateOf(start.AddDate(0, 0, i))
		day, err := s.DayBoard(ctx, kind, date)
		if err != nil {
			return nil, err
		}
		board.Days = append(board.Days, *day)
	}

	return board, nil
}

// Occupancy строит доску текущей занятости стиральных машин
func (s *Service) Occupancy(ctx context.Context) (*models.OccupancyBoard, error) {
	now := s.timeProvider.Now()
	date := civiltime.DateOf(now)

	day, err := s.DayBoard(ctx, domain.KindWashingMachine, date)
	if err != nil {
		return nil, err
	}

	board := &models.OccupancyBoard{
		Date:     date,
		AsOf:     now,
		Machines: make([]models.MachineOccupancy, 0, len(day.Resources)),
	}

	for _, row := range day.Resources {
		machine := models.MachineOccupancy{Resource: row.Resource}
		if row.Degraded {
			board.Degraded = true
		}
		for i := range row.Slots {
			slot := row.Slots[i]
			// Полуоткрытый интервал [StartAt, EndAt)
			if !slot.StartAt.After(now) && slot.EndAt.After(now) {
				machine.SlotLabel = slot.Label
				if !slot.Available && slot.Reason == domain.ReasonBooked {
					machine.Running = true
					machine.MinutesRemaining = int(slot.EndAt.Sub(now).Minutes())
					if slot.OccupiedBy != nil {
						machine.OwnerSummary = *slot.OccupiedBy
					}
				}
				break
			}
		}
		board.Machines = append(board.Machines, machine)
	}

	return board, nil
}

// resourceBoard строит строку одного ресурса, отказ источника переводит
// строку в режим fail-open
func (s *Service) resourceBoard(ctx context.Context, kind domain.ResourceKind, cfg domain.ScheduleConfig, resource domain.Resource, date string, now time.Time) models.ResourceBoard {
	row := models.ResourceBoard{
		Resource: resource,
		Closed:   cfg.IsClosedOn(civiltime.Weekday(date, now)),
	}

	in := slots.MergeInput{}
	windows, err := s.client.GetBookingsByDate(ctx, s.credentials.Token(), kind, resource.ID, date)
	switch {
	case err == nil:
		in.Windows = windows
	case errors.Is(err, bookingClient.ErrAuthRequired),
		errors.Is(err, bookingClient.ErrServiceDegraded):
		s.logger.Warn("DayBoard: occupancy unavailable, fail-open: kind=%s, resource=%s, date=%s, error=%v", kind, resource.ID, date, err)
		in.Degraded = true
		row.Degraded = true
	default:
		s.logger.Error("DayBoard: unexpected occupancy error, fail-open: kind=%s, resource=%s, error=%v", kind, resource.ID, err)
		in.Degraded = true
		row.Degraded = true
	}

	generated := slots.Generate(date, cfg, now)
	row.Slots = slots.Merge(date, cfg, generated, in, now)
	return row
}
