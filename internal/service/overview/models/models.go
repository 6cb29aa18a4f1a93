package models

import (
	"time"

	"github.com/kittyofheaven/kaizen-booking/internal/domain"
)

// ResourceBoard расписание одного ресурса на дату
type ResourceBoard struct {
	Resource domain.Resource
	Closed   bool
	Degraded bool
	Slots    []domain.Slot
}

// DayBoard обзор всех ресурсов типа объекта на один день
type DayBoard struct {
	Kind            domain.ResourceKind
	Date            string
	Weekday         time.Weekday
	CatalogFallback bool
	Resources       []ResourceBoard
}

// WeekBoard семь последовательных дневных обзоров
type WeekBoard struct {
	Kind domain.ResourceKind
	From string
	Days []DayBoard
}

// MachineOccupancy занятость одной стиральной машины в текущий момент
type MachineOccupancy struct {
	Resource         domain.Resource
	Running          bool
	OwnerSummary     string
	SlotLabel        string
	MinutesRemaining int
}

// OccupancyBoard занятость всех стиральных машин в текущий момент
type OccupancyBoard struct {
	Date     string
	AsOf     time.Time
	Degraded bool
	Machines []MachineOccupancy
}
