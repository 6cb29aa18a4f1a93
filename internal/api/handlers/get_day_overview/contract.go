package get_day_overview

import (
	"context"

	"github.com/kittyofheaven/kaizen-booking/internal/domain"
	overviewModels "github.com/kittyofheaven/kaizen-booking/internal/service/overview/models"
)

type OverviewService interface {
	DayBoard(ctx context.Context, kind domain.ResourceKind, date string) (*overviewModels.DayBoard, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
