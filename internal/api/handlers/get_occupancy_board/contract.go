package get_occupancy_board

import (
	"context"

	overviewModels "github.com/kittyofheaven/kaizen-booking/internal/service/overview/models"
)

type OverviewService interface {
	Occupancy(ctx context.Context) (*overviewModels.OccupancyBoard, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
