package list_resources

import (
	"context"

	"github.com/kittyofheaven/kaizen-booking/internal/domain"
)

type CatalogService interface {
	List(ctx context.Context, kind domain.ResourceKind) ([]domain.Resource, bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
