package create_picker

import (
	"github.com/kittyofheaven/kaizen-booking/internal/domain"
	"github.com/kittyofheaven/kaizen-booking/internal/selection"
)

type PickerRegistry interface {
	Create(kind domain.ResourceKind) (string, *selection.Controller, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
