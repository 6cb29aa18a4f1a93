package get_picker

import (
	"github.com/kittyofheaven/kaizen-booking/internal/selection"
)

type PickerRegistry interface {
	Get(id string) (*selection.Controller, error)
	Delete(id string)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
