package catalog

import "errors"

// ErrInvalidKind возвращается для неизвестного типа объекта
var ErrInvalidKind = errors.New("unknown resource kind")
