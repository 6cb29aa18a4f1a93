package overview

import "errors"

var (
	// ErrInvalidKind возвращается для неизвестного типа объекта
	ErrInvalidKind = errors.New("unknown resource kind")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("overview service: internal error")
)
