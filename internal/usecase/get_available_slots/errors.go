package get_available_slots

import "errors"

var (
	// ErrInvalidKind возвращается при неизвестном типе объекта
	ErrInvalidKind = errors.New("unknown facility kind")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
