package bookingreq

import "errors"

var (
	// ErrNoSlot возвращается, когда в selection нет подтверждённого слота
	ErrNoSlot = errors.New("selection has no committed slot")

	// ErrMissingResource возвращается, когда для типа объекта обязателен
	// вторичный селектор, но ресурс не выбран
	ErrMissingResource = errors.New("resource is required for this facility")

	// ErrMissingParticipants возвращается, когда не указано число участников
	ErrMissingParticipants = errors.New("participant count is required")

	// ErrInvalidParticipants возвращается при некорректном числе участников
	ErrInvalidParticipants = errors.New("participant count is out of range")

	// ErrMissingPurpose возвращается, когда не указана цель бронирования
	ErrMissingPurpose = errors.New("purpose is required")

	// ErrPurposeTooLong возвращается при слишком длинной цели
	ErrPurposeTooLong = errors.New("purpose is too long")

	// ErrNotesTooLong возвращается при слишком длинном примечании
	ErrNotesTooLong = errors.New("notes are too long")

	// ErrEquipmentNotSupported возвращается, когда запрошен прокат
	// оборудования для типа объекта, который его не поддерживает
	ErrEquipmentNotSupported = errors.New("equipment loan is not supported for this facility")

	// ErrUnknownKind возвращается при неизвестном типе объекта
	ErrUnknownKind = errors.New("unknown facility kind")
)
