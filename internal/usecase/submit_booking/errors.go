package submit_booking

import "errors"

var (
	// ErrValidation возвращается при неполном или некорректном черновике;
	// такие ошибки никогда не доходят до сети
	ErrValidation = errors.New("booking draft validation failed")

	// ErrAuthRequired возвращается при отсутствии учётных данных на пути
	// отправки: в отличие от читающих путей здесь это видимая ошибка,
	// черновик сохраняется для повтора после повторной аутентификации
	ErrAuthRequired = errors.New("authentication required to submit a booking")

	// ErrRejected возвращается, когда сервер отклонил бронирование;
	// сообщение сервера сохраняется дословно
	ErrRejected = errors.New("booking rejected by server")

	// ErrUpstreamUnavailable возвращается при недоступности сервиса
	// бронирований на пути отправки
	ErrUpstreamUnavailable = errors.New("booking service unavailable")

	// ErrSlotInPast возвращается при попытке отправить слот из прошлого
	ErrSlotInPast = errors.New("slot starts in the past")

	// ErrClosedDay возвращается при попытке отправить слот в закрытый день
	ErrClosedDay = errors.New("facility is closed on this day")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
