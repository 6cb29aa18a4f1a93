package selection

import "errors"

var (
	// ErrLoading возвращается при попытке выбрать слот, пока идёт загрузка
	ErrLoading = errors.New("slots are still loading")

	// ErrSlotUnavailable возвращается при выборе недоступного слота
	ErrSlotUnavailable = errors.New("slot is not available")

	// ErrSlotInPast возвращается при выборе слота, начало которого в прошлом
	ErrSlotInPast = errors.New("slot starts in the past")

	// ErrClosedDay возвращается при выборе слота в закрытый день
	ErrClosedDay = errors.New("facility is closed on this day")

	// ErrUnknownSlot возвращается, когда слот не принадлежит текущему набору
	ErrUnknownSlot = errors.New("slot does not belong to the current slot set")

	// ErrNoSlotSelected возвращается при отправке без подтверждённого слота
	ErrNoSlotSelected = errors.New("no slot selected")

	// ErrSubmitInFlight возвращается, когда отправка уже выполняется
	ErrSubmitInFlight = errors.New("submission already in flight")

	// ErrNoSecondarySelector возвращается при установке ресурса для типа
	// объекта без вторичного селектора
	ErrNoSecondarySelector = errors.New("facility kind has no secondary selector")
)
