package bookingservice

import (
	"errors"
	"fmt"
)

var (
	// ErrAuthRequired возвращается при отсутствии учётных данных или ответе 401
	ErrAuthRequired = errors.New("bookingservice client: authentication required")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("bookingservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("bookingservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что сервис бронирований недоступен и читающие пути должны
	// перейти на fail-open вариант
	ErrServiceDegraded = errors.New("bookingservice unavailable: graceful degradation applied")

	// ErrRejected возвращается, когда сервис отклонил создание бронирования
	// (конфликт или нарушение бизнес-правила); текст сервера сохраняется
	ErrRejected = errors.New("bookingservice client: booking rejected")
)

// RejectionError несёт дословное сообщение сервера об отказе.
// Сообщение показывается пользователю без изменений.
type RejectionError struct {
	Message string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("booking rejected by server: %s", e.Message)
}

func (e *RejectionError) Unwrap() error {
	return ErrRejected
}
