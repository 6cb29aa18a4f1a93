package bookingservice

import (
	"time"

	"github.com/kittyofheaven/kaizen-booking/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// occupiedWindowDTO модель занятого окна из сервиса бронирований
type occupiedWindowDTO struct {
	StartAt      time.Time `json:"startAt"`
	EndAt        time.Time `json:"endAt"`
	OwnerSummary string    `json:"ownerSummary"`
}

// availabilityResponse модель ответа на запрос занятости
type availabilityResponse struct {
	Date    string              `json:"date"`
	Windows []occupiedWindowDTO `json:"windows"`
}

// bookingDTO модель бронирования из сервиса бронирований
type bookingDTO struct {
	ID           string    `json:"id"`
	ResourceID   string    `json:"resourceId"`
	StartAt      time.Time `json:"startAt"`
	EndAt        time.Time `json:"endAt"`
	OwnerSummary string    `json:"ownerSummary"`
}

// bookingsResponse модель ответа на запрос бронирований за дату
type bookingsResponse struct {
	Bookings []bookingDTO `json:"bookings"`
}

// resourceDTO модель ресурса из каталога
type resourceDTO struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

// catalogResponse модель ответа каталога
type catalogResponse struct {
	Resources []resourceDTO `json:"resources"`
}

// CreateBookingRequest payload создания бронирования.
// Начало и конец копируются из подтверждённого слота дословно.
type CreateBookingRequest struct {
	Kind          domain.ResourceKind `json:"kind"`
	ResourceID    string              `json:"resourceId,omitempty"`
	StartAt       time.Time           `json:"startAt"`
	EndAt         time.Time           `json:"endAt"`
	Participants  *int                `json:"participants,omitempty"`
	Purpose       *string             `json:"purpose,omitempty"`
	EquipmentLoan *bool               `json:"equipmentLoan,omitempty"`
	Notes         *string             `json:"notes,omitempty"`
}

// CreatedBooking ответ сервиса на успешное создание бронирования
type CreatedBooking struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	ResourceID string    `json:"resourceId"`
	StartAt    time.Time `json:"startAt"`
	EndAt      time.Time `json:"endAt"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ErrorResponse модель ошибки от сервиса бронирований
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func toOccupiedWindows(dtos []occupiedWindowDTO) []domain.OccupiedWindow {
	windows := make([]domain.OccupiedWindow, len(dtos))
	for i, dto := range dtos {
		windows[i] = domain.OccupiedWindow{
			StartAt:      dto.StartAt,
			EndAt:        dto.EndAt,
			OwnerSummary: dto.OwnerSummary,
		}
	}
	return windows
}

func bookingsToWindows(dtos []bookingDTO) []domain.OccupiedWindow {
	windows := make([]domain.OccupiedWindow, len(dtos))
	for i, dto := range dtos {
		windows[i] = domain.OccupiedWindow{
			StartAt:      dto.StartAt,
			EndAt:        dto.EndAt,
			OwnerSummary: dto.OwnerSummary,
		}
	}
	return windows
}

func toResources(dtos []resourceDTO) []domain.Resource {
	resources := make([]domain.Resource, len(dtos))
	for i, dto := range dtos {
		resources[i] = domain.Resource{
			ID:          dto.ID,
			DisplayName: dto.DisplayName,
		}
	}
	return resources
}
