package submit_booking

import (
	"time"

	"github.com/kittyofheaven/kaizen-booking/internal/domain"
)

// Request модель запроса на отправку бронирования
type Request struct {
	Kind      domain.ResourceKind
	Selection domain.Selection
	Draft     domain.BookingDraft
}

// Response модель ответа об успешном создании бронирования
type Response struct {
	BookingID  string
	Kind       string
	ResourceID string
	StartAt    time.Time
	EndAt      time.Time
	Status     string
	CreatedAt  time.Time
}
