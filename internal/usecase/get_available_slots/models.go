package get_available_slots

import (
	"github.com/kittyofheaven/kaizen-booking/internal/domain"
)

// Request модель запроса на получение слотов
type Request struct {
	Kind       domain.ResourceKind // Тип объекта
	ResourceID string              // Ресурс (пусто для типов без вторичного селектора)
	Date       string              // Гражданская дата YYYY-MM-DD
}

// Response модель ответа со слитым списком слотов
type Response struct {
	Kind       domain.ResourceKind
	ResourceID string
	Date       string        // Нормализованная дата (после фоллбэка некорректной строки)
	Closed     bool          // Объект закрыт в этот день недели
	Degraded   bool          /// Fail-open вариант: занятость не подтверждена сервером
	Slots      []domain.Slot // Упорядоченный список слотов
}
