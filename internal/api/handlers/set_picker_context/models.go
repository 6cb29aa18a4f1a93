package set_picker_context

// SetContextRequest модель запроса на смену даты и/или ресурса формы
// Оба поля опциональны, но хотя бы одно должно быть задано
type SetContextRequest struct {
	Date       *string `json:"date,omitempty"`
	ResourceID *string `json:"resourceId,omitempty"`
}
