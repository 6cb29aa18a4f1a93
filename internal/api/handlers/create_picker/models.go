package create_picker

// CreatePickerRequest модель запроса на создание picker-сессии
type CreatePickerRequest struct {
	Kind string `json:"kind"`
}
