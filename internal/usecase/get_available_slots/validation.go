package get_available_slots

import (
	"fmt"
)

// validateRequest валидирует входные данные запроса.
// Дата не валидируется: некорректная строка детерминированно деградирует
// к сегодняшнему дню в civiltime, чтобы сломанный контрол не ронял picker.
func validateRequest(req *Request) error {
	if !req.Kind.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidKind, req.Kind)
	}

	if req.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}
