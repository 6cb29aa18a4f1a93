package submit_booking

import "fmt"

func (uc *UseCase) validateRequest(req Request) error {
	if !req.Kind.IsValid() {
		return fmt.Errorf("%w: unknown resource kind %q", ErrValidation, req.Kind)
	}

	if req.Selection.Slot == nil {
		return fmt.Errorf("%w: no slot selected", ErrValidation)
	}

	// Ресурс обязателен только для типов со вторичным селектором;
	// у театра и переговорной его нет, у них ResourceID всегда пуст
	if req.Kind.HasSecondarySelector() && req.Selection.ResourceID == "" {
		return fmt.Errorf("%w: resource is required", ErrValidation)
	}

	if req.Selection.Date == "" {
		return fmt.Errorf("%w: date is required", ErrValidation)
	}

	return nil
}
