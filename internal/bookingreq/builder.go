package bookingreq

import (
	"fmt"

	"github.com/kittyofheaven/kaizen-booking/internal/domain"
	"github.com/kittyofheaven/kaizen-booking/internal/integrations/bookingservice"
)

// Build собирает payload создания бронирования из подтверждённого выбора и
// полей формы. Чистая функция: начало и конец берутся из слота дословно и
// никогда не пересчитываются.
//
// Это граница валидации формы: при отсутствии обязательного для типа объекта
// поля сборка завершается ошибкой до каких-либо сетевых вызовов.
func Build(sel domain.Selection, draft domain.BookingDraft, kind domain.ResourceKind) (*bookingservice.CreateBookingRequest, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if sel.Slot == nil {
		return nil, ErrNoSlot
	}
	if kind.HasSecondarySelector() && sel.ResourceID == "" {
		return nil, ErrMissingResource
	}

	if err := validateDraft(draft, kind); err != nil {
		return nil, err
	}

	req := &bookingservice.CreateBookingRequest{
		Kind:       kind,
		ResourceID: sel.ResourceID,
		StartAt:    sel.Slot.StartAt,
		EndAt:      sel.Slot.EndAt,
		Notes:      draft.Notes,
	}

	// Поля зависят от типа объекта: лишние всегда опускаются из payload,
	// даже если форма их прислала
	if kind.RequiresParticipants() {
		req.Participants = draft.Participants
	}
	if kind.RequiresPurpose() || (draft.Purpose != nil && kind != domain.KindWashingMachine) {
		req.Purpose = draft.Purpose
	}
	if kind.SupportsEquipmentLoan() {
		req.EquipmentLoan = draft.EquipmentLoan
	}

	return req, nil
}

// validateDraft проверяет обязательные поля формы для типа объекта
func validateDraft(draft domain.BookingDraft, kind domain.ResourceKind) error {
	if kind.RequiresParticipants() {
		if draft.Participants == nil {
			return ErrMissingParticipants
		}
		if *draft.Participants < domain.MinParticipants || *draft.Participants > domain.MaxParticipants {
			return fmt.Errorf("%w: %d", ErrInvalidParticipants, *draft.Participants)
		}
	}

	if kind.RequiresPurpose() {
		if draft.Purpose == nil || *draft.Purpose == "" {
			return ErrMissingPurpose
		}
	}
	if draft.Purpose != nil && len(*draft.Purpose) > domain.MaxPurposeLength {
		return ErrPurposeTooLong
	}
	if draft.Notes != nil && len(*draft.Notes) > domain.MaxNotesLength {
		return ErrNotesTooLong
	}

	if draft.EquipmentLoan != nil && !kind.SupportsEquipmentLoan() {
		return ErrEquipmentNotSupported
	}

	return nil
}
