package domain

// Selection is a user's in-progress, not-yet-submitted choice of
// date/resource/slot for one booking form.
//
// Invariant: Slot is non-nil only if it belongs to the slot set most recently
// generated for (Date, ResourceID); a stale slot from a previous context must
// never remain selected.
type Selection struct {
	Date       string // civil date string, YYYY-MM-DD
	ResourceID string // empty for kinds without a secondary selector
	Slot       *Slot
}

// BookingDraft holds the transient form-local fields combined with a
// Selection to build the outbound request. Discarded on submit success or
// form close.
type BookingDraft struct {
	Participants  *int
	Purpose       *string
	EquipmentLoan *bool // kitchen equipment loan, workspace bookings only
	Notes         *string
}
