package domain

import "time"

// UnavailableReason explains why a slot cannot be booked.
// Distinct values drive distinct display copy.
type UnavailableReason string

const (
	// ReasonBooked the slot is taken by an existing booking.
	ReasonBooked UnavailableReason = "booked"
	// ReasonClosed the facility accepts no bookings on this weekday.
	ReasonClosed UnavailableReason = "closed"
)

// Slot is one bookable time window of a facility on a given civil day.
// Identity is StartAt; it is stable and unique within a day for a resource.
type Slot struct {
	StartAt    time.Time
	EndAt      time.Time
	CivilHour  int
	Label      string // "06:00 - 08:00" in civil time
	Available  bool
	Reason     UnavailableReason // empty while Available
	OccupiedBy *string           // owner summary, filled only on overview boards
}

// IsPast returns true if the slot's start instant is before now.
// The client-side past rule is stricter than server availability: a past slot
// is never selectable even when reported available.
func (s *Slot) IsPast(now time.Time) bool {
	return s.StartAt.Before(now)
}

// SameSlot returns true if startAt identifies the same window.
func (s *Slot) SameSlot(startAt time.Time) bool {
	return s.StartAt.Equal(startAt)
}

// OccupiedWindow is a server-reported busy interval used only as merge input.
// It is never kept longer than one fetch cycle.
type OccupiedWindow struct {
	StartAt      time.Time
	EndAt        time.Time
	OwnerSummary string
}
