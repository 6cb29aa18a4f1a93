package domain

// Business validation constants
const (
	MinParticipants  = 1
	MaxParticipants  = 200
	MaxPurposeLength = 500
	MaxNotesLength   = 500
)
