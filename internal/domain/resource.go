package domain

// ResourceKind identifies one of the bookable facility types.
type ResourceKind string

const (
	KindMeetingRoom      ResourceKind = "meeting_room"
	KindWorkspace        ResourceKind = "workspace"
	KindMultipurposeArea ResourceKind = "multipurpose_area"
	KindTheater          ResourceKind = "theater"
	KindWashingMachine   ResourceKind = "washing_machine"
)

// AllKinds lists every facility type in display order.
var AllKinds = []ResourceKind{
	KindMeetingRoom,
	KindWorkspace,
	KindMultipurposeArea,
	KindTheater,
	KindWashingMachine,
}

// Resource is one selectable unit of a facility (a room, a kitchen facility,
// an area, a machine).
type Resource struct {
	ID          string
	DisplayName string
}

// IsValid returns true if the kind is one of the known facility types.
func (k ResourceKind) IsValid() bool {
	switch k {
	case KindMeetingRoom, KindWorkspace, KindMultipurposeArea, KindTheater, KindWashingMachine:
		return true
	}
	return false
}

// HasSecondarySelector returns true for kinds whose booking form carries a
// second selector besides the date: a kitchen facility, an area or a machine.
func (k ResourceKind) HasSecondarySelector() bool {
	switch k {
	case KindWorkspace, KindMultipurposeArea, KindWashingMachine:
		return true
	}
	return false
}

// RequiresParticipants returns true for room-like kinds whose bookings must
// state a participant count.
func (k ResourceKind) RequiresParticipants() bool {
	return k != KindWashingMachine
}

// RequiresPurpose returns true for kinds whose bookings must state a purpose.
func (k ResourceKind) RequiresPurpose() bool {
	return k == KindMultipurposeArea || k == KindTheater
}

// SupportsEquipmentLoan returns true for the kind whose bookings may request
// a kitchen equipment loan.
func (k ResourceKind) SupportsEquipmentLoan() bool {
	return k == KindWorkspace
}

// DefaultCatalog is the built-in resource catalog used when the upstream
// catalog cannot be fetched, so the pickers stay exercisable offline.
func DefaultCatalog(kind ResourceKind) []Resource {
	switch kind {
	case KindMeetingRoom:
		return []Resource{
			{ID: "meeting-1", DisplayName: "Ruang Rapat 1"},
		}
	case KindWorkspace:
		return []Resource{
			{ID: "kitchen-1", DisplayName: "Dapur Komunal A"},
			{ID: "kitchen-2", DisplayName: "Dapur Komunal B"},
		}
	case KindMultipurposeArea:
		return []Resource{
			{ID: "area-1", DisplayName: "Area Serbaguna Lantai 1"},
			{ID: "area-2", DisplayName: "Area Serbaguna Lantai 2"},
		}
	case KindTheater:
		return []Resource{
			{ID: "theater-1", DisplayName: "Teater"},
		}
	case KindWashingMachine:
		return []Resource{
			{ID: "machine-1", DisplayName: "Mesin Cuci 1"},
			{ID: "machine-2", DisplayName: "Mesin Cuci 2"},
			{ID: "machine-3", DisplayName: "Mesin Cuci 3"},
			{ID: "machine-4", DisplayName: "Mesin Cuci 4"},
		}
	default:
		return nil
	}
}
