package domain

import (
	"fmt"
	"time"
)

// ScheduleConfig is the static booking schedule of one facility type.
// Operating hours are a half-open civil interval [start, end).
type ScheduleConfig struct {
	OperatingStartHour int
	OperatingEndHour   int
	SlotDurationHours  int
	ClosedWeekdays     []time.Weekday
}

// SlotsPerDay returns the number of slots the config produces per day.
func (c ScheduleConfig) SlotsPerDay() int {
	return (c.OperatingEndHour - c.OperatingStartHour) / c.SlotDurationHours
}

// IsClosedOn returns true if the facility accepts no bookings on the weekday.
func (c ScheduleConfig) IsClosedOn(weekday time.Weekday) bool {
	for _, wd := range c.ClosedWeekdays {
		if wd == weekday {
			return true
		}
	}
	return false
}

// Validate checks the config invariants: a sane half-open hour window and a
// slot duration that fits the window exactly, with no partial trailing slot.
func (c ScheduleConfig) Validate() error {
	if c.OperatingStartHour < 0 || c.OperatingEndHour > 24 {
		return fmt.Errorf("operating hours out of range: [%d, %d)", c.OperatingStartHour, c.OperatingEndHour)
	}
	if c.OperatingEndHour <= c.OperatingStartHour {
		return fmt.Errorf("operating window is empty: [%d, %d)", c.OperatingStartHour, c.OperatingEndHour)
	}
	if c.SlotDurationHours <= 0 {
		return fmt.Errorf("slot duration must be positive, got %d", c.SlotDurationHours)
	}
	if (c.OperatingEndHour-c.OperatingStartHour)%c.SlotDurationHours != 0 {
		return fmt.Errorf("slot duration %dh does not divide window [%d, %d)",
			c.SlotDurationHours, c.OperatingStartHour, c.OperatingEndHour)
	}
	return nil
}

// schedule configs per facility type; static business rules.
var scheduleConfigs = map[ResourceKind]ScheduleConfig{
	KindMeetingRoom: {
		OperatingStartHour: 6,
		OperatingEndHour:   22,
		SlotDurationHours:  1,
	},
	KindWorkspace: {
		OperatingStartHour: 6,
		OperatingEndHour:   22,
		SlotDurationHours:  2,
		ClosedWeekdays:     []time.Weekday{time.Thursday},
	},
	KindMultipurposeArea: {
		OperatingStartHour: 6,
		OperatingEndHour:   22,
		SlotDurationHours:  2,
	},
	KindTheater: {
		OperatingStartHour: 8,
		OperatingEndHour:   22,
		SlotDurationHours:  2,
	},
	KindWashingMachine: {
		OperatingStartHour: 6,
		OperatingEndHour:   22,
		SlotDurationHours:  1,
	},
}

// ConfigFor returns the schedule config of the facility type.
func ConfigFor(kind ResourceKind) (ScheduleConfig, error) {
	cfg, ok := scheduleConfigs[kind]
	if !ok {
		return ScheduleConfig{}, fmt.Errorf("no schedule config for kind %q", kind)
	}
	return cfg, nil
}
