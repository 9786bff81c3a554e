package domain

import (
	"time"

	"github.com/velitt/Studio-BookingService/pkg/types"
)

// DayAvailability is the availability record for one calendar day
// Created fresh per query, never persisted, immutable once returned
//
// Invariants:
//   - TotalSlots == 0 => !IsAvailable && len(AvailableSlots) == 0
//   - AvailableSlots ⊆ configured \ occupied, sorted ascending
//   - BookedCount counts only occupied slots that are actually configured
type DayAvailability struct {
	Date           time.Time
	IsAvailable    bool
	BookedCount    int
	AvailableSlots []types.TimeString
	TotalSlots     int
}

// IsRestDay returns true if no slots are configured for the day
// A rest day is indistinguishable from a day the admin never configured
func (d *DayAvailability) IsRestDay() bool {
	return d.TotalSlots == 0
}

// IsFullyBooked returns true if the day is configured but all slots are taken
func (d *DayAvailability) IsFullyBooked() bool {
	return d.TotalSlots > 0 && len(d.AvailableSlots) == 0
}

// DaySchedule is the admin-configured slot whitelist for one date
// A date with no schedule entry is closed
type DaySchedule struct {
	Date  time.Time
	Slots []types.TimeString
}
