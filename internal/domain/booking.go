package domain

import (
	"time"

	"github.com/velitt/Studio-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// Booking represents a single appointment in the studio
// Name and Phone are snapshots taken at submission time: the history stays
// correct even if the customer record is updated later
type Booking struct {
	ID          int64
	UserID      string
	BookingDate time.Time
	StartTime   types.TimeString
	ServiceType ServiceType
	RemoveGel   bool
	Status      BookingStatus

	// Snapshot of customer data at time of booking
	Name  string
	Phone string

	EditCount int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// IsCompleted returns true if the appointment already took place
func (b *Booking) IsCompleted() bool {
	return b.Status == StatusCompleted
}

// DateSlot is one occupied (date, start time) pair
// Derived from non-cancelled bookings when resolving availability
type DateSlot struct {
	Date      time.Time
	StartTime types.TimeString
}
