package entity

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	BookingStatusScheduled BookingStatus = "scheduled"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking is a scheduled service appointment. The analytics engine only
// reads bookings to derive the completion rate.
type Booking struct {
	ID              uuid.UUID
	CustomerID      uuid.UUID
	ServiceCategory string
	Status          BookingStatus
	ScheduledAt     time.Time
	CreatedAt       time.Time
}
