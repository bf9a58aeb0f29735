package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a shop customer referenced by sales and bookings.
type Customer struct {
	ID        uuid.UUID
	Name      string
	Phone     string
	CreatedAt time.Time
}
