package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/salon-pos/backend/internal/domain/entity"
)

// BookingModel represents the bookings table in the database.
type BookingModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID `gorm:"type:uuid;not null;index"`
	ServiceCategory string    `gorm:"type:varchar(100);not null"`
	Status          string    `gorm:"type:varchar(20);not null;index"`
	ScheduledAt     time.Time `gorm:"not null;index"`
	CreatedAt       time.Time `gorm:"not null"`
}

// TableName returns the table name for the BookingModel.
func (BookingModel) TableName() string {
	return "bookings"
}

// ToEntity converts a BookingModel to a domain Booking entity.
func (m *BookingModel) ToEntity() *entity.Booking {
	return &entity.Booking{
		ID:              m.ID,
		CustomerID:      m.CustomerID,
		ServiceCategory: m.ServiceCategory,
		Status:          entity.BookingStatus(m.Status),
		ScheduledAt:     m.ScheduledAt,
		CreatedAt:       m.CreatedAt,
	}
}

// BookingFromEntity creates a BookingModel from a domain Booking entity.
func BookingFromEntity(booking *entity.Booking) *BookingModel {
	return &BookingModel{
		ID:              booking.ID,
		CustomerID:      booking.CustomerID,
		ServiceCategory: booking.ServiceCategory,
		Status:          string(booking.Status),
		ScheduledAt:     booking.ScheduledAt,
		CreatedAt:       booking.CreatedAt,
	}
}
