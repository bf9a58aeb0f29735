package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/salon-pos/backend/internal/domain/entity"
)

// CustomerModel represents the customers table in the database.
type CustomerModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Phone     string    `gorm:"type:varchar(32)"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the CustomerModel.
func (CustomerModel) TableName() string {
	return "customers"
}

// ToEntity converts a CustomerModel to a domain Customer entity.
func (m *CustomerModel) ToEntity() *entity.Customer {
	return &entity.Customer{
		ID:        m.ID,
		Name:      m.Name,
		Phone:     m.Phone,
		CreatedAt: m.CreatedAt,
	}
}
