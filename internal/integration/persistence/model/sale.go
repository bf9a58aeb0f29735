package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/salon-pos/backend/internal/domain/entity"
)

// SaleModel represents the sales table in the database. Sales are written by
// the POS screens; this backend only reads them.
type SaleModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	ServiceCategory string          `gorm:"type:varchar(100);not null;index"`
	Amount          decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	AdvancePaid     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	BalanceDue      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Status          string          `gorm:"type:varchar(20);not null;index"`
	SoldAt          time.Time       `gorm:"not null;index"`
	CreatedAt       time.Time       `gorm:"not null"`

	// Relationship (not loaded by default, use Preload)
	Customer *CustomerModel `gorm:"foreignKey:CustomerID;references:ID"`
}

// TableName returns the table name for the SaleModel.
func (SaleModel) TableName() string {
	return "sales"
}

// ToEntity converts a SaleModel to a domain Sale entity.
func (m *SaleModel) ToEntity() *entity.Sale {
	return &entity.Sale{
		ID:              m.ID,
		CustomerID:      m.CustomerID,
		ServiceCategory: m.ServiceCategory,
		Amount:          m.Amount,
		AdvancePaid:     m.AdvancePaid,
		BalanceDue:      m.BalanceDue,
		Status:          entity.SaleStatus(m.Status),
		SoldAt:          m.SoldAt,
		CreatedAt:       m.CreatedAt,
	}
}

// SaleFromEntity creates a SaleModel from a domain Sale entity.
func SaleFromEntity(sale *entity.Sale) *SaleModel {
	return &SaleModel{
		ID:              sale.ID,
		CustomerID:      sale.CustomerID,
		ServiceCategory: sale.ServiceCategory,
		Amount:          sale.Amount,
		AdvancePaid:     sale.AdvancePaid,
		BalanceDue:      sale.BalanceDue,
		Status:          string(sale.Status),
		SoldAt:          sale.SoldAt,
		CreatedAt:       sale.CreatedAt,
	}
}
