// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/salon-pos/backend/internal/domain/entity"
)

// DailyBalanceModel represents the daily_balances table in the database.
// The date column is unique: one snapshot per calendar day.
type DailyBalanceModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Date           time.Time       `gorm:"type:date;not null;uniqueIndex"`
	OpeningBalance decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TotalIncome    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TotalExpenses  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	ClosingBalance decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for the DailyBalanceModel.
func (DailyBalanceModel) TableName() string {
	return "daily_balances"
}

// ToEntity converts a DailyBalanceModel to a domain DailyBalance entity.
func (m *DailyBalanceModel) ToEntity() *entity.DailyBalance {
	return &entity.DailyBalance{
		ID:             m.ID,
		Date:           entity.NormalizeDay(m.Date),
		OpeningBalance: m.OpeningBalance,
		TotalIncome:    m.TotalIncome,
		TotalExpenses:  m.TotalExpenses,
		ClosingBalance: m.ClosingBalance,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// DailyBalanceFromEntity creates a DailyBalanceModel from a domain entity.
func DailyBalanceFromEntity(balance *entity.DailyBalance) *DailyBalanceModel {
	return &DailyBalanceModel{
		ID:             balance.ID,
		Date:           balance.Date,
		OpeningBalance: balance.OpeningBalance,
		TotalIncome:    balance.TotalIncome,
		TotalExpenses:  balance.TotalExpenses,
		ClosingBalance: balance.ClosingBalance,
		CreatedAt:      balance.CreatedAt,
		UpdatedAt:      balance.UpdatedAt,
	}
}
