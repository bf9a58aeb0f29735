package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/salon-pos/backend/internal/domain/entity"
)

// ExpenseModel represents the expenses table in the database.
type ExpenseModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Description string          `gorm:"type:varchar(255);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedBy   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ExpenseDate time.Time       `gorm:"type:date;not null;index"`
	CreatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	return &entity.Expense{
		ID:          m.ID,
		Description: m.Description,
		Amount:      m.Amount,
		CreatedBy:   m.CreatedBy,
		ExpenseDate: entity.NormalizeDay(m.ExpenseDate),
		CreatedAt:   m.CreatedAt,
	}
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(expense *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:          expense.ID,
		Description: expense.Description,
		Amount:      expense.Amount,
		CreatedBy:   expense.CreatedBy,
		ExpenseDate: expense.ExpenseDate,
		CreatedAt:   expense.CreatedAt,
	}
}
