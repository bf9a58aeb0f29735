package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense is a manually recorded cash outflow. Expenses are immutable once
// recorded; corrections are made by recording a compensating entry.
type Expense struct {
	ID          uuid.UUID
	Description string
	Amount      decimal.Decimal // always > 0
	CreatedBy   uuid.UUID
	ExpenseDate time.Time // calendar day the expense applies to
	CreatedAt   time.Time
}

// NewExpense creates a new Expense entity.
func NewExpense(
	description string,
	amount decimal.Decimal,
	createdBy uuid.UUID,
	expenseDate time.Time,
) *Expense {
	return &Expense{
		ID:          uuid.New(),
		Description: description,
		Amount:      amount,
		CreatedBy:   createdBy,
		ExpenseDate: NormalizeDay(expenseDate),
		CreatedAt:   time.Now().UTC(),
	}
}
