package adapter

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/salon-pos/backend/internal/domain/entity"
)

// ExpenseRepository defines the interface for expense persistence.
// Expenses are insert-only; there is no update or delete.
type ExpenseRepository interface {
	// Create inserts a new expense record.
	Create(ctx context.Context, expense *entity.Expense) error

	// SumByRange returns the total expense amount with expense_date between
	// start and end inclusive. Returns zero when there are none.
	SumByRange(ctx context.Context, start, end time.Time) (decimal.Decimal, error)

	// FindByRange returns expenses with expense_date between start and end
	// inclusive, ordered by expense_date then created_at.
	FindByRange(ctx context.Context, start, end time.Time) ([]*entity.Expense, error)
}
