package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/salon-pos/backend/internal/application/adapter"
	"github.com/salon-pos/backend/internal/domain/entity"
	"github.com/salon-pos/backend/internal/integration/persistence/model"
)

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// Create inserts a new expense record.
func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	m := model.ExpenseFromEntity(expense)

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}

	return nil
}

// SumByRange returns the total expense amount between start and end inclusive.
func (r *expenseRepository) SumByRange(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal `gorm:"column:total"`
	}

	err := r.db.WithContext(ctx).
		Table("expenses").
		Select("COALESCE(SUM(amount), 0) as total").
		Where("expense_date >= ? AND expense_date <= ?", entity.NormalizeDay(start), entity.NormalizeDay(end)).
		Scan(&result).Error
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum expenses: %w", err)
	}

	return result.Total, nil
}

// FindByRange returns expenses between start and end inclusive, ordered by
// expense date then creation time.
func (r *expenseRepository) FindByRange(ctx context.Context, start, end time.Time) ([]*entity.Expense, error) {
	var models []model.ExpenseModel

	err := r.db.WithContext(ctx).
		Where("expense_date >= ? AND expense_date <= ?", entity.NormalizeDay(start), entity.NormalizeDay(end)).
		Order("expense_date, created_at").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find expenses by range: %w", err)
	}

	expenses := make([]*entity.Expense, len(models))
	for i := range models {
		expenses[i] = models[i].ToEntity()
	}

	return expenses, nil
}
