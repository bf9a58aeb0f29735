package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/salon-pos/backend/internal/application/adapter"
	"github.com/salon-pos/backend/internal/domain/entity"
	domainerror "github.com/salon-pos/backend/internal/domain/error"
)

// GetExpensesUseCase handles expense queries: per-date totals, audit range
// listings and the current week/month convenience totals.
type GetExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
	now         func() time.Time
}

// NewGetExpensesUseCase creates a new GetExpensesUseCase instance.
func NewGetExpensesUseCase(expenseRepo adapter.ExpenseRepository) *GetExpensesUseCase {
	return &GetExpensesUseCase{
		expenseRepo: expenseRepo,
		now:         time.Now,
	}
}

// TotalForDate returns the sum of expense amounts for one calendar day.
// Duplicate expenses count independently; zero when there are none.
func (uc *GetExpensesUseCase) TotalForDate(ctx context.Context, date time.Time) (decimal.Decimal, error) {
	day := entity.NormalizeDay(date)

	total, err := uc.expenseRepo.SumByRange(ctx, day, day)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum expenses for date: %w", err)
	}

	return total, nil
}

// ListForRange returns expenses between start and end inclusive, ordered by
// expense date then creation time.
func (uc *GetExpensesUseCase) ListForRange(ctx context.Context, start, end time.Time) ([]*entity.Expense, error) {
	startDay := entity.NormalizeDay(start)
	endDay := entity.NormalizeDay(end)

	if endDay.Before(startDay) {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidExpenseRange,
			"end date must not be before start date",
			domainerror.ErrInvalidExpenseRange,
		)
	}

	expenses, err := uc.expenseRepo.FindByRange(ctx, startDay, endDay)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses for range: %w", err)
	}

	return expenses, nil
}

// TotalForCurrentWeek returns the expense total for the current ISO week,
// Monday through Sunday.
func (uc *GetExpensesUseCase) TotalForCurrentWeek(ctx context.Context) (decimal.Decimal, error) {
	start, end := currentWeekBounds(uc.now())

	total, err := uc.expenseRepo.SumByRange(ctx, start, end)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum expenses for week: %w", err)
	}

	return total, nil
}

// TotalForCurrentMonth returns the expense total for the current calendar month.
func (uc *GetExpensesUseCase) TotalForCurrentMonth(ctx context.Context) (decimal.Decimal, error) {
	start, end := currentMonthBounds(uc.now())

	total, err := uc.expenseRepo.SumByRange(ctx, start, end)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum expenses for month: %w", err)
	}

	return total, nil
}

// currentWeekBounds returns the Monday and Sunday of the week containing now.
func currentWeekBounds(now time.Time) (time.Time, time.Time) {
	day := entity.NormalizeDay(now)

	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday is 7
	}
	start := day.AddDate(0, 0, -(weekday - 1))
	return start, start.AddDate(0, 0, 6)
}

// currentMonthBounds returns the first and last day of the month containing now.
func currentMonthBounds(now time.Time) (time.Time, time.Time) {
	day := entity.NormalizeDay(now)

	start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, -1)
}
