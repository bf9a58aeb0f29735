package ledger

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/salon-pos/backend/internal/application/adapter"
	"github.com/salon-pos/backend/internal/domain/entity"
)

// fakeBalanceRepo is an in-memory DailyBalanceRepository keyed by date.
type fakeBalanceRepo struct {
	rows    map[string]*entity.DailyBalance
	findErr error
	saveErr error
}

func newFakeBalanceRepo() *fakeBalanceRepo {
	return &fakeBalanceRepo{rows: make(map[string]*entity.DailyBalance)}
}

func (r *fakeBalanceRepo) FindByDate(ctx context.Context, date time.Time) (*entity.DailyBalance, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.rows[entity.NormalizeDay(date).Format(time.DateOnly)], nil
}

func (r *fakeBalanceRepo) FindLatestBefore(ctx context.Context, date time.Time) (*entity.DailyBalance, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}

	day := entity.NormalizeDay(date)
	var latest *entity.DailyBalance
	for _, row := range r.rows {
		if !row.Date.Before(day) {
			continue
		}
		if latest == nil || row.Date.After(latest.Date) {
			latest = row
		}
	}
	return latest, nil
}

func (r *fakeBalanceRepo) Upsert(ctx context.Context, balance *entity.DailyBalance) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.rows[balance.Date.Format(time.DateOnly)] = balance
	return nil
}

// fakeExpenseRepo is an in-memory ExpenseRepository.
type fakeExpenseRepo struct {
	expenses  []*entity.Expense
	createErr error
	sumErr    error

	lastSumStart time.Time
	lastSumEnd   time.Time
}

func (r *fakeExpenseRepo) Create(ctx context.Context, expense *entity.Expense) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.expenses = append(r.expenses, expense)
	return nil
}

func (r *fakeExpenseRepo) SumByRange(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	if r.sumErr != nil {
		return decimal.Zero, r.sumErr
	}
	r.lastSumStart = start
	r.lastSumEnd = end

	total := decimal.Zero
	for _, e := range r.expenses {
		if !e.ExpenseDate.Before(start) && !e.ExpenseDate.After(end) {
			total = total.Add(e.Amount)
		}
	}
	return total, nil
}

func (r *fakeExpenseRepo) FindByRange(ctx context.Context, start, end time.Time) ([]*entity.Expense, error) {
	var result []*entity.Expense
	for _, e := range r.expenses {
		if !e.ExpenseDate.Before(start) && !e.ExpenseDate.After(end) {
			result = append(result, e)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].ExpenseDate.Equal(result[j].ExpenseDate) {
			return result[i].ExpenseDate.Before(result[j].ExpenseDate)
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

// fakeSalesRepo is an in-memory SalesRepository.
type fakeSalesRepo struct {
	sales  []*entity.Sale
	sumErr error
}

func (r *fakeSalesRepo) SumCompletedSales(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	if r.sumErr != nil {
		return decimal.Zero, r.sumErr
	}

	total := decimal.Zero
	for _, s := range r.sales {
		if s.Status != entity.SaleStatusCompleted {
			continue
		}
		day := entity.NormalizeDay(s.SoldAt)
		if !day.Before(start) && !day.After(end) {
			total = total.Add(s.Amount)
		}
	}
	return total, nil
}

func (r *fakeSalesRepo) SumPayments(ctx context.Context, start, end time.Time) (adapter.PaymentTotals, error) {
	totals := adapter.PaymentTotals{AdvanceReceived: decimal.Zero, BalanceDue: decimal.Zero}
	for _, s := range r.sales {
		if s.Status == entity.SaleStatusRefunded {
			continue
		}
		day := entity.NormalizeDay(s.SoldAt)
		if !day.Before(start) && !day.After(end) {
			totals.AdvanceReceived = totals.AdvanceReceived.Add(s.AdvancePaid)
			totals.BalanceDue = totals.BalanceDue.Add(s.BalanceDue)
		}
	}
	return totals, nil
}

func (r *fakeSalesRepo) ListTransactions(ctx context.Context, start, end time.Time) ([]*entity.Sale, error) {
	var result []*entity.Sale
	for _, s := range r.sales {
		day := entity.NormalizeDay(s.SoldAt)
		if !day.Before(start) && !day.After(end) {
			result = append(result, s)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].SoldAt.Before(result[j].SoldAt)
	})
	return result, nil
}

// day builds a normalized UTC calendar date for tests.
func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// dec parses a decimal literal, panicking on malformed test data.
func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
