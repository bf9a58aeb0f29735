package report

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/salon-pos/backend/internal/application/adapter"
	"github.com/salon-pos/backend/internal/domain/entity"
)

type fakeBalanceRepo struct {
	rows    map[string]*entity.DailyBalance
	findErr error
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
	r.rows[balance.Date.Format(time.DateOnly)] = balance
	return nil
}

type fakeExpenseRepo struct {
	total  decimal.Decimal
	sumErr error
}

func (r *fakeExpenseRepo) Create(ctx context.Context, expense *entity.Expense) error {
	return nil
}

func (r *fakeExpenseRepo) SumByRange(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	if r.sumErr != nil {
		return decimal.Zero, r.sumErr
	}
	return r.total, nil
}

func (r *fakeExpenseRepo) FindByRange(ctx context.Context, start, end time.Time) ([]*entity.Expense, error) {
	return nil, nil
}

type fakeSalesRepo struct {
	sales       []*entity.Sale
	sumErr      error
	listErr     error
	paymentsErr error
}

func (r *fakeSalesRepo) SumCompletedSales(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	if r.sumErr != nil {
		return decimal.Zero, r.sumErr
	}
	total := decimal.Zero
	for _, s := range r.inRange(start, end) {
		if s.Status == entity.SaleStatusCompleted {
			total = total.Add(s.Amount)
		}
	}
	return total, nil
}

func (r *fakeSalesRepo) SumPayments(ctx context.Context, start, end time.Time) (adapter.PaymentTotals, error) {
	if r.paymentsErr != nil {
		return adapter.PaymentTotals{}, r.paymentsErr
	}
	totals := adapter.PaymentTotals{AdvanceReceived: decimal.Zero, BalanceDue: decimal.Zero}
	for _, s := range r.inRange(start, end) {
		if s.Status == entity.SaleStatusRefunded {
			continue
		}
		totals.AdvanceReceived = totals.AdvanceReceived.Add(s.AdvancePaid)
		totals.BalanceDue = totals.BalanceDue.Add(s.BalanceDue)
	}
	return totals, nil
}

func (r *fakeSalesRepo) ListTransactions(ctx context.Context, start, end time.Time) ([]*entity.Sale, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	result := r.inRange(start, end)
	sort.Slice(result, func(i, j int) bool {
		return result[i].SoldAt.Before(result[j].SoldAt)
	})
	return result, nil
}

func (r *fakeSalesRepo) inRange(start, end time.Time) []*entity.Sale {
	var result []*entity.Sale
	for _, s := range r.sales {
		day := entity.NormalizeDay(s.SoldAt)
		if !day.Before(start) && !day.After(end) {
			result = append(result, s)
		}
	}
	return result
}

type fakeCustomerRepo struct {
	firstSales map[uuid.UUID]time.Time
	err        error
}

func (r *fakeCustomerRepo) DistinctCustomers(ctx context.Context, start, end time.Time) ([]uuid.UUID, error) {
	if r.err != nil {
		return nil, r.err
	}
	ids := make([]uuid.UUID, 0, len(r.firstSales))
	for id := range r.firstSales {
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *fakeCustomerRepo) FirstSaleDates(ctx context.Context, customerIDs []uuid.UUID) (map[uuid.UUID]time.Time, error) {
	if r.err != nil {
		return nil, r.err
	}
	dates := make(map[uuid.UUID]time.Time)
	for _, id := range customerIDs {
		if first, ok := r.firstSales[id]; ok {
			dates[id] = first
		}
	}
	return dates, nil
}

type fakeBookingRepo struct {
	counts adapter.BookingCounts
	err    error
}

func (r *fakeBookingRepo) CountByRange(ctx context.Context, start, end time.Time) (adapter.BookingCounts, error) {
	if r.err != nil {
		return adapter.BookingCounts{}, r.err
	}
	return r.counts, nil
}

type fakeCache struct {
	entries map[string][]byte
	getErr  error
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (c *fakeCache) Get(ctx context.Context, key string) ([]byte, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.entries[key], nil
}

func (c *fakeCache) Set(ctx context.Context, key string, payload []byte) error {
	c.entries[key] = payload
	return nil
}

type fakeInsights struct {
	narrative string
	err       error
}

func (s *fakeInsights) IsAvailable() bool {
	return true
}

func (s *fakeInsights) Summarize(ctx context.Context, input adapter.ReportNarrativeInput) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.narrative, nil
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
