package ledger

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/salon-pos/backend/internal/application/adapter"
	"github.com/salon-pos/backend/internal/domain/entity"
	domainerror "github.com/salon-pos/backend/internal/domain/error"
)

// UpdateDailyBalanceInput represents the input for a daily balance recompute.
type UpdateDailyBalanceInput struct {
	Date time.Time
}

// UpdateDailyBalanceOutput represents the output of a daily balance recompute.
type UpdateDailyBalanceOutput struct {
	Balance *entity.DailyBalance
}

// UpdateDailyBalanceUseCase recomputes and upserts the balance snapshot for
// one calendar day. The opening balance carries forward from the most recent
// prior snapshot (zero when none exists). Invocations for the same date are
// serialized through a per-date mutex because the read-modify-write is not
// atomic across the store calls; different dates proceed concurrently.
type UpdateDailyBalanceUseCase struct {
	balanceRepo adapter.DailyBalanceRepository
	expenseRepo adapter.ExpenseRepository
	salesRepo   adapter.SalesRepository

	mu        sync.Mutex
	dateLocks map[string]*sync.Mutex
}

// NewUpdateDailyBalanceUseCase creates a new UpdateDailyBalanceUseCase instance.
func NewUpdateDailyBalanceUseCase(
	balanceRepo adapter.DailyBalanceRepository,
	expenseRepo adapter.ExpenseRepository,
	salesRepo adapter.SalesRepository,
) *UpdateDailyBalanceUseCase {
	return &UpdateDailyBalanceUseCase{
		balanceRepo: balanceRepo,
		expenseRepo: expenseRepo,
		salesRepo:   salesRepo,
		dateLocks:   make(map[string]*sync.Mutex),
	}
}

// Execute recomputes the daily balance for the input date. Safe to call
// repeatedly for the same date: with unchanged underlying transactions it
// reproduces identical values. When bootstrapping history it must be called
// in non-decreasing date order, since each day's opening depends on the
// previous day's closing.
func (uc *UpdateDailyBalanceUseCase) Execute(ctx context.Context, input UpdateDailyBalanceInput) (*UpdateDailyBalanceOutput, error) {
	if input.Date.IsZero() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidLedgerDate,
			"balance date is required",
			domainerror.ErrInvalidLedgerDate,
		)
	}

	day := entity.NormalizeDay(input.Date)

	lock := uc.lockFor(day)
	lock.Lock()
	defer lock.Unlock()

	prior, err := uc.balanceRepo.FindLatestBefore(ctx, day)
	if err != nil {
		return nil, uc.persistenceError("look up prior balance", day, err)
	}

	opening := decimal.Zero
	switch {
	case prior == nil:
		slog.Warn("No prior daily balance, opening defaults to zero",
			"operation", "update_daily_balance",
			"date", day.Format("2006-01-02"),
		)
	case !prior.Date.Equal(day.AddDate(0, 0, -1)):
		opening = prior.ClosingBalance
		slog.Warn("Gap before balance date, carrying forward latest prior closing",
			"operation", "update_daily_balance",
			"date", day.Format("2006-01-02"),
			"prior_date", prior.Date.Format("2006-01-02"),
		)
	default:
		opening = prior.ClosingBalance
	}

	income, err := uc.salesRepo.SumCompletedSales(ctx, day, day)
	if err != nil {
		return nil, uc.persistenceError("sum completed sales", day, err)
	}

	expenses, err := uc.expenseRepo.SumByRange(ctx, day, day)
	if err != nil {
		return nil, uc.persistenceError("sum expenses", day, err)
	}

	balance := entity.NewDailyBalance(day, opening, income, expenses)

	if err := uc.balanceRepo.Upsert(ctx, balance); err != nil {
		return nil, uc.persistenceError("upsert daily balance", day, err)
	}

	return &UpdateDailyBalanceOutput{Balance: balance}, nil
}

// lockFor returns the mutex guarding updates for one calendar day,
// creating it on first use.
func (uc *UpdateDailyBalanceUseCase) lockFor(day time.Time) *sync.Mutex {
	key := day.Format("2006-01-02")

	uc.mu.Lock()
	defer uc.mu.Unlock()

	lock, ok := uc.dateLocks[key]
	if !ok {
		lock = &sync.Mutex{}
		uc.dateLocks[key] = lock
	}
	return lock
}

func (uc *UpdateDailyBalanceUseCase) persistenceError(operation string, day time.Time, err error) error {
	slog.Error("Daily balance update failed",
		"operation", operation,
		"date", day.Format("2006-01-02"),
		"error", err,
	)
	return domainerror.NewLedgerError(
		domainerror.ErrCodeLedgerPersistence,
		"failed to "+operation,
		err,
	)
}
