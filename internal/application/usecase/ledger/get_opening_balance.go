package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/salon-pos/backend/internal/application/adapter"
	"github.com/salon-pos/backend/internal/domain/entity"
)

// GetOpeningBalanceUseCase resolves the opening balance for a calendar day.
type GetOpeningBalanceUseCase struct {
	balanceRepo adapter.DailyBalanceRepository
}

// NewGetOpeningBalanceUseCase creates a new GetOpeningBalanceUseCase instance.
func NewGetOpeningBalanceUseCase(balanceRepo adapter.DailyBalanceRepository) *GetOpeningBalanceUseCase {
	return &GetOpeningBalanceUseCase{
		balanceRepo: balanceRepo,
	}
}

// Execute returns the persisted opening balance for the date when a snapshot
// exists; otherwise the latest prior closing balance (the value an update for
// that date would carry forward); zero when there is no history at all.
func (uc *GetOpeningBalanceUseCase) Execute(ctx context.Context, date time.Time) (decimal.Decimal, error) {
	day := entity.NormalizeDay(date)

	balance, err := uc.balanceRepo.FindByDate(ctx, day)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to look up daily balance: %w", err)
	}
	if balance != nil {
		return balance.OpeningBalance, nil
	}

	prior, err := uc.balanceRepo.FindLatestBefore(ctx, day)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to look up prior balance: %w", err)
	}
	if prior != nil {
		return prior.ClosingBalance, nil
	}

	return decimal.Zero, nil
}
