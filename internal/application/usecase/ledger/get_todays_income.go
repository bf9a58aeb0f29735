package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/salon-pos/backend/internal/application/adapter"
	"github.com/salon-pos/backend/internal/domain/entity"
)

// GetTodaysIncomeUseCase sums completed sales for the current date.
type GetTodaysIncomeUseCase struct {
	salesRepo adapter.SalesRepository
	now       func() time.Time
}

// NewGetTodaysIncomeUseCase creates a new GetTodaysIncomeUseCase instance.
func NewGetTodaysIncomeUseCase(salesRepo adapter.SalesRepository) *GetTodaysIncomeUseCase {
	return &GetTodaysIncomeUseCase{
		salesRepo: salesRepo,
		now:       time.Now,
	}
}

// Execute returns the completed sales total for today.
func (uc *GetTodaysIncomeUseCase) Execute(ctx context.Context) (decimal.Decimal, error) {
	today := entity.NormalizeDay(uc.now())

	income, err := uc.salesRepo.SumCompletedSales(ctx, today, today)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum today's sales: %w", err)
	}

	return income, nil
}
