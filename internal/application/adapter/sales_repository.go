package adapter

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/salon-pos/backend/internal/domain/entity"
)

// PaymentTotals aggregates payment amounts over a period.
type PaymentTotals struct {
	AdvanceReceived decimal.Decimal
	BalanceDue      decimal.Decimal
}

// SalesRepository defines the read-only interface over the sales source.
// The ledger and analytics engines never write sales.
type SalesRepository interface {
	// SumCompletedSales returns the total amount of completed sales with
	// sold_at between start and end inclusive.
	SumCompletedSales(ctx context.Context, start, end time.Time) (decimal.Decimal, error)

	// SumPayments returns advance/balance-due totals over the range.
	SumPayments(ctx context.Context, start, end time.Time) (PaymentTotals, error)

	// ListTransactions returns all sales in the range, ordered by sold_at.
	ListTransactions(ctx context.Context, start, end time.Time) ([]*entity.Sale, error)
}
