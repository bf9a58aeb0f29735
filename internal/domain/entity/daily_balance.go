// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DailyBalance is the ledger snapshot for one calendar day. The opening
// balance is carried forward from the previous day's closing balance and the
// closing balance is opening + income - expenses. Rows are only ever written
// by recomputation, never edited in place.
type DailyBalance struct {
	ID             uuid.UUID
	Date           time.Time // calendar day, normalized to midnight UTC
	OpeningBalance decimal.Decimal
	TotalIncome    decimal.Decimal
	TotalExpenses  decimal.Decimal
	ClosingBalance decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewDailyBalance creates a DailyBalance for the given day, deriving the
// closing balance from the other three amounts.
func NewDailyBalance(
	date time.Time,
	opening decimal.Decimal,
	income decimal.Decimal,
	expenses decimal.Decimal,
) *DailyBalance {
	now := time.Now().UTC()

	return &DailyBalance{
		ID:             uuid.New(),
		Date:           NormalizeDay(date),
		OpeningBalance: opening,
		TotalIncome:    income,
		TotalExpenses:  expenses,
		ClosingBalance: opening.Add(income).Sub(expenses),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// NormalizeDay strips the time-of-day component, keeping only the calendar
// date in UTC. All ledger keys go through this so that two timestamps on the
// same day always address the same row.
func NormalizeDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
