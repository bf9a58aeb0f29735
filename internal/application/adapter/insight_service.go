package adapter

import (
	"context"

	"github.com/shopspring/decimal"
)

// ReportNarrativeInput holds the figures the narrative is generated from.
type ReportNarrativeInput struct {
	PeriodLabel     string
	TotalIncome     decimal.Decimal
	TotalExpenses   decimal.Decimal
	NetBalance      decimal.Decimal
	TopService      string
	NewCustomers    int
	CompletionRate  float64
	AdvanceReceived decimal.Decimal
	BalanceDue      decimal.Decimal
}

// InsightService defines the interface for generating a short natural-language
// summary of a period report.
type InsightService interface {
	// IsAvailable reports whether the service is configured.
	IsAvailable() bool

	// Summarize produces a short narrative for the given figures.
	Summarize(ctx context.Context, input ReportNarrativeInput) (string, error)
}
