package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PeriodSummary holds the ledger totals for a period. The closing balance
// follows the ledger recurrence: closing = opening + net.
type PeriodSummary struct {
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	TotalIncome    decimal.Decimal `json:"total_income"`
	TotalExpenses  decimal.Decimal `json:"total_expenses"`
	NetBalance     decimal.Decimal `json:"net_balance"`
	ClosingBalance decimal.Decimal `json:"closing_balance"`
}

// UserInsights holds customer acquisition counts for a period.
type UserInsights struct {
	NewCustomers   int `json:"new_customers"`
	TotalCustomers int `json:"total_customers"`
}

// TopCustomer is one entry of the highest-spend customer ranking.
type TopCustomer struct {
	CustomerID  uuid.UUID       `json:"customer_id"`
	TotalSpent  decimal.Decimal `json:"total_spent"`
	SaleCount   int             `json:"sale_count"`
	FirstSaleAt time.Time       `json:"first_sale_at"`
}

// ServiceRevenue is revenue attributed to one service category.
type ServiceRevenue struct {
	ServiceCategory string          `json:"service_category"`
	Revenue         decimal.Decimal `json:"revenue"`
}

// PaymentMetrics holds advance/balance-due totals for a period.
type PaymentMetrics struct {
	AdvanceReceived decimal.Decimal `json:"advance_received"`
	BalanceDue      decimal.Decimal `json:"balance_due"`
}

// AnalyticsReport aggregates the derived insights for a period. Fields are
// always present; a sub-aggregate that could not be computed carries its
// zero value rather than being omitted.
type AnalyticsReport struct {
	UserInsights          UserInsights     `json:"user_insights"`
	TopCustomers          []TopCustomer    `json:"top_customers"`
	ServiceRevenue        []ServiceRevenue `json:"service_revenue"`
	PaymentMetrics        PaymentMetrics   `json:"payment_metrics"`
	BookingCompletionRate float64          `json:"booking_completion_rate"`
}

// BuildReportOutput is the combined report payload handed to renderers.
type BuildReportOutput struct {
	Grain        Grain           `json:"grain"`
	PeriodStart  time.Time       `json:"period_start"`
	PeriodEnd    time.Time       `json:"period_end"`
	FilenameHint string          `json:"filename_hint"`
	Summary      PeriodSummary   `json:"summary"`
	Analytics    AnalyticsReport `json:"analytics"`
	Narrative    string          `json:"narrative,omitempty"`
}
