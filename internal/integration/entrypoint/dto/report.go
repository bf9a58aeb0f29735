package dto

import (
	"time"

	"github.com/salon-pos/backend/internal/application/usecase/report"
)

// ReportResponse represents the combined period report payload.
type ReportResponse struct {
	Grain        string                 `json:"grain"`
	PeriodStart  string                 `json:"period_start"`
	PeriodEnd    string                 `json:"period_end"`
	FilenameHint string                 `json:"filename_hint"`
	Summary      ReportSummaryResponse  `json:"summary"`
	Analytics    ReportAnalyticsPayload `json:"analytics"`
	Narrative    string                 `json:"narrative,omitempty"`
}

// ReportSummaryResponse represents the ledger totals of a period.
type ReportSummaryResponse struct {
	OpeningBalance string `json:"opening_balance"`
	TotalIncome    string `json:"total_income"`
	TotalExpenses  string `json:"total_expenses"`
	NetBalance     string `json:"net_balance"`
	ClosingBalance string `json:"closing_balance"`
}

// ReportAnalyticsPayload represents the derived insights of a period.
type ReportAnalyticsPayload struct {
	UserInsights          UserInsightsResponse     `json:"user_insights"`
	TopCustomers          []TopCustomerResponse    `json:"top_customers"`
	ServiceRevenue        []ServiceRevenueResponse `json:"service_revenue"`
	PaymentMetrics        PaymentMetricsResponse   `json:"payment_metrics"`
	BookingCompletionRate float64                  `json:"booking_completion_rate"`
}

// UserInsightsResponse represents customer acquisition counts.
type UserInsightsResponse struct {
	NewCustomers   int `json:"new_customers"`
	TotalCustomers int `json:"total_customers"`
}

// TopCustomerResponse represents one entry of the top customer ranking.
type TopCustomerResponse struct {
	CustomerID  string    `json:"customer_id"`
	TotalSpent  string    `json:"total_spent"`
	SaleCount   int       `json:"sale_count"`
	FirstSaleAt time.Time `json:"first_sale_at"`
}

// ServiceRevenueResponse represents revenue for one service category.
type ServiceRevenueResponse struct {
	ServiceCategory string `json:"service_category"`
	Revenue         string `json:"revenue"`
}

// PaymentMetricsResponse represents advance/balance-due totals.
type PaymentMetricsResponse struct {
	AdvanceReceived string `json:"advance_received"`
	BalanceDue      string `json:"balance_due"`
}

// ToReportResponse converts a report build output to its response DTO.
func ToReportResponse(output *report.BuildReportOutput) ReportResponse {
	topCustomers := make([]TopCustomerResponse, len(output.Analytics.TopCustomers))
	for i, tc := range output.Analytics.TopCustomers {
		topCustomers[i] = TopCustomerResponse{
			CustomerID:  tc.CustomerID.String(),
			TotalSpent:  tc.TotalSpent.StringFixed(2),
			SaleCount:   tc.SaleCount,
			FirstSaleAt: tc.FirstSaleAt,
		}
	}

	serviceRevenue := make([]ServiceRevenueResponse, len(output.Analytics.ServiceRevenue))
	for i, sr := range output.Analytics.ServiceRevenue {
		serviceRevenue[i] = ServiceRevenueResponse{
			ServiceCategory: sr.ServiceCategory,
			Revenue:         sr.Revenue.StringFixed(2),
		}
	}

	return ReportResponse{
		Grain:        string(output.Grain),
		PeriodStart:  output.PeriodStart.Format(time.DateOnly),
		PeriodEnd:    output.PeriodEnd.Format(time.DateOnly),
		FilenameHint: output.FilenameHint,
		Summary: ReportSummaryResponse{
			OpeningBalance: output.Summary.OpeningBalance.StringFixed(2),
			TotalIncome:    output.Summary.TotalIncome.StringFixed(2),
			TotalExpenses:  output.Summary.TotalExpenses.StringFixed(2),
			NetBalance:     output.Summary.NetBalance.StringFixed(2),
			ClosingBalance: output.Summary.ClosingBalance.StringFixed(2),
		},
		Analytics: ReportAnalyticsPayload{
			UserInsights: UserInsightsResponse{
				NewCustomers:   output.Analytics.UserInsights.NewCustomers,
				TotalCustomers: output.Analytics.UserInsights.TotalCustomers,
			},
			TopCustomers:   topCustomers,
			ServiceRevenue: serviceRevenue,
			PaymentMetrics: PaymentMetricsResponse{
				AdvanceReceived: output.Analytics.PaymentMetrics.AdvanceReceived.StringFixed(2),
				BalanceDue:      output.Analytics.PaymentMetrics.BalanceDue.StringFixed(2),
			},
			BookingCompletionRate: output.Analytics.BookingCompletionRate,
		},
		Narrative: output.Narrative,
	}
}
