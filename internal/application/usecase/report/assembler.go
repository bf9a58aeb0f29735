package report

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/salon-pos/backend/internal/application/adapter"
	"github.com/salon-pos/backend/internal/domain/entity"
	domainerror "github.com/salon-pos/backend/internal/domain/error"
)

// TopCustomerLimit is the number of entries in the top-customer ranking.
const TopCustomerLimit = 5

// Assembler builds period reports from ledger data and the read-only
// transactional sources. The period summary queries must succeed; every
// analytics sub-aggregate degrades to its zero value on failure so one
// missing source never fails the whole report.
type Assembler struct {
	balanceRepo  adapter.DailyBalanceRepository
	expenseRepo  adapter.ExpenseRepository
	salesRepo    adapter.SalesRepository
	customerRepo adapter.CustomerRepository
	bookingRepo  adapter.BookingRepository
	cache        adapter.ReportCache    // optional
	insights     adapter.InsightService // optional
}

// NewAssembler creates a report assembler. cache and insights may be nil.
func NewAssembler(
	balanceRepo adapter.DailyBalanceRepository,
	expenseRepo adapter.ExpenseRepository,
	salesRepo adapter.SalesRepository,
	customerRepo adapter.CustomerRepository,
	bookingRepo adapter.BookingRepository,
	cache adapter.ReportCache,
	insights adapter.InsightService,
) *Assembler {
	return &Assembler{
		balanceRepo:  balanceRepo,
		expenseRepo:  expenseRepo,
		salesRepo:    salesRepo,
		customerRepo: customerRepo,
		bookingRepo:  bookingRepo,
		cache:        cache,
		insights:     insights,
	}
}

// Build assembles the report for the inclusive range [start, end].
func (a *Assembler) Build(ctx context.Context, start, end time.Time, grain Grain) (*BuildReportOutput, error) {
	cacheKey := fmt.Sprintf("report:%s:%s:%s", grain, start.Format("2006-01-02"), end.Format("2006-01-02"))

	if cached := a.cacheGet(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	summary, err := a.buildSummary(ctx, start, end)
	if err != nil {
		return nil, err
	}

	output := &BuildReportOutput{
		Grain:        grain,
		PeriodStart:  start,
		PeriodEnd:    end,
		FilenameHint: filenameHint(start, end, grain),
		Summary:      *summary,
		Analytics:    a.buildAnalytics(ctx, start, end),
	}

	output.Narrative = a.narrate(ctx, output)

	a.cacheSet(ctx, cacheKey, output)

	return output, nil
}

// buildSummary computes the period totals from the ledger. A failure here is
// a hard data-access failure and aborts the report.
func (a *Assembler) buildSummary(ctx context.Context, start, end time.Time) (*PeriodSummary, error) {
	opening, err := a.openingAt(ctx, start)
	if err != nil {
		return nil, a.dataAccessError("resolve opening balance", start, end, err)
	}

	income, err := a.salesRepo.SumCompletedSales(ctx, start, end)
	if err != nil {
		return nil, a.dataAccessError("sum income", start, end, err)
	}

	expenses, err := a.expenseRepo.SumByRange(ctx, start, end)
	if err != nil {
		return nil, a.dataAccessError("sum expenses", start, end, err)
	}

	net := income.Sub(expenses)

	return &PeriodSummary{
		OpeningBalance: opening,
		TotalIncome:    income,
		TotalExpenses:  expenses,
		NetBalance:     net,
		ClosingBalance: opening.Add(net),
	}, nil
}

// openingAt resolves the ledger opening value at the range start: the
// persisted opening for that day, else the latest prior closing, else zero.
func (a *Assembler) openingAt(ctx context.Context, start time.Time) (decimal.Decimal, error) {
	balance, err := a.balanceRepo.FindByDate(ctx, start)
	if err != nil {
		return decimal.Zero, err
	}
	if balance != nil {
		return balance.OpeningBalance, nil
	}

	prior, err := a.balanceRepo.FindLatestBefore(ctx, start)
	if err != nil {
		return decimal.Zero, err
	}
	if prior != nil {
		return prior.ClosingBalance, nil
	}

	return decimal.Zero, nil
}

// buildAnalytics computes the derived insights. Each sub-aggregate is
// isolated: on failure it logs a warning and contributes its zero value.
func (a *Assembler) buildAnalytics(ctx context.Context, start, end time.Time) AnalyticsReport {
	analytics := AnalyticsReport{
		TopCustomers:   []TopCustomer{},
		ServiceRevenue: []ServiceRevenue{},
	}

	sales, err := a.salesRepo.ListTransactions(ctx, start, end)
	if err != nil {
		a.degrade("list transactions", start, end, err)
		analytics.UserInsights = a.fallbackInsights(ctx, start, end)
		sales = nil
	} else {
		analytics.UserInsights = a.userInsights(ctx, start, end, sales)
	}
	analytics.TopCustomers = topCustomers(sales)
	analytics.ServiceRevenue = serviceRevenue(sales)

	if counts, err := a.bookingRepo.CountByRange(ctx, start, end); err != nil {
		a.degrade("count bookings", start, end, err)
	} else if counts.Total > 0 {
		analytics.BookingCompletionRate = float64(counts.Completed) / float64(counts.Total)
	}

	if payments, err := a.salesRepo.SumPayments(ctx, start, end); err != nil {
		a.degrade("sum payments", start, end, err)
	} else {
		analytics.PaymentMetrics = PaymentMetrics{
			AdvanceReceived: payments.AdvanceReceived,
			BalanceDue:      payments.BalanceDue,
		}
	}

	return analytics
}

// userInsights counts distinct customers transacting in range and those whose
// first ever sale falls within the range.
func (a *Assembler) userInsights(ctx context.Context, start, end time.Time, sales []*entity.Sale) UserInsights {
	if len(sales) == 0 {
		return UserInsights{}
	}

	seen := make(map[uuid.UUID]struct{})
	ids := make([]uuid.UUID, 0, len(sales))
	for _, s := range sales {
		if _, ok := seen[s.CustomerID]; ok {
			continue
		}
		seen[s.CustomerID] = struct{}{}
		ids = append(ids, s.CustomerID)
	}

	insights := UserInsights{TotalCustomers: len(ids)}

	firstDates, err := a.customerRepo.FirstSaleDates(ctx, ids)
	if err != nil {
		a.degrade("resolve first sale dates", start, end, err)
		return insights
	}

	rangeEnd := end.AddDate(0, 0, 1)
	for _, id := range ids {
		first, ok := firstDates[id]
		if !ok {
			continue
		}
		if !first.Before(start) && first.Before(rangeEnd) {
			insights.NewCustomers++
		}
	}

	return insights
}

// fallbackInsights counts distinct customers straight from the store when the
// transaction listing is unavailable. New-customer counting needs the sales
// themselves, so it stays at zero.
func (a *Assembler) fallbackInsights(ctx context.Context, start, end time.Time) UserInsights {
	ids, err := a.customerRepo.DistinctCustomers(ctx, start, end)
	if err != nil {
		a.degrade("count distinct customers", start, end, err)
		return UserInsights{}
	}
	return UserInsights{TotalCustomers: len(ids)}
}

// topCustomers ranks customers by completed spend in range, descending.
// Ties are broken by earliest sale time, then by customer id, so the
// ordering is stable across calls.
func topCustomers(sales []*entity.Sale) []TopCustomer {
	type accumulator struct {
		spent     decimal.Decimal
		count     int
		firstSale time.Time
	}

	byCustomer := make(map[uuid.UUID]*accumulator)
	for _, s := range sales {
		if s.Status != entity.SaleStatusCompleted {
			continue
		}
		acc, ok := byCustomer[s.CustomerID]
		if !ok {
			acc = &accumulator{spent: decimal.Zero, firstSale: s.SoldAt}
			byCustomer[s.CustomerID] = acc
		}
		acc.spent = acc.spent.Add(s.Amount)
		acc.count++
		if s.SoldAt.Before(acc.firstSale) {
			acc.firstSale = s.SoldAt
		}
	}

	ranking := make([]TopCustomer, 0, len(byCustomer))
	for id, acc := range byCustomer {
		ranking = append(ranking, TopCustomer{
			CustomerID:  id,
			TotalSpent:  acc.spent,
			SaleCount:   acc.count,
			FirstSaleAt: acc.firstSale,
		})
	}

	sort.Slice(ranking, func(i, j int) bool {
		if !ranking[i].TotalSpent.Equal(ranking[j].TotalSpent) {
			return ranking[i].TotalSpent.GreaterThan(ranking[j].TotalSpent)
		}
		if !ranking[i].FirstSaleAt.Equal(ranking[j].FirstSaleAt) {
			return ranking[i].FirstSaleAt.Before(ranking[j].FirstSaleAt)
		}
		return ranking[i].CustomerID.String() < ranking[j].CustomerID.String()
	})

	if len(ranking) > TopCustomerLimit {
		ranking = ranking[:TopCustomerLimit]
	}
	return ranking
}

// serviceRevenue groups completed sales by service category, descending by
// revenue; ties are broken by category name.
func serviceRevenue(sales []*entity.Sale) []ServiceRevenue {
	byCategory := make(map[string]decimal.Decimal)
	for _, s := range sales {
		if s.Status != entity.SaleStatusCompleted {
			continue
		}
		byCategory[s.ServiceCategory] = byCategory[s.ServiceCategory].Add(s.Amount)
	}

	breakdown := make([]ServiceRevenue, 0, len(byCategory))
	for category, revenue := range byCategory {
		breakdown = append(breakdown, ServiceRevenue{
			ServiceCategory: category,
			Revenue:         revenue,
		})
	}

	sort.Slice(breakdown, func(i, j int) bool {
		if !breakdown[i].Revenue.Equal(breakdown[j].Revenue) {
			return breakdown[i].Revenue.GreaterThan(breakdown[j].Revenue)
		}
		return breakdown[i].ServiceCategory < breakdown[j].ServiceCategory
	})

	return breakdown
}

// narrate asks the insight service for a short summary, when configured.
// Absence or failure leaves the narrative empty.
func (a *Assembler) narrate(ctx context.Context, output *BuildReportOutput) string {
	if a.insights == nil || !a.insights.IsAvailable() {
		return ""
	}

	topService := ""
	if len(output.Analytics.ServiceRevenue) > 0 {
		topService = output.Analytics.ServiceRevenue[0].ServiceCategory
	}

	narrative, err := a.insights.Summarize(ctx, adapter.ReportNarrativeInput{
		PeriodLabel:     PeriodLabel(output.PeriodStart, output.PeriodEnd, output.Grain),
		TotalIncome:     output.Summary.TotalIncome,
		TotalExpenses:   output.Summary.TotalExpenses,
		NetBalance:      output.Summary.NetBalance,
		TopService:      topService,
		NewCustomers:    output.Analytics.UserInsights.NewCustomers,
		CompletionRate:  output.Analytics.BookingCompletionRate,
		AdvanceReceived: output.Analytics.PaymentMetrics.AdvanceReceived,
		BalanceDue:      output.Analytics.PaymentMetrics.BalanceDue,
	})
	if err != nil {
		slog.Warn("Report narrative unavailable", "error", err)
		return ""
	}

	return narrative
}

func (a *Assembler) cacheGet(ctx context.Context, key string) *BuildReportOutput {
	if a.cache == nil {
		return nil
	}

	payload, err := a.cache.Get(ctx, key)
	if err != nil {
		slog.Warn("Report cache lookup failed", "key", key, "error", err)
		return nil
	}
	if payload == nil {
		return nil
	}

	var output BuildReportOutput
	if err := json.Unmarshal(payload, &output); err != nil {
		slog.Warn("Discarding malformed cached report", "key", key, "error", err)
		return nil
	}

	return &output
}

func (a *Assembler) cacheSet(ctx context.Context, key string, output *BuildReportOutput) {
	if a.cache == nil {
		return
	}

	payload, err := json.Marshal(output)
	if err != nil {
		slog.Warn("Failed to marshal report for cache", "key", key, "error", err)
		return
	}

	if err := a.cache.Set(ctx, key, payload); err != nil {
		slog.Warn("Report cache store failed", "key", key, "error", err)
	}
}

func (a *Assembler) degrade(operation string, start, end time.Time, err error) {
	slog.Warn("Report sub-aggregate degraded to zero value",
		"operation", operation,
		"start", start.Format("2006-01-02"),
		"end", end.Format("2006-01-02"),
		"error", err,
	)
}

func (a *Assembler) dataAccessError(operation string, start, end time.Time, err error) error {
	slog.Error("Report data access failed",
		"operation", operation,
		"start", start.Format("2006-01-02"),
		"end", end.Format("2006-01-02"),
		"error", err,
	)
	return domainerror.NewReportError(
		domainerror.ErrCodeReportDataAccess,
		"failed to "+operation,
		err,
	)
}

func filenameHint(start, end time.Time, grain Grain) string {
	switch grain {
	case GrainWeekly:
		return fmt.Sprintf("weekly_report_%s_to_%s.pdf", start.Format("2006-01-02"), end.Format("2006-01-02"))
	case GrainMonthly:
		return fmt.Sprintf("monthly_report_%s.pdf", start.Format("2006-01"))
	default:
		return fmt.Sprintf("daily_report_%s.pdf", start.Format("2006-01-02"))
	}
}
