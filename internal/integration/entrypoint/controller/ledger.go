// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/salon-pos/backend/internal/application/usecase/ledger"
	domainerror "github.com/salon-pos/backend/internal/domain/error"
	"github.com/salon-pos/backend/internal/integration/email"
	"github.com/salon-pos/backend/internal/integration/entrypoint/dto"
	"github.com/salon-pos/backend/internal/integration/entrypoint/middleware"
)

// LedgerController handles expense and daily balance endpoints.
type LedgerController struct {
	recordExpenseUseCase      *ledger.RecordExpenseUseCase
	getExpensesUseCase        *ledger.GetExpensesUseCase
	updateDailyBalanceUseCase *ledger.UpdateDailyBalanceUseCase
	getOpeningBalanceUseCase  *ledger.GetOpeningBalanceUseCase
	getTodaysIncomeUseCase    *ledger.GetTodaysIncomeUseCase
	closingSummaryMailer      *email.ClosingSummaryMailer
}

// NewLedgerController creates a new ledger controller instance.
func NewLedgerController(
	recordExpenseUseCase *ledger.RecordExpenseUseCase,
	getExpensesUseCase *ledger.GetExpensesUseCase,
	updateDailyBalanceUseCase *ledger.UpdateDailyBalanceUseCase,
	getOpeningBalanceUseCase *ledger.GetOpeningBalanceUseCase,
	getTodaysIncomeUseCase *ledger.GetTodaysIncomeUseCase,
	closingSummaryMailer *email.ClosingSummaryMailer,
) *LedgerController {
	return &LedgerController{
		recordExpenseUseCase:      recordExpenseUseCase,
		getExpensesUseCase:        getExpensesUseCase,
		updateDailyBalanceUseCase: updateDailyBalanceUseCase,
		getOpeningBalanceUseCase:  getOpeningBalanceUseCase,
		getTodaysIncomeUseCase:    getTodaysIncomeUseCase,
		closingSummaryMailer:      closingSummaryMailer,
	}
}

// RecordExpense handles POST /expenses requests.
func (c *LedgerController) RecordExpense(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.RecordExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid amount, expected a decimal string",
			Code:  string(domainerror.ErrCodeInvalidExpenseAmount),
		})
		return
	}

	expenseDate, err := time.Parse(time.DateOnly, req.ExpenseDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense_date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidExpenseDate),
		})
		return
	}

	input := ledger.RecordExpenseInput{
		Description: req.Description,
		Amount:      amount,
		CreatedBy:   userID,
		ExpenseDate: expenseDate,
	}

	output, err := c.recordExpenseUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(output.Expense))
}

// ListExpenses handles GET /expenses requests.
func (c *LedgerController) ListExpenses(ctx *gin.Context) {
	startDateStr := ctx.Query("start_date")
	endDateStr := ctx.Query("end_date")

	if startDateStr == "" || endDateStr == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "start_date and end_date are required",
			Code:  string(domainerror.ErrCodeInvalidExpenseRange),
		})
		return
	}

	startDate, err := time.Parse(time.DateOnly, startDateStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid start_date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidExpenseDate),
		})
		return
	}

	endDate, err := time.Parse(time.DateOnly, endDateStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid end_date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidExpenseDate),
		})
		return
	}

	expenses, err := c.getExpensesUseCase.ListForRange(ctx.Request.Context(), startDate, endDate)
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(expenses))
}

// ExpenseSummary handles GET /expenses/summary requests. The period query
// parameter selects today, week or month.
func (c *LedgerController) ExpenseSummary(ctx *gin.Context) {
	period := ctx.DefaultQuery("period", "today")

	var (
		total decimal.Decimal
		err   error
	)

	switch period {
	case "today":
		total, err = c.getExpensesUseCase.TotalForDate(ctx.Request.Context(), time.Now())
	case "week":
		total, err = c.getExpensesUseCase.TotalForCurrentWeek(ctx.Request.Context())
	case "month":
		total, err = c.getExpensesUseCase.TotalForCurrentMonth(ctx.Request.Context())
	default:
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Period must be: today, week, or month",
		})
		return
	}

	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ExpenseSummaryResponse{
		Period: period,
		Total:  total.StringFixed(2),
	})
}

// CloseDay handles POST /balances/:date/close requests. It recomputes the
// balance snapshot for the date and notifies the owner by email.
func (c *LedgerController) CloseDay(ctx *gin.Context) {
	date, ok := c.parseDateParam(ctx)
	if !ok {
		return
	}

	input := ledger.UpdateDailyBalanceInput{Date: date}

	output, err := c.updateDailyBalanceUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	if c.closingSummaryMailer != nil {
		c.closingSummaryMailer.NotifyClosed(ctx.Request.Context(), output.Balance)
	}

	ctx.JSON(http.StatusOK, dto.ToDailyBalanceResponse(output.Balance))
}

// OpeningBalance handles GET /balances/:date/opening requests.
func (c *LedgerController) OpeningBalance(ctx *gin.Context) {
	date, ok := c.parseDateParam(ctx)
	if !ok {
		return
	}

	opening, err := c.getOpeningBalanceUseCase.Execute(ctx.Request.Context(), date)
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OpeningBalanceResponse{
		Date:           date.Format(time.DateOnly),
		OpeningBalance: opening.StringFixed(2),
	})
}

// TodaysIncome handles GET /income/today requests.
func (c *LedgerController) TodaysIncome(ctx *gin.Context) {
	income, err := c.getTodaysIncomeUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TodaysIncomeResponse{
		Date:   time.Now().UTC().Format(time.DateOnly),
		Income: income.StringFixed(2),
	})
}

// parseDateParam parses the :date path parameter, writing the error response
// on failure.
func (c *LedgerController) parseDateParam(ctx *gin.Context) (time.Time, bool) {
	date, err := time.Parse(time.DateOnly, ctx.Param("date"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidLedgerDate),
		})
		return time.Time{}, false
	}
	return date, true
}

// handleLedgerError maps ledger errors to HTTP responses.
func (c *LedgerController) handleLedgerError(ctx *gin.Context, err error) {
	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		ctx.JSON(c.statusCodeForLedgerError(ledgerErr.Code), dto.ErrorResponse{
			Error: ledgerErr.Message,
			Code:  string(ledgerErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForLedgerError maps ledger error codes to HTTP status codes.
func (c *LedgerController) statusCodeForLedgerError(code domainerror.LedgerErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidExpenseAmount,
		domainerror.ErrCodeEmptyExpenseDescription,
		domainerror.ErrCodeInvalidExpenseDate,
		domainerror.ErrCodeInvalidLedgerDate,
		domainerror.ErrCodeInvalidExpenseRange:
		return http.StatusBadRequest
	case domainerror.ErrCodeLedgerPersistence:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
