package dto

import (
	"time"

	"github.com/salon-pos/backend/internal/domain/entity"
)

// RecordExpenseRequest represents the request body for recording an expense.
// Amount is a decimal string so that values are never rounded through floats.
type RecordExpenseRequest struct {
	Description string `json:"description" binding:"required,max=255"`
	Amount      string `json:"amount" binding:"required"`
	ExpenseDate string `json:"expense_date" binding:"required"`
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	CreatedBy   string    `json:"created_by"`
	ExpenseDate string    `json:"expense_date"`
	CreatedAt   time.Time `json:"created_at"`
}

// ExpenseListResponse represents the response for expense range queries.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Count    int               `json:"count"`
}

// ExpenseSummaryResponse represents an aggregated expense total.
type ExpenseSummaryResponse struct {
	Period string `json:"period"`
	Total  string `json:"total"`
}

// DailyBalanceResponse represents a closed daily balance snapshot.
type DailyBalanceResponse struct {
	Date           string `json:"date"`
	OpeningBalance string `json:"opening_balance"`
	TotalIncome    string `json:"total_income"`
	TotalExpenses  string `json:"total_expenses"`
	ClosingBalance string `json:"closing_balance"`
}

// OpeningBalanceResponse represents the opening balance for a date.
type OpeningBalanceResponse struct {
	Date           string `json:"date"`
	OpeningBalance string `json:"opening_balance"`
}

// TodaysIncomeResponse represents the completed sales total for today.
type TodaysIncomeResponse struct {
	Date   string `json:"date"`
	Income string `json:"income"`
}

// ToExpenseResponse converts an expense entity to its response DTO.
func ToExpenseResponse(expense *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          expense.ID.String(),
		Description: expense.Description,
		Amount:      expense.Amount.StringFixed(2),
		CreatedBy:   expense.CreatedBy.String(),
		ExpenseDate: expense.ExpenseDate.Format(time.DateOnly),
		CreatedAt:   expense.CreatedAt,
	}
}

// ToExpenseListResponse converts a slice of expense entities to the list DTO.
func ToExpenseListResponse(expenses []*entity.Expense) ExpenseListResponse {
	items := make([]ExpenseResponse, len(expenses))
	for i, expense := range expenses {
		items[i] = ToExpenseResponse(expense)
	}
	return ExpenseListResponse{
		Expenses: items,
		Count:    len(items),
	}
}

// ToDailyBalanceResponse converts a daily balance entity to its response DTO.
func ToDailyBalanceResponse(balance *entity.DailyBalance) DailyBalanceResponse {
	return DailyBalanceResponse{
		Date:           balance.Date.Format(time.DateOnly),
		OpeningBalance: balance.OpeningBalance.StringFixed(2),
		TotalIncome:    balance.TotalIncome.StringFixed(2),
		TotalExpenses:  balance.TotalExpenses.StringFixed(2),
		ClosingBalance: balance.ClosingBalance.StringFixed(2),
	}
}
