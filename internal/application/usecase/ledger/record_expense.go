// Package ledger contains balance ledger use cases.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/salon-pos/backend/internal/application/adapter"
	"github.com/salon-pos/backend/internal/domain/entity"
	domainerror "github.com/salon-pos/backend/internal/domain/error"
)

// MaxExpenseDescriptionLength is the maximum allowed length for expense descriptions.
const MaxExpenseDescriptionLength = 255

// RecordExpenseInput represents the input for recording an expense.
type RecordExpenseInput struct {
	Description string
	Amount      decimal.Decimal
	CreatedBy   uuid.UUID
	ExpenseDate time.Time
}

// RecordExpenseOutput represents the output of recording an expense.
type RecordExpenseOutput struct {
	Expense *entity.Expense
}

// RecordExpenseUseCase handles expense recording logic.
type RecordExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewRecordExpenseUseCase creates a new RecordExpenseUseCase instance.
func NewRecordExpenseUseCase(expenseRepo adapter.ExpenseRepository) *RecordExpenseUseCase {
	return &RecordExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute validates and persists one expense. Validation failures are
// rejected before any write; persistence failures are logged and surfaced as
// a coded error so callers can branch without crashing.
func (uc *RecordExpenseUseCase) Execute(ctx context.Context, input RecordExpenseInput) (*RecordExpenseOutput, error) {
	if strings.TrimSpace(input.Description) == "" {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeEmptyExpenseDescription,
			"expense description is required",
			domainerror.ErrEmptyExpenseDescription,
		)
	}

	if len(input.Description) > MaxExpenseDescriptionLength {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeEmptyExpenseDescription,
			fmt.Sprintf("description must not exceed %d characters", MaxExpenseDescriptionLength),
			domainerror.ErrEmptyExpenseDescription,
		)
	}

	if !input.Amount.IsPositive() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"expense amount must be greater than zero",
			domainerror.ErrInvalidExpenseAmount,
		)
	}

	if input.ExpenseDate.IsZero() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidExpenseDate,
			"expense date is required",
			domainerror.ErrInvalidExpenseDate,
		)
	}

	expense := entity.NewExpense(
		input.Description,
		input.Amount,
		input.CreatedBy,
		input.ExpenseDate,
	)

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		slog.Error("Failed to record expense",
			"expense_date", expense.ExpenseDate.Format("2006-01-02"),
			"created_by", expense.CreatedBy,
			"error", err,
		)
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeLedgerPersistence,
			"failed to record expense",
			err,
		)
	}

	return &RecordExpenseOutput{Expense: expense}, nil
}
