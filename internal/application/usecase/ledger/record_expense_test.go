package ledger

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/salon-pos/backend/internal/domain/error"
)

func TestRecordExpenseUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	validInput := func() RecordExpenseInput {
		return RecordExpenseInput{
			Description: "hair color stock",
			Amount:      dec("450.50"),
			CreatedBy:   userID,
			ExpenseDate: day(2025, time.April, 10),
		}
	}

	t.Run("records a valid expense", func(t *testing.T) {
		repo := &fakeExpenseRepo{}
		uc := NewRecordExpenseUseCase(repo)

		output, err := uc.Execute(ctx, validInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(repo.expenses) != 1 {
			t.Fatalf("expected 1 stored expense, got %d", len(repo.expenses))
		}
		if !output.Expense.Amount.Equal(dec("450.50")) {
			t.Errorf("expected amount 450.50, got %s", output.Expense.Amount)
		}
		if !output.Expense.ExpenseDate.Equal(day(2025, time.April, 10)) {
			t.Errorf("expected normalized date, got %s", output.Expense.ExpenseDate)
		}
		if output.Expense.CreatedBy != userID {
			t.Errorf("expected creator %s, got %s", userID, output.Expense.CreatedBy)
		}
	})

	t.Run("rejects empty description", func(t *testing.T) {
		uc := NewRecordExpenseUseCase(&fakeExpenseRepo{})

		input := validInput()
		input.Description = "   "

		_, err := uc.Execute(ctx, input)
		assertLedgerCode(t, err, domainerror.ErrCodeEmptyExpenseDescription)
	})

	t.Run("rejects oversized description", func(t *testing.T) {
		uc := NewRecordExpenseUseCase(&fakeExpenseRepo{})

		input := validInput()
		input.Description = strings.Repeat("x", MaxExpenseDescriptionLength+1)

		_, err := uc.Execute(ctx, input)
		assertLedgerCode(t, err, domainerror.ErrCodeEmptyExpenseDescription)
	})

	t.Run("rejects zero amount", func(t *testing.T) {
		uc := NewRecordExpenseUseCase(&fakeExpenseRepo{})

		input := validInput()
		input.Amount = decimal.Zero

		_, err := uc.Execute(ctx, input)
		assertLedgerCode(t, err, domainerror.ErrCodeInvalidExpenseAmount)
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		uc := NewRecordExpenseUseCase(&fakeExpenseRepo{})

		input := validInput()
		input.Amount = dec("-5")

		_, err := uc.Execute(ctx, input)
		assertLedgerCode(t, err, domainerror.ErrCodeInvalidExpenseAmount)
	})

	t.Run("rejects zero date", func(t *testing.T) {
		uc := NewRecordExpenseUseCase(&fakeExpenseRepo{})

		input := validInput()
		input.ExpenseDate = time.Time{}

		_, err := uc.Execute(ctx, input)
		assertLedgerCode(t, err, domainerror.ErrCodeInvalidExpenseDate)
	})

	t.Run("wraps store failures as persistence error", func(t *testing.T) {
		repo := &fakeExpenseRepo{createErr: errors.New("disk full")}
		uc := NewRecordExpenseUseCase(repo)

		_, err := uc.Execute(ctx, validInput())
		assertLedgerCode(t, err, domainerror.ErrCodeLedgerPersistence)
	})
}

func assertLedgerCode(t *testing.T, err error, want domainerror.LedgerErrorCode) {
	t.Helper()

	if err == nil {
		t.Fatal("expected an error")
	}

	var ledgerErr *domainerror.LedgerError
	if !errors.As(err, &ledgerErr) {
		t.Fatalf("expected a LedgerError, got %T: %v", err, err)
	}
	if ledgerErr.Code != want {
		t.Errorf("expected code %s, got %s", want, ledgerErr.Code)
	}
}
