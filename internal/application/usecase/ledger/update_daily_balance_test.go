package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/salon-pos/backend/internal/domain/entity"
	domainerror "github.com/salon-pos/backend/internal/domain/error"
)

func completedSale(amount string, soldAt time.Time) *entity.Sale {
	return &entity.Sale{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		Amount:     dec(amount),
		Status:     entity.SaleStatusCompleted,
		SoldAt:     soldAt,
	}
}

func expenseOn(amount string, date time.Time) *entity.Expense {
	return entity.NewExpense("supplies", dec(amount), uuid.New(), date)
}

func TestUpdateDailyBalanceUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("first day opens at zero and derives closing", func(t *testing.T) {
		balanceRepo := newFakeBalanceRepo()
		expenseRepo := &fakeExpenseRepo{expenses: []*entity.Expense{
			expenseOn("2000", day(2025, time.March, 1)),
		}}
		salesRepo := &fakeSalesRepo{sales: []*entity.Sale{
			completedSale("10000", day(2025, time.March, 1)),
		}}

		uc := NewUpdateDailyBalanceUseCase(balanceRepo, expenseRepo, salesRepo)

		output, err := uc.Execute(ctx, UpdateDailyBalanceInput{Date: day(2025, time.March, 1)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		b := output.Balance
		if !b.OpeningBalance.IsZero() {
			t.Errorf("expected opening 0, got %s", b.OpeningBalance)
		}
		if !b.TotalIncome.Equal(dec("10000")) {
			t.Errorf("expected income 10000, got %s", b.TotalIncome)
		}
		if !b.TotalExpenses.Equal(dec("2000")) {
			t.Errorf("expected expenses 2000, got %s", b.TotalExpenses)
		}
		if !b.ClosingBalance.Equal(dec("8000")) {
			t.Errorf("expected closing 8000, got %s", b.ClosingBalance)
		}
	})

	t.Run("second day carries forward previous closing", func(t *testing.T) {
		balanceRepo := newFakeBalanceRepo()
		expenseRepo := &fakeExpenseRepo{expenses: []*entity.Expense{
			expenseOn("2000", day(2025, time.March, 1)),
			expenseOn("1000", day(2025, time.March, 2)),
		}}
		salesRepo := &fakeSalesRepo{sales: []*entity.Sale{
			completedSale("10000", day(2025, time.March, 1)),
			completedSale("5000", day(2025, time.March, 2)),
		}}

		uc := NewUpdateDailyBalanceUseCase(balanceRepo, expenseRepo, salesRepo)

		if _, err := uc.Execute(ctx, UpdateDailyBalanceInput{Date: day(2025, time.March, 1)}); err != nil {
			t.Fatalf("unexpected error on day 1: %v", err)
		}

		output, err := uc.Execute(ctx, UpdateDailyBalanceInput{Date: day(2025, time.March, 2)})
		if err != nil {
			t.Fatalf("unexpected error on day 2: %v", err)
		}

		b := output.Balance
		if !b.OpeningBalance.Equal(dec("8000")) {
			t.Errorf("expected opening 8000, got %s", b.OpeningBalance)
		}
		if !b.ClosingBalance.Equal(dec("12000")) {
			t.Errorf("expected closing 12000, got %s", b.ClosingBalance)
		}
	})

	t.Run("recompute is idempotent", func(t *testing.T) {
		balanceRepo := newFakeBalanceRepo()
		expenseRepo := &fakeExpenseRepo{expenses: []*entity.Expense{
			expenseOn("300", day(2025, time.March, 5)),
		}}
		salesRepo := &fakeSalesRepo{sales: []*entity.Sale{
			completedSale("900", day(2025, time.March, 5)),
		}}

		uc := NewUpdateDailyBalanceUseCase(balanceRepo, expenseRepo, salesRepo)

		first, err := uc.Execute(ctx, UpdateDailyBalanceInput{Date: day(2025, time.March, 5)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.Execute(ctx, UpdateDailyBalanceInput{Date: day(2025, time.March, 5)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !first.Balance.ClosingBalance.Equal(second.Balance.ClosingBalance) {
			t.Errorf("closings differ: %s vs %s",
				first.Balance.ClosingBalance, second.Balance.ClosingBalance)
		}
		if len(balanceRepo.rows) != 1 {
			t.Errorf("expected a single balance row, got %d", len(balanceRepo.rows))
		}
	})

	t.Run("gap carries forward latest prior closing", func(t *testing.T) {
		balanceRepo := newFakeBalanceRepo()
		prior := entity.NewDailyBalance(day(2025, time.March, 1), dec("0"), dec("500"), dec("100"))
		balanceRepo.rows[prior.Date.Format(time.DateOnly)] = prior

		uc := NewUpdateDailyBalanceUseCase(balanceRepo, &fakeExpenseRepo{}, &fakeSalesRepo{})

		// March 4th, with the 2nd and 3rd never closed.
		output, err := uc.Execute(ctx, UpdateDailyBalanceInput{Date: day(2025, time.March, 4)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Balance.OpeningBalance.Equal(dec("400")) {
			t.Errorf("expected opening 400, got %s", output.Balance.OpeningBalance)
		}
	})

	t.Run("zero date is rejected", func(t *testing.T) {
		uc := NewUpdateDailyBalanceUseCase(newFakeBalanceRepo(), &fakeExpenseRepo{}, &fakeSalesRepo{})

		_, err := uc.Execute(ctx, UpdateDailyBalanceInput{})
		if err == nil {
			t.Fatal("expected an error for zero date")
		}

		var ledgerErr *domainerror.LedgerError
		if !errors.As(err, &ledgerErr) || ledgerErr.Code != domainerror.ErrCodeInvalidLedgerDate {
			t.Errorf("expected code %s, got %v", domainerror.ErrCodeInvalidLedgerDate, err)
		}
	})

	t.Run("store failure surfaces as persistence error", func(t *testing.T) {
		balanceRepo := newFakeBalanceRepo()
		balanceRepo.saveErr = errors.New("connection refused")

		uc := NewUpdateDailyBalanceUseCase(balanceRepo, &fakeExpenseRepo{}, &fakeSalesRepo{})

		_, err := uc.Execute(ctx, UpdateDailyBalanceInput{Date: day(2025, time.March, 1)})
		if err == nil {
			t.Fatal("expected an error when the store fails")
		}

		var ledgerErr *domainerror.LedgerError
		if !errors.As(err, &ledgerErr) || ledgerErr.Code != domainerror.ErrCodeLedgerPersistence {
			t.Errorf("expected code %s, got %v", domainerror.ErrCodeLedgerPersistence, err)
		}
	})

	t.Run("timestamps normalize to the same calendar day", func(t *testing.T) {
		balanceRepo := newFakeBalanceRepo()
		salesRepo := &fakeSalesRepo{sales: []*entity.Sale{
			completedSale("250", time.Date(2025, time.March, 7, 23, 45, 0, 0, time.UTC)),
		}}

		uc := NewUpdateDailyBalanceUseCase(balanceRepo, &fakeExpenseRepo{}, salesRepo)

		output, err := uc.Execute(ctx, UpdateDailyBalanceInput{
			Date: time.Date(2025, time.March, 7, 9, 30, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Balance.Date.Equal(day(2025, time.March, 7)) {
			t.Errorf("expected normalized date 2025-03-07, got %s", output.Balance.Date)
		}
		if !output.Balance.TotalIncome.Equal(dec("250")) {
			t.Errorf("expected income 250, got %s", output.Balance.TotalIncome)
		}
	})
}
