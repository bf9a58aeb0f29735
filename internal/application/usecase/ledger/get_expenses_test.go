package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/salon-pos/backend/internal/domain/entity"
	domainerror "github.com/salon-pos/backend/internal/domain/error"
)

func TestGetExpensesUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicate expenses count independently", func(t *testing.T) {
		repo := &fakeExpenseRepo{}
		target := day(2025, time.May, 10)
		for i := 0; i < 2; i++ {
			_ = repo.Create(ctx, entity.NewExpense("towels", dec("120"), uuid.New(), target))
		}

		uc := NewGetExpensesUseCase(repo)

		total, err := uc.TotalForDate(ctx, target)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !total.Equal(dec("240")) {
			t.Errorf("expected total 240, got %s", total)
		}
	})

	t.Run("total is zero for a day without expenses", func(t *testing.T) {
		uc := NewGetExpensesUseCase(&fakeExpenseRepo{})

		total, err := uc.TotalForDate(ctx, day(2025, time.May, 11))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !total.IsZero() {
			t.Errorf("expected zero, got %s", total)
		}
	})

	t.Run("range listing rejects end before start", func(t *testing.T) {
		uc := NewGetExpensesUseCase(&fakeExpenseRepo{})

		_, err := uc.ListForRange(ctx, day(2025, time.May, 10), day(2025, time.May, 1))
		assertLedgerCode(t, err, domainerror.ErrCodeInvalidExpenseRange)
	})

	t.Run("range listing is inclusive and ordered", func(t *testing.T) {
		repo := &fakeExpenseRepo{}
		_ = repo.Create(ctx, entity.NewExpense("late", dec("30"), uuid.New(), day(2025, time.May, 3)))
		_ = repo.Create(ctx, entity.NewExpense("early", dec("10"), uuid.New(), day(2025, time.May, 1)))
		_ = repo.Create(ctx, entity.NewExpense("outside", dec("99"), uuid.New(), day(2025, time.May, 9)))

		uc := NewGetExpensesUseCase(repo)

		expenses, err := uc.ListForRange(ctx, day(2025, time.May, 1), day(2025, time.May, 3))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(expenses) != 2 {
			t.Fatalf("expected 2 expenses, got %d", len(expenses))
		}
		if expenses[0].Description != "early" || expenses[1].Description != "late" {
			t.Errorf("expected [early late], got [%s %s]",
				expenses[0].Description, expenses[1].Description)
		}
	})

	t.Run("week total queries Monday through Sunday", func(t *testing.T) {
		repo := &fakeExpenseRepo{}
		uc := NewGetExpensesUseCase(repo)
		// Wednesday 2025-06-11.
		uc.now = func() time.Time { return time.Date(2025, time.June, 11, 14, 0, 0, 0, time.UTC) }

		if _, err := uc.TotalForCurrentWeek(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !repo.lastSumStart.Equal(day(2025, time.June, 9)) {
			t.Errorf("expected week start Monday 2025-06-09, got %s", repo.lastSumStart)
		}
		if !repo.lastSumEnd.Equal(day(2025, time.June, 15)) {
			t.Errorf("expected week end Sunday 2025-06-15, got %s", repo.lastSumEnd)
		}
	})

	t.Run("week total on a Sunday still starts the prior Monday", func(t *testing.T) {
		repo := &fakeExpenseRepo{}
		uc := NewGetExpensesUseCase(repo)
		// Sunday 2025-06-15.
		uc.now = func() time.Time { return time.Date(2025, time.June, 15, 8, 0, 0, 0, time.UTC) }

		if _, err := uc.TotalForCurrentWeek(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !repo.lastSumStart.Equal(day(2025, time.June, 9)) {
			t.Errorf("expected week start Monday 2025-06-09, got %s", repo.lastSumStart)
		}
	})

	t.Run("month total queries the full calendar month", func(t *testing.T) {
		repo := &fakeExpenseRepo{}
		uc := NewGetExpensesUseCase(repo)
		uc.now = func() time.Time { return time.Date(2025, time.February, 14, 10, 0, 0, 0, time.UTC) }

		if _, err := uc.TotalForCurrentMonth(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !repo.lastSumStart.Equal(day(2025, time.February, 1)) {
			t.Errorf("expected month start 2025-02-01, got %s", repo.lastSumStart)
		}
		if !repo.lastSumEnd.Equal(day(2025, time.February, 28)) {
			t.Errorf("expected month end 2025-02-28, got %s", repo.lastSumEnd)
		}
	})
}

func TestGetOpeningBalanceUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("returns persisted opening when snapshot exists", func(t *testing.T) {
		repo := newFakeBalanceRepo()
		b := entity.NewDailyBalance(day(2025, time.May, 2), dec("800"), dec("100"), dec("50"))
		repo.rows[b.Date.Format(time.DateOnly)] = b

		uc := NewGetOpeningBalanceUseCase(repo)

		opening, err := uc.Execute(ctx, day(2025, time.May, 2))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !opening.Equal(dec("800")) {
			t.Errorf("expected 800, got %s", opening)
		}
	})

	t.Run("falls back to latest prior closing", func(t *testing.T) {
		repo := newFakeBalanceRepo()
		b := entity.NewDailyBalance(day(2025, time.May, 2), dec("800"), dec("100"), dec("50"))
		repo.rows[b.Date.Format(time.DateOnly)] = b

		uc := NewGetOpeningBalanceUseCase(repo)

		opening, err := uc.Execute(ctx, day(2025, time.May, 6))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !opening.Equal(dec("850")) {
			t.Errorf("expected prior closing 850, got %s", opening)
		}
	})

	t.Run("returns zero without any history", func(t *testing.T) {
		uc := NewGetOpeningBalanceUseCase(newFakeBalanceRepo())

		opening, err := uc.Execute(ctx, day(2025, time.May, 6))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !opening.IsZero() {
			t.Errorf("expected zero, got %s", opening)
		}
	})
}

func TestGetTodaysIncomeUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	repo := &fakeSalesRepo{sales: []*entity.Sale{
		completedSale("700", day(2025, time.May, 6)),
		completedSale("300", day(2025, time.May, 5)),
		{ID: uuid.New(), CustomerID: uuid.New(), Amount: dec("999"),
			Status: entity.SaleStatusPending, SoldAt: day(2025, time.May, 6)},
	}}

	uc := NewGetTodaysIncomeUseCase(repo)
	uc.now = func() time.Time { return time.Date(2025, time.May, 6, 16, 30, 0, 0, time.UTC) }

	income, err := uc.Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !income.Equal(dec("700")) {
		t.Errorf("expected today's income 700 (completed only), got %s", income)
	}
}
