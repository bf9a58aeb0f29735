// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/salon-pos/backend/internal/application/adapter"
	"github.com/salon-pos/backend/internal/domain/entity"
	"github.com/salon-pos/backend/internal/integration/persistence/model"
)

// dailyBalanceRepository implements the adapter.DailyBalanceRepository interface.
type dailyBalanceRepository struct {
	db *gorm.DB
}

// NewDailyBalanceRepository creates a new daily balance repository instance.
func NewDailyBalanceRepository(db *gorm.DB) adapter.DailyBalanceRepository {
	return &dailyBalanceRepository{
		db: db,
	}
}

// FindByDate retrieves the balance row for the given calendar day.
func (r *dailyBalanceRepository) FindByDate(ctx context.Context, date time.Time) (*entity.DailyBalance, error) {
	var m model.DailyBalanceModel

	err := r.db.WithContext(ctx).
		Where("date = ?", entity.NormalizeDay(date)).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find daily balance by date: %w", err)
	}

	return m.ToEntity(), nil
}

// FindLatestBefore retrieves the most recent balance row strictly before the
// given calendar day.
func (r *dailyBalanceRepository) FindLatestBefore(ctx context.Context, date time.Time) (*entity.DailyBalance, error) {
	var m model.DailyBalanceModel

	err := r.db.WithContext(ctx).
		Where("date < ?", entity.NormalizeDay(date)).
		Order("date DESC").
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find latest prior balance: %w", err)
	}

	return m.ToEntity(), nil
}

// Upsert inserts the balance row for its date, replacing the amounts of an
// existing row for the same date.
func (r *dailyBalanceRepository) Upsert(ctx context.Context, balance *entity.DailyBalance) error {
	m := model.DailyBalanceFromEntity(balance)

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"opening_balance",
				"total_income",
				"total_expenses",
				"closing_balance",
				"updated_at",
			}),
		}).
		Create(m).Error
	if err != nil {
		return fmt.Errorf("failed to upsert daily balance: %w", err)
	}

	return nil
}
