package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleStatus represents the settlement state of a sale.
type SaleStatus string

const (
	SaleStatusCompleted SaleStatus = "completed"
	SaleStatusPending   SaleStatus = "pending"
	SaleStatusRefunded  SaleStatus = "refunded"
)

// Sale is one point-of-sale transaction. Only completed sales contribute to
// ledger income; advance/balance amounts feed the payment metrics.
type Sale struct {
	ID              uuid.UUID
	CustomerID      uuid.UUID
	ServiceCategory string
	Amount          decimal.Decimal
	AdvancePaid     decimal.Decimal
	BalanceDue      decimal.Decimal
	Status          SaleStatus
	SoldAt          time.Time
	CreatedAt       time.Time
}
