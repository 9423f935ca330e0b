package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Wallet holds the current balance for a single player.
// The balance never goes below zero; every mutation refreshes UpdatedAt.
type Wallet struct {
	ID        uuid.UUID
	PlayerID  string
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
