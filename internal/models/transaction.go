package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	TransactionTypeCredit = "CREDIT"
	TransactionTypeDebit  = "DEBIT"
)

// ValidTransactionType reports whether t is one of the allowed types.
func ValidTransactionType(t string) bool {
	return t == TransactionTypeCredit || t == TransactionTypeDebit
}

// Transaction is an immutable record of a single balance change.
// TransactionID is the caller supplied natural key and is unique across the
// whole ledger. Amount is stored as the absolute value for both types; Type
// carries the direction.
type Transaction struct {
	ID            uuid.UUID
	TransactionID string
	Type          string
	Amount        decimal.Decimal
	WalletID      uuid.UUID
	UpdatedAt     time.Time
}
