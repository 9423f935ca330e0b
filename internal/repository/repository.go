package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vsingh/playerwallet/internal/models"
)

// Wallet repository interface
type WalletRepo interface {
	// Create wallet
	// If a wallet for the player exists already has to return apperrors.ErrWalletExists
	Create(ctx context.Context, wallet models.Wallet) (models.Wallet, error)

	// Get wallet by its player id
	// If forUpdate is set the wallet row stays exclusively locked until the
	// surrounding transaction ends. Callers that read-then-write the balance
	// must set it, otherwise concurrent mutations could observe stale state.
	// If wallet not found must return apperrors.ErrWalletNotFound
	GetByPlayer(ctx context.Context, playerID string, forUpdate bool) (models.Wallet, error)

	// List all wallets in creation order
	// Must return apperrors.ErrNoWallets when the ledger holds no wallets
	List(ctx context.Context) ([]models.Wallet, error)

	// Persist a new balance for the wallet and refresh its updated_at
	UpdateBalance(ctx context.Context, walletID uuid.UUID, balance decimal.Decimal) (models.Wallet, error)
}

// Transaction repository interface
// Transactions are append only: there is no update or delete
type TransactionRepo interface {
	// Create transaction
	// If transaction id is already used has to return apperrors.ErrTransactionExists
	Create(ctx context.Context, tr models.Transaction) (models.Transaction, error)

	// Get transaction by its surrogate id
	// If not found must return apperrors.ErrTransactionNotFound
	GetByID(ctx context.Context, id uuid.UUID) (models.Transaction, error)

	// List wallet transactions ordered newest first by updated_at
	ListByWallet(ctx context.Context, walletID uuid.UUID) ([]models.Transaction, error)
}

// Storage bundles the repositories over a single connection or transaction
type Storage interface {
	Wallets() WalletRepo
	Transactions() TransactionRepo

	// InTx runs fn against a transaction scoped Storage.
	// The transaction commits when fn returns nil and rolls back otherwise,
	// so a failing fn leaves wallets and transactions untouched.
	InTx(ctx context.Context, fn func(Storage) error) error
}
