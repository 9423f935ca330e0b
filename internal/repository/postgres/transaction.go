package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vsingh/playerwallet/internal/apperrors"
	"github.com/vsingh/playerwallet/internal/models"
)

type TransactionRepo struct {
	DB DBTX
}

const createTransaction = `-- name: CreateTransaction
INSERT INTO transactions (id, transaction_id, type, amount, wallet_id, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, transaction_id, type, amount, wallet_id, updated_at
`

func (r *TransactionRepo) Create(ctx context.Context, t models.Transaction) (models.Transaction, error) {
	rows, _ := r.DB.Query(ctx, createTransaction, t.ID, t.TransactionID, t.Type, t.Amount, t.WalletID, t.UpdatedAt)
	tr, err := pgx.CollectOneRow(rows, rowToTransaction)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return tr, apperrors.ErrTransactionExists
		}

		return tr, fmt.Errorf("db error: %w", err)
	}

	return tr, nil
}

const getTransactionByID = `-- name: GetTransactionByID
SELECT id, transaction_id, type, amount, wallet_id, updated_at FROM transactions
WHERE id = $1
`

func (r *TransactionRepo) GetByID(ctx context.Context, id uuid.UUID) (models.Transaction, error) {
	rows, _ := r.DB.Query(ctx, getTransactionByID, id)
	tr, err := pgx.CollectOneRow(rows, rowToTransaction)

	switch {
	case err == nil:
		return tr, nil
	case errors.Is(err, pgx.ErrNoRows):
		return tr, apperrors.ErrTransactionNotFound
	default:
		return tr, fmt.Errorf("db error: %w", err)
	}
}

const listTransactionsByWallet = `-- name: ListTransactionsByWallet
SELECT id, transaction_id, type, amount, wallet_id, updated_at FROM transactions
WHERE wallet_id = $1
ORDER BY updated_at DESC, id
`

func (r *TransactionRepo) ListByWallet(ctx context.Context, walletID uuid.UUID) ([]models.Transaction, error) {
	rows, _ := r.DB.Query(ctx, listTransactionsByWallet, walletID)
	trs, err := pgx.CollectRows(rows, rowToTransaction)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return trs, nil
}

func rowToTransaction(row pgx.CollectableRow) (models.Transaction, error) {
	var t models.Transaction
	err := row.Scan(&t.ID, &t.TransactionID, &t.Type, &t.Amount, &t.WalletID, &t.UpdatedAt)
	return t, err
}
