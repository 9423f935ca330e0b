package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/vsingh/playerwallet/internal/apperrors"
	"github.com/vsingh/playerwallet/internal/models"
)

type WalletRepo struct {
	DB DBTX
}

const createWallet = `-- name: CreateWallet
INSERT INTO wallets (id, player_id, balance, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, player_id, balance, created_at, updated_at
`

func (r *WalletRepo) Create(ctx context.Context, w models.Wallet) (models.Wallet, error) {
	rows, _ := r.DB.Query(ctx, createWallet, w.ID, w.PlayerID, w.Balance, w.CreatedAt, w.UpdatedAt)
	wallet, err := pgx.CollectOneRow(rows, rowToWallet)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return wallet, apperrors.ErrWalletExists
		}

		return wallet, fmt.Errorf("db error: %w", err)
	}

	return wallet, nil
}

const getWalletByPlayer = `-- name: GetWalletByPlayer
SELECT id, player_id, balance, created_at, updated_at FROM wallets
WHERE player_id = $1
`

func (r *WalletRepo) GetByPlayer(ctx context.Context, playerID string, forUpdate bool) (models.Wallet, error) {
	query := getWalletByPlayer
	if forUpdate {
		query += "FOR UPDATE\n"
	}

	rows, _ := r.DB.Query(ctx, query, playerID)
	wallet, err := pgx.CollectOneRow(rows, rowToWallet)

	switch {
	case err == nil:
		return wallet, nil
	case errors.Is(err, pgx.ErrNoRows):
		return wallet, apperrors.ErrWalletNotFound
	default:
		return wallet, fmt.Errorf("db error: %w", err)
	}
}

const listWallets = `-- name: ListWallets
SELECT id, player_id, balance, created_at, updated_at FROM wallets
ORDER BY created_at, id
`

func (r *WalletRepo) List(ctx context.Context) ([]models.Wallet, error) {
	rows, _ := r.DB.Query(ctx, listWallets)
	wallets, err := pgx.CollectRows(rows, rowToWallet)

	switch {
	case err != nil:
		return nil, fmt.Errorf("db error: %w", err)
	case len(wallets) == 0:
		return nil, apperrors.ErrNoWallets
	default:
		return wallets, nil
	}
}

const updateWalletBalance = `-- name: UpdateWalletBalance
UPDATE wallets
SET balance = $2, updated_at = now()
WHERE id = $1
RETURNING id, player_id, balance, created_at, updated_at
`

func (r *WalletRepo) UpdateBalance(ctx context.Context, walletID uuid.UUID, balance decimal.Decimal) (models.Wallet, error) {
	rows, _ := r.DB.Query(ctx, updateWalletBalance, walletID, balance)
	wallet, err := pgx.CollectOneRow(rows, rowToWallet)

	switch {
	case err == nil:
		return wallet, nil
	case errors.Is(err, pgx.ErrNoRows):
		return wallet, apperrors.ErrWalletNotFound
	default:
		return wallet, fmt.Errorf("db error: %w", err)
	}
}

func rowToWallet(row pgx.CollectableRow) (models.Wallet, error) {
	var w models.Wallet
	err := row.Scan(&w.ID, &w.PlayerID, &w.Balance, &w.CreatedAt, &w.UpdatedAt)
	return w, err
}
