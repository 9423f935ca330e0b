package wallet

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vsingh/playerwallet/internal/apperrors"
	"github.com/vsingh/playerwallet/internal/models"
	"github.com/vsingh/playerwallet/internal/repository"
)

// Service owns wallet lookup, creation and the balance mutation algorithm.
type Service struct {
	storage repository.Storage
}

func NewService(storage repository.Storage) *Service {
	return &Service{storage: storage}
}

func (s *Service) FindByPlayer(ctx context.Context, playerID string) (models.Wallet, error) {
	return s.storage.Wallets().GetByPlayer(ctx, playerID, false)
}

func (s *Service) List(ctx context.Context) ([]models.Wallet, error) {
	return s.storage.Wallets().List(ctx)
}

// Create opens a wallet for the player with the starting amount.
// The starting amount is normalized to its absolute value.
func (s *Service) Create(ctx context.Context, playerID string, startingAmount string) (models.Wallet, error) {
	var w models.Wallet

	if strings.TrimSpace(playerID) == "" {
		return w, apperrors.ErrPlayerIDRequired
	}
	if strings.TrimSpace(startingAmount) == "" {
		return w, apperrors.ErrAmountRequired
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(startingAmount))
	if err != nil {
		return w, apperrors.ErrAmountInvalid
	}

	now := time.Now()

	return s.storage.Wallets().Create(ctx, models.Wallet{
		ID:        uuid.New(),
		PlayerID:  playerID,
		Balance:   amount.Abs(),
		CreatedAt: now,
		UpdatedAt: now,
	})
}

// Mutate applies a credit or debit to the player's wallet and returns the
// updated wallet together with the absolute amount that was applied.
//
// The wallet row is locked before the balance is read, so the whole
// read-compute-write sequence is exclusive per wallet. Callers that need the
// mutation to be atomic with other writes must invoke Mutate on a transaction
// scoped Storage: the lock is held until that transaction ends.
//
// A debit that would bring the balance to zero or below is rejected with
// apperrors.ErrInsufficientFunds. The zero boundary is deliberate and matches
// the ledger's contract, not an off by one.
func (s *Service) Mutate(ctx context.Context, playerID string, amountText string, transactionType string) (models.Wallet, decimal.Decimal, error) {
	w, err := s.storage.Wallets().GetByPlayer(ctx, playerID, true)
	if err != nil {
		return w, decimal.Zero, err
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(amountText))
	if err != nil {
		return w, decimal.Zero, apperrors.ErrAmountInvalid
	}
	amount = amount.Abs()

	delta := amount
	if transactionType == models.TransactionTypeDebit {
		if w.Balance.Sub(amount).Cmp(decimal.Zero) <= 0 {
			return w, decimal.Zero, apperrors.ErrInsufficientFunds
		}
		delta = amount.Neg()
	}

	w, err = s.storage.Wallets().UpdateBalance(ctx, w.ID, w.Balance.Add(delta))
	if err != nil {
		return w, decimal.Zero, err
	}

	return w, amount, nil
}
