package transaction

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vsingh/playerwallet/internal/apperrors"
	"github.com/vsingh/playerwallet/internal/models"
	"github.com/vsingh/playerwallet/internal/repository"
	"github.com/vsingh/playerwallet/internal/service/wallet"
)

// Service records balance changing transactions.
// It validates the request, applies the balance change through the wallet
// manager and appends the transaction record, all inside one database
// transaction: either both the new balance and the record are persisted or
// neither is.
type Service struct {
	storage repository.Storage
}

func NewService(storage repository.Storage) *Service {
	return &Service{storage: storage}
}

// CreateTransaction applies a uniquely identified credit or debit.
// Validation failures are reported in a fixed order: blank transactionId,
// blank playerId, blank transactionType, blank amount, then unknown type.
func (s *Service) CreateTransaction(ctx context.Context, transactionID, playerID, transactionType, amountText string) (models.Transaction, error) {
	var tr models.Transaction

	if strings.TrimSpace(transactionID) == "" {
		return tr, apperrors.ErrTransactionIDRequired
	}
	if strings.TrimSpace(playerID) == "" {
		return tr, apperrors.ErrPlayerIDRequired
	}
	if strings.TrimSpace(transactionType) == "" {
		return tr, apperrors.ErrTransactionTypeRequired
	}
	if strings.TrimSpace(amountText) == "" {
		return tr, apperrors.ErrAmountRequired
	}
	if !models.ValidTransactionType(transactionType) {
		return tr, apperrors.ErrTransactionTypeInvalid
	}

	err := s.storage.InTx(ctx, func(st repository.Storage) error {
		w, amount, err := wallet.NewService(st).Mutate(ctx, playerID, amountText, transactionType)
		if err != nil {
			return err
		}

		tr, err = st.Transactions().Create(ctx, models.Transaction{
			ID:            uuid.New(),
			TransactionID: transactionID,
			Type:          transactionType,
			Amount:        amount,
			WalletID:      w.ID,
			UpdatedAt:     time.Now(),
		})

		return err
	})
	if err != nil {
		return models.Transaction{}, err
	}

	return tr, nil
}

// GetByID returns the transaction with the given surrogate id.
func (s *Service) GetByID(ctx context.Context, id string) (models.Transaction, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return models.Transaction{}, apperrors.ErrTransactionIDInvalid
	}

	return s.storage.Transactions().GetByID(ctx, uid)
}

// ListByWallet returns the wallet's transactions ordered newest first.
func (s *Service) ListByWallet(ctx context.Context, w models.Wallet) ([]models.Transaction, error) {
	trs, err := s.storage.Transactions().ListByWallet(ctx, w.ID)
	if err != nil {
		return nil, err
	}

	if len(trs) == 0 {
		return nil, apperrors.ErrNoTransactions
	}

	return trs, nil
}
