package query

import (
	"context"

	"github.com/vsingh/playerwallet/internal/models"
	"github.com/vsingh/playerwallet/internal/repository"
	"github.com/vsingh/playerwallet/internal/service/wallet"
)

// Service is the read only side of the ledger. It takes no locks: readers
// observe any committed state.
type Service struct {
	wallets *wallet.Service
}

func NewService(storage repository.Storage) *Service {
	return &Service{wallets: wallet.NewService(storage)}
}

func (s *Service) ListWallets(ctx context.Context) ([]models.Wallet, error) {
	return s.wallets.List(ctx)
}

func (s *Service) GetWallet(ctx context.Context, playerID string) (models.Wallet, error) {
	return s.wallets.FindByPlayer(ctx, playerID)
}
