package handlers

import (
	"context"
	"net/http"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vsingh/playerwallet/internal/handlers/middleware"
	"github.com/vsingh/playerwallet/internal/logger"
	"github.com/vsingh/playerwallet/internal/models"
)

// chain applies middlewares in the given order: m1(m2(...(h)))
func chain(h http.Handler, mds ...func(next http.Handler) http.Handler) http.Handler {
	for i := len(mds) - 1; i >= 0; i-- {
		h = mds[i](h)
	}
	return h
}

func NewRouter(
	walletManager walletManager,
	recorder transactionRecorder,
	queryService queryService,
	logger logger.Logger,
) http.Handler {
	api := http.NewServeMux()

	api.Handle("POST /wallets", handleCreateWallet(walletManager, logger))
	api.Handle("GET /wallets", handleListWallets(queryService, logger))
	api.Handle("GET /wallets/player/{playerId}", handleGetWallet(queryService, logger))
	api.Handle("GET /wallets/player/{playerId}/transactions", handleListWalletTransactions(queryService, recorder, logger))

	api.Handle("POST /transactions", handleCreateTransaction(recorder, logger))
	api.Handle("GET /transactions/{id}", handleGetTransaction(recorder, logger))

	registry := prom.NewRegistry()

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))
	root.Handle("GET /metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	handler := chain(root,
		middleware.LoggerMiddleware(logger),
		middleware.MetricsMiddleware(registry),
	)

	return handler
}

type walletManager interface {
	// Create wallet for the player with the starting amount (normalized to
	// its absolute value)
	// Has to return apperrors.ErrWalletExists if the player already has one
	Create(ctx context.Context, playerID string, startingAmount string) (models.Wallet, error)
}

type transactionRecorder interface {
	// Apply a uniquely identified credit or debit and append its record,
	// atomically
	// Has to return apperrors.ErrTransactionExists on a reused transactionId
	// and apperrors.ErrInsufficientFunds on an overdraft
	CreateTransaction(ctx context.Context, transactionID, playerID, transactionType, amountText string) (models.Transaction, error)

	// Get transaction by surrogate id
	// Has to return apperrors.ErrTransactionIDInvalid when id is malformed
	GetByID(ctx context.Context, id string) (models.Transaction, error)

	// List wallet transactions newest first
	// Has to return apperrors.ErrNoTransactions when there are none
	ListByWallet(ctx context.Context, w models.Wallet) ([]models.Transaction, error)
}

type queryService interface {
	ListWallets(ctx context.Context) ([]models.Wallet, error)
	GetWallet(ctx context.Context, playerID string) (models.Wallet, error)
}
