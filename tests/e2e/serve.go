package e2e

import (
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vsingh/playerwallet/internal/handlers"
	"github.com/vsingh/playerwallet/internal/logger"
	"github.com/vsingh/playerwallet/internal/repository/postgres"
	"github.com/vsingh/playerwallet/internal/service/query"
	"github.com/vsingh/playerwallet/internal/service/transaction"
	"github.com/vsingh/playerwallet/internal/service/wallet"
	"github.com/vsingh/playerwallet/internal/testutil"
)

type Services struct {
	WalletService      *wallet.Service
	TransactionService *transaction.Service
	QueryService       *query.Service
}

// Create db transaction and run server with that connection (one connection cause one transaction)
// The created transaction passed to inner function: so, you can safely use testutil.InTx with it
func ServeInTx(dbpool *pgxpool.Pool, t *testing.T, fn func(tx pgx.Tx, srvURL string, services Services)) {
	testutil.InTx(dbpool, t, func(tx pgx.Tx) {
		storage := postgres.NewStorage(tx)

		ws := wallet.NewService(storage)
		ts := transaction.NewService(storage)
		qs := query.NewService(storage)

		// Complete all together as router
		router := handlers.NewRouter(
			ws,
			ts,
			qs,
			logger.NewNoOpLogger(),
		)

		// Run http server with the router in transaction
		srv := httptest.NewServer(router)
		defer srv.Close()

		fn(tx, srv.URL, Services{
			WalletService:      ws,
			TransactionService: ts,
			QueryService:       qs,
		})
	})
}
