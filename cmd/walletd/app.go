package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/vsingh/playerwallet/internal/handlers"
	"github.com/vsingh/playerwallet/internal/logger"
	"github.com/vsingh/playerwallet/internal/repository"
	"github.com/vsingh/playerwallet/internal/repository/postgres"
	"github.com/vsingh/playerwallet/internal/service/query"
	"github.com/vsingh/playerwallet/internal/service/transaction"
	"github.com/vsingh/playerwallet/internal/service/wallet"
)

type ServerApp struct {
	ListenAddr string
	Handler    http.Handler
	Logger     logger.Logger

	closePool func()
}

func NewServerApp(ctx context.Context, c *Config) (*ServerApp, error) {
	if c.DatabaseDSN == "" {
		return nil, errors.New("database DSN is required")
	}

	// Initialize logger
	log, err := logger.New(c.Environment, c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("error while initializing logger: %w", err)
	}

	// Connect to the database and run migrations
	pool, err := repository.ConnectAndMigrate(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("error while connecting to db. Err: %w", err)
	}

	// Initialize repositories and services, wired once at process start
	storage := postgres.NewStorage(pool)

	walletManager := wallet.NewService(storage)
	recorder := transaction.NewService(storage)
	queryService := query.NewService(storage)

	mux := handlers.NewRouter(
		walletManager,
		recorder,
		queryService,
		log,
	)

	return &ServerApp{
		ListenAddr: c.ListenAddr,
		Handler:    mux,
		Logger:     log,
		closePool:  pool.Close,
	}, nil
}

// Run starts http server and closes gracefully on context cancellation
func (s *ServerApp) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:    s.ListenAddr,
		Handler: s.Handler,
	}

	idleConnsClosed := make(chan struct{})
	srvCtx, srvCtxCancel := context.WithCancel(ctx)
	defer srvCtxCancel()

	go func() {
		<-srvCtx.Done()

		timeoutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(timeoutCtx); err == context.DeadlineExceeded {
			s.Logger.Error("HTTP server shutdown timeout exceeded, forcing shutdown...")
		}
		s.Logger.Info("HTTP server stopped")
		close(idleConnsClosed)
	}()

	// Listen and serve until context is cancelled; then close gracefully connections
	s.Logger.Info("Starting server", "address", s.ListenAddr)
	err := httpServer.ListenAndServe()
	srvCtxCancel()
	<-idleConnsClosed

	if s.closePool != nil {
		s.closePool()
	}

	return err
}
