package wallet_test

import (
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/vsingh/playerwallet/internal/apperrors"
	"github.com/vsingh/playerwallet/internal/models"
	"github.com/vsingh/playerwallet/internal/repository/postgres"
	"github.com/vsingh/playerwallet/internal/service/wallet"
	"github.com/vsingh/playerwallet/internal/testutil"
)

func TestService(t *testing.T) {
	t.Parallel()

	pg := testutil.StartPostgresContainer(t)
	t.Cleanup(pg.Terminate)

	inTx := func(t *testing.T, fn func(service *wallet.Service)) {
		testutil.InTx(pg.Pool, t, func(tx pgx.Tx) {
			fn(wallet.NewService(postgres.NewStorage(tx)))
		})
	}

	t.Run("Create", func(t *testing.T) {
		t.Run("create ok", func(t *testing.T) {
			inTx(t, func(service *wallet.Service) {
				w, err := service.Create(t.Context(), "p1", "100.50")

				require.NoError(t, err)
				require.Equal(t, "p1", w.PlayerID)
				require.True(t, w.Balance.Equal(decimal.RequireFromString("100.50")))
			})
		})

		t.Run("negative starting amount is normalized", func(t *testing.T) {
			inTx(t, func(service *wallet.Service) {
				w, err := service.Create(t.Context(), "p1", "-25")

				require.NoError(t, err, "sign is not part of the amount")
				require.True(t, w.Balance.Equal(decimal.NewFromInt(25)))
			})
		})

		t.Run("blank player id", func(t *testing.T) {
			inTx(t, func(service *wallet.Service) {
				_, err := service.Create(t.Context(), "   ", "100")

				require.ErrorIs(t, err, apperrors.ErrPlayerIDRequired)
			})
		})

		t.Run("blank amount", func(t *testing.T) {
			inTx(t, func(service *wallet.Service) {
				_, err := service.Create(t.Context(), "p1", "")

				require.ErrorIs(t, err, apperrors.ErrAmountRequired)
			})
		})

		t.Run("malformed amount", func(t *testing.T) {
			inTx(t, func(service *wallet.Service) {
				_, err := service.Create(t.Context(), "p1", "ten")

				require.ErrorIs(t, err, apperrors.ErrAmountInvalid)
			})
		})

		t.Run("second wallet for same player", func(t *testing.T) {
			inTx(t, func(service *wallet.Service) {
				_, err := service.Create(t.Context(), "p1", "100")
				require.NoError(t, err)

				_, err = service.Create(t.Context(), "p1", "200")

				require.ErrorIs(t, err, apperrors.ErrWalletExists, "a player holds at most one wallet")
			})
		})
	})

	t.Run("FindByPlayer", func(t *testing.T) {
		t.Run("find existing wallet", func(t *testing.T) {
			inTx(t, func(service *wallet.Service) {
				created, err := service.Create(t.Context(), "p1", "100")
				require.NoError(t, err)

				w, err := service.FindByPlayer(t.Context(), "p1")

				require.NoError(t, err)
				require.Equal(t, created.ID, w.ID)
			})
		})

		t.Run("find unknown player", func(t *testing.T) {
			inTx(t, func(service *wallet.Service) {
				_, err := service.FindByPlayer(t.Context(), "missing")

				require.ErrorIs(t, err, apperrors.ErrWalletNotFound)
			})
		})
	})

	t.Run("Mutate", func(t *testing.T) {
		t.Run("credit increases balance", func(t *testing.T) {
			inTx(t, func(service *wallet.Service) {
				_, err := service.Create(t.Context(), "p1", "10")
				require.NoError(t, err)

				w, amount, err := service.Mutate(t.Context(), "p1", "5", models.TransactionTypeCredit)

				require.NoError(t, err)
				require.True(t, w.Balance.Equal(decimal.NewFromInt(15)))
				require.True(t, amount.Equal(decimal.NewFromInt(5)), "applied amount should be reported back")
			})
		})

		t.Run("negative credit amount is normalized", func(t *testing.T) {
			inTx(t, func(service *wallet.Service) {
				_, err := service.Create(t.Context(), "p1", "10")
				require.NoError(t, err)

				w, _, err := service.Mutate(t.Context(), "p1", "-5", models.TransactionTypeCredit)

				require.NoError(t, err)
				require.True(t, w.Balance.Equal(decimal.NewFromInt(15)), "credit of -5 behaves as credit of 5")
			})
		})

		t.Run("debit decreases balance", func(t *testing.T) {
			inTx(t, func(service *wallet.Service) {
				_, err := service.Create(t.Context(), "p1", "15")
				require.NoError(t, err)

				w, amount, err := service.Mutate(t.Context(), "p1", "14", models.TransactionTypeDebit)

				require.NoError(t, err)
				require.True(t, w.Balance.Equal(decimal.NewFromInt(1)))
				require.True(t, amount.Equal(decimal.NewFromInt(14)))
			})
		})

		t.Run("debit to exactly zero is rejected", func(t *testing.T) {
			inTx(t, func(service *wallet.Service) {
				_, err := service.Create(t.Context(), "p1", "15")
				require.NoError(t, err)

				_, _, err = service.Mutate(t.Context(), "p1", "15", models.TransactionTypeDebit)

				require.ErrorIs(t, err, apperrors.ErrInsufficientFunds, "the balance must stay strictly positive")

				w, err := service.FindByPlayer(t.Context(), "p1")
				require.NoError(t, err)
				require.True(t, w.Balance.Equal(decimal.NewFromInt(15)), "rejected debit must not change the balance")
			})
		})

		t.Run("debit over balance is rejected", func(t *testing.T) {
			inTx(t, func(service *wallet.Service) {
				_, err := service.Create(t.Context(), "p1", "15")
				require.NoError(t, err)

				_, _, err = service.Mutate(t.Context(), "p1", "100", models.TransactionTypeDebit)

				require.ErrorIs(t, err, apperrors.ErrInsufficientFunds)
			})
		})

		t.Run("unknown player wins over malformed amount", func(t *testing.T) {
			inTx(t, func(service *wallet.Service) {
				_, _, err := service.Mutate(t.Context(), "missing", "ten", models.TransactionTypeCredit)

				require.ErrorIs(t, err, apperrors.ErrWalletNotFound, "wallet lookup happens before amount parsing")
			})
		})

		t.Run("malformed amount for existing wallet", func(t *testing.T) {
			inTx(t, func(service *wallet.Service) {
				_, err := service.Create(t.Context(), "p1", "15")
				require.NoError(t, err)

				_, _, err = service.Mutate(t.Context(), "p1", "ten", models.TransactionTypeCredit)

				require.ErrorIs(t, err, apperrors.ErrAmountInvalid)
			})
		})
	})
}
