package transactions

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/vsingh/playerwallet/internal/testutil"
	"github.com/vsingh/playerwallet/tests/e2e"
)

const (
	TransactionsURL = "/api/transactions"
)

func Test_Transactions(t *testing.T) {
	t.Parallel()

	pg := testutil.StartPostgresContainer(t)
	t.Cleanup(pg.Terminate)

	e2e.ServeInTx(pg.Pool, t, func(tx pgx.Tx, srvURL string, s e2e.Services) {
		post := func(t *testing.T, transactionID, playerID, transactionType, amount string) (*http.Response, string) {
			t.Helper()

			data := fmt.Sprintf(`{"transactionId": %q, "playerId": %q, "transactionType": %q, "amount": %q}`,
				transactionID, playerID, transactionType, amount)
			resp, err := http.Post(srvURL+TransactionsURL, "application/json", strings.NewReader(data))
			require.NoError(t, err, "failed to send request")
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err, "failed to read response body")
			_ = resp.Body.Close()

			return resp, string(body)
		}

		getBalance := func(t *testing.T, playerID string) string {
			t.Helper()

			resp, err := http.Get(srvURL + "/api/wallets/player/" + playerID)
			require.NoError(t, err, "failed to send request")
			defer resp.Body.Close() // nolint:errcheck

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err, "failed to read response body")
			require.Equalf(t, http.StatusOK, resp.StatusCode, "wallet read should return 200. Body: %s", string(body))

			var wallet struct {
				Balance string `json:"balance"`
			}
			require.NoError(t, json.Unmarshal(body, &wallet))
			return wallet.Balance
		}

		t.Run("credit and debit change the balance", func(t *testing.T) {
			testutil.InTx(tx, t, func(_ pgx.Tx) {
				_, err := s.WalletService.Create(t.Context(), "alice", "10")
				require.NoError(t, err)

				resp, body := post(t, "tx-1", "alice", "CREDIT", "5")
				require.Equalf(t, http.StatusCreated, resp.StatusCode, "credit should return 201. Body: %s", body)
				require.Equal(t, "15", getBalance(t, "alice"))

				// Debiting the whole balance is refused, the wallet must stay positive
				resp, body = post(t, "tx-2", "alice", "DEBIT", "15")
				require.Equalf(t, http.StatusBadRequest, resp.StatusCode, "overdraft should return 400. Body: %s", body)
				require.JSONEq(t, `{
					"message": "no sufficient funds in account for withdrawal",
					"details": "uri=/api/transactions"
				}`, body)
				require.Equal(t, "15", getBalance(t, "alice"), "refused debit must not change the balance")

				resp, body = post(t, "tx-3", "alice", "DEBIT", "14")
				require.Equalf(t, http.StatusCreated, resp.StatusCode, "debit should return 201. Body: %s", body)
				require.Equal(t, "1", getBalance(t, "alice"))
			})
		})

		t.Run("transaction readable on its location", func(t *testing.T) {
			testutil.InTx(tx, t, func(_ pgx.Tx) {
				_, err := s.WalletService.Create(t.Context(), "alice", "10")
				require.NoError(t, err)

				resp, body := post(t, "tx-1", "alice", "CREDIT", "5")
				require.Equalf(t, http.StatusCreated, resp.StatusCode, "credit should return 201. Body: %s", body)

				location := resp.Header.Get("Location")
				require.True(t, strings.HasPrefix(location, TransactionsURL+"/"))

				resp2, err := http.Get(srvURL + location)
				require.NoError(t, err, "failed to send request")
				defer resp2.Body.Close() // nolint:errcheck

				body2, err := io.ReadAll(resp2.Body)
				require.NoError(t, err, "failed to read response body")
				require.Equalf(t, http.StatusOK, resp2.StatusCode, "transaction read should return 200. Body: %s", string(body2))

				var tr struct {
					TransactionID string `json:"transactionId"`
					Type          string `json:"type"`
					Amount        string `json:"amount"`
				}
				require.NoError(t, json.Unmarshal(body2, &tr))
				require.Equal(t, "tx-1", tr.TransactionID)
				require.Equal(t, "CREDIT", tr.Type)
				require.Equal(t, "5", tr.Amount)
			})
		})

		t.Run("reused transaction id conflicts", func(t *testing.T) {
			testutil.InTx(tx, t, func(_ pgx.Tx) {
				_, err := s.WalletService.Create(t.Context(), "alice", "10")
				require.NoError(t, err)

				resp, body := post(t, "tx-1", "alice", "CREDIT", "5")
				require.Equalf(t, http.StatusCreated, resp.StatusCode, "credit should return 201. Body: %s", body)

				resp, body = post(t, "tx-1", "alice", "CREDIT", "5")
				require.Equalf(t, http.StatusConflict, resp.StatusCode, "reused id should return 409. Body: %s", body)
				require.JSONEq(t, `{
					"message": "transactionId already used",
					"details": "uri=/api/transactions"
				}`, body)

				require.Equal(t, "15", getBalance(t, "alice"), "only the first transaction should be applied")
			})
		})

		t.Run("wallet transaction history newest first", func(t *testing.T) {
			testutil.InTx(tx, t, func(_ pgx.Tx) {
				_, err := s.WalletService.Create(t.Context(), "alice", "10")
				require.NoError(t, err)

				for i, amount := range []string{"5", "3", "2"} {
					resp, body := post(t, fmt.Sprintf("tx-%d", i), "alice", "CREDIT", amount)
					require.Equalf(t, http.StatusCreated, resp.StatusCode, "credit should return 201. Body: %s", body)
				}

				resp, err := http.Get(srvURL + "/api/wallets/player/alice/transactions")
				require.NoError(t, err, "failed to send request")
				defer resp.Body.Close() // nolint:errcheck

				body, err := io.ReadAll(resp.Body)
				require.NoError(t, err, "failed to read response body")
				require.Equalf(t, http.StatusOK, resp.StatusCode, "history should return 200. Body: %s", string(body))

				var history []struct {
					TransactionID string `json:"transactionId"`
					Amount        string `json:"amount"`
				}
				require.NoError(t, json.Unmarshal(body, &history))
				require.Len(t, history, 3)
				require.Equal(t, "tx-2", history[0].TransactionID, "most recent transaction should come first")
				require.Equal(t, "tx-0", history[2].TransactionID)
			})
		})

		t.Run("validation errors", func(t *testing.T) {
			testutil.InTx(tx, t, func(_ pgx.Tx) {
				_, err := s.WalletService.Create(t.Context(), "alice", "10")
				require.NoError(t, err)

				tests := []struct {
					name                                             string
					transactionID, playerID, transactionType, amount string
					expectedStatus                                   int
					expectedMessage                                  string
				}{
					{"blank transaction id", "", "alice", "CREDIT", "5", http.StatusBadRequest, "transactionId can not be null and empty"},
					{"blank player id", "tx-1", "", "CREDIT", "5", http.StatusBadRequest, "playerId can not be null and empty"},
					{"blank type", "tx-1", "alice", "", "5", http.StatusBadRequest, "transactionType can not be null and empty"},
					{"blank amount", "tx-1", "alice", "CREDIT", "", http.StatusBadRequest, "amount can not be null and empty"},
					{"unknown type", "tx-1", "alice", "TRANSFER", "5", http.StatusBadRequest, "please specify valid transactionType: CREDIT or DEBIT"},
					{"malformed amount", "tx-1", "alice", "CREDIT", "ten", http.StatusBadRequest, "please specify valid amount"},
					{"unknown player", "tx-1", "nobody", "CREDIT", "5", http.StatusNotFound, "no wallet found for player"},
				}

				for _, tc := range tests {
					t.Run(tc.name, func(t *testing.T) {
						resp, body := post(t, tc.transactionID, tc.playerID, tc.transactionType, tc.amount)

						require.Equalf(t, tc.expectedStatus, resp.StatusCode, "not expected code. Body: %s", body)
						require.JSONEq(t, fmt.Sprintf(`{
							"message": %q,
							"details": "uri=/api/transactions"
						}`, tc.expectedMessage), body)
					})
				}
			})
		})
	})
}
