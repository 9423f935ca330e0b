package handlers

import (
	"net/http"
	"net/url"
	"time"

	"github.com/vsingh/playerwallet/internal/handlers/render"
	"github.com/vsingh/playerwallet/internal/logger"
	"github.com/vsingh/playerwallet/internal/models"
)

type walletResponse struct {
	ID        string    `json:"id"`
	PlayerID  string    `json:"playerId"`
	Balance   string    `json:"balance"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func walletToResponse(w models.Wallet) walletResponse {
	return walletResponse{
		ID:        w.ID.String(),
		PlayerID:  w.PlayerID,
		Balance:   w.Balance.String(),
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

func handleCreateWallet(wallets walletManager, l logger.Logger) http.Handler {
	type request struct {
		PlayerID string `json:"playerId"`
		Amount   string `json:"amount"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, err := render.BindAndValidate[request](w, r)
		if err != nil {
			return
		}

		wallet, err := wallets.Create(r.Context(), req.PlayerID, req.Amount)
		if err != nil {
			renderError(w, r, l, err)
			return
		}

		l.Info("Wallet created", "playerId", wallet.PlayerID, "balance", wallet.Balance.String())
		render.Created(w, "/api/wallets/player/"+url.PathEscape(wallet.PlayerID))
	})
}

func handleListWallets(q queryService, l logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		wallets, err := q.ListWallets(r.Context())
		if err != nil {
			renderError(w, r, l, err)
			return
		}

		response := make([]walletResponse, 0, len(wallets))
		for _, wallet := range wallets {
			response = append(response, walletToResponse(wallet))
		}

		render.JSON(w, response)
	})
}

func handleGetWallet(q queryService, l logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		wallet, err := q.GetWallet(r.Context(), r.PathValue("playerId"))
		if err != nil {
			renderError(w, r, l, err)
			return
		}

		render.JSON(w, walletToResponse(wallet))
	})
}
