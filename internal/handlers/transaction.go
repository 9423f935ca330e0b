package handlers

import (
	"net/http"
	"time"

	"github.com/vsingh/playerwallet/internal/handlers/render"
	"github.com/vsingh/playerwallet/internal/logger"
	"github.com/vsingh/playerwallet/internal/models"
)

type transactionResponse struct {
	ID            string    `json:"id"`
	TransactionID string    `json:"transactionId"`
	Type          string    `json:"type"`
	Amount        string    `json:"amount"`
	WalletID      string    `json:"walletId"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func transactionToResponse(t models.Transaction) transactionResponse {
	return transactionResponse{
		ID:            t.ID.String(),
		TransactionID: t.TransactionID,
		Type:          t.Type,
		Amount:        t.Amount.String(),
		WalletID:      t.WalletID.String(),
		UpdatedAt:     t.UpdatedAt,
	}
}

func handleCreateTransaction(recorder transactionRecorder, l logger.Logger) http.Handler {
	type request struct {
		TransactionID   string `json:"transactionId"`
		PlayerID        string `json:"playerId"`
		TransactionType string `json:"transactionType"`
		Amount          string `json:"amount"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, err := render.BindAndValidate[request](w, r)
		if err != nil {
			return
		}

		tr, err := recorder.CreateTransaction(r.Context(), req.TransactionID, req.PlayerID, req.TransactionType, req.Amount)
		if err != nil {
			renderError(w, r, l, err)
			return
		}

		l.Info("Transaction recorded",
			"transactionId", tr.TransactionID,
			"type", tr.Type,
			"amount", tr.Amount.String(),
			"walletId", tr.WalletID.String(),
		)
		render.Created(w, "/api/transactions/"+tr.ID.String())
	})
}

func handleListWalletTransactions(q queryService, recorder transactionRecorder, l logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		wallet, err := q.GetWallet(r.Context(), r.PathValue("playerId"))
		if err != nil {
			renderError(w, r, l, err)
			return
		}

		transactions, err := recorder.ListByWallet(r.Context(), wallet)
		if err != nil {
			renderError(w, r, l, err)
			return
		}

		response := make([]transactionResponse, 0, len(transactions))
		for _, tr := range transactions {
			response = append(response, transactionToResponse(tr))
		}

		render.JSON(w, response)
	})
}

func handleGetTransaction(recorder transactionRecorder, l logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tr, err := recorder.GetByID(r.Context(), r.PathValue("id"))
		if err != nil {
			renderError(w, r, l, err)
			return
		}

		render.JSON(w, transactionToResponse(tr))
	})
}
