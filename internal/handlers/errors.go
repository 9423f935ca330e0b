package handlers

import (
	"errors"
	"net/http"

	"github.com/vsingh/playerwallet/internal/apperrors"
	"github.com/vsingh/playerwallet/internal/handlers/render"
	"github.com/vsingh/playerwallet/internal/logger"
)

// renderError maps an error kind to its status code and writes the payload.
// Unknown errors become opaque 500s and are logged; everything else passes
// its message through to the client.
func renderError(w http.ResponseWriter, r *http.Request, l logger.Logger, err error) {
	switch {
	case apperrors.IsInvalidInput(err) || errors.Is(err, apperrors.ErrInsufficientFunds):
		render.Error(w, r, err.Error(), http.StatusBadRequest)
	case apperrors.IsNotFound(err):
		render.Error(w, r, err.Error(), http.StatusNotFound)
	case apperrors.IsConflict(err):
		render.Error(w, r, err.Error(), http.StatusConflict)
	default:
		l.Error("Failed to process request", "uri", r.URL.Path, "error", err)
		render.Error(w, r, "Internal server error", http.StatusInternalServerError)
	}
}
