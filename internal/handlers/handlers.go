// Package handlers serves a read-only browse API over the catalog store.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/household-archive/cataloger/internal/catalog"
)

type Handler struct {
	store *catalog.Store
}

func New(store *catalog.Store) *Handler {
	return &Handler{store: store}
}

// Response helpers
func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	slog.Error(message)
	http.Error(w, message, code)
}
