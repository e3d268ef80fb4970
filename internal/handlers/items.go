package handlers

import (
	"net/http"
	"strings"

	"github.com/household-archive/cataloger/internal/catalog"
)

// HandleItems returns the full item list, optionally filtered by box code
// with ?box=DO3M.
func (h *Handler) HandleItems(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	doc, err := h.store.Load()
	if err != nil {
		h.writeError(w, "Failed to load catalog: "+err.Error(), http.StatusInternalServerError)
		return
	}

	items := doc.Items
	if box := r.URL.Query().Get("box"); box != "" {
		filtered := make([]catalog.Entry, 0)
		for _, item := range items {
			if item.BoxID == box {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	h.writeJSON(w, map[string]any{
		"catalog_version": doc.CatalogVersion,
		"source":          doc.Source,
		"items":           items,
	})
}

// HandleItemDetail returns one item by id: GET /api/items/{id}.
func (h *Handler) HandleItemDetail(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/items/")
	if id == "" {
		h.writeError(w, "Item id is required", http.StatusBadRequest)
		return
	}

	doc, err := h.store.Load()
	if err != nil {
		h.writeError(w, "Failed to load catalog: "+err.Error(), http.StatusInternalServerError)
		return
	}

	for _, item := range doc.Items {
		if item.ID == id {
			h.writeJSON(w, item)
			return
		}
	}
	h.writeError(w, "Item not found", http.StatusNotFound)
}

// HandleDeltas returns the updates index.
func (h *Handler) HandleDeltas(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	index, err := h.store.LoadIndex()
	if err != nil {
		h.writeError(w, "Failed to load updates index: "+err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, index)
}
