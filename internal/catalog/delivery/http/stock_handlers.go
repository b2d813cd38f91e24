package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tair/catalog-api/internal/catalog/usecase/command"
	"github.com/tair/catalog-api/internal/catalog/usecase/query"
)

type updateStockRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

// ListStock handles GET /api/stock
func (h *CatalogHandler) ListStock(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	items, err := h.listStock.Handle(r.Context(), query.ListStockQuery{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, items)
}

// GetStock handles GET /api/stock/{sku}
func (h *CatalogHandler) GetStock(w http.ResponseWriter, r *http.Request) {
	sku := mux.Vars(r)["sku"]

	item, err := h.getStock.Handle(r.Context(), query.GetStockQuery{SKU: sku})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, item)
}

// UpdateStock handles PATCH /api/stock/{sku}
func (h *CatalogHandler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	sku := mux.Vars(r)["sku"]

	var req updateStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if fieldErrors := h.validateRequest(req); fieldErrors != nil {
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": fieldErrors})
		return
	}

	stock, err := h.updateStock.Handle(r.Context(), command.UpdateStockCommand{
		SKU:      sku,
		Quantity: *req.Quantity,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, query.StockItem{
		SKU:         sku,
		Quantity:    stock.Quantity,
		LastUpdated: stock.LastUpdated,
	})
}
