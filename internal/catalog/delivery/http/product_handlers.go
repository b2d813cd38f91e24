package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/tair/catalog-api/internal/catalog/usecase/command"
	"github.com/tair/catalog-api/internal/catalog/usecase/query"
)

type createProductRequest struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	SKU         string          `json:"sku" validate:"required"`
	Category    string          `json:"category"`
	SupplierID  *uint           `json:"supplier_id"`
}

type updateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	SKU         *string          `json:"sku"`
	Category    *string          `json:"category"`
	SupplierID  *uint            `json:"supplier_id"`
}

// CreateProduct handles POST /api/products
func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if fieldErrors := h.validateRequest(req); fieldErrors != nil {
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": fieldErrors})
		return
	}

	userID, _ := callerFromContext(r.Context())

	cmd := command.CreateProductCommand{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		SKU:          req.SKU,
		CategoryName: req.Category,
		SupplierID:   req.SupplierID,
		UserID:       userID,
	}

	product, err := h.createProduct.Handle(r.Context(), cmd)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	h.updateProductsMetric()

	respondJSON(w, http.StatusCreated, product)
}

// ListProducts handles GET /api/products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	products, err := h.listProducts.Handle(r.Context(), query.ListProductsQuery{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, products)
}

// GetProduct handles GET /api/products/{sku}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	sku := mux.Vars(r)["sku"]

	product, err := h.getProduct.Handle(r.Context(), query.GetProductQuery{SKU: sku})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, product)
}

// UpdateProduct handles PATCH /api/products/{sku}
func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	sku := mux.Vars(r)["sku"]

	var req updateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID, _ := callerFromContext(r.Context())

	cmd := command.UpdateProductCommand{
		SKU:          sku,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		NewSKU:       req.SKU,
		CategoryName: req.Category,
		SupplierID:   req.SupplierID,
		UserID:       userID,
	}

	product, err := h.updateProduct.Handle(r.Context(), cmd)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, product)
}

// DeleteProduct handles DELETE /api/products/{sku}
func (h *CatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	sku := mux.Vars(r)["sku"]

	if err := h.deleteProduct.Handle(r.Context(), command.DeleteProductCommand{SKU: sku}); err != nil {
		respondDomainError(w, err)
		return
	}

	h.updateProductsMetric()

	respondJSON(w, http.StatusNoContent, nil)
}

// GetPriceHistory handles GET /api/products/{sku}/prices
func (h *CatalogHandler) GetPriceHistory(w http.ResponseWriter, r *http.Request) {
	sku := mux.Vars(r)["sku"]

	history, err := h.getPriceHistory.Handle(r.Context(), query.GetPriceHistoryQuery{SKU: sku})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, history)
}

// GetProductRating handles GET /api/products/{sku}/rating
func (h *CatalogHandler) GetProductRating(w http.ResponseWriter, r *http.Request) {
	sku := mux.Vars(r)["sku"]

	rating, err := h.getRating.Handle(r.Context(), query.GetRatingQuery{SKU: sku})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, rating)
}
