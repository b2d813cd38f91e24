package query

import (
	"context"

	"github.com/tair/catalog-api/internal/catalog/domain"
)

// GetProductQuery represents the query to get a product by sku
type GetProductQuery struct {
	SKU string
}

// GetProductHandler handles get product query
type GetProductHandler struct {
	store domain.Store
}

// NewGetProductHandler creates a new get product handler
func NewGetProductHandler(store domain.Store) *GetProductHandler {
	return &GetProductHandler{store: store}
}

// Handle executes the get product query
func (h *GetProductHandler) Handle(ctx context.Context, q GetProductQuery) (*domain.Product, error) {
	return h.store.WithContext(ctx).Products().FindBySKU(q.SKU)
}
