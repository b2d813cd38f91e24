package query

import (
	"context"

	"github.com/tair/catalog-api/internal/catalog/domain"
)

// GetPriceHistoryQuery represents the query to list a product's price changes
type GetPriceHistoryQuery struct {
	SKU string
}

// GetPriceHistoryHandler handles get price history query
type GetPriceHistoryHandler struct {
	store domain.Store
}

// NewGetPriceHistoryHandler creates a new get price history handler
func NewGetPriceHistoryHandler(store domain.Store) *GetPriceHistoryHandler {
	return &GetPriceHistoryHandler{store: store}
}

// Handle executes the get price history query, newest change first
func (h *GetPriceHistoryHandler) Handle(ctx context.Context, q GetPriceHistoryQuery) ([]domain.PriceHistory, error) {
	store := h.store.WithContext(ctx)

	product, err := store.Products().FindBySKU(q.SKU)
	if err != nil {
		return nil, err
	}

	return store.PriceHistory().FindByProductID(product.ID)
}
