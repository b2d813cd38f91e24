package query

import (
	"context"

	"github.com/tair/catalog-api/internal/catalog/domain"
)

// GetStockQuery represents the query to get stock by product sku
type GetStockQuery struct {
	SKU string
}

// GetStockHandler handles get stock query
type GetStockHandler struct {
	store domain.Store
}

// NewGetStockHandler creates a new get stock handler
func NewGetStockHandler(store domain.Store) *GetStockHandler {
	return &GetStockHandler{store: store}
}

// Handle executes the get stock query
func (h *GetStockHandler) Handle(ctx context.Context, q GetStockQuery) (*StockItem, error) {
	store := h.store.WithContext(ctx)

	product, err := store.Products().FindBySKU(q.SKU)
	if err != nil {
		return nil, err
	}

	stock, err := store.Stock().FindByProductID(product.ID)
	if err != nil {
		return nil, err
	}

	return &StockItem{
		SKU:         product.SKU,
		Quantity:    stock.Quantity,
		LastUpdated: stock.LastUpdated,
	}, nil
}
