package query

import (
	"context"
	"time"

	"github.com/tair/catalog-api/internal/catalog/domain"
)

// ListStockQuery represents the query to list stock levels
type ListStockQuery struct {
	Limit  int
	Offset int
}

// StockItem is a stock row resolved to its product sku
type StockItem struct {
	SKU         string    `json:"sku"`
	Quantity    int       `json:"quantity"`
	LastUpdated time.Time `json:"last_updated"`
}

// ListStockHandler handles list stock query
type ListStockHandler struct {
	store domain.Store
}

// NewListStockHandler creates a new list stock handler
func NewListStockHandler(store domain.Store) *ListStockHandler {
	return &ListStockHandler{store: store}
}

// Handle executes the list stock query. Rows whose product disappeared
// mid-listing are skipped.
func (h *ListStockHandler) Handle(ctx context.Context, q ListStockQuery) ([]StockItem, error) {
	if q.Limit <= 0 {
		q.Limit = 50
	}

	store := h.store.WithContext(ctx)
	stocks, err := store.Stock().FindAll(q.Limit, q.Offset)
	if err != nil {
		return nil, err
	}

	items := make([]StockItem, 0, len(stocks))
	for _, stock := range stocks {
		product, err := store.Products().FindByID(stock.ProductID)
		if err != nil {
			continue
		}
		items = append(items, StockItem{
			SKU:         product.SKU,
			Quantity:    stock.Quantity,
			LastUpdated: stock.LastUpdated,
		})
	}

	return items, nil
}
