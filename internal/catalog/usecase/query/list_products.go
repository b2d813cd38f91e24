package query

import (
	"context"

	"github.com/tair/catalog-api/internal/catalog/domain"
)

// ListProductsQuery represents the query to list products
type ListProductsQuery struct {
	Limit  int
	Offset int
}

// ListProductsHandler handles list products query
type ListProductsHandler struct {
	store domain.Store
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(store domain.Store) *ListProductsHandler {
	return &ListProductsHandler{store: store}
}

// Handle executes the list products query
func (h *ListProductsHandler) Handle(ctx context.Context, q ListProductsQuery) ([]domain.Product, error) {
	if q.Limit <= 0 {
		q.Limit = 50
	}
	return h.store.WithContext(ctx).Products().FindAll(q.Limit, q.Offset)
}
