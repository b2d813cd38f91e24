package query

import (
	"context"

	"github.com/tair/catalog-api/internal/catalog/domain"
)

// ListSuppliersQuery represents the query to list suppliers
type ListSuppliersQuery struct {
	Limit  int
	Offset int
}

// ListSuppliersHandler handles list suppliers query
type ListSuppliersHandler struct {
	store domain.Store
}

// NewListSuppliersHandler creates a new list suppliers handler
func NewListSuppliersHandler(store domain.Store) *ListSuppliersHandler {
	return &ListSuppliersHandler{store: store}
}

// Handle executes the list suppliers query
func (h *ListSuppliersHandler) Handle(ctx context.Context, q ListSuppliersQuery) ([]domain.Supplier, error) {
	if q.Limit <= 0 {
		q.Limit = 50
	}
	return h.store.WithContext(ctx).Suppliers().FindAll(q.Limit, q.Offset)
}
